package command

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/cli/output"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/service"
)

const dateLayout = "2006-01-02"

type message struct {
	Title  string `json:"title" yaml:"title"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func (m message) Table() *output.Table {
	line := m.Title
	if m.Detail != "" {
		line += ": " + m.Detail
	}
	t := &output.Table{}
	t.AddRow(line)
	return t
}

type whoami struct {
	Status string     `json:"status" yaml:"status"`
	ID     *uuid.UUID `json:"id,omitempty" yaml:"id,omitempty"`
	Email  string     `json:"email,omitempty" yaml:"email,omitempty"`
	Screen string     `json:"screen" yaml:"screen"`
}

func (w whoami) Table() *output.Table {
	t := &output.Table{}
	t.AddRow("STATUS", w.Status)
	if w.ID != nil {
		t.AddRow("EMAIL", w.Email)
		t.AddRow("ID", w.ID.String())
	}
	t.AddRow("SCREEN", w.Screen)
	return t
}

type orgRow struct {
	Active   bool      `json:"active" yaml:"active"`
	ID       uuid.UUID `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Timezone string    `json:"timezone" yaml:"timezone"`
}

type orgList struct {
	Active string   `json:"active,omitempty" yaml:"active,omitempty"`
	Orgs   []orgRow `json:"organizations" yaml:"organizations"`
}

func newOrgList(orgs []model.Organization, active model.Organization) orgList {
	l := orgList{Active: active.Name, Orgs: make([]orgRow, 0, len(orgs))}
	for _, o := range orgs {
		l.Orgs = append(l.Orgs, orgRow{Active: o.ID == active.ID, ID: o.ID, Name: o.Name, Timezone: o.Timezone})
	}
	return l
}

func (l orgList) Table() *output.Table {
	t := &output.Table{
		Headers: []string{"", "NAME", "TIMEZONE", "ID"},
		Empty:   "No organizations yet. Create one with 'orgs create <name>'.",
	}
	for _, o := range l.Orgs {
		mark := ""
		if o.Active {
			mark = "*"
		}
		t.AddRow(mark, o.Name, o.Timezone, o.ID.String())
	}
	if l.Active != "" {
		t.AddRow("")
		t.AddRow("Active: " + l.Active)
	}
	return t
}

type memberRow struct {
	Name   string              `json:"name" yaml:"name"`
	Email  string              `json:"email" yaml:"email"`
	Role   model.OrgRole       `json:"role" yaml:"role"`
	Status model.OrgMemberType `json:"status" yaml:"status"`
	Since  *time.Time          `json:"since" yaml:"since"`
}

type memberRows []memberRow

func newMemberRows(members []model.OrgMember) memberRows {
	rows := make(memberRows, 0, len(members))
	for _, m := range members {
		row := memberRow{Name: service.DisplayName(m), Role: m.Role, Status: m.MemberType, Since: m.JoinedAt}
		if m.Email != nil {
			row.Email = *m.Email
		}
		if row.Since == nil {
			row.Since = m.InvitedAt
		}
		rows = append(rows, row)
	}
	return rows
}

func (r memberRows) Table() *output.Table {
	t := &output.Table{
		Headers: []string{"NAME", "EMAIL", "ROLE", "STATUS", "SINCE"},
		Empty:   "No members.",
	}
	for _, m := range r {
		t.AddRow(m.Name, m.Email, string(m.Role), string(m.Status), formatDate(m.Since))
	}
	return t
}

type inviteRows []model.Invite

func (r inviteRows) Table() *output.Table {
	t := &output.Table{
		Headers: []string{"EMAIL", "ROLE", "STATUS", "EXPIRES", "TOKEN"},
		Empty:   "No invites.",
	}
	for _, i := range r {
		t.AddRow(i.Email, string(i.Role), string(i.Status), formatDate(&i.ExpiresAt), i.Token)
	}
	return t
}

type siteRows []model.WorkSite

func (r siteRows) Table() *output.Table {
	t := &output.Table{
		Headers: []string{"NAME", "NICKNAME", "ACTIVE", "ID"},
		Empty:   "No work sites.",
	}
	for _, s := range r {
		nick := ""
		if s.Nickname != nil {
			nick = *s.Nickname
		}
		t.AddRow(s.Name, nick, strconv.FormatBool(s.Active), s.ID.String())
	}
	return t
}

type profileView model.Profile

func (p profileView) Table() *output.Table {
	t := &output.Table{}
	t.AddRow("EMAIL", p.Email)
	t.AddRow("FIRST NAME", p.FirstName)
	t.AddRow("LAST NAME", p.LastName)
	t.AddRow("STREET", p.StreetAddress)
	t.AddRow("CITY", p.City)
	t.AddRow("STATE", p.State)
	t.AddRow("COUNTRY", p.Country)
	t.AddRow("ZIP", p.Zipcode)
	return t
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
