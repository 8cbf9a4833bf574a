// Package navigation keeps the current screen location and redirects it
// according to the authentication state.
package navigation

import (
	"strings"

	"github.com/dtroode/scheduleapp/internal/model"
)

// Route groups.
const (
	GroupAuth = "(auth)"
	GroupTabs = "(tabs)"
)

// Screens.
const (
	Login    model.ScreenPath = "/(auth)/login"
	Register model.ScreenPath = "/(auth)/register"

	Landing       model.ScreenPath = "/(tabs)"
	Organizations model.ScreenPath = "/(tabs)/organizations"
	Members       model.ScreenPath = "/(tabs)/members"
	Invites       model.ScreenPath = "/(tabs)/invites"
	Redeem        model.ScreenPath = "/(tabs)/redeem"
	WorkSites     model.ScreenPath = "/(tabs)/work-sites"
	Profile       model.ScreenPath = "/(tabs)/profile"
)

// SignIn is where unauthenticated users are sent.
const SignIn = Login

var screens = map[string]model.ScreenPath{
	"login":         Login,
	"register":      Register,
	"home":          Landing,
	"organizations": Organizations,
	"members":       Members,
	"invites":       Invites,
	"redeem":        Redeem,
	"work-sites":    WorkSites,
	"profile":       Profile,
}

// Group returns the first segment of path, e.g. "(auth)".
func Group(path model.ScreenPath) string {
	p := strings.TrimPrefix(string(path), "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// InAuthGroup reports whether path belongs to the sign-in screens.
func InAuthGroup(path model.ScreenPath) bool {
	return Group(path) == GroupAuth
}

// Resolve maps a short screen name or a full path to a known screen.
func Resolve(name string) (model.ScreenPath, bool) {
	if p, ok := screens[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, true
	}
	for _, p := range screens {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Canonical collapses aliases: the landing screen is the organizations tab.
func Canonical(path model.ScreenPath) model.ScreenPath {
	if path == Landing {
		return Organizations
	}
	return path
}

// Names returns the short names accepted by Resolve.
func Names() []string {
	return []string{"login", "register", "home", "organizations", "members", "invites", "redeem", "work-sites", "profile"}
}
