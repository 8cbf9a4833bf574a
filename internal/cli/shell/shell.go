// Package shell provides the interactive mode in which a screen location is
// kept between commands.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/navigation"
)

// Router is the navigation surface the shell drives.
type Router interface {
	Location() model.ScreenPath
	Push(path model.ScreenPath)
	Back() bool
	History() []model.ScreenPath
}

// StatusSource reports the gate status.
type StatusSource interface {
	Status() navigation.Status
}

// Dispatcher runs a regular command line, e.g. ["orgs", "list"].
type Dispatcher func(ctx context.Context, args []string) error

// Options configures a Shell.
type Options struct {
	Router     Router
	Gate       StatusSource
	Init       func(ctx context.Context)
	Dispatch   Dispatcher
	PrintError func(w io.Writer, err error)

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Shell is a read-eval-print loop over the application's screens.
type Shell struct {
	opts Options
}

// New creates a Shell.
func New(opts Options) *Shell {
	if opts.PrintError == nil {
		opts.PrintError = func(w io.Writer, err error) { fmt.Fprintf(w, "error: %v\n", err) }
	}
	if opts.Err == nil {
		opts.Err = opts.Out
	}
	return &Shell{opts: opts}
}

// Run reads commands until exit, EOF or ctx cancellation.
func (s *Shell) Run(ctx context.Context) error {
	s.waitForSession(ctx)

	reader := bufio.NewReader(s.opts.In)
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(s.opts.Out, s.prompt())

		line, err := reader.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return err
		}

		if line = strings.TrimSpace(line); line != "" {
			quit, execErr := s.execute(ctx, line)
			if execErr != nil {
				s.opts.PrintError(s.opts.Err, execErr)
			}
			if quit {
				return nil
			}
		}

		if eof {
			fmt.Fprintln(s.opts.Out)
			return nil
		}
	}
}

func (s *Shell) waitForSession(ctx context.Context) {
	if s.opts.Gate.Status() != navigation.Undetermined {
		return
	}
	fmt.Fprintln(s.opts.Out, "Checking session...")
	if s.opts.Init != nil {
		s.opts.Init(ctx)
	}
}

func (s *Shell) prompt() string {
	return fmt.Sprintf("scheduleapp [%s]> ", ScreenName(s.opts.Router.Location()))
}

func (s *Shell) execute(ctx context.Context, line string) (quit bool, err error) {
	args, err := Split(line)
	if err != nil {
		return false, err
	}

	switch args[0] {
	case "exit", "quit":
		return true, nil
	case "help", "?":
		s.help()
	case "screens":
		for _, name := range navigation.Names() {
			fmt.Fprintln(s.opts.Out, name)
		}
	case "where":
		fmt.Fprintln(s.opts.Out, s.opts.Router.Location())
	case "history":
		for i, p := range s.opts.Router.History() {
			fmt.Fprintf(s.opts.Out, "%d  %s\n", i, p)
		}
	case "open":
		if len(args) < 2 {
			return false, errors.New("usage: open <screen>")
		}
		return false, s.open(args[1])
	case "back":
		if !s.opts.Router.Back() {
			fmt.Fprintln(s.opts.Out, "Already at the first screen.")
		}
	default:
		s.waitForSession(ctx)
		return false, s.opts.Dispatch(ctx, args)
	}
	return false, nil
}

func (s *Shell) open(name string) error {
	path, ok := navigation.Resolve(name)
	if !ok {
		return fmt.Errorf("unknown screen %q, run 'screens' to list them", name)
	}

	s.opts.Router.Push(path)
	if loc := s.opts.Router.Location(); loc != path {
		fmt.Fprintf(s.opts.Out, "Redirected to %s.\n", ScreenName(loc))
	}
	return nil
}

func (s *Shell) help() {
	fmt.Fprint(s.opts.Out, `Shell commands:
  open <screen>   go to a screen (see 'screens')
  back            return to the previous screen
  where           print the current screen path
  history         print the screen stack
  exit            leave the shell
Any other input runs a regular command, e.g. 'orgs list' or 'login -e me@example.com -p secret'.
`)
}

// ScreenName returns the short name of path, or the path itself when it has none.
func ScreenName(path model.ScreenPath) string {
	for _, name := range navigation.Names() {
		if p, _ := navigation.Resolve(name); p == path {
			return name
		}
	}
	return string(path)
}

// Split breaks line into arguments. Single and double quotes group words.
func Split(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if inToken {
		args = append(args, cur.String())
	}
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	return args, nil
}
