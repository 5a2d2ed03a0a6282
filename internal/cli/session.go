package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/registry"
)

// Session is the interactive host around a Parser: it reads lines, maps the
// shell built-ins (help, exit) onto the reserved Action variants the core
// never emits itself, and handles each resolved Action. It implements
// ports.ActionHandler.
type Session struct {
	parser   *espalier.Parser
	registry *registry.Registry
	render   func(string, domain.Manual) (string, error)
	in       io.Reader
	out      io.Writer
	errText  *color.Color
	prompt   bool
	logger   *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPrompt enables the interactive prompt (off for piped input).
func WithPrompt(on bool) SessionOption {
	return func(s *Session) {
		s.prompt = on
	}
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session reading lines from in and writing to out.
func NewSession(parser *espalier.Parser, reg *registry.Registry, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		parser:   parser,
		registry: reg,
		render:   tui.NewManualRenderer(),
		in:       in,
		out:      out,
		errText:  color.New(color.FgRed),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the session's command registry, so hosts can bind
// handlers before calling Run.
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// Run reads lines until EOF, an Exit action, or context cancellation.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)

	for {
		if ctx.Err() != nil {
			return nil
		}
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			if s.prompt {
				fmt.Fprintln(s.out)
			}
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		act := s.resolve(line)
		if err := s.Handle(ctx, act); err != nil {
			return err
		}
		if act.Kind == domain.ActionExit {
			return nil
		}
	}
}

// resolve maps the session built-ins onto the reserved variants and hands
// everything else to the parser.
func (s *Session) resolve(line string) domain.Action {
	head, rest := domain.Split(line)
	switch head {
	case "exit", "quit":
		return domain.NewExit()
	case "help", "?":
		if rest == "" {
			return domain.NewHelp(nil, nil)
		}
		if v, ok := s.parser.LookupVerb(rest); ok {
			return domain.NewHelp(v, nil)
		}
		target, _ := domain.Split(rest)
		return domain.NewUnknown(target)
	}
	return s.parser.Parse(line)
}

// Handle renders one resolved Action. It implements ports.ActionHandler and
// only returns an error when the session itself is broken; input problems
// are printed, not propagated.
func (s *Session) Handle(ctx context.Context, act domain.Action) error {
	switch act.Kind {
	case domain.ActionRun:
		s.handleRun(ctx, act)

	case domain.ActionHelp:
		s.printHelp(act.Verb)

	case domain.ActionUnknown:
		s.errText.Fprintf(s.out, "unknown verb %q\n", act.Token)
		fmt.Fprintf(s.out, "available: %s\n", strings.Join(s.parser.VerbNames(), ", "))

	case domain.ActionIncorrect:
		s.errText.Fprintf(s.out, "%q is not part of '%s'\n", act.Token, act.Verb.Name())
		s.printChildren(act.Verb)

	case domain.ActionBadParameter:
		s.errText.Fprintf(s.out, "bad parameter %q: short flags take exactly one character\n", act.Token)

	case domain.ActionExit:
		if s.prompt {
			fmt.Fprintln(s.out, "bye")
		}
	}
	return nil
}

func (s *Session) handleRun(ctx context.Context, act domain.Action) {
	if !s.registry.Bound(act.Command) {
		// No handler registered: echo the binding so the tree can be
		// exercised before any logic exists.
		fmt.Fprintf(s.out, "%s\n", act.Command.Name())
		for _, pv := range act.Values {
			fmt.Fprintf(s.out, "  --%s %s\n", pv.Parameter.LongName(), strings.Join(pv.Values, " "))
		}
		return
	}

	if err := s.registry.Dispatch(ctx, act.Command, act.Values); err != nil {
		s.logger.Debug("handler failed", "command", act.Command.Name(), "err", err)
		s.errText.Fprintf(s.out, "%s: %v\n", act.Command.Name(), err)
	}
}

func (s *Session) printHelp(v *domain.Verb) {
	if v == nil {
		fmt.Fprintf(s.out, "available verbs: %s\n", strings.Join(s.parser.VerbNames(), ", "))
		return
	}

	out, err := s.render(v.Name(), v.Help())
	if err != nil {
		// Renderer failure degrades to the raw manual text.
		out = tui.ManualMarkdown(v.Name(), v.Help())
	}
	fmt.Fprint(s.out, out)
	s.printChildren(v)
}

func (s *Session) printChildren(v *domain.Verb) {
	if names := v.VerbNames(); len(names) > 0 {
		fmt.Fprintf(s.out, "verbs: %s\n", strings.Join(names, ", "))
	}
	if names := v.CommandNames(); len(names) > 0 {
		fmt.Fprintf(s.out, "commands: %s\n", strings.Join(names, ", "))
	}
}
