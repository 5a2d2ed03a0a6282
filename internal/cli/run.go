package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/compiler"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/internal/validator"
	"github.com/aretw0/espalier/pkg/registry"
)

// RunOptions contains all the configuration for the 'run' command.
type RunOptions struct {
	TreePath string
	Debug    bool
	NoBanner bool
}

// Execute handles the 'run' command logic: load and lint the tree file,
// build the parser and start the interactive session.
func Execute(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	data, err := os.ReadFile(opts.TreePath)
	if err != nil {
		return fmt.Errorf("failed to read tree file: %w", err)
	}

	cp := compiler.NewParser()
	spec, err := cp.Parse(data)
	if err != nil {
		return err
	}

	// Lint before compiling so the user sees every declaration problem at
	// once; the constructors behind Compile stop at the first.
	if err := validator.ValidateTree(spec); err != nil {
		return fmt.Errorf("%s: %w", opts.TreePath, err)
	}

	verbs, err := cp.Compile(spec)
	if err != nil {
		return err
	}

	parser, err := espalier.New(verbs, espalier.WithLogger(logger))
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive && !opts.NoBanner {
		tui.PrintBanner(espalier.Version)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := NewSession(parser, registry.NewRegistry(), os.Stdin, os.Stdout,
		WithPrompt(interactive), WithSessionLogger(logger))
	return sess.Run(ctx)
}
