package dsl

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

// Builder collects top-level verb declarations.
type Builder struct {
	verbs []*VerbBuilder
}

// New creates an empty tree builder.
func New() *Builder {
	return &Builder{}
}

// Verb declares a top-level verb and returns its builder.
func (b *Builder) Verb(name string) *VerbBuilder {
	vb := &VerbBuilder{name: name}
	b.verbs = append(b.verbs, vb)
	return vb
}

// Build compiles the declarations into immutable domain verbs.
func (b *Builder) Build() ([]*domain.Verb, error) {
	verbs := make([]*domain.Verb, 0, len(b.verbs))
	seen := make(map[string]bool, len(b.verbs))

	for _, vb := range b.verbs {
		if seen[vb.name] {
			return nil, fmt.Errorf("dsl: verb %q: %w", vb.name, domain.ErrDuplicateName)
		}
		seen[vb.name] = true

		v, err := vb.build()
		if err != nil {
			return nil, fmt.Errorf("dsl: %w", err)
		}
		verbs = append(verbs, v)
	}

	return verbs, nil
}

// VerbBuilder declares one verb: its manual and its children.
type VerbBuilder struct {
	name     string
	summary  string
	details  []string
	verbs    []*VerbBuilder
	commands []*CommandBuilder
}

// Summary sets the one-line manual summary.
func (vb *VerbBuilder) Summary(s string) *VerbBuilder {
	vb.summary = s
	return vb
}

// Detail appends manual detail lines.
func (vb *VerbBuilder) Detail(lines ...string) *VerbBuilder {
	vb.details = append(vb.details, lines...)
	return vb
}

// Verb declares a child verb and returns the child's builder.
func (vb *VerbBuilder) Verb(name string) *VerbBuilder {
	child := &VerbBuilder{name: name}
	vb.verbs = append(vb.verbs, child)
	return child
}

// Command declares a child command and returns its builder.
func (vb *VerbBuilder) Command(name string) *CommandBuilder {
	cb := &CommandBuilder{name: name}
	vb.commands = append(vb.commands, cb)
	return cb
}

func (vb *VerbBuilder) build() (*domain.Verb, error) {
	children := make([]*domain.Verb, 0, len(vb.verbs))
	for _, child := range vb.verbs {
		v, err := child.build()
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}

	commands := make([]*domain.Command, 0, len(vb.commands))
	for _, cb := range vb.commands {
		cmd, err := domain.NewCommand(cb.name, cb.parameters...)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}

	return domain.NewVerb(vb.name, domain.NewManual(vb.summary, vb.details...), children, commands)
}

// CommandBuilder declares one command and its flags.
type CommandBuilder struct {
	name       string
	parameters []domain.Parameter
}

// Flag declares a parameter by its short and long names.
func (cb *CommandBuilder) Flag(short rune, long string) *CommandBuilder {
	cb.parameters = append(cb.parameters, domain.NewParameter(short, long))
	return cb
}
