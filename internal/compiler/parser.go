// Package compiler turns tree declaration files (YAML) into immutable domain
// trees. Decoding is two-stage: YAML into a generic map, then a strict
// mapstructure decode into DTOs, so unknown keys fail loudly instead of
// being dropped.
package compiler

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/internal/dto"
	"github.com/aretw0/espalier/pkg/domain"
)

// Parser converts raw declaration bytes into a TreeSpec and compiles it.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a declaration document into its raw spec.
func (p *Parser) Parse(data []byte) (*dto.TreeSpec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tree file: %w", err)
	}

	var spec dto.TreeSpec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &spec,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid tree declaration: %w", err)
	}

	if len(spec.Verbs) == 0 {
		return nil, fmt.Errorf("tree declaration has no verbs")
	}

	return &spec, nil
}

// Compile builds the immutable domain tree from a spec.
func (p *Parser) Compile(spec *dto.TreeSpec) ([]*domain.Verb, error) {
	verbs := make([]*domain.Verb, 0, len(spec.Verbs))
	for i := range spec.Verbs {
		v, err := p.compileVerb(&spec.Verbs[i])
		if err != nil {
			return nil, err
		}
		verbs = append(verbs, v)
	}
	return verbs, nil
}

func (p *Parser) compileVerb(vs *dto.VerbSpec) (*domain.Verb, error) {
	children := make([]*domain.Verb, 0, len(vs.Verbs))
	for i := range vs.Verbs {
		child, err := p.compileVerb(&vs.Verbs[i])
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	commands := make([]*domain.Command, 0, len(vs.Commands))
	for _, cs := range vs.Commands {
		cmd, err := p.compileCommand(&cs)
		if err != nil {
			return nil, fmt.Errorf("verb %q: %w", vs.Name, err)
		}
		commands = append(commands, cmd)
	}

	return domain.NewVerb(vs.Name, domain.NewManual(vs.Summary, vs.Help...), children, commands)
}

func (p *Parser) compileCommand(cs *dto.CommandSpec) (*domain.Command, error) {
	params := make([]domain.Parameter, 0, len(cs.Parameters))
	for _, ps := range cs.Parameters {
		if utf8.RuneCountInString(ps.Short) != 1 {
			return nil, fmt.Errorf("command %q: short flag %q must be a single character", cs.Name, ps.Short)
		}
		short, _ := utf8.DecodeRuneInString(ps.Short)
		params = append(params, domain.NewParameter(short, ps.Long))
	}
	return domain.NewCommand(cs.Name, params...)
}

// FileSource loads and compiles a declaration file on demand. It implements
// ports.TreeSource.
type FileSource struct {
	path   string
	parser *Parser
}

// NewFileSource creates a TreeSource backed by a declaration file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, parser: NewParser()}
}

// Verbs reads, parses and compiles the declaration file.
func (s *FileSource) Verbs() ([]*domain.Verb, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}

	spec, err := s.parser.Parse(data)
	if err != nil {
		return nil, err
	}

	return s.parser.Compile(spec)
}
