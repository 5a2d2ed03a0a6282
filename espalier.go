package espalier

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/aretw0/espalier/pkg/domain"
)

// Version is the library version, surfaced by the espalier binary.
var Version = "0.3.0"

// Parser is the dispatch entry point: the map of top-level verbs. It performs
// the first path-segment split and delegates the remainder to the matched
// verb. A Parser is immutable after New and safe for concurrent use.
type Parser struct {
	verbs  map[string]*domain.Verb
	logger *slog.Logger
}

// Option defines a functional option for configuring the Parser.
type Option func(*Parser)

// WithLogger sets a structured logger. Parsing logs at debug level only and
// never changes results.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New builds a Parser from the top-level verbs. Duplicate names are rejected.
func New(verbs []*domain.Verb, opts ...Option) (*Parser, error) {
	p := &Parser{
		verbs: make(map[string]*domain.Verb, len(verbs)),
	}

	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, v := range verbs {
		if _, ok := p.verbs[v.Name()]; ok {
			return nil, fmt.Errorf("parser: verb %q: %w", v.Name(), domain.ErrDuplicateName)
		}
		p.verbs[v.Name()] = v
	}

	return p, nil
}

// Parse resolves one input line to an Action. The first whitespace-delimited
// token selects a top-level verb, which receives the remainder verbatim; an
// unregistered first token yields Unknown. Pure function of the line and the
// immutable tree.
func (p *Parser) Parse(line string) domain.Action {
	head, rest := domain.Split(line)

	verb, ok := p.verbs[head]
	if !ok {
		p.logger.Debug("unknown verb", "token", head)
		return domain.NewUnknown(head)
	}

	act := verb.Parse(rest)
	p.logger.Debug("line resolved", "verb", head, "kind", act.Kind, "token", act.Token)
	return act
}

// Verb returns the top-level verb with the given name, if any.
func (p *Parser) Verb(name string) (*domain.Verb, bool) {
	v, ok := p.verbs[name]
	return v, ok
}

// VerbNames returns the registered top-level verb names in sorted order.
func (p *Parser) VerbNames() []string {
	names := make([]string, 0, len(p.verbs))
	for name := range p.verbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupVerb walks a space-separated path ("table remote") to the verb it
// names. An empty path fails the lookup.
func (p *Parser) LookupVerb(path string) (*domain.Verb, bool) {
	head, rest := domain.Split(path)
	v, ok := p.verbs[head]
	if !ok {
		return nil, false
	}
	for rest != "" {
		head, rest = domain.Split(rest)
		if v, ok = v.Verb(head); !ok {
			return nil, false
		}
	}
	return v, true
}

// LookupCommand walks a space-separated path ("table create") to the command
// it names. The last segment must name a command of the preceding verb.
func (p *Parser) LookupCommand(path string) (*domain.Command, bool) {
	head, rest := domain.Split(path)
	v, ok := p.verbs[head]
	if !ok || rest == "" {
		return nil, false
	}
	for {
		head, rest = domain.Split(rest)
		if rest == "" {
			return v.Command(head)
		}
		if v, ok = v.Verb(head); !ok {
			return nil, false
		}
	}
}
