package domain

import (
	"fmt"
	"sort"
)

// Verb is an interior node of the tree: a named category holding child verbs
// and commands plus its Manual. Children are owned exclusively by their
// parent map; traversal is always root-to-leaf, so no back-references exist.
type Verb struct {
	name     string
	verbs    map[string]*Verb
	commands map[string]*Command
	manual   Manual
}

// NewVerb builds an interior node from its children. Names must be unique
// across both child maps: a verb and a command sharing a name at one level is
// rejected here rather than silently shadowed at lookup time.
func NewVerb(name string, manual Manual, verbs []*Verb, commands []*Command) (*Verb, error) {
	if name == "" {
		return nil, fmt.Errorf("verb: %w", ErrEmptyName)
	}

	v := &Verb{
		name:     name,
		verbs:    make(map[string]*Verb, len(verbs)),
		commands: make(map[string]*Command, len(commands)),
		manual:   manual,
	}

	for _, child := range verbs {
		if _, ok := v.verbs[child.name]; ok {
			return nil, fmt.Errorf("verb %q: child %q: %w", name, child.name, ErrDuplicateName)
		}
		v.verbs[child.name] = child
	}
	for _, cmd := range commands {
		if _, ok := v.verbs[cmd.name]; ok {
			return nil, fmt.Errorf("verb %q: child %q: %w", name, cmd.name, ErrDuplicateName)
		}
		if _, ok := v.commands[cmd.name]; ok {
			return nil, fmt.Errorf("verb %q: child %q: %w", name, cmd.name, ErrDuplicateName)
		}
		v.commands[cmd.name] = cmd
	}

	return v, nil
}

// Name returns the verb's name, unique within its parent.
func (v *Verb) Name() string {
	return v.name
}

// Help returns the verb's Manual. This satisfies ports.Informational.
func (v *Verb) Help() Manual {
	return v.manual
}

// Verb returns the child verb with the given name, if any.
func (v *Verb) Verb(name string) (*Verb, bool) {
	child, ok := v.verbs[name]
	return child, ok
}

// Command returns the child command with the given name, if any.
func (v *Verb) Command(name string) (*Command, bool) {
	cmd, ok := v.commands[name]
	return cmd, ok
}

// VerbNames returns the child verb names in sorted order.
func (v *Verb) VerbNames() []string {
	names := make([]string, 0, len(v.verbs))
	for name := range v.verbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CommandNames returns the child command names in sorted order.
func (v *Verb) CommandNames() []string {
	names := make([]string, 0, len(v.commands))
	for name := range v.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse resolves the remainder of an input line against this verb's
// children. The next path segment is matched against child verbs first, then
// child commands; construction rejects same-named siblings, but the order is
// part of the documented contract for trees assembled by hand. A segment
// matching neither returns Incorrect carrying this verb, so the caller can
// render contextual help from its children.
func (v *Verb) Parse(remaining string) Action {
	head, rest := Split(remaining)

	if child, ok := v.verbs[head]; ok {
		return child.Parse(rest)
	}
	if cmd, ok := v.commands[head]; ok {
		return cmd.Parse(rest)
	}

	return NewIncorrect(head, v)
}
