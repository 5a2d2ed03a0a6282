package domain

import (
	"fmt"
	"strings"
)

// Command is a leaf of the verb tree: a named action accepting flags. It owns
// the tokenizer that turns a trailing argument string into parameter groups.
type Command struct {
	name       string
	parameters []Parameter
	byShort    map[rune]int
	byLong     map[string]int
}

// NewCommand builds a command from its flag declarations. Declaration order
// is preserved; the short- and long-name indices are built once here and
// never change. Duplicate short or long names are rejected.
func NewCommand(name string, parameters ...Parameter) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command: %w", ErrEmptyName)
	}

	c := &Command{
		name:       name,
		parameters: append([]Parameter(nil), parameters...),
		byShort:    make(map[rune]int, len(parameters)),
		byLong:     make(map[string]int, len(parameters)),
	}

	for i, p := range c.parameters {
		if p.shortName == 0 || p.longName == "" {
			return nil, fmt.Errorf("command %q: flag %d: %w", name, i, ErrEmptyName)
		}
		if _, ok := c.byShort[p.shortName]; ok {
			return nil, fmt.Errorf("command %q: -%c: %w", name, p.shortName, ErrDuplicateFlag)
		}
		if _, ok := c.byLong[p.longName]; ok {
			return nil, fmt.Errorf("command %q: --%s: %w", name, p.longName, ErrDuplicateFlag)
		}
		c.byShort[p.shortName] = i
		c.byLong[p.longName] = i
	}

	return c, nil
}

// Name returns the command's name, unique within its parent verb.
func (c *Command) Name() string {
	return c.name
}

// Parameters returns a copy of the flag declarations in declaration order.
func (c *Command) Parameters() []Parameter {
	return append([]Parameter(nil), c.parameters...)
}

// Parse tokenizes a trailing argument string into parameter groups.
//
// Tokens are split on whitespace runs (no quoting). A cursor tracks the most
// recently opened flag; bare tokens accumulate on it. Unknown flags and bare
// tokens with no open cursor are dropped silently rather than reported: the
// grammar has no positional arguments and tolerates flags it does not know.
// The only malformed-input case is a multi-rune token after a single dash,
// which aborts tokenization with BadParameter. Everything else resolves to
// Run, including empty input (Run with no groups) and repeated flags (one
// group per occurrence, in input order).
func (c *Command) Parse(argumentText string) Action {
	var (
		values []ParameterValue
		open   *ParameterValue
	)

	for _, token := range strings.Fields(argumentText) {
		switch {
		case strings.HasPrefix(token, "--"):
			idx, ok := c.byLong[token[2:]]
			if !ok {
				continue
			}
			if open != nil {
				values = append(values, *open)
			}
			open = &ParameterValue{Parameter: c.parameterAt(idx)}

		case strings.HasPrefix(token, "-"):
			stripped := []rune(token[1:])
			if len(stripped) > 1 {
				// Short flags are exactly one rune; this is malformed input,
				// not a combined flag cluster.
				return NewBadParameter(token[1:], c)
			}
			if len(stripped) == 0 {
				continue
			}
			idx, ok := c.byShort[stripped[0]]
			if !ok {
				continue
			}
			if open != nil {
				values = append(values, *open)
			}
			open = &ParameterValue{Parameter: c.parameterAt(idx)}

		default:
			if open == nil {
				continue
			}
			open.Values = append(open.Values, token)
		}
	}

	// The loop never flushes the final group until input ends.
	if open != nil {
		values = append(values, *open)
	}

	return NewRun(c, values)
}

// parameterAt resolves an index map entry to its declaration. An entry
// pointing outside the parameter list is a construction bug, not an input
// error, and must not surface as one.
func (c *Command) parameterAt(i int) *Parameter {
	if i < 0 || i >= len(c.parameters) {
		panic(fmt.Sprintf("command %q: parameter index %d out of range", c.name, i))
	}
	return &c.parameters[i]
}
