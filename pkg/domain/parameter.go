package domain

// Parameter declares one flag a Command accepts: a single-rune short form
// (-x) and a long form (--name). Declarations are immutable and owned by the
// Command they are registered on.
type Parameter struct {
	shortName rune
	longName  string
}

// NewParameter declares a flag. Uniqueness within a command is enforced by
// NewCommand, not here.
func NewParameter(short rune, long string) Parameter {
	return Parameter{shortName: short, longName: long}
}

// ShortName returns the single-rune flag form.
func (p Parameter) ShortName() rune {
	return p.shortName
}

// LongName returns the long flag form.
func (p Parameter) LongName() string {
	return p.longName
}

// ParameterValue binds one matched Parameter to the bare value tokens that
// followed its flag in the input, in input order. It references the
// Parameter declaration, which outlives every value derived from it.
type ParameterValue struct {
	Parameter *Parameter
	Values    []string
}
