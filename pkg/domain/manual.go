package domain

// Manual is the static help text attached to a Verb: a one-line summary plus
// ordered detail lines. It carries no behavior; rendering is a host concern.
type Manual struct {
	short   string
	details []string
}

// NewManual creates a Manual from a summary and its detail lines.
func NewManual(short string, details ...string) Manual {
	return Manual{
		short:   short,
		details: append([]string(nil), details...),
	}
}

// Short returns the one-line summary.
func (m Manual) Short() string {
	return m.short
}

// Details returns a copy of the detail lines, in declaration order.
func (m Manual) Details() []string {
	return append([]string(nil), m.details...)
}
