package domain

import "errors"

// ErrEmptyName is returned when a verb, command or flag is declared without a name.
var ErrEmptyName = errors.New("empty name")

// ErrDuplicateName is returned when two children of one tree level share a name.
// A verb and a command at the same level count as a collision.
var ErrDuplicateName = errors.New("duplicate name")

// ErrDuplicateFlag is returned when two parameters of one command share a
// short or long flag name.
var ErrDuplicateFlag = errors.New("duplicate flag")
