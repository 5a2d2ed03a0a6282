package ports

import "github.com/aretw0/espalier/pkg/domain"

// TreeSource produces the top-level verbs of a dispatch tree. This decouples
// tree assembly (declaration files, code, tests) from the Parser.
type TreeSource interface {
	Verbs() ([]*domain.Verb, error)
}
