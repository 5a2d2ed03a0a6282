package ports

import "github.com/aretw0/espalier/pkg/domain"

// Informational is the capability of carrying a help Manual. Today only
// domain.Verb implements it; it is kept as a narrow interface rather than a
// base type so future non-verb nodes can bear help too.
type Informational interface {
	Help() domain.Manual
}
