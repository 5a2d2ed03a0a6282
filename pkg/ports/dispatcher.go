package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// ActionHandler is the host side of the contract: it receives each resolved
// Action and is responsible for running commands, rendering manuals,
// reporting errors, and terminating on Exit. The core guarantees the Action
// carries whatever context that requires.
type ActionHandler interface {
	Handle(ctx context.Context, act domain.Action) error
}
