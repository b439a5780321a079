package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is a game account known to the remote economy service. The
// identifier is immutable; the display name can change between joins.
// Player is a value type: updates construct a new value.
type Player struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// WithName returns a copy of the player carrying the given display name.
func (p Player) WithName(name string) Player {
	p.Name = name
	return p
}
