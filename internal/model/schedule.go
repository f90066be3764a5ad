package model

import (
	"time"

	"github.com/google/uuid"
)

// Schedule statuses. Transitions are terminal: a schedule leaves "pending"
// exactly once, either to "sent" or to "cancelled".
const (
	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusCancelled = "cancelled"
)

// Schedule is one moment-window scheduling cycle for a user. At most one
// pending schedule exists per user; the store enforces this with a partial
// unique index on (user_id) WHERE status = 'pending'.
type Schedule struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	NextDueAt time.Time     `json:"next_due_at"`
	MinDelay  time.Duration `json:"min_delay"`
	MaxDelay  time.Duration `json:"max_delay"`
	Status    string        `json:"status"`
	SentAt    *time.Time    `json:"sent_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
