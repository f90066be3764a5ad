package model

import (
	"time"

	"github.com/google/uuid"
)

// Supported device platforms.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// DeviceToken maps a (user, platform) pair to a push delivery token.
// Tokens are never deleted; the gateway reporting a token as invalid
// flips is_active to false.
type DeviceToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Platform  string    `json:"platform"`
	Token     string    `json:"token"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
