package domain

import "time"

// SessionLifetime is how long a session record stays valid after creation.
const SessionLifetime = 24 * time.Hour

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot user-facing message carried across a redirect.
type Flash struct {
	Kind    FlashKind
	Message string
}

// Session is server-side state correlated to a client via an opaque token.
// A session with an empty UserID is anonymous and only carries flashes.
type Session struct {
	Token     string
	UserID    string
	Username  string
	Flashes   []Flash
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Authenticated reports whether the session belongs to a logged-in user.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}
