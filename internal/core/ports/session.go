package ports

import (
	"context"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
)

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	// Find returns domain.ErrSessionNotFound for unknown or expired tokens.
	Find(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
	PushFlash(ctx context.Context, token string, flash domain.Flash) error
	// PopFlashes drains and returns the pending flashes in one step.
	PopFlashes(ctx context.Context, token string) ([]domain.Flash, error)
}
