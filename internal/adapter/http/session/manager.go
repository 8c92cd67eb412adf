// Package session bridges the opaque session cookie and the server-side
// session store. All session state lives in the store; the cookie only
// carries the token.
package session

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"
)

const (
	CookieName = "todo_session"

	contextKey = "session"
)

type Manager struct {
	store ports.SessionStore
}

func NewManager(store ports.SessionStore) *Manager {
	return &Manager{store: store}
}

// Middleware resolves the session cookie into a session snapshot on the
// request context. A stale or unknown token is simply ignored.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err == nil && token != "" {
			sess, err := m.store.Find(c.Request.Context(), token)
			switch {
			case err == nil:
				c.Set(contextKey, sess)
			case !errors.Is(err, domain.ErrSessionNotFound):
				zap.L().Warn("failed to load session", zap.Error(err))
			}
		}
		c.Next()
	}
}

// Current returns the session snapshot loaded by Middleware, if any.
func Current(c *gin.Context) (domain.Session, bool) {
	if value, exists := c.Get(contextKey); exists {
		if sess, ok := value.(domain.Session); ok {
			return sess, true
		}
	}
	return domain.Session{}, false
}

// Establish logs a user in. Any session carried into the request is dropped
// so the token rotates on login.
func (m *Manager) Establish(c *gin.Context, user domain.User) error {
	ctx := c.Request.Context()

	if old, ok := Current(c); ok {
		if err := m.store.Delete(ctx, old.Token); err != nil {
			zap.L().Warn("failed to drop pre-login session", zap.Error(err))
		}
	}

	sess := newSession()
	sess.UserID = user.ID
	sess.Username = user.Username

	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}

	m.setCookie(c, sess.Token)
	c.Set(contextKey, sess)
	return nil
}

// Destroy ends the session unconditionally. A store failure is logged and
// does not block the logout redirect; the cookie is cleared regardless.
func (m *Manager) Destroy(c *gin.Context) {
	if sess, ok := Current(c); ok {
		if err := m.store.Delete(c.Request.Context(), sess.Token); err != nil {
			zap.L().Error("failed to destroy session", zap.Error(err))
		}
	}

	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.Set(contextKey, domain.Session{})
}

// Flash records a one-shot message at the response-construction site. When
// no session exists yet, an anonymous one is created so the message
// survives the redirect.
func (m *Manager) Flash(c *gin.Context, kind domain.FlashKind, message string) {
	ctx := c.Request.Context()
	flash := domain.Flash{Kind: kind, Message: message}

	if sess, ok := Current(c); ok {
		if err := m.store.PushFlash(ctx, sess.Token, flash); err != nil {
			zap.L().Error("failed to store flash", zap.Error(err))
		}
		return
	}

	sess := newSession()
	sess.Flashes = []domain.Flash{flash}
	if err := m.store.Save(ctx, sess); err != nil {
		zap.L().Error("failed to create flash session", zap.Error(err))
		return
	}

	m.setCookie(c, sess.Token)
	c.Set(contextKey, sess)
}

// PopFlashes drains the pending flashes for rendering. Each flash is
// returned exactly once.
func (m *Manager) PopFlashes(c *gin.Context) []domain.Flash {
	sess, ok := Current(c)
	if !ok {
		return nil
	}

	flashes, err := m.store.PopFlashes(c.Request.Context(), sess.Token)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			zap.L().Error("failed to pop flashes", zap.Error(err))
		}
		return nil
	}

	return flashes
}

func (m *Manager) setCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(domain.SessionLifetime/time.Second), "/", "", false, true)
}

func newSession() domain.Session {
	now := time.Now().UTC()
	return domain.Session{
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(domain.SessionLifetime),
	}
}
