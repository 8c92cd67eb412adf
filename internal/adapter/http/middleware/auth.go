package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/session"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/pkg/messages"
)

// RequireAuthenticated passes the request through only when the session
// carries a user id. Anyone else is redirected to the login page with a
// one-shot message; the downstream handler never runs.
func RequireAuthenticated(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := session.Current(c); ok && sess.Authenticated() {
			c.Next()
			return
		}

		sessions.Flash(c, domain.FlashError, messages.Get(messages.MsgLoginRequired, GetLang(c), nil))
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// RequireAnonymous short-circuits logged-in users back to their task list.
func RequireAnonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := session.Current(c); ok && sess.Authenticated() {
			c.Redirect(http.StatusFound, "/tasks")
			c.Abort()
			return
		}
		c.Next()
	}
}
