package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/session"
)

// NotFound renders the 404 page for unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := session.Current(c)
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"Title":    "Page Not Found",
			"Username": sess.Username,
		})
	}
}
