package http

import (
	"github.com/gin-gonic/gin"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/handlers"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/middleware"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/session"
)

func RegisterRoutes(
	r *gin.Engine,
	sessions *session.Manager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
) {
	r.Use(middleware.LanguageMiddleware(), sessions.Middleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	r.GET("/", authHandler.Home)

	anonymous := r.Group("/", middleware.RequireAnonymous())
	{
		anonymous.GET("/register", authHandler.ShowRegister)
		anonymous.POST("/register", authHandler.Register)
		anonymous.GET("/login", authHandler.ShowLogin)
		anonymous.POST("/login", authHandler.Login)
	}

	r.POST("/logout", authHandler.Logout)

	tasks := r.Group("/tasks", middleware.RequireAuthenticated(sessions))
	{
		tasks.GET("", taskHandler.List)
		tasks.GET("/new", taskHandler.ShowNew)
		tasks.POST("", taskHandler.Create)
		tasks.GET("/export", taskHandler.Export)
		tasks.POST("/:id/status", taskHandler.UpdateStatus)
		tasks.POST("/:id/delete", taskHandler.Delete)
	}

	r.NoRoute(handlers.NotFound())
}
