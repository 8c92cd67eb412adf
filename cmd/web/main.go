package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/db"
	httpadapter "github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/handlers"
	httpmiddleware "github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/middleware"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/session"
	appservice "github.com/NelsonHennessiAyodeji/altschool-todo/internal/app/service"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/config"
	"github.com/NelsonHennessiAyodeji/altschool-todo/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	ctx := context.Background()

	// Fail-fast boot: no listener without a reachable store.
	client, err := dbadapter.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn("failed to close mongodb connection", zap.Error(err))
		}
	}()

	database := client.Database(cfg.MongoDatabase)
	if err := dbadapter.EnsureIndexes(ctx, database); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	sessions := session.NewManager(dbadapter.NewSessionStore(database))
	authService := appservice.NewAuthService(dbadapter.NewUserRepository(database), appservice.NewPasswordHasher())
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(database))

	healthHandler := handlers.NewHealthHandler(client)
	authHandler := handlers.NewAuthHandler(authService, sessions)
	taskHandler := handlers.NewTaskHandler(taskService, sessions)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}
	r.LoadHTMLGlob("web/templates/*.html")

	httpadapter.RegisterRoutes(r, sessions, healthHandler, authHandler, taskHandler)

	logger.Info("starting server", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
