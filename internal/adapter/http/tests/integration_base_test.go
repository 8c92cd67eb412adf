//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"strings"
	"time"

	dbadapter "github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/db"
	"github.com/NelsonHennessiAyodeji/altschool-todo/pkg/translator"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const translationFolder = "../../../../pkg/translator/translation"

type IntegrationSuiteBase struct {
	suite.Suite

	client *mongo.Client
	DB     *mongo.Database
	dbName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	uri := envOrDefault("MONGODB_URI", "mongodb://127.0.0.1:27017")
	s.dbName = envOrDefault("MONGODB_TEST_DATABASE", "todoapp_test")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		s.T().Skipf("skipping integration suite: mongodb not reachable: %v", err)
	}

	s.client = client
	s.DB = client.Database(s.dbName)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	ctx := context.Background()

	// Drop the test database to keep local environments clean.
	if s.DB != nil && strings.HasSuffix(s.dbName, "_test") {
		s.Require().NoError(s.DB.Drop(ctx))
	}

	if s.client != nil {
		s.Require().NoError(s.client.Disconnect(ctx))
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	ctx := context.Background()

	for _, name := range []string{"users", "tasks", "sessions"} {
		s.Require().NoError(s.DB.Collection(name).Drop(ctx))
	}

	s.Require().NoError(dbadapter.EnsureIndexes(ctx, s.DB))
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
