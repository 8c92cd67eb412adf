package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	httpadapter "github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/handlers"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/session"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegistrationInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context, ownerID, statusFilter string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, statusFilter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetStatus(ctx context.Context, ownerID, taskID string, status domain.TaskStatus) error {
	args := m.Called(ctx, ownerID, taskID, status)
	return args.Error(0)
}

func (m *taskServiceMock) SoftDelete(ctx context.Context, ownerID, taskID string) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

// memSessionStore is an in-memory stand-in for the Mongo session store.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

var _ ports.SessionStore = (*memSessionStore)(nil)

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *memSessionStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *memSessionStore) Find(_ context.Context, token string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *memSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *memSessionStore) PushFlash(_ context.Context, token string, flash domain.Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.Flashes = append(sess.Flashes, flash)
	s.sessions[token] = sess
	return nil
}

func (s *memSessionStore) PopFlashes(_ context.Context, token string) ([]domain.Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	flashes := sess.Flashes
	sess.Flashes = nil
	s.sessions[token] = sess
	return flashes, nil
}

func (s *memSessionStore) flashes(token string) []domain.Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[token].Flashes
}

func (s *memSessionStore) session(token string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

func newRouter(auth ports.AuthService, task ports.TaskService, store ports.SessionStore) *gin.Engine {
	router := gin.New()
	router.LoadHTMLGlob(templatesGlob)

	sessions := session.NewManager(store)
	healthHandler := handlers.NewHealthHandler(nil)
	authHandler := handlers.NewAuthHandler(auth, sessions)
	taskHandler := handlers.NewTaskHandler(task, sessions)
	httpadapter.RegisterRoutes(router, sessions, healthHandler, authHandler, taskHandler)

	return router
}

// seedAuthenticatedSession plants a logged-in session directly in the store
// and returns the cookie a client would hold.
func seedAuthenticatedSession(t *testing.T, store *memSessionStore, userID, username string) *http.Cookie {
	t.Helper()

	now := time.Now().UTC()
	token := uuid.NewString()
	require.NoError(t, store.Save(context.Background(), domain.Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.SessionLifetime),
	}))

	return &http.Cookie{Name: session.CookieName, Value: token}
}

func doGet(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doPostForm(router *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func requireFlash(t *testing.T, store *memSessionStore, token string, kind domain.FlashKind, message string) {
	t.Helper()

	for _, flash := range store.flashes(token) {
		if flash.Kind == kind && flash.Message == message {
			return
		}
	}
	t.Fatalf("flash %q/%q not found in session %s", kind, message, token)
}
