package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registrationForm() url.Values {
	return url.Values{
		"username":        {"u1user"},
		"email":           {"u1@x.com"},
		"password":        {"secret1"},
		"confirmPassword": {"secret1"},
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	store := newMemSessionStore()
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, domain.RegistrationInput{
		Username: "u1user",
		Email:    "u1@x.com",
		Password: "secret1",
	}).Return(nil).Once()

	router := newRouter(authMock, new(taskServiceMock), store)

	rec := doPostForm(router, "/register", registrationForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	// The success flash survives the redirect and renders exactly once.
	cookie := sessionCookie(t, rec)
	loginPage := doGet(router, "/login", cookie)
	require.Equal(t, http.StatusOK, loginPage.Code)
	require.Contains(t, loginPage.Body.String(), "Registration successful! Please login.")

	secondLoad := doGet(router, "/login", cookie)
	require.NotContains(t, secondLoad.Body.String(), "Registration successful! Please login.")

	authMock.AssertExpectations(t)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	store := newMemSessionStore()
	authMock := new(authServiceMock)
	router := newRouter(authMock, new(taskServiceMock), store)

	form := registrationForm()
	form.Set("password", "short")
	form.Set("confirmPassword", "short")

	rec := doPostForm(router, "/register", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/register", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	requireFlash(t, store, cookie.Value, domain.FlashError, "password must be at least 6 characters")
	authMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicateUser(t *testing.T) {
	store := newMemSessionStore()
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUser).Once()

	router := newRouter(authMock, new(taskServiceMock), store)

	rec := doPostForm(router, "/register", registrationForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/register", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	requireFlash(t, store, cookie.Value, domain.FlashError, "User with this email or username already exists")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	store := newMemSessionStore()
	authMock := new(authServiceMock)
	authMock.On("Login", mock.Anything, "u1@x.com", "secret1").
		Return(domain.User{ID: "id1", Username: "u1", Email: "u1@x.com"}, nil).Once()
	taskMock := new(taskServiceMock)
	taskMock.On("List", mock.Anything, "id1", "").Return([]domain.Task{}, nil).Once()

	router := newRouter(authMock, taskMock, store)

	rec := doPostForm(router, "/login", url.Values{"email": {"u1@x.com"}, "password": {"secret1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/tasks", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	sess, ok := store.session(cookie.Value)
	require.True(t, ok)
	require.Equal(t, "id1", sess.UserID)
	require.Equal(t, "u1", sess.Username)

	tasksPage := doGet(router, "/tasks", cookie)
	require.Equal(t, http.StatusOK, tasksPage.Code)
	require.Contains(t, tasksPage.Body.String(), "Welcome back, u1!")

	authMock.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	store := newMemSessionStore()
	authMock := new(authServiceMock)
	authMock.On("Login", mock.Anything, "u1@x.com", "wrong").
		Return(domain.User{}, domain.ErrInvalidCredentials).Once()

	router := newRouter(authMock, new(taskServiceMock), store)

	rec := doPostForm(router, "/login", url.Values{"email": {"u1@x.com"}, "password": {"wrong"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	requireFlash(t, store, cookie.Value, domain.FlashError, "Invalid email or password")
}

func TestAuthHandler_Login_RotatesAnonymousSession(t *testing.T) {
	store := newMemSessionStore()
	authMock := new(authServiceMock)
	authMock.On("Register", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUser).Once()
	authMock.On("Login", mock.Anything, "u1@x.com", "secret1").
		Return(domain.User{ID: "id1", Username: "u1"}, nil).Once()

	router := newRouter(authMock, new(taskServiceMock), store)

	// A failed registration leaves an anonymous flash session behind.
	anonCookie := sessionCookie(t, doPostForm(router, "/register", registrationForm()))

	rec := doPostForm(router, "/login", url.Values{"email": {"u1@x.com"}, "password": {"secret1"}}, anonCookie)
	authCookie := sessionCookie(t, rec)

	require.NotEqual(t, anonCookie.Value, authCookie.Value)
	_, anonStillThere := store.session(anonCookie.Value)
	require.False(t, anonStillThere)
}

func TestAuthHandler_Logout_DestroysSession(t *testing.T) {
	store := newMemSessionStore()
	router := newRouter(new(authServiceMock), new(taskServiceMock), store)
	cookie := seedAuthenticatedSession(t, store, "id1", "u1")

	rec := doPostForm(router, "/logout", url.Values{}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	_, stillThere := store.session(cookie.Value)
	require.False(t, stillThere)
}

func TestGate_RequireAuthenticated_RedirectsToLogin(t *testing.T) {
	store := newMemSessionStore()
	taskMock := new(taskServiceMock)
	router := newRouter(new(authServiceMock), taskMock, store)

	rec := doGet(router, "/tasks")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	requireFlash(t, store, cookie.Value, domain.FlashError, "Please login to access this page")
	// The downstream handler never ran.
	taskMock.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestGate_RequireAnonymous_RedirectsToTasks(t *testing.T) {
	store := newMemSessionStore()
	router := newRouter(new(authServiceMock), new(taskServiceMock), store)
	cookie := seedAuthenticatedSession(t, store, "id1", "u1")

	for _, path := range []string{"/login", "/register"} {
		rec := doGet(router, path, cookie)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/tasks", rec.Header().Get("Location"))
	}
}

func TestHome_RoutesByAuthentication(t *testing.T) {
	store := newMemSessionStore()
	router := newRouter(new(authServiceMock), new(taskServiceMock), store)

	rec := doGet(router, "/")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	cookie := seedAuthenticatedSession(t, store, "id1", "u1")
	rec = doGet(router, "/", cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/tasks", rec.Header().Get("Location"))
}
