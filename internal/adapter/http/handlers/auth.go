package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/dto"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/middleware"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/session"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/validation"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"
	"github.com/NelsonHennessiAyodeji/altschool-todo/pkg/messages"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Home routes the bare domain to wherever the visitor belongs.
func (h *AuthHandler) Home(c *gin.Context) {
	if sess, ok := session.Current(c); ok && sess.Authenticated() {
		c.Redirect(http.StatusFound, "/tasks")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title":   "Register",
		"Flashes": h.sessions.PopFlashes(c),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var form dto.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirectWithFlash(c, "/register", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
		return
	}

	input, verr := validation.ValidateRegistration(form)
	if verr != nil {
		h.redirectWithFlash(c, "/register", domain.FlashError, verr.Message)
		return
	}

	if err := h.authService.Register(c.Request.Context(), input); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			h.redirectWithFlash(c, "/register", domain.FlashError, messages.Get(messages.MsgDuplicateUser, lang, nil))
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		h.redirectWithFlash(c, "/register", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
		return
	}

	h.redirectWithFlash(c, "/login", domain.FlashSuccess, messages.Get(messages.MsgRegistrationSuccess, lang, nil))
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":   "Login",
		"Flashes": h.sessions.PopFlashes(c),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirectWithFlash(c, "/login", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
		return
	}

	email, verr := validation.ValidateLogin(form)
	if verr != nil {
		h.redirectWithFlash(c, "/login", domain.FlashError, verr.Message)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.redirectWithFlash(c, "/login", domain.FlashError, messages.Get(messages.MsgInvalidCredentials, lang, nil))
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		h.redirectWithFlash(c, "/login", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
		return
	}

	if err := h.sessions.Establish(c, user); err != nil {
		zap.L().Error("failed to establish session", zap.Error(err))
		h.redirectWithFlash(c, "/login", domain.FlashError, messages.Get(messages.MsgGenericError, lang, nil))
		return
	}

	h.redirectWithFlash(c, "/tasks", domain.FlashSuccess,
		messages.Get(messages.MsgWelcomeBack, lang, map[string]any{"Username": user.Username}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Destroy(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

// redirectWithFlash is the explicit redirect-with-message step: it records
// the one-shot message and issues the redirect in one place.
func (h *AuthHandler) redirectWithFlash(c *gin.Context, location string, kind domain.FlashKind, message string) {
	h.sessions.Flash(c, kind, message)
	c.Redirect(http.StatusSeeOther, location)
}
