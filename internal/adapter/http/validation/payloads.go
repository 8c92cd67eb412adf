// Package validation checks form payloads against the request-shape rules.
// Each validator is fail-fast: the first broken rule produces the single
// field error surfaced to the user.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/adapter/http/dto"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
)

const (
	usernameMinLen    = 3
	usernameMaxLen    = 30
	passwordMinLen    = 6
	titleMaxLen       = 100
	descriptionMaxLen = 500

	dueDateLayout = "2006-01-02"
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// FieldError identifies the first failing field with a human-readable
// message safe to show to the user.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateRegistration(form dto.RegistrationForm) (domain.RegistrationInput, *FieldError) {
	username := strings.TrimSpace(form.Username)
	switch {
	case username == "":
		return domain.RegistrationInput{}, &FieldError{"username", "username is required"}
	case !alphanumeric.MatchString(username):
		return domain.RegistrationInput{}, &FieldError{"username", "username must only contain alphanumeric characters"}
	case utf8.RuneCountInString(username) < usernameMinLen:
		return domain.RegistrationInput{}, &FieldError{"username", fmt.Sprintf("username must be at least %d characters", usernameMinLen)}
	case utf8.RuneCountInString(username) > usernameMaxLen:
		return domain.RegistrationInput{}, &FieldError{"username", fmt.Sprintf("username must be at most %d characters", usernameMaxLen)}
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		return domain.RegistrationInput{}, &FieldError{"email", "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.RegistrationInput{}, &FieldError{"email", "email must be a valid email address"}
	}

	if form.Password == "" {
		return domain.RegistrationInput{}, &FieldError{"password", "password is required"}
	}
	if utf8.RuneCountInString(form.Password) < passwordMinLen {
		return domain.RegistrationInput{}, &FieldError{"password", fmt.Sprintf("password must be at least %d characters", passwordMinLen)}
	}

	if form.ConfirmPassword == "" {
		return domain.RegistrationInput{}, &FieldError{"confirmPassword", "confirm password is required"}
	}
	if form.ConfirmPassword != form.Password {
		return domain.RegistrationInput{}, &FieldError{"confirmPassword", "confirm password must match password"}
	}

	return domain.RegistrationInput{
		Username: username,
		Email:    email,
		Password: form.Password,
	}, nil
}

// ValidateLogin returns the normalized email. The password only has to be
// present; its shape was checked at registration.
func ValidateLogin(form dto.LoginForm) (string, *FieldError) {
	email := strings.TrimSpace(form.Email)
	if email == "" {
		return "", &FieldError{"email", "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", &FieldError{"email", "email must be a valid email address"}
	}

	if form.Password == "" {
		return "", &FieldError{"password", "password is required"}
	}

	return email, nil
}

func ValidateTask(form dto.TaskForm) (domain.CreateTaskInput, *FieldError) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return domain.CreateTaskInput{}, &FieldError{"title", "title is required"}
	}
	if utf8.RuneCountInString(title) > titleMaxLen {
		return domain.CreateTaskInput{}, &FieldError{"title", fmt.Sprintf("title must be at most %d characters", titleMaxLen)}
	}

	if utf8.RuneCountInString(form.Description) > descriptionMaxLen {
		return domain.CreateTaskInput{}, &FieldError{"description", fmt.Sprintf("description must be at most %d characters", descriptionMaxLen)}
	}

	var dueDate *time.Time
	if form.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, form.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, &FieldError{"dueDate", "due date must be a valid date"}
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: form.Description,
		DueDate:     dueDate,
	}, nil
}
