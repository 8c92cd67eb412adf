package domain

import "time"

// User is immutable after registration; only tasks reference it.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
}

// RegistrationInput carries the validated registration payload into the
// auth service, before any hashing happened.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
}
