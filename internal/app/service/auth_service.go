package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         *PasswordHasher
}

func NewAuthService(userRepository ports.UserRepository, hasher *PasswordHasher) *AuthService {
	return &AuthService{userRepository: userRepository, hasher: hasher}
}

// Register creates a user with a hashed password. Input is expected to be
// validated already; only the duplicate check happens here.
func (s *AuthService) Register(ctx context.Context, input domain.RegistrationInput) error {
	exists, err := s.userRepository.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return domain.ErrDuplicateUser
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepository.Create(ctx, domain.CreateUserInput{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}); err != nil {
		// The unique indexes may still catch a race the lookup missed.
		if errors.Is(err, domain.ErrDuplicateUser) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies credentials. An unknown email and a wrong password yield
// the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return user, nil
}

var _ ports.AuthService = (*AuthService)(nil)
