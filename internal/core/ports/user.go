package ports

import (
	"context"

	"github.com/NelsonHennessiAyodeji/altschool-todo/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegistrationInput) error
	Login(ctx context.Context, email, password string) (domain.User, error)
}
