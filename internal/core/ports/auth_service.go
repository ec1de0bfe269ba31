package ports

import (
	"context"

	"github.com/urcontent/dashboard-service/internal/core/domain"
)

// RegisterInput carries the data submitted when an account is created.
// Role is optional and becomes the account's session metadata role.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
