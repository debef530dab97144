package contract

import (
	"context"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	AddContact(ctx context.Context, contact *entity.Contact) error
}
