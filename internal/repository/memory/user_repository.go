package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"brightside-be/internal/entity"
	"brightside-be/internal/repository/contract"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func NewUserRepository() contract.UserRepository {
	return &UserRepository{users: map[uuid.UUID]*entity.User{}}
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.Id] = &copied
	return nil
}

func (r *UserRepository) FindById(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) AddContact(_ context.Context, contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[contact.UserId]; ok {
		u.Contacts = append(u.Contacts, *contact)
	}
	return nil
}
