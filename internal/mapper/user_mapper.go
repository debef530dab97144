package mapper

import (
	"brightside-be/internal/entity"
	"brightside-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	contacts := make([]entity.Contact, len(u.Contacts))
	for i, c := range u.Contacts {
		contacts[i] = entity.Contact{
			Id:           c.Id,
			UserId:       c.UserId,
			Name:         c.Name,
			Email:        c.Email,
			Relationship: c.Relationship,
		}
	}
	return &entity.User{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Contacts:     contacts,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	contacts := make([]model.Contact, len(u.Contacts))
	for i, c := range u.Contacts {
		contacts[i] = model.Contact{
			Id:           c.Id,
			UserId:       c.UserId,
			Name:         c.Name,
			Email:        c.Email,
			Relationship: c.Relationship,
		}
	}
	return &model.User{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Contacts:     contacts,
		CreatedAt:    u.CreatedAt,
	}
}
