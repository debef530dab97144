package implementation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"brightside-be/internal/entity"
	"brightside-be/internal/mapper"
	"brightside-be/internal/model"
	"brightside-be/internal/repository/contract"
)

type EQSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewEQSessionRepository(db *gorm.DB) contract.EQSessionRepository {
	return &EQSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *EQSessionRepositoryImpl) Append(ctx context.Context, session *entity.EQSession) error {
	m := r.mapper.EQSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.EQSessionToEntity(m)
	return nil
}

func (r *EQSessionRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.EQSession, error) {
	var models []*model.EQSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *EQSessionRepositoryImpl) FindByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]*entity.EQSession, error) {
	var models []*model.EQSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userId, since).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *EQSessionRepositoryImpl) toEntities(models []*model.EQSession) []*entity.EQSession {
	entities := make([]*entity.EQSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EQSessionToEntity(m)
	}
	return entities
}
