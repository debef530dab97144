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

type DebateSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewDebateSessionRepository(db *gorm.DB) contract.DebateSessionRepository {
	return &DebateSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *DebateSessionRepositoryImpl) Append(ctx context.Context, session *entity.DebateSession) error {
	m, err := r.mapper.DebateSessionToModel(session)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.DebateSessionToEntity(m)
	return nil
}

func (r *DebateSessionRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.DebateSession, error) {
	var models []*model.DebateSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *DebateSessionRepositoryImpl) FindByUserSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]*entity.DebateSession, error) {
	var models []*model.DebateSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userId, since).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(models), nil
}

func (r *DebateSessionRepositoryImpl) toEntities(models []*model.DebateSession) []*entity.DebateSession {
	entities := make([]*entity.DebateSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.DebateSessionToEntity(m)
	}
	return entities
}
