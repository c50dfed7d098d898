package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"certdesk/internal/domain/user"
	"certdesk/internal/infrastructure/persistence/mappers"
	"certdesk/internal/infrastructure/persistence/models"
	"certdesk/internal/shared/db"
)

type RequesterRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewRequesterRepository(database *gorm.DB) *RequesterRepository {
	return &RequesterRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *RequesterRepository) Save(ctx context.Context, requester *user.Requester) error {
	model := r.mapper.RequesterToModel(requester)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save requester: %w", err)
	}

	return requester.SetID(model.ID)
}

func (r *RequesterRepository) FindByID(ctx context.Context, requesterID uint) (*user.Requester, error) {
	var model models.RequesterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, requesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrRequesterNotFound
		}
		return nil, fmt.Errorf("failed to find requester: %w", err)
	}

	return r.mapper.RequesterToEntity(&model)
}

func (r *RequesterRepository) FindByUserID(ctx context.Context, userID uint) (*user.Requester, error) {
	var model models.RequesterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrRequesterNotFound
		}
		return nil, fmt.Errorf("failed to find requester by user: %w", err)
	}

	return r.mapper.RequesterToEntity(&model)
}
