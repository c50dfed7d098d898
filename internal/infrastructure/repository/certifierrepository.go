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

type CertifierRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewCertifierRepository(database *gorm.DB) *CertifierRepository {
	return &CertifierRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *CertifierRepository) Save(ctx context.Context, certifier *user.Certifier) error {
	model := r.mapper.CertifierToModel(certifier)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save certifier: %w", err)
	}

	return certifier.SetID(model.ID)
}

func (r *CertifierRepository) FindByUserID(ctx context.Context, userID uint) (*user.Certifier, error) {
	var model models.CertifierModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrCertifierNotFound
		}
		return nil, fmt.Errorf("failed to find certifier by user: %w", err)
	}

	return r.mapper.CertifierToEntity(&model)
}

// FindDefault returns the oldest certifier row. New submissions are assigned
// to this certifier until reassignment is supported.
func (r *CertifierRepository) FindDefault(ctx context.Context) (*user.Certifier, error) {
	var model models.CertifierModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrCertifierNotFound
		}
		return nil, fmt.Errorf("failed to find default certifier: %w", err)
	}

	return r.mapper.CertifierToEntity(&model)
}
