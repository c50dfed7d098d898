package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"certdesk/internal/domain/capacity"
	"certdesk/internal/infrastructure/persistence/mappers"
	"certdesk/internal/infrastructure/persistence/models"
	"certdesk/internal/shared/db"
)

type SlotLedgerRepository struct {
	db     *gorm.DB
	mapper mappers.SlotLedgerMapper
}

func NewSlotLedgerRepository(database *gorm.DB) *SlotLedgerRepository {
	return &SlotLedgerRepository{
		db:     database,
		mapper: mappers.NewSlotLedgerMapper(),
	}
}

// FindForUpdate loads the region's ledger row. When ctx carries a transaction
// the row is locked with SELECT ... FOR UPDATE so the caller's
// refresh-then-adjust sequence cannot interleave with another writer.
func (r *SlotLedgerRepository) FindForUpdate(ctx context.Context, region int) (*capacity.Ledger, error) {
	var model models.SlotLedgerModel
	tx := db.GetTxFromContext(ctx, r.db)
	if db.HasTx(ctx) {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := tx.
		Where("region = ?", region).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, capacity.ErrLedgerNotFound
		}
		return nil, fmt.Errorf("failed to find slot ledger: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *SlotLedgerRepository) Create(ctx context.Context, ledger *capacity.Ledger) error {
	model := r.mapper.ToModel(ledger)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create slot ledger: %w", err)
	}

	return nil
}

func (r *SlotLedgerRepository) Update(ctx context.Context, ledger *capacity.Ledger) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.SlotLedgerModel{}).
		Where("region = ?", ledger.Region()).
		Updates(map[string]interface{}{
			"slots_left":   ledger.SlotsLeft(),
			"last_updated": ledger.LastUpdated(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update slot ledger: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return capacity.ErrLedgerNotFound
	}

	return nil
}
