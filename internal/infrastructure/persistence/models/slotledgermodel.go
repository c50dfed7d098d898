package models

import (
	"time"

	"certdesk/internal/shared/constants"
)

// SlotLedgerModel persists the per-region slot counter. One row per region,
// created lazily on first access.
type SlotLedgerModel struct {
	ID          uint `gorm:"primarykey"`
	Region      int  `gorm:"uniqueIndex;not null"`
	SlotsLeft   int  `gorm:"not null"`
	LastUpdated time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SlotLedgerModel) TableName() string {
	return constants.TableSlotLedgers
}
