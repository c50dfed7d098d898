package mappers

import (
	"certdesk/internal/domain/capacity"
	"certdesk/internal/infrastructure/persistence/models"
)

// SlotLedgerMapper handles the conversion between slot ledger entities and
// persistence models.
type SlotLedgerMapper interface {
	ToEntity(model *models.SlotLedgerModel) *capacity.Ledger
	ToModel(entity *capacity.Ledger) *models.SlotLedgerModel
}

type SlotLedgerMapperImpl struct{}

func NewSlotLedgerMapper() SlotLedgerMapper {
	return &SlotLedgerMapperImpl{}
}

func (m *SlotLedgerMapperImpl) ToEntity(model *models.SlotLedgerModel) *capacity.Ledger {
	if model == nil {
		return nil
	}
	return capacity.ReconstructLedger(model.Region, model.SlotsLeft, model.LastUpdated)
}

func (m *SlotLedgerMapperImpl) ToModel(entity *capacity.Ledger) *models.SlotLedgerModel {
	if entity == nil {
		return nil
	}
	return &models.SlotLedgerModel{
		Region:      entity.Region(),
		SlotsLeft:   entity.SlotsLeft(),
		LastUpdated: entity.LastUpdated(),
	}
}
