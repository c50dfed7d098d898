package usecases

import (
	"context"

	"certdesk/internal/shared/logger"
)

type GetSlotCountQuery struct {
	Region int
}

type GetSlotCountResult struct {
	Region    int `json:"region"`
	SlotsLeft int `json:"slots_left"`
}

// GetSlotCountUseCase reads a region's current slot count. The read refreshes
// the ledger, so it runs in a transaction like the mutating paths.
type GetSlotCountUseCase struct {
	slots     SlotCounter
	txManager TransactionManager
	logger    logger.Interface
}

func NewGetSlotCountUseCase(
	slots SlotCounter,
	txManager TransactionManager,
	logger logger.Interface,
) *GetSlotCountUseCase {
	return &GetSlotCountUseCase{
		slots:     slots,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *GetSlotCountUseCase) Execute(ctx context.Context, query GetSlotCountQuery) (*GetSlotCountResult, error) {
	var count int

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		count, err = uc.slots.GetSlotCount(txCtx, query.Region)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to get slot count", "region", query.Region, "error", err)
		return nil, err
	}

	return &GetSlotCountResult{Region: query.Region, SlotsLeft: count}, nil
}
