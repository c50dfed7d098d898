package usecases

import (
	"context"

	"certdesk/internal/shared/logger"
)

type IncrementSlotsCommand struct {
	Region int
}

type DecrementSlotsCommand struct {
	Region int
}

type AdjustSlotsResult struct {
	Region    int `json:"region"`
	SlotsLeft int `json:"slots_left"`
}

// IncrementSlotsUseCase adds one slot to a region. Certifier-only correction
// for when capacity was consumed in error.
type IncrementSlotsUseCase struct {
	slots     SlotCounter
	txManager TransactionManager
	logger    logger.Interface
}

func NewIncrementSlotsUseCase(
	slots SlotCounter,
	txManager TransactionManager,
	logger logger.Interface,
) *IncrementSlotsUseCase {
	return &IncrementSlotsUseCase{
		slots:     slots,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *IncrementSlotsUseCase) Execute(ctx context.Context, cmd IncrementSlotsCommand) (*AdjustSlotsResult, error) {
	var count int

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		count, err = uc.slots.AdminIncrement(txCtx, cmd.Region)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to increment slots", "region", cmd.Region, "error", err)
		return nil, err
	}

	uc.logger.Infow("slots incremented", "region", cmd.Region, "slots_left", count)
	return &AdjustSlotsResult{Region: cmd.Region, SlotsLeft: count}, nil
}

// DecrementSlotsUseCase removes one slot from a region, never below zero.
type DecrementSlotsUseCase struct {
	slots     SlotCounter
	txManager TransactionManager
	logger    logger.Interface
}

func NewDecrementSlotsUseCase(
	slots SlotCounter,
	txManager TransactionManager,
	logger logger.Interface,
) *DecrementSlotsUseCase {
	return &DecrementSlotsUseCase{
		slots:     slots,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DecrementSlotsUseCase) Execute(ctx context.Context, cmd DecrementSlotsCommand) (*AdjustSlotsResult, error) {
	var count int

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		count, err = uc.slots.AdminDecrement(txCtx, cmd.Region)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to decrement slots", "region", cmd.Region, "error", err)
		return nil, err
	}

	uc.logger.Infow("slots decremented", "region", cmd.Region, "slots_left", count)
	return &AdjustSlotsResult{Region: cmd.Region, SlotsLeft: count}, nil
}
