package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"certdesk/internal/domain/capacity"
	"certdesk/internal/shared/biztime"
	apperrors "certdesk/internal/shared/errors"
	"certdesk/internal/shared/logger"
)

// SlotService owns the refresh-then-adjust sequence against a region's slot
// ledger. Every entry point refreshes first so decay and the daily reset are
// applied before the caller observes or changes the counter. Callers that
// pair a slot adjustment with a task mutation must invoke the service inside
// a transaction so the ledger row stays locked across both writes.
type SlotService struct {
	ledgerRepo capacity.LedgerRepository
	regions    *capacity.Regions
	interval   time.Duration
	logger     logger.Interface
}

func NewSlotService(
	ledgerRepo capacity.LedgerRepository,
	regions *capacity.Regions,
	interval time.Duration,
	logger logger.Interface,
) *SlotService {
	return &SlotService{
		ledgerRepo: ledgerRepo,
		regions:    regions,
		interval:   interval,
		logger:     logger,
	}
}

// Regions exposes the configured region table.
func (s *SlotService) Regions() *capacity.Regions {
	return s.regions
}

// GetSlotCount returns the region's current count after applying decay and
// the daily reset. The refreshed state is persisted, so repeated reads within
// one interval observe the same value.
func (s *SlotService) GetSlotCount(ctx context.Context, region int) (int, error) {
	ledger, err := s.refresh(ctx, region)
	if err != nil {
		return 0, err
	}
	return ledger.SlotsLeft(), nil
}

// TryConsume takes one slot from the region, failing with a capacity
// exhausted error when none are left. Used by new task submissions.
func (s *SlotService) TryConsume(ctx context.Context, region int) error {
	ledger, err := s.refresh(ctx, region)
	if err != nil {
		return err
	}

	if ledger.SlotsLeft() <= 0 {
		return apperrors.NewCapacityExhaustedError(
			fmt.Sprintf("no slots remaining in region %d", region))
	}

	ledger.Adjust(-1, biztime.NowUTC())
	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return err
	}

	s.logger.Infow("slot consumed", "region", region, "slots_left", ledger.SlotsLeft())
	return nil
}

// Consume takes one slot without checking availability. Reactivating a task
// is allowed even when the region is at zero, which can drive the counter
// negative until the next daily reset.
func (s *SlotService) Consume(ctx context.Context, region int) error {
	return s.adjust(ctx, region, -1)
}

// Release returns one slot to the region. Rejecting an active task releases
// its slot; completion does not, the slot stays consumed for the day.
func (s *SlotService) Release(ctx context.Context, region int) error {
	return s.adjust(ctx, region, +1)
}

// AdminIncrement adds one slot unconditionally.
func (s *SlotService) AdminIncrement(ctx context.Context, region int) (int, error) {
	ledger, err := s.refresh(ctx, region)
	if err != nil {
		return 0, err
	}

	ledger.Adjust(+1, biztime.NowUTC())
	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return 0, err
	}

	return ledger.SlotsLeft(), nil
}

// AdminDecrement removes one slot, but never drives the counter below zero;
// at zero it is a no-op returning the current count.
func (s *SlotService) AdminDecrement(ctx context.Context, region int) (int, error) {
	ledger, err := s.refresh(ctx, region)
	if err != nil {
		return 0, err
	}

	if ledger.SlotsLeft() <= 0 {
		return ledger.SlotsLeft(), nil
	}

	ledger.Adjust(-1, biztime.NowUTC())
	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return 0, err
	}

	return ledger.SlotsLeft(), nil
}

func (s *SlotService) adjust(ctx context.Context, region, delta int) error {
	ledger, err := s.refresh(ctx, region)
	if err != nil {
		return err
	}

	ledger.Adjust(delta, biztime.NowUTC())
	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return err
	}

	s.logger.Infow("slot adjusted",
		"region", region, "delta", delta, "slots_left", ledger.SlotsLeft())
	return nil
}

// refresh loads the region's ledger, creating it at the daily default on
// first access, and applies decay plus the daily reset.
func (s *SlotService) refresh(ctx context.Context, region int) (*capacity.Ledger, error) {
	defaultSlots, err := s.regions.DefaultFor(region)
	if err != nil {
		if errors.Is(err, capacity.ErrUnknownRegion) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("region %d is not configured", region))
		}
		return nil, err
	}

	now := biztime.NowUTC()

	ledger, err := s.ledgerRepo.FindForUpdate(ctx, region)
	if errors.Is(err, capacity.ErrLedgerNotFound) {
		ledger, err = capacity.NewLedger(region, defaultSlots, now)
		if err != nil {
			return nil, err
		}
		if err := s.ledgerRepo.Create(ctx, ledger); err != nil {
			return nil, err
		}
		s.logger.Infow("slot ledger created", "region", region, "slots", defaultSlots)
		return ledger, nil
	}
	if err != nil {
		return nil, err
	}

	if ledger.Refresh(now, defaultSlots, s.interval, biztime.Location()) {
		if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
			return nil, err
		}
	}

	return ledger, nil
}
