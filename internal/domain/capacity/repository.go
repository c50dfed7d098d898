package capacity

import (
	"context"
	"fmt"
)

// ErrLedgerNotFound is returned when a region has no persisted ledger row yet.
var ErrLedgerNotFound = fmt.Errorf("ledger not found")

// LedgerRepository persists per-region slot ledgers. Implementations must
// honor the transaction bound to ctx so a refresh-then-adjust sequence is
// atomic with the task mutation that triggered it.
type LedgerRepository interface {
	// FindForUpdate loads a region's ledger under a row-level lock when ctx
	// carries a transaction. Returns ErrLedgerNotFound for absent rows.
	FindForUpdate(ctx context.Context, region int) (*Ledger, error)
	Create(ctx context.Context, ledger *Ledger) error
	Update(ctx context.Context, ledger *Ledger) error
}
