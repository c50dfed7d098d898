package capacity

import (
	"fmt"
	"time"
)

// Ledger is one region's remaining-capacity counter. Decay is computed lazily
// from lastUpdated whenever the ledger is refreshed; there is no background
// clock.
type Ledger struct {
	region      int
	slotsLeft   int
	lastUpdated time.Time
}

// NewLedger seeds a fresh ledger at the region's daily default. Used on first
// access to a region with no persisted row.
func NewLedger(region, defaultSlots int, now time.Time) (*Ledger, error) {
	if defaultSlots < 0 {
		return nil, fmt.Errorf("default slots cannot be negative")
	}
	return &Ledger{
		region:      region,
		slotsLeft:   defaultSlots,
		lastUpdated: now.UTC(),
	}, nil
}

// ReconstructLedger rebuilds a ledger from persistence.
func ReconstructLedger(region, slotsLeft int, lastUpdated time.Time) *Ledger {
	return &Ledger{
		region:      region,
		slotsLeft:   slotsLeft,
		lastUpdated: lastUpdated.UTC(),
	}
}

func (l *Ledger) Region() int {
	return l.region
}

func (l *Ledger) SlotsLeft() int {
	return l.slotsLeft
}

func (l *Ledger) LastUpdated() time.Time {
	return l.lastUpdated
}

// Refresh applies the daily reset and interval decay as of now, returning
// true when state changed and must be persisted.
//
// Reset wins over decay: when now falls on a different calendar day than
// lastUpdated (in loc), slotsLeft snaps back to defaultSlots. Otherwise one
// slot is shed per whole interval elapsed, floored at zero. Elapsed time is
// truncated to whole minutes first, matching the counter's observable
// behavior of ignoring sub-minute remainders.
func (l *Ledger) Refresh(now time.Time, defaultSlots int, interval time.Duration, loc *time.Location) bool {
	now = now.UTC()

	if !sameCalendarDay(now, l.lastUpdated, loc) {
		l.slotsLeft = defaultSlots
		l.lastUpdated = now
		return true
	}

	intervalMinutes := int64(interval / time.Minute)
	if intervalMinutes <= 0 {
		return false
	}

	elapsedMinutes := int64(now.Sub(l.lastUpdated).Seconds()) / 60
	decrements := elapsedMinutes / intervalMinutes
	if decrements <= 0 {
		return false
	}

	l.slotsLeft -= int(decrements)
	if l.slotsLeft < 0 {
		l.slotsLeft = 0
	}
	l.lastUpdated = now
	return true
}

// Adjust applies a task-driven delta. Task-driven adjustments are not floored
// at zero; only the decay path clamps.
func (l *Ledger) Adjust(delta int, now time.Time) {
	l.slotsLeft += delta
	l.lastUpdated = now.UTC()
}

// Set overwrites the counter, used by manual corrections.
func (l *Ledger) Set(slots int, now time.Time) {
	l.slotsLeft = slots
	l.lastUpdated = now.UTC()
}

func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
