package engine

import (
	"sort"
	"time"
)

// Clock holds the system's single mutable simulated date.
type Clock struct {
	now time.Time
}

// NewClock creates a Clock starting at now.
func NewClock(now time.Time) *Clock { return &Clock{now: now} }

// Now returns the current simulated date.
func (c *Clock) Now() time.Time { return c.now }

// advance moves the clock forward by exactly one calendar day using
// calendar-aware arithmetic (SPEC_FULL.md §9 item 1 — resolves the
// original source's `day += 1` defect, which breaks on month ends).
func (c *Clock) advance() {
	c.now = c.now.AddDate(0, 0, 1)
}

// SimulateDay advances the clock by one day, applies usage decrements for
// usedItemIds, and scans all items for expiry (spec.md §4.4). Mutates the
// engine's registry; never fails.
func (e *Engine) SimulateDay(usedItemIDs []string) (time.Time, Changes) {
	e.clock.advance()
	now := e.clock.Now()

	var changes Changes

	for _, id := range usedItemIDs {
		it, ok := e.items[id]
		if !ok {
			continue
		}
		oldUses := it.UsesRemaining
		if it.UsesRemaining > 0 {
			it.UsesRemaining--
		}
		changes.Used = append(changes.Used, UsedChange{
			ItemID:        it.ID,
			Name:          it.Name,
			UsesRemaining: it.UsesRemaining,
		})
		if oldUses > 0 && it.UsesRemaining <= 0 {
			changes.OutOfUses = append(changes.OutOfUses, OutOfUsesChange{
				ItemID: it.ID,
				Name:   it.Name,
			})
		}
	}

	// Expiry is re-emitted every tick an item remains expired, per
	// SPEC_FULL.md §9 item 4 — not edge-triggered. Items are visited in id
	// order so the result is deterministic despite map iteration.
	ids := make([]string, 0, len(e.items))
	for id := range e.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		it := e.items[id]
		if it.ExpiryDate == nil {
			continue
		}
		if now.After(*it.ExpiryDate) {
			changes.Expired = append(changes.Expired, ExpiredChange{
				ItemID:     it.ID,
				Name:       it.Name,
				ExpiryDate: *it.ExpiryDate,
			})
		}
	}

	return now, changes
}
