package engine

import (
	"sort"
	"time"
)

// IdentifyWaste scans all items and returns those that are waste: zero
// uses remaining ("Out of Uses", checked first) or a present expiry date
// strictly before now ("Expired"). Result order is by item id for
// determinism.
func (e *Engine) IdentifyWaste() []WasteEntry {
	now := e.clock.Now()

	ids := make([]string, 0, len(e.items))
	for id := range e.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var waste []WasteEntry
	for _, id := range ids {
		it := e.items[id]
		reason, isWaste := classify(it, now)
		if !isWaste {
			continue
		}
		waste = append(waste, WasteEntry{
			ItemID:      it.ID,
			Name:        it.Name,
			Reason:      reason,
			ContainerID: it.ContainerID,
			Position:    it.Placement,
		})
	}
	return waste
}

func classify(it *Item, now time.Time) (WasteReason, bool) {
	if it.UsesRemaining <= 0 {
		return ReasonOutOfUses, true
	}
	if it.ExpiryDate != nil && now.After(*it.ExpiryDate) {
		return ReasonExpired, true
	}
	return "", false
}

// CreateWasteReturnPlan selects waste items into a mass-capped return
// plan, sorted ascending by priority (lowest-priority waste goes first),
// per spec.md §4.5. Items that would push totalWeight over maxWeight are
// skipped (not just the remainder stopped), matching the original's
// "continue" semantics: a smaller later item can still be picked up after
// a heavier earlier one is skipped.
func (e *Engine) CreateWasteReturnPlan(undockingContainerID string, maxWeight float64) ([]ReturnPlanStep, []Step, ReturnManifest, error) {
	if _, ok := e.containers[undockingContainerID]; !ok {
		return nil, nil, ReturnManifest{}, ErrUnknownContainer(undockingContainerID)
	}

	waste := e.IdentifyWaste()
	sort.SliceStable(waste, func(i, j int) bool {
		return e.items[waste[i].ItemID].Priority < e.items[waste[j].ItemID].Priority
	})

	manifest := ReturnManifest{
		UndockingContainerID: undockingContainerID,
		UndockingDate:        e.clock.Now(),
	}

	var plan []ReturnPlanStep
	var steps []Step
	step := 1
	totalWeight := 0.0

	for _, w := range waste {
		it := e.items[w.ItemID]
		if totalWeight+it.Mass > maxWeight {
			continue
		}

		plan = append(plan, ReturnPlanStep{
			Step:          step,
			ItemID:        it.ID,
			ItemName:      it.Name,
			FromContainer: it.ContainerID,
			ToContainer:   undockingContainerID,
		})
		step++

		if it.ContainerID != "" {
			if c, ok := e.containers[it.ContainerID]; ok {
				itemSteps, err := RetrievalSteps(c, it.ID)
				if err == nil {
					steps = append(steps, itemSteps...)
				}
			}
		}

		manifest.ReturnItems = append(manifest.ReturnItems, ManifestItem{
			ItemID: it.ID,
			Name:   it.Name,
			Reason: w.Reason,
		})
		manifest.TotalVolume += it.NominalVolume()
		manifest.TotalWeight += it.Mass
		totalWeight += it.Mass
	}

	return plan, steps, manifest, nil
}

// CompleteUndocking removes every item whose current container equals
// undockingContainerID from the registry and clears that container's
// occupancy list. Returns the number of items removed.
func (e *Engine) CompleteUndocking(undockingContainerID string) (int, error) {
	c, ok := e.containers[undockingContainerID]
	if !ok {
		return 0, ErrUnknownContainer(undockingContainerID)
	}

	var toRemove []string
	for id, it := range e.items {
		if it.ContainerID == undockingContainerID {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		delete(e.items, id)
	}
	c.occupancy = nil

	return len(toRemove), nil
}
