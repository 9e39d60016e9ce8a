package engine

// RetrievalSteps produces the numbered step sequence to extract targetID
// from container and restore its blockers (spec.md §4.3). It does not
// mutate occupancy; callers decide whether to commit the moves. Returns
// ErrUnknownItem if targetID has no position in container.
func RetrievalSteps(container *Container, targetID string) ([]Step, error) {
	if _, ok := container.PositionOf(targetID); !ok {
		return nil, ErrUnknownItem(targetID)
	}

	blockers := container.BlockersOf(targetID)
	steps := make([]Step, 0, 2*len(blockers)+1+len(blockers))
	n := 1

	for _, b := range blockers {
		steps = append(steps, Step{Number: n, Action: ActionRemove, ItemID: b})
		n++
		steps = append(steps, Step{Number: n, Action: ActionSetAside, ItemID: b})
		n++
	}

	steps = append(steps, Step{Number: n, Action: ActionRetrieve, ItemID: targetID})
	n++

	for i := len(blockers) - 1; i >= 0; i-- {
		steps = append(steps, Step{Number: n, Action: ActionPlaceBack, ItemID: blockers[i]})
		n++
	}

	return steps, nil
}
