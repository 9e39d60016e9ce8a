package engine

// IsSpaceAvailable reports whether box fits inside the container's bounds
// and overlaps no existing occupancy entry (C1).
func (c *Container) IsSpaceAvailable(box Box) bool {
	if !box.within(c.Width, c.Depth, c.Height) {
		return false
	}
	for _, e := range c.occupancy {
		if box.overlaps(e.Box) {
			return false
		}
	}
	return true
}

// AddItem appends (itemId, box) to the occupancy list if the space is
// available. The caller guarantees itemId is not already present in this
// container. Returns whether the add succeeded.
func (c *Container) AddItem(itemID string, box Box) bool {
	if !c.IsSpaceAvailable(box) {
		return false
	}
	c.occupancy = append(c.occupancy, occupancyEntry{ItemID: itemID, Box: box})
	return true
}

// RemoveItem removes the occupancy entry for itemID, if any, and reports
// whether an entry was removed.
func (c *Container) RemoveItem(itemID string) bool {
	for i, e := range c.occupancy {
		if e.ItemID == itemID {
			c.occupancy = append(c.occupancy[:i], c.occupancy[i+1:]...)
			return true
		}
	}
	return false
}

// PositionOf returns the box occupied by itemID, if present.
func (c *Container) PositionOf(itemID string) (Box, bool) {
	for _, e := range c.occupancy {
		if e.ItemID == itemID {
			return e.Box, true
		}
	}
	return Box{}, false
}

// FreeVolume returns the container's interior volume minus the volume
// occupied by its current occupancy entries.
func (c *Container) FreeVolume() int {
	total := c.Width * c.Depth * c.Height
	for _, e := range c.occupancy {
		total -= e.Box.Volume()
	}
	return total
}

// BlockersOf returns the ids of items that obstruct retrieval of itemID
// through the open face (depth=0), shallowest first (ascending start
// depth), per the ordering decision in SPEC_FULL.md §9 item 3. An item B
// blocks target T iff B and T's boxes overlap on the width and height axes
// (half-open interval intersection) and B is strictly shallower than T.
func (c *Container) BlockersOf(itemID string) []string {
	target, ok := c.PositionOf(itemID)
	if !ok {
		return nil
	}

	type candidate struct {
		id    string
		start int
	}
	var candidates []candidate
	for _, e := range c.occupancy {
		if e.ItemID == itemID {
			continue
		}
		if !widthHeightOverlap(e.Box, target) {
			continue
		}
		if e.Box.Start.D < target.Start.D {
			candidates = append(candidates, candidate{id: e.ItemID, start: e.Box.Start.D})
		}
	}

	// Stable sort ascending by start depth (shallowest first); ties keep
	// container insertion order since the scan above already preserves it.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].start < candidates[j-1].start; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	ids := make([]string, len(candidates))
	for i, cd := range candidates {
		ids[i] = cd.id
	}
	return ids
}

// widthHeightOverlap is the half-open interval intersection test on the
// width and height axes only, used by blocker detection. SPEC_FULL.md
// resolves Open Question 2 in favor of this convention uniformly (the
// original source used closed-interval endpoints here; half-open matches
// IsSpaceAvailable's adjacency semantics).
func widthHeightOverlap(a, b Box) bool {
	if a.End.W <= b.Start.W || b.End.W <= a.Start.W {
		return false
	}
	if a.End.H <= b.Start.H || b.End.H <= a.Start.H {
		return false
	}
	return true
}
