package engine

import "sort"

// orientation is one of the six permutations of (width, depth, height).
type orientation struct{ w, d, h int }

func orientationsOf(it Item) [6]orientation {
	w, d, h := it.Width, it.Depth, it.Height
	return [6]orientation{
		{w, d, h},
		{w, h, d},
		{d, w, h},
		{d, h, w},
		{h, w, d},
		{h, d, w},
	}
}

// Placement is the result of a successful FindBestPlacement search.
type Placement struct {
	ContainerID string
	Box         Box
	Score       float64
}

// FindBestPlacement searches candidates for the best (container,
// orientation, anchor) admitting item, per spec.md §4.2. Containers are
// tried in the given order after stably moving preferred-zone matches to
// the front; it does not mutate any container. Returns ok=false if no
// placement exists anywhere.
func FindBestPlacement(item Item, candidates []*Container) (Placement, bool, error) {
	if item.Width <= 0 || item.Depth <= 0 || item.Height <= 0 {
		return Placement{}, false, ErrInvalidInput("item dimensions must be positive")
	}

	ordered := orderByZonePreference(candidates, item.PreferredZone)
	orients := orientationsOf(item)

	var best Placement
	found := false
	bestScore := 0.0

	for _, c := range ordered {
		if !fitsInAnyOrientation(c, orients) {
			continue
		}
		for _, o := range orients {
			if o.w > c.Width || o.d > c.Depth || o.h > c.Height {
				continue
			}
			for x := 0; x <= c.Width-o.w; x++ {
				for y := 0; y <= c.Depth-o.d; y++ {
					for z := 0; z <= c.Height-o.h; z++ {
						box := Box{
							Start: Point3D{W: x, D: y, H: z},
							End:   Point3D{W: x + o.w, D: y + o.d, H: z + o.h},
						}
						if !c.IsSpaceAvailable(box) {
							continue
						}
						score := float64(item.Priority) - 0.5*float64(y)
						if item.PreferredZone != "" && item.PreferredZone == c.Zone {
							score += 50
						}
						if !found || score > bestScore {
							found = true
							bestScore = score
							best = Placement{ContainerID: c.ID, Box: box, Score: score}
						}
					}
				}
			}
		}
	}

	if !found {
		return Placement{}, false, nil
	}
	return best, true, nil
}

// orderByZonePreference stably moves containers whose zone matches
// preferredZone to the front, preserving relative order within each group.
func orderByZonePreference(containers []*Container, preferredZone string) []*Container {
	ordered := make([]*Container, len(containers))
	copy(ordered, containers)
	sort.SliceStable(ordered, func(i, j int) bool {
		iMatch := preferredZone != "" && ordered[i].Zone == preferredZone
		jMatch := preferredZone != "" && ordered[j].Zone == preferredZone
		if iMatch == jMatch {
			return false
		}
		return iMatch
	})
	return ordered
}

// fitsInAnyOrientation reports whether the container's bounds are >= the
// item's bounds under at least one of the six orientations (spec.md §4.2
// step 2, a cheap pre-filter before the full anchor scan).
func fitsInAnyOrientation(c *Container, orients [6]orientation) bool {
	for _, o := range orients {
		if o.w <= c.Width && o.d <= c.Depth && o.h <= c.Height {
			return true
		}
	}
	return false
}
