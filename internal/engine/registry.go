package engine

import (
	"sort"
	"strings"
	"time"
)

// Engine is the inventory registry (C6): unique-key mappings from id to
// item and id to container, plus the simulated clock. It is the single
// mutable value a host must serialize access to for mutating operations
// (spec.md §5); it owns no goroutines or internal locking.
type Engine struct {
	items      map[string]*Item
	containers map[string]*Container
	clock      *Clock
}

// NewEngine constructs an empty registry with the clock starting at now.
func NewEngine(now time.Time) *Engine {
	return &Engine{
		items:      make(map[string]*Item),
		containers: make(map[string]*Container),
		clock:      NewClock(now),
	}
}

// Now returns the engine's current simulated date.
func (e *Engine) Now() time.Time { return e.clock.Now() }

// AddContainer registers a container, overwriting any existing entry with
// the same id.
func (e *Engine) AddContainer(c *Container) { e.containers[c.ID] = c }

// Container returns the container for id, if registered.
func (e *Engine) Container(id string) (*Container, bool) {
	c, ok := e.containers[id]
	return c, ok
}

// Containers returns all registered containers, sorted by id. Placement
// search relies on this order being stable across calls (spec.md §4.6: no
// global ordering is exposed, but iteration order must not itself affect
// externally observable outcomes) since FindBestPlacement's tie-break
// picks the first-examined candidate on equal scores.
func (e *Engine) Containers() []*Container {
	out := make([]*Container, 0, len(e.containers))
	for _, c := range e.containers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddItem registers an unplaced item, overwriting any existing entry with
// the same id.
func (e *Engine) AddItem(it Item) {
	cp := it
	e.items[it.ID] = &cp
}

// Item returns the item for id, if registered.
func (e *Engine) Item(id string) (*Item, bool) {
	it, ok := e.items[id]
	return it, ok
}

// Items returns all registered items, in no particular order.
func (e *Engine) Items() []Item {
	out := make([]Item, 0, len(e.items))
	for _, it := range e.items {
		out = append(out, *it)
	}
	return out
}

// ItemByName returns a registered item whose name matches (case
// insensitive), mirroring the search operation's fallback lookup. When
// several items share the name, which of them is returned is not defined.
func (e *Engine) ItemByName(name string) (*Item, bool) {
	for _, it := range e.items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return nil, false
}

// PlacementResult is one entry of a RequestPlacement response.
type PlacementResult struct {
	ItemID      string
	ContainerID string
	Box         Box
}

// RequestPlacement finds and commits placements for newItems across every
// registered container (spec.md's Placement operation). Items that cannot
// be placed are omitted from the result's Placements and listed in
// Unplaceable; per spec.md §4.2 and the Non-goals in §1, the engine does
// not attempt global rearrangement when an item has no fit.
func (e *Engine) RequestPlacement(newItems []Item) (placements []PlacementResult, unplaceable []string, err error) {
	for _, it := range newItems {
		e.AddItem(it)
	}

	candidates := e.Containers()
	for _, it := range newItems {
		registered := e.items[it.ID]
		result, placeErr := e.placeBest(registered, candidates)
		if placeErr != nil {
			if KindOf(placeErr) == KindUnplaceable {
				unplaceable = append(unplaceable, it.ID)
				continue
			}
			return placements, unplaceable, placeErr
		}
		placements = append(placements, result)
	}
	return placements, unplaceable, nil
}

// placeBest finds the best-scoring placement for it among candidates and
// commits it, returning ErrUnplaceable if no container/orientation/anchor
// admits the item, or ErrNoSpace if the chosen box unexpectedly conflicts
// with an occupant FindBestPlacement did not see.
func (e *Engine) placeBest(it *Item, candidates []*Container) (PlacementResult, error) {
	best, ok, err := FindBestPlacement(*it, candidates)
	if err != nil {
		return PlacementResult{}, err
	}
	if !ok {
		return PlacementResult{}, ErrUnplaceable(it.ID)
	}
	c := e.containers[best.ContainerID]
	if !c.AddItem(it.ID, best.Box) {
		return PlacementResult{}, ErrNoSpace(it.ID, c.ID)
	}
	it.ContainerID = c.ID
	box := best.Box
	it.Placement = &box

	return PlacementResult{ItemID: it.ID, ContainerID: c.ID, Box: best.Box}, nil
}

// SearchResult is the response to a Search operation.
type SearchResult struct {
	Found          bool
	Item           Item
	RetrievalSteps []Step
}

// Search locates an item by id (tried first) or name and, if it is
// currently placed, computes its retrieval steps.
func (e *Engine) Search(itemID, itemName string) (SearchResult, error) {
	var it *Item
	if itemID != "" {
		it = e.items[itemID]
	}
	if it == nil && itemName != "" {
		it, _ = e.ItemByName(itemName)
	}
	if it == nil {
		return SearchResult{Found: false}, nil
	}
	if !it.IsPlaced() {
		return SearchResult{Found: true, Item: *it}, nil
	}

	c, ok := e.containers[it.ContainerID]
	if !ok {
		return SearchResult{Found: true, Item: *it}, nil
	}
	steps, err := RetrievalSteps(c, it.ID)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Found: true, Item: *it, RetrievalSteps: steps}, nil
}

// Retrieve marks an item as retrieved, decrementing its remaining uses.
// Idempotent at zero uses remaining.
func (e *Engine) Retrieve(itemID string) error {
	it, ok := e.items[itemID]
	if !ok {
		return ErrUnknownItem(itemID)
	}
	if it.UsesRemaining > 0 {
		it.UsesRemaining--
	}
	return nil
}

// Place assigns itemID to containerID at box, removing it from any
// previous container first. Returns ErrNoSpace if box conflicts with an
// existing occupant.
func (e *Engine) Place(itemID, containerID string, box Box) error {
	it, ok := e.items[itemID]
	if !ok {
		return ErrUnknownItem(itemID)
	}
	c, ok := e.containers[containerID]
	if !ok {
		return ErrUnknownContainer(containerID)
	}

	if it.ContainerID != "" {
		if old, ok := e.containers[it.ContainerID]; ok {
			old.RemoveItem(itemID)
		}
	}

	if !c.AddItem(itemID, box) {
		return ErrNoSpace(itemID, containerID)
	}

	it.ContainerID = containerID
	bb := box
	it.Placement = &bb
	return nil
}
