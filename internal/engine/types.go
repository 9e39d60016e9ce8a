// Package engine implements the 3D placement, retrieval, and
// waste-consolidation core described for the cargo stowage system: a
// geometric placement search over axis-aligned boxes, blocker-driven
// retrieval planning, a calendar-aware usage/expiry model, and a
// mass-capped waste return planner. The package owns no I/O; callers
// (CSV ingest, the CLI, exporters) translate to and from these types.
package engine

import "time"

// Point3D is an integer coordinate triple in a container's local frame,
// in centimeters. The three axes are width, depth, height; depth is the
// retrieval axis (depth=0 is the open face).
type Point3D struct {
	W, D, H int
}

// Box is the half-open axis-aligned region [Start, End) an item occupies.
type Box struct {
	Start Point3D
	End   Point3D
}

// Width, Depth, Height return the extents of the box along each axis.
func (b Box) Width() int  { return b.End.W - b.Start.W }
func (b Box) Depth() int  { return b.End.D - b.Start.D }
func (b Box) Height() int { return b.End.H - b.Start.H }

func (b Box) Volume() int { return b.Width() * b.Depth() * b.Height() }

// overlaps reports whether two half-open boxes intersect on all three
// axes. Disjoint iff, on any axis, one's end is <= the other's start.
func (b Box) overlaps(o Box) bool {
	if b.End.W <= o.Start.W || o.End.W <= b.Start.W {
		return false
	}
	if b.End.D <= o.Start.D || o.End.D <= b.Start.D {
		return false
	}
	if b.End.H <= o.Start.H || o.End.H <= b.Start.H {
		return false
	}
	return true
}

// within reports whether b lies entirely inside the bounds [0,w)x[0,d)x[0,h).
func (b Box) within(w, d, h int) bool {
	return b.Start.W >= 0 && b.Start.D >= 0 && b.Start.H >= 0 &&
		b.End.W <= w && b.End.D <= d && b.End.H <= h
}

// Item is a physical piece of cargo. ExpiryDate is nil when the item has
// no expiry ("N/A" at the CSV/CLI boundary). ContainerID is empty when the
// item is unplaced.
type Item struct {
	ID            string
	Name          string
	Width         int
	Depth         int
	Height        int
	Mass          float64
	Priority      int
	ExpiryDate    *time.Time
	UsageLimit    int
	UsesRemaining int
	PreferredZone string
	ContainerID   string
	Placement     *Box
}

// NominalVolume returns width*depth*height in the item's nominal (unrotated)
// orientation, used for return-manifest volume accounting.
func (it Item) NominalVolume() int {
	return it.Width * it.Depth * it.Height
}

// IsPlaced reports whether the item currently has a container assignment.
func (it Item) IsPlaced() bool {
	return it.ContainerID != "" && it.Placement != nil
}

// occupancyEntry is one slot in a container's occupancy list.
type occupancyEntry struct {
	ItemID string
	Box    Box
}

// Container is a rectangular stowage volume that holds an occupancy list.
// Entries are kept in insertion order; see BlockersOf for how that order
// interacts with retrieval's shallowest-first guarantee.
type Container struct {
	ID        string
	Zone      string
	Width     int
	Depth     int
	Height    int
	occupancy []occupancyEntry
}

// NewContainer constructs an empty container with the given interior
// dimensions (centimeters).
func NewContainer(id, zone string, width, depth, height int) *Container {
	return &Container{ID: id, Zone: zone, Width: width, Depth: depth, Height: height}
}

// StepAction tags the kind of action a retrieval step performs.
type StepAction string

const (
	ActionRemove    StepAction = "remove"
	ActionSetAside  StepAction = "setAside"
	ActionRetrieve  StepAction = "retrieve"
	ActionPlaceBack StepAction = "placeBack"
)

// Step is one 1-indexed, numbered entry in a retrieval plan.
type Step struct {
	Number int
	Action StepAction
	ItemID string
}

// WasteReason names why an item was classified as waste.
type WasteReason string

const (
	ReasonOutOfUses WasteReason = "Out of Uses"
	ReasonExpired   WasteReason = "Expired"
)

// WasteEntry is one result of IdentifyWaste.
type WasteEntry struct {
	ItemID      string
	Name        string
	Reason      WasteReason
	ContainerID string
	Position    *Box
}

// ReturnPlanStep is one entry of a waste return plan's step sequence.
type ReturnPlanStep struct {
	Step          int
	ItemID        string
	ItemName      string
	FromContainer string
	ToContainer   string
}

// ManifestItem is one line of a ReturnManifest.
type ManifestItem struct {
	ItemID string
	Name   string
	Reason WasteReason
}

// ReturnManifest summarizes a waste return plan's cargo.
type ReturnManifest struct {
	UndockingContainerID string
	UndockingDate        time.Time
	ReturnItems          []ManifestItem
	TotalVolume          int
	TotalWeight          float64
}

// Changes reports the outcome of one SimulateDay call.
type Changes struct {
	Used       []UsedChange
	Expired    []ExpiredChange
	OutOfUses  []OutOfUsesChange
}

type UsedChange struct {
	ItemID        string
	Name          string
	UsesRemaining int
}

type ExpiredChange struct {
	ItemID     string
	Name       string
	ExpiryDate time.Time
}

type OutOfUsesChange struct {
	ItemID string
	Name   string
}
