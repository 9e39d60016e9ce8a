package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestPlacement_PreferredZoneBonus(t *testing.T) {
	// S1: Container A (100x85x200), item X (10x10x20, priority 80,
	// preferredZone="Crew Quarters", A.zone="Crew Quarters"). Expected
	// placement: anchor (0,0,0), orientation (10,10,20), score 130.
	a := NewContainer("contA", "Crew Quarters", 100, 85, 200)
	item := Item{
		ID: "X", Width: 10, Depth: 10, Height: 20,
		Priority: 80, PreferredZone: "Crew Quarters",
	}

	placement, ok, err := FindBestPlacement(item, []*Container{a})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "contA", placement.ContainerID)
	assert.Equal(t, Point3D{0, 0, 0}, placement.Box.Start)
	assert.Equal(t, Point3D{10, 10, 20}, placement.Box.End)
	assert.Equal(t, 130.0, placement.Score)
}

func TestFindBestPlacement_SkipsTooSmallContainers(t *testing.T) {
	tooSmall := NewContainer("tiny", "Zone", 5, 5, 5)
	big := NewContainer("big", "Zone", 50, 50, 50)
	item := Item{ID: "X", Width: 10, Depth: 10, Height: 10, Priority: 10}

	placement, ok, err := FindBestPlacement(item, []*Container{tooSmall, big})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "big", placement.ContainerID)
}

func TestFindBestPlacement_NoFitReturnsFalse(t *testing.T) {
	c := NewContainer("c", "Zone", 5, 5, 5)
	item := Item{ID: "X", Width: 10, Depth: 10, Height: 10, Priority: 10}

	_, ok, err := FindBestPlacement(item, []*Container{c})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindBestPlacement_RejectsZeroDimension(t *testing.T) {
	c := NewContainer("c", "Zone", 50, 50, 50)
	item := Item{ID: "X", Width: 0, Depth: 10, Height: 10, Priority: 10}

	_, _, err := FindBestPlacement(item, []*Container{c})
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestFindBestPlacement_ShallowerAnchorPreferredOnTie(t *testing.T) {
	// One container; the item has no preferred zone so no bonus applies —
	// the anchor depth penalty should still prefer the shallowest fit
	// within the container (bottom-left-front ordering).
	c := NewContainer("c", "Zone", 20, 20, 20)
	item := Item{ID: "X", Width: 10, Depth: 5, Height: 5, Priority: 10}

	placement, ok, err := FindBestPlacement(item, []*Container{c})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, placement.Box.Start.D)
}

func TestFindBestPlacement_DeterministicAcrossRuns(t *testing.T) {
	// P4: same input yields the same result.
	c1 := NewContainer("c1", "Zone", 20, 20, 20)
	c2 := NewContainer("c2", "Zone", 20, 20, 20)
	item := Item{ID: "X", Width: 5, Depth: 5, Height: 5, Priority: 42}

	first, ok1, err1 := FindBestPlacement(item, []*Container{c1, c2})
	second, ok2, err2 := FindBestPlacement(item, []*Container{c1, c2})

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestFindBestPlacement_PreservesFreeVolume(t *testing.T) {
	// L2: placement preserves space — free volume decreases by exactly
	// the chosen-orientation volume.
	c := NewContainer("c", "Zone", 20, 20, 20)
	before := c.FreeVolume()
	item := Item{ID: "X", Width: 5, Depth: 4, Height: 3, Priority: 1}

	placement, ok, err := FindBestPlacement(item, []*Container{c})
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, c.AddItem(item.ID, placement.Box))
	after := c.FreeVolume()
	assert.Equal(t, before-placement.Box.Volume(), after)
	assert.Equal(t, 60, placement.Box.Volume())
}
