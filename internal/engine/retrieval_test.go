package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrievalSteps_NoBlockers(t *testing.T) {
	// L1 / S2: placing an item alone and retrieving it yields exactly one
	// step with no blockers.
	c := NewContainer("c", "Zone", 100, 85, 200)
	require.True(t, c.AddItem("X", Box{Start: Point3D{0, 0, 0}, End: Point3D{10, 10, 20}}))

	steps, err := RetrievalSteps(c, "X")
	require.NoError(t, err)

	require.Len(t, steps, 1)
	assert.Equal(t, Step{Number: 1, Action: ActionRetrieve, ItemID: "X"}, steps[0])
}

func TestRetrievalSteps_ShallowerItemHasNoBlockerFromDeeperNeighbor(t *testing.T) {
	// S2: X at depth 0, Y at depth 10 with the same width/height span —
	// Y is deeper, so it does not block X.
	c := NewContainer("c", "Zone", 100, 85, 200)
	require.True(t, c.AddItem("X", Box{Start: Point3D{0, 0, 0}, End: Point3D{10, 10, 20}}))
	require.True(t, c.AddItem("Y", Box{Start: Point3D{0, 10, 0}, End: Point3D{10, 20, 20}}))

	steps, err := RetrievalSteps(c, "X")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, ActionRetrieve, steps[0].Action)
}

func TestRetrievalSteps_ShallowerItemBlocksDeeperTarget(t *testing.T) {
	// S3: X at depth 0, Y at depth 10, same width/height span — X blocks Y.
	c := NewContainer("c", "Zone", 100, 85, 200)
	require.True(t, c.AddItem("X", Box{Start: Point3D{0, 0, 0}, End: Point3D{10, 10, 20}}))
	require.True(t, c.AddItem("Y", Box{Start: Point3D{0, 10, 0}, End: Point3D{10, 20, 20}}))

	blockers := c.BlockersOf("Y")
	require.Equal(t, []string{"X"}, blockers)

	steps, err := RetrievalSteps(c, "Y")
	require.NoError(t, err)
	require.Len(t, steps, 4)

	want := []Step{
		{1, ActionRemove, "X"},
		{2, ActionSetAside, "X"},
		{3, ActionRetrieve, "Y"},
		{4, ActionPlaceBack, "X"},
	}
	assert.Equal(t, want, steps)
}

func TestRetrievalSteps_MultipleBlockersReverseRestoreOrder(t *testing.T) {
	c := NewContainer("c", "Zone", 100, 85, 200)
	// Target deep at d=20; two blockers at d=0 and d=10, both overlapping
	// in width/height.
	require.True(t, c.AddItem("T", Box{Start: Point3D{0, 20, 0}, End: Point3D{10, 30, 20}}))
	require.True(t, c.AddItem("B1", Box{Start: Point3D{0, 0, 0}, End: Point3D{10, 10, 20}}))
	require.True(t, c.AddItem("B2", Box{Start: Point3D{0, 10, 0}, End: Point3D{10, 20, 20}}))

	steps, err := RetrievalSteps(c, "T")
	require.NoError(t, err)

	want := []Step{
		{1, ActionRemove, "B1"},
		{2, ActionSetAside, "B1"},
		{3, ActionRemove, "B2"},
		{4, ActionSetAside, "B2"},
		{5, ActionRetrieve, "T"},
		{6, ActionPlaceBack, "B2"},
		{7, ActionPlaceBack, "B1"},
	}
	assert.Equal(t, want, steps)
}

func TestRetrievalSteps_UnknownItem(t *testing.T) {
	c := NewContainer("c", "Zone", 10, 10, 10)
	_, err := RetrievalSteps(c, "ghost")
	require.Error(t, err)
	assert.Equal(t, KindUnknownItem, KindOf(err))
}
