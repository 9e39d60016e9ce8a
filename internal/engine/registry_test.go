package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPlacement_CommitsAndRecordsPlacement(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddContainer(NewContainer("contA", "Crew Quarters", 100, 85, 200))

	placements, unplaceable, err := e.RequestPlacement([]Item{
		{ID: "001", Name: "Food Packet", Width: 10, Depth: 10, Height: 20, Priority: 80, PreferredZone: "Crew Quarters"},
	})
	require.NoError(t, err)
	assert.Empty(t, unplaceable)
	require.Len(t, placements, 1)
	assert.Equal(t, "contA", placements[0].ContainerID)

	it, ok := e.Item("001")
	require.True(t, ok)
	assert.True(t, it.IsPlaced())
	assert.Equal(t, "contA", it.ContainerID)
}

func TestRequestPlacement_UnplaceableWhenNoContainerFits(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddContainer(NewContainer("tiny", "Zone", 1, 1, 1))

	placements, unplaceable, err := e.RequestPlacement([]Item{
		{ID: "big", Width: 10, Depth: 10, Height: 10, Priority: 1},
	})
	require.NoError(t, err)
	assert.Empty(t, placements)
	assert.Equal(t, []string{"big"}, unplaceable)
}

func TestPlaceBest_UnplaceableErrorKindWhenNoContainerFits(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddContainer(NewContainer("tiny", "Zone", 1, 1, 1))

	_, err := e.placeBest(&Item{ID: "big", Width: 10, Depth: 10, Height: 10}, e.Containers())
	require.Error(t, err)
	assert.Equal(t, KindUnplaceable, KindOf(err))
}

func TestContainers_SortedByIDRegardlessOfInsertionOrder(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddContainer(NewContainer("contC", "Zone", 10, 10, 10))
	e.AddContainer(NewContainer("contA", "Zone", 10, 10, 10))
	e.AddContainer(NewContainer("contB", "Zone", 10, 10, 10))

	out := e.Containers()
	require.Len(t, out, 3)
	assert.Equal(t, []string{"contA", "contB", "contC"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestRequestPlacement_DeterministicContainerChoiceOnTie(t *testing.T) {
	var first string
	for i := 0; i < 5; i++ {
		e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		e.AddContainer(NewContainer("contB", "Zone", 50, 50, 50))
		e.AddContainer(NewContainer("contA", "Zone", 50, 50, 50))

		placements, _, err := e.RequestPlacement([]Item{
			{ID: "x", Width: 10, Depth: 10, Height: 10, Priority: 1},
		})
		require.NoError(t, err)
		require.Len(t, placements, 1)
		if i == 0 {
			first = placements[0].ContainerID
		} else {
			assert.Equal(t, first, placements[0].ContainerID)
		}
	}
}

func TestSearch_ByIDReturnsRetrievalSteps(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddContainer(NewContainer("contA", "Zone", 100, 85, 200))
	_, _, err := e.RequestPlacement([]Item{{ID: "001", Name: "Food", Width: 10, Depth: 10, Height: 20, Priority: 1}})
	require.NoError(t, err)

	result, err := e.Search("001", "")
	require.NoError(t, err)
	assert.True(t, result.Found)
	require.Len(t, result.RetrievalSteps, 1)
}

func TestSearch_ByNameCaseInsensitive(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddItem(Item{ID: "001", Name: "Food Packet"})

	result, err := e.Search("", "food packet")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "001", result.Item.ID)
}

func TestSearch_NotFound(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	result, err := e.Search("ghost", "")
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestRetrieve_DecrementsUsesIdempotentAtZero(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddItem(Item{ID: "x", UsageLimit: 1, UsesRemaining: 1})

	require.NoError(t, e.Retrieve("x"))
	it, _ := e.Item("x")
	assert.Equal(t, 0, it.UsesRemaining)

	require.NoError(t, e.Retrieve("x"))
	assert.Equal(t, 0, it.UsesRemaining)
}

func TestRetrieve_UnknownItem(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	err := e.Retrieve("ghost")
	require.Error(t, err)
	assert.Equal(t, KindUnknownItem, KindOf(err))
}

func TestPlace_FailsOnSpaceConflict(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddContainer(NewContainer("c", "Zone", 10, 10, 10))
	e.AddItem(Item{ID: "a"})
	e.AddItem(Item{ID: "b"})

	box := Box{Start: Point3D{0, 0, 0}, End: Point3D{5, 5, 5}}
	require.NoError(t, e.Place("a", "c", box))

	err := e.Place("b", "c", box)
	require.Error(t, err)
	assert.Equal(t, KindNoSpace, KindOf(err))
}

func TestPlace_MovesItemFromPreviousContainer(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c1 := NewContainer("c1", "Zone", 10, 10, 10)
	c2 := NewContainer("c2", "Zone", 10, 10, 10)
	e.AddContainer(c1)
	e.AddContainer(c2)
	e.AddItem(Item{ID: "a"})

	box := Box{Start: Point3D{0, 0, 0}, End: Point3D{5, 5, 5}}
	require.NoError(t, e.Place("a", "c1", box))
	require.NoError(t, e.Place("a", "c2", box))

	_, ok := c1.PositionOf("a")
	assert.False(t, ok)
	_, ok = c2.PositionOf("a")
	assert.True(t, ok)
}

func TestPlace_UnknownItemOrContainer(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	box := Box{Start: Point3D{0, 0, 0}, End: Point3D{1, 1, 1}}

	err := e.Place("ghost", "c", box)
	assert.Equal(t, KindUnknownItem, KindOf(err))

	e.AddItem(Item{ID: "a"})
	err = e.Place("a", "ghost", box)
	assert.Equal(t, KindUnknownContainer, KindOf(err))
}
