package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateDay_AdvancesOneCalendarDay(t *testing.T) {
	// L4, and the month-end calendar rollover the original source gets wrong.
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	e := NewEngine(start)

	now, _ := e.SimulateDay(nil)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), now)
	assert.True(t, now.After(start))
}

func TestSimulateDay_UsageAndOutOfUses(t *testing.T) {
	// S4: usageLimit=1, usesRemaining=1. First tick: usesRemaining=0 and
	// one outOfUses event. Second tick: usesRemaining stays 0, no
	// additional outOfUses event.
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.AddItem(Item{ID: "item", Name: "Widget", UsageLimit: 1, UsesRemaining: 1})

	_, changes := e.SimulateDay([]string{"item"})
	require.Len(t, changes.Used, 1)
	assert.Equal(t, 0, changes.Used[0].UsesRemaining)
	require.Len(t, changes.OutOfUses, 1)
	assert.Equal(t, "item", changes.OutOfUses[0].ItemID)

	_, changes = e.SimulateDay([]string{"item"})
	require.Len(t, changes.Used, 1)
	assert.Equal(t, 0, changes.Used[0].UsesRemaining)
	assert.Len(t, changes.OutOfUses, 0)
}

func TestSimulateDay_UnknownUsedItemIgnored(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	_, changes := e.SimulateDay([]string{"ghost"})
	assert.Empty(t, changes.Used)
}

func TestSimulateDay_ExpiryReemittedEveryTick(t *testing.T) {
	e := NewEngine(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	expiry := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	e.AddItem(Item{ID: "milk", Name: "Milk", ExpiryDate: &expiry, UsageLimit: 1, UsesRemaining: 1})

	_, c1 := e.SimulateDay(nil)
	require.Len(t, c1.Expired, 1)

	_, c2 := e.SimulateDay(nil)
	require.Len(t, c2.Expired, 1)
}
