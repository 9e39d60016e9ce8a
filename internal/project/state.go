package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/ninaadsaxena/csms-nsh/internal/engine"
)

// containerSnapshot and itemSnapshot are the JSON-serializable mirrors of
// engine.Container and engine.Item used to persist registry state between
// CLI invocations, grounded in the teacher's internal/project/inventory.go
// load/save pattern (each CLI run is a fresh process, so state that
// survives a run must round-trip through disk, unlike the teacher's
// single-process GUI).
type containerSnapshot struct {
	ID     string `json:"id"`
	Zone   string `json:"zone"`
	Width  int    `json:"width"`
	Depth  int    `json:"depth"`
	Height int    `json:"height"`
}

type itemSnapshot struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Width         int        `json:"width"`
	Depth         int        `json:"depth"`
	Height        int        `json:"height"`
	Mass          float64    `json:"mass"`
	Priority      int        `json:"priority"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	UsageLimit    int        `json:"usage_limit"`
	UsesRemaining int        `json:"uses_remaining"`
	PreferredZone string     `json:"preferred_zone,omitempty"`
	ContainerID   string       `json:"container_id,omitempty"`
	Placement     *boxSnapshot `json:"placement,omitempty"`
}

type boxSnapshot struct {
	StartW, StartD, StartH int
	EndW, EndD, EndH       int
}

type stateSnapshot struct {
	Now        time.Time           `json:"now"`
	Containers []containerSnapshot `json:"containers"`
	Items      []itemSnapshot      `json:"items"`
}

// DefaultStatePath returns the default file path for engine state, at
// ~/.stowctl/state.json.
func DefaultStatePath() string {
	return filepath.Join(DefaultConfigDir(), "state.json")
}

// SaveEngineState snapshots e to path as indented JSON.
func SaveEngineState(path string, e *engine.Engine) error {
	snap := stateSnapshot{Now: e.Now()}
	for _, c := range e.Containers() {
		snap.Containers = append(snap.Containers, containerSnapshot{
			ID: c.ID, Zone: c.Zone, Width: c.Width, Depth: c.Depth, Height: c.Height,
		})
	}
	for _, it := range e.Items() {
		is := itemSnapshot{
			ID: it.ID, Name: it.Name, Width: it.Width, Depth: it.Depth, Height: it.Height,
			Mass: it.Mass, Priority: it.Priority, ExpiryDate: it.ExpiryDate,
			UsageLimit: it.UsageLimit, UsesRemaining: it.UsesRemaining,
			PreferredZone: it.PreferredZone, ContainerID: it.ContainerID,
		}
		if it.Placement != nil {
			is.Placement = &boxSnapshot{
				StartW: it.Placement.Start.W, StartD: it.Placement.Start.D, StartH: it.Placement.Start.H,
				EndW: it.Placement.End.W, EndD: it.Placement.End.D, EndH: it.Placement.End.H,
			}
		}
		snap.Items = append(snap.Items, is)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create state dir")
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal state")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write state")
}

// LoadEngineState reads the snapshot at path and reconstructs an Engine. If
// the file does not exist it returns a fresh Engine clocked at now.
func LoadEngineState(path string, now time.Time) (*engine.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return engine.NewEngine(now), nil
		}
		return nil, errors.Wrap(err, "read state")
	}

	var snap stateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "unmarshal state")
	}

	e := engine.NewEngine(snap.Now)
	containers := make(map[string]*engine.Container, len(snap.Containers))
	for _, cs := range snap.Containers {
		c := engine.NewContainer(cs.ID, cs.Zone, cs.Width, cs.Depth, cs.Height)
		e.AddContainer(c)
		containers[cs.ID] = c
	}
	for _, is := range snap.Items {
		it := engine.Item{
			ID: is.ID, Name: is.Name, Width: is.Width, Depth: is.Depth, Height: is.Height,
			Mass: is.Mass, Priority: is.Priority, ExpiryDate: is.ExpiryDate,
			UsageLimit: is.UsageLimit, UsesRemaining: is.UsesRemaining,
			PreferredZone: is.PreferredZone,
		}
		e.AddItem(it)
		if is.Placement != nil && is.ContainerID != "" {
			if c, ok := containers[is.ContainerID]; ok {
				box := engine.Box{
					Start: engine.Point3D{W: is.Placement.StartW, D: is.Placement.StartD, H: is.Placement.StartH},
					End:   engine.Point3D{W: is.Placement.EndW, D: is.Placement.EndD, H: is.Placement.EndH},
				}
				_ = e.Place(is.ID, is.ContainerID, box)
			}
		}
	}
	return e, nil
}
