package unit

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

// Manager creates and tracks live guard units. It only owns liveness
// bookkeeping — spawned guards get no behavior here; movement and combat
// belong to the host's AI subsystem.
type Manager struct {
	units     sync.Map // map[uint32]*model.GuardUnit — objectID → unit
	unitCount atomic.Int32

	objectIDCounter atomic.Uint32
}

// NewManager creates a unit manager.
func NewManager() *Manager {
	m := &Manager{}

	// Start objectID counter from 100000 (structures use lower IDs)
	m.objectIDCounter.Store(100000)

	return m
}

// Spawn creates a live guard unit from the given template.
func (m *Manager) Spawn(config *model.UnitConfig, pos geom.Point) (*model.GuardUnit, error) {
	if config == nil {
		return nil, fmt.Errorf("spawning guard: nil unit config")
	}

	objectID := m.objectIDCounter.Add(1)
	u := model.NewGuardUnit(objectID, config, pos)

	m.units.Store(objectID, u)
	m.unitCount.Add(1)

	slog.Debug("guard unit spawned",
		"objectID", objectID,
		"name", config.Name(),
		"role", config.Role(),
		"position", pos)

	return u, nil
}

// Get returns a unit by object ID.
func (m *Manager) Get(objectID uint32) (*model.GuardUnit, bool) {
	value, ok := m.units.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*model.GuardUnit), true
}

// Kill marks a unit dead. The handle stays registered until Sweep so
// garrisons observe the death on their next tick.
func (m *Manager) Kill(objectID uint32) bool {
	u, ok := m.Get(objectID)
	if !ok {
		return false
	}
	if !u.Kill() {
		return false
	}
	slog.Debug("guard unit killed", "objectID", objectID, "name", u.Config().Name())
	return true
}

// Sweep removes dead units from the registry and returns how many were
// removed.
func (m *Manager) Sweep() int {
	removed := 0
	m.units.Range(func(key, value any) bool {
		if !value.(*model.GuardUnit).Alive() {
			m.units.Delete(key)
			m.unitCount.Add(-1)
			removed++
		}
		return true
	})
	return removed
}

// Count returns the number of registered units (O(1) cached count).
func (m *Manager) Count() int {
	return int(m.unitCount.Load())
}
