package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
	"github.com/udisondev/wildraid/internal/structure"
)

type nopLoots struct{}

func (nopLoots) SpawnResource(model.ResourceKind, int32, geom.Point) {}

type nopSpawner struct{}

func (nopSpawner) SpawnGuard(*model.UnitConfig, geom.Point) (structure.UnitHandle, error) {
	return nil, nil
}

type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0.999999 }
func (fixedRand) IntN(n int) int   { return 0 }

func newHouse(t *Tracker, id uint32) *structure.Structure {
	tmpl := &structure.Template{Kind: structure.KindHouseSmall, Name: "Small House", MaxHP: 100}
	return structure.New(id, tmpl, geom.NewPoint(0, 0), fixedRand{}, nopLoots{}, t, nopSpawner{})
}

func newStronghold(t *Tracker, id uint32) *structure.Structure {
	tmpl := &structure.Template{
		Kind:       structure.KindStronghold,
		Name:       "Stronghold",
		MaxHP:      100,
		CanRespawn: true,
		Respawn:    &structure.RespawnConfig{Delay: time.Second, SafeDistance: 5},
	}
	return structure.New(id, tmpl, geom.NewPoint(0, 0), fixedRand{}, nopLoots{}, t, nopSpawner{})
}

func TestTrackerCountsDestructions(t *testing.T) {
	tracker := NewTracker()

	newHouse(tracker, 1).Destroy()
	newHouse(tracker, 2).Destroy()
	newStronghold(tracker, 3).Destroy()

	assert.Equal(t, int32(2), tracker.Destroyed(structure.KindHouseSmall))
	assert.Equal(t, int32(1), tracker.Destroyed(structure.KindStronghold))
	assert.Equal(t, int32(0), tracker.Destroyed(structure.KindTower))
	assert.Equal(t, int32(3), tracker.TotalDestroyed())
	assert.Equal(t, int32(1), tracker.Liberated())
}

func TestTrackerCountsRespawns(t *testing.T) {
	tracker := NewTracker()
	sh := newStronghold(tracker, 1)

	sh.Destroy()
	sh.Tick(time.Second, 100)

	assert.Equal(t, structure.StateActive, sh.State())
	assert.Equal(t, int32(1), tracker.Respawned())
}
