package structure

import (
	"fmt"
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/loot"
	"github.com/udisondev/wildraid/internal/model"
)

// scriptRand replays fixed sequences of draws. Exhausted Float64 draws
// return 0.999999 (fail every chance roll); exhausted IntN draws return 0.
type scriptRand struct {
	floats []float64
	fi     int
	ints   []int
	ii     int
}

func (r *scriptRand) Float64() float64 {
	if r.fi >= len(r.floats) {
		return 0.999999
	}
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *scriptRand) IntN(n int) int {
	if r.ii >= len(r.ints) {
		return 0
	}
	v := r.ints[r.ii]
	r.ii++
	if v >= n {
		v = n - 1
	}
	return v
}

// lootRequest is one recorded SpawnResource call.
type lootRequest struct {
	kind  model.ResourceKind
	count int32
	pos   geom.Point
}

// lootRecorder records loot-spawn requests.
type lootRecorder struct {
	requests []lootRequest
}

func (l *lootRecorder) SpawnResource(kind model.ResourceKind, count int32, pos geom.Point) {
	l.requests = append(l.requests, lootRequest{kind: kind, count: count, pos: pos})
}

func (l *lootRecorder) total(kind model.ResourceKind) int32 {
	var total int32
	for _, r := range l.requests {
		if r.kind == kind {
			total += r.count
		}
	}
	return total
}

func (l *lootRecorder) countRequests(kind model.ResourceKind) int {
	n := 0
	for _, r := range l.requests {
		if r.kind == kind {
			n++
		}
	}
	return n
}

// eventRecorder records lifecycle notifications.
type eventRecorder struct {
	destroyed   []uint32
	strongholds []uint32
	respawned   []uint32
}

func (e *eventRecorder) StructureDestroyed(s *Structure)  { e.destroyed = append(e.destroyed, s.ID()) }
func (e *eventRecorder) StrongholdDestroyed(s *Structure) { e.strongholds = append(e.strongholds, s.ID()) }
func (e *eventRecorder) StructureRespawned(s *Structure)  { e.respawned = append(e.respawned, s.ID()) }

// stubUnit is a controllable unit handle.
type stubUnit struct {
	alive bool
}

func (u *stubUnit) Alive() bool { return u.alive }

// stubSpawner hands out stubUnits and remembers them for later killing.
type stubSpawner struct {
	fail    bool
	spawned []*stubUnit
	configs []*model.UnitConfig
}

func (s *stubSpawner) SpawnGuard(config *model.UnitConfig, pos geom.Point) (UnitHandle, error) {
	if s.fail {
		return nil, fmt.Errorf("spawn refused")
	}
	u := &stubUnit{alive: true}
	s.spawned = append(s.spawned, u)
	s.configs = append(s.configs, config)
	return u, nil
}

func (s *stubSpawner) killAll() {
	for _, u := range s.spawned {
		u.alive = false
	}
}

// houseTemplate is a minimal destructible template. Loot scatter is zero
// so position draws never consume random values in tests.
func houseTemplate() *Template {
	return &Template{
		Kind:  KindHouseSmall,
		Name:  "Small House",
		MaxHP: 100,
		OnDestroy: loot.DestroyRanges{
			WoodMin: 5, WoodMax: 8,
		},
	}
}

func strongholdTemplate() *Template {
	return &Template{
		Kind:       KindStronghold,
		Name:       "Stronghold",
		MaxHP:      200,
		CanRespawn: true,
		Respawn: &RespawnConfig{
			Delay:        10 * time.Second,
			SafeDistance: 5,
		},
	}
}

func newTestStructure(tmpl *Template, rng geom.Rand) (*Structure, *lootRecorder, *eventRecorder, *stubSpawner) {
	loots := &lootRecorder{}
	events := &eventRecorder{}
	spawner := &stubSpawner{}
	if rng == nil {
		rng = &scriptRand{}
	}
	s := New(1, tmpl, geom.NewPoint(10, 10), rng, loots, events, spawner)
	return s, loots, events, spawner
}
