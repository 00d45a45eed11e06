package world

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/structure"
)

// World owns the structure registry, the player position and the tick
// loop. Every tick it measures the player distance per structure and
// advances that structure's timers; combat damage arrives between ticks
// through the structures themselves.
type World struct {
	structures     sync.Map // map[uint32]*structure.Structure — objectID → structure
	structureCount atomic.Int32

	mu        sync.RWMutex
	playerPos geom.Point

	tickInterval    time.Duration
	ticker          *time.Ticker
	stopCh          chan struct{}
	objectIDCounter atomic.Uint32
}

// New creates a world ticking at the given interval.
func New(tickInterval time.Duration) *World {
	if tickInterval <= 0 {
		tickInterval = 100 * time.Millisecond
	}
	return &World{
		tickInterval: tickInterval,
		stopCh:       make(chan struct{}),
	}
}

// NextObjectID allocates a unique structure object ID.
func (w *World) NextObjectID() uint32 {
	return w.objectIDCounter.Add(1)
}

// AddStructure registers a structure with the tick loop.
func (w *World) AddStructure(s *structure.Structure) {
	w.structures.Store(s.ID(), s)
	w.structureCount.Add(1)

	slog.Info("structure added to world",
		"id", s.ID(),
		"structure", s.Name(),
		"kind", s.Kind(),
		"position", s.Position())
}

// RemoveStructure unregisters a structure (discarded, not respawning).
func (w *World) RemoveStructure(objectID uint32) {
	if _, ok := w.structures.LoadAndDelete(objectID); ok {
		w.structureCount.Add(-1)
		slog.Info("structure removed from world", "id", objectID)
	}
}

// Structure returns a structure by object ID.
func (w *World) Structure(objectID uint32) (*structure.Structure, bool) {
	value, ok := w.structures.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*structure.Structure), true
}

// Structures calls fn for every registered structure; fn returning false
// stops the iteration.
func (w *World) Structures(fn func(*structure.Structure) bool) {
	w.structures.Range(func(key, value any) bool {
		return fn(value.(*structure.Structure))
	})
}

// StructureCount returns the number of structures (O(1) cached count).
func (w *World) StructureCount() int {
	return int(w.structureCount.Load())
}

// SetPlayerPosition updates the player position used for proximity gates.
func (w *World) SetPlayerPosition(pos geom.Point) {
	w.mu.Lock()
	w.playerPos = pos
	w.mu.Unlock()
}

// PlayerPosition returns the current player position.
func (w *World) PlayerPosition() geom.Point {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.playerPos
}

// TickAll advances every structure by dt against the current player
// position. Exposed separately from Start so tests and turn-based hosts
// can drive time explicitly.
func (w *World) TickAll(dt time.Duration) {
	playerPos := w.PlayerPosition()

	w.structures.Range(func(key, value any) bool {
		s := value.(*structure.Structure)
		s.Tick(dt, playerPos.Distance(s.Position()))
		return true
	})
}

// Start runs the tick loop (blocks until context is canceled).
func (w *World) Start(ctx context.Context) error {
	w.ticker = time.NewTicker(w.tickInterval)
	defer w.ticker.Stop()

	slog.Info("world tick loop started", "interval", w.tickInterval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("world tick loop stopping")
			return ctx.Err()

		case <-w.stopCh:
			slog.Info("world tick loop stopped")
			return nil

		case <-w.ticker.C:
			w.TickAll(w.tickInterval)
		}
	}
}

// Stop stops the tick loop.
func (w *World) Stop() {
	close(w.stopCh)
}
