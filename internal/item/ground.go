package item

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

// Pile is a dropped resource pile lying on the ground, waiting for the
// player to pick it up.
type Pile struct {
	objectID  uint32
	kind      model.ResourceKind
	count     int32
	position  geom.Point
	droppedAt time.Time
}

// ObjectID returns the pile's object ID.
func (p *Pile) ObjectID() uint32 { return p.objectID }

// Kind returns the resource kind.
func (p *Pile) Kind() model.ResourceKind { return p.kind }

// Count returns the resource amount.
func (p *Pile) Count() int32 { return p.count }

// Position returns where the pile lies.
func (p *Pile) Position() geom.Point { return p.position }

// DroppedAt returns when the pile was dropped.
func (p *Pile) DroppedAt() time.Time { return p.droppedAt }

// GroundManager receives loot-spawn requests from structures and keeps
// the dropped piles until they are picked up or expire.
type GroundManager struct {
	mu    sync.Mutex
	piles map[uint32]*Pile

	autoDestroy time.Duration
	objectIDCounter atomic.Uint32

	ticker *time.Ticker
	stopCh chan struct{}
}

// NewGroundManager creates a ground-item manager. Piles older than
// autoDestroy are removed by the sweep loop; zero disables expiry.
func NewGroundManager(autoDestroy time.Duration) *GroundManager {
	return &GroundManager{
		piles:       make(map[uint32]*Pile),
		autoDestroy: autoDestroy,
		stopCh:      make(chan struct{}),
	}
}

// SpawnResource drops a resource pile at the given position. Implements
// the structure engine's loot-spawn boundary; fire-and-forget.
func (m *GroundManager) SpawnResource(kind model.ResourceKind, count int32, pos geom.Point) {
	if count <= 0 {
		return
	}

	objectID := m.objectIDCounter.Add(1)
	pile := &Pile{
		objectID:  objectID,
		kind:      kind,
		count:     count,
		position:  pos,
		droppedAt: time.Now(),
	}

	m.mu.Lock()
	m.piles[objectID] = pile
	m.mu.Unlock()

	slog.Debug("resource dropped",
		"objectID", objectID,
		"kind", kind,
		"count", count,
		"position", pos)
}

// Pickup removes a pile and returns it (player pickup path).
func (m *GroundManager) Pickup(objectID uint32) (*Pile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pile, ok := m.piles[objectID]
	if !ok {
		return nil, false
	}
	delete(m.piles, objectID)
	return pile, true
}

// Count returns the number of piles on the ground.
func (m *GroundManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.piles)
}

// CountOf returns the total dropped units of one resource kind.
func (m *GroundManager) CountOf(kind model.ResourceKind) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total int32
	for _, p := range m.piles {
		if p.kind == kind {
			total += p.count
		}
	}
	return total
}

// Sweep removes piles older than the auto-destroy window and returns how
// many were removed.
func (m *GroundManager) Sweep(now time.Time) int {
	if m.autoDestroy <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, p := range m.piles {
		if now.Sub(p.droppedAt) >= m.autoDestroy {
			delete(m.piles, id)
			removed++
		}
	}
	return removed
}

// Start runs the expiry sweep loop (blocks until context is canceled).
func (m *GroundManager) Start(ctx context.Context) error {
	m.ticker = time.NewTicker(1 * time.Second)
	defer m.ticker.Stop()

	slog.Info("ground item sweeper started", "autoDestroy", m.autoDestroy)

	for {
		select {
		case <-ctx.Done():
			slog.Info("ground item sweeper stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("ground item sweeper stopped")
			return nil

		case now := <-m.ticker.C:
			if removed := m.Sweep(now); removed > 0 {
				slog.Debug("expired ground items removed", "count", removed)
			}
		}
	}
}

// Stop stops the sweep loop.
func (m *GroundManager) Stop() {
	close(m.stopCh)
}
