package progress

import (
	"log/slog"
	"sync"

	"github.com/udisondev/wildraid/internal/structure"
)

// Tracker consumes structure lifecycle notifications and keeps the raid
// progress counters quest-style consumers read.
type Tracker struct {
	mu sync.RWMutex

	destroyed map[structure.Kind]int32
	liberated int32 // strongholds destroyed (zones liberated)
	respawned int32
}

// NewTracker creates an empty progress tracker.
func NewTracker() *Tracker {
	return &Tracker{
		destroyed: make(map[structure.Kind]int32),
	}
}

// StructureDestroyed records a destruction event.
func (t *Tracker) StructureDestroyed(s *structure.Structure) {
	t.mu.Lock()
	t.destroyed[s.Kind()]++
	t.mu.Unlock()

	slog.Info("structure destroyed", "structure", s.Name(), "id", s.ID(), "kind", s.Kind())
}

// StrongholdDestroyed records a zone liberation.
func (t *Tracker) StrongholdDestroyed(s *structure.Structure) {
	t.mu.Lock()
	t.liberated++
	t.mu.Unlock()

	slog.Info("stronghold destroyed, zone liberated", "structure", s.Name(), "id", s.ID())
}

// StructureRespawned records a stronghold re-arming.
func (t *Tracker) StructureRespawned(s *structure.Structure) {
	t.mu.Lock()
	t.respawned++
	t.mu.Unlock()

	slog.Info("structure respawned", "structure", s.Name(), "id", s.ID())
}

// Destroyed returns how many structures of the given kind were destroyed.
func (t *Tracker) Destroyed(kind structure.Kind) int32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed[kind]
}

// TotalDestroyed returns the total destruction count across kinds.
func (t *Tracker) TotalDestroyed() int32 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total int32
	for _, c := range t.destroyed {
		total += c
	}
	return total
}

// Liberated returns how many stronghold zones were liberated.
func (t *Tracker) Liberated() int32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.liberated
}

// Respawned returns how many structures re-armed after destruction.
func (t *Tracker) Respawned() int32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.respawned
}
