package structure

import (
	"log/slog"

	"github.com/udisondev/wildraid/internal/loot"
	"github.com/udisondev/wildraid/internal/model"
)

// Stockpile accumulates resources carried in by allied worker units and
// releases them as loot when the owning structure is destroyed.
//
// Not synchronized on its own: the owning Structure serializes access.
type Stockpile struct {
	counts map[model.ResourceKind]int32
}

// NewStockpile creates an empty stockpile.
func NewStockpile() *Stockpile {
	return &Stockpile{
		counts: make(map[model.ResourceKind]int32),
	}
}

// Deposit adds carried resources. Non-positive amounts are ignored with a
// warning — workers never legitimately deposit zero.
func (s *Stockpile) Deposit(kind model.ResourceKind, amount int32) {
	if amount <= 0 {
		slog.Warn("stockpile deposit ignored", "kind", kind, "amount", amount)
		return
	}
	s.counts[kind] += amount
}

// Count returns the stored amount of one resource kind.
func (s *Stockpile) Count(kind model.ResourceKind) int32 {
	return s.counts[kind]
}

// Total returns the total stored unit count across all kinds.
func (s *Stockpile) Total() int32 {
	var total int32
	for _, c := range s.counts {
		total += c
	}
	return total
}

// Drain empties the stockpile and returns what was stored, in canonical
// kind order. Called exactly once per destruction, before the on-destroy
// loot roll.
func (s *Stockpile) Drain() []loot.Drop {
	var drained []loot.Drop
	for _, kind := range model.ResourceKinds() {
		if c := s.counts[kind]; c > 0 {
			drained = append(drained, loot.Drop{Kind: kind, Count: c})
		}
	}
	s.counts = make(map[model.ResourceKind]int32)
	return drained
}

// Counts returns a copy of the stored counts (for persistence snapshots).
func (s *Stockpile) Counts() map[model.ResourceKind]int32 {
	out := make(map[model.ResourceKind]int32, len(s.counts))
	for k, c := range s.counts {
		out[k] = c
	}
	return out
}

// restore replaces the stored counts, dropping non-positive entries.
func (s *Stockpile) restore(counts map[model.ResourceKind]int32) {
	s.counts = make(map[model.ResourceKind]int32, len(counts))
	for k, c := range counts {
		if c > 0 {
			s.counts[k] = c
		}
	}
}
