package structure

import (
	"time"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
)

// Snapshot is the persistable slice of a structure's mutable state.
// Garrison populations are deliberately excluded: live units are not
// persisted, so a loaded garrison starts empty and refills by policy.
type Snapshot struct {
	ID             uint32
	Kind           Kind
	State          State
	CurrentHP      int32
	RespawnElapsed time.Duration
	MineRemaining  int32
	Stockpile      map[model.ResourceKind]int32
	Position       geom.Point
}

// Snapshot captures the current persistable state.
func (s *Structure) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:        s.id,
		Kind:      s.tmpl.Kind,
		State:     s.state,
		CurrentHP: s.currentHP,
		Stockpile: s.stockpile.Counts(),
		Position:  s.pos,
	}
	if s.respawn != nil {
		snap.RespawnElapsed = s.respawn.Elapsed()
	}
	if s.mine != nil {
		snap.MineRemaining = s.mine.Remaining()
	}
	return snap
}

// Restore applies a previously saved snapshot, clamping values back into
// their invariants. Structures whose type cannot respawn never load into
// AwaitingRespawn.
func (s *Structure) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hp := snap.CurrentHP
	if hp < 0 {
		hp = 0
	}
	if hp > s.tmpl.MaxHP {
		hp = s.tmpl.MaxHP
	}
	s.currentHP = hp

	state := snap.State
	if state == StateAwaitingRespawn && (s.respawn == nil || !s.tmpl.CanRespawn) {
		state = StateDestroyed
	}
	if state != StateActive && hp > 0 {
		// Destroyed implies zero health.
		s.currentHP = 0
	}
	if state == StateActive && hp <= 0 {
		// Zero health never loads back as Active.
		if s.respawn != nil && s.tmpl.CanRespawn {
			state = StateAwaitingRespawn
		} else {
			state = StateDestroyed
		}
	}
	s.state = state

	s.stockpile.restore(snap.Stockpile)

	if s.respawn != nil {
		s.respawn.restore(snap.RespawnElapsed)
	}
	if s.mine != nil {
		s.mine.restore(snap.MineRemaining)
	}
}
