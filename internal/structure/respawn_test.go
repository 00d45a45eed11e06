package structure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespawnGate_WaitsOutDelay(t *testing.T) {
	gate := NewRespawnGate(&RespawnConfig{Delay: 10 * time.Second, SafeDistance: 5})

	for range 9 {
		assert.False(t, gate.Tick(1*time.Second, 100), "no re-arm before the delay")
	}
	assert.True(t, gate.Tick(1*time.Second, 100))
}

func TestRespawnGate_PlayerProximityGates(t *testing.T) {
	gate := NewRespawnGate(&RespawnConfig{Delay: 10 * time.Second, SafeDistance: 5})

	// Delay elapses with the player camping at distance 2.
	for range 15 {
		assert.False(t, gate.Tick(1*time.Second, 2))
	}

	// Gate, not retry-with-backoff: the moment the player backs off the
	// re-arm fires without further waiting.
	assert.True(t, gate.Tick(1*time.Second, 5))
}

func TestStronghold_FullRespawnCycle(t *testing.T) {
	tmpl := strongholdTemplate()
	tmpl.Garrison = regeneratingConfig(2)
	s, _, events, _ := newTestStructure(tmpl, nil)

	// Build up a garrison, then raze the stronghold.
	s.Tick(1*time.Second, 5)
	require.Equal(t, 1, s.Garrison().Population())

	s.ApplyDamage(500)
	require.Equal(t, StateAwaitingRespawn, s.State())

	// Garrison does not act while destroyed.
	s.Tick(1*time.Second, 5)
	assert.Equal(t, 1, s.Garrison().Population(), "no spawns while awaiting respawn")

	// Sit at distance 2 well past the 10s delay: still down.
	for range 20 {
		s.Tick(1*time.Second, 2)
	}
	assert.Equal(t, StateAwaitingRespawn, s.State())

	// Player retreats: next tick re-arms at full health with a fresh
	// garrison.
	s.Tick(1*time.Second, 50)
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, s.MaxHP(), s.CurrentHP())
	assert.Equal(t, 0, s.Garrison().Population())
	require.Len(t, events.respawned, 1)

	// And it can be destroyed again.
	s.ApplyDamage(500)
	assert.Equal(t, StateAwaitingRespawn, s.State())
	assert.Len(t, events.destroyed, 2)
}

func TestStronghold_RespawnRestoresPosition(t *testing.T) {
	s, _, _, _ := newTestStructure(strongholdTemplate(), nil)
	origin := s.Position()

	s.ApplyDamage(500)
	for range 10 {
		s.Tick(1*time.Second, 100)
	}

	require.Equal(t, StateActive, s.State())
	assert.Equal(t, origin, s.Position())
}
