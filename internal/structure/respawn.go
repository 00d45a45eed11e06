package structure

import "time"

// RespawnGate implements the stronghold post-destruction cycle: a fixed
// delay followed by a player-distance gate. The gate re-checks every tick
// without resetting the timer — lingering near the ruin delays the
// respawn but never restarts the wait.
type RespawnGate struct {
	cfg     *RespawnConfig
	elapsed time.Duration
}

// NewRespawnGate creates a gate for the given config.
func NewRespawnGate(cfg *RespawnConfig) *RespawnGate {
	return &RespawnGate{cfg: cfg}
}

// Elapsed returns the time accumulated since destruction.
func (r *RespawnGate) Elapsed() time.Duration {
	return r.elapsed
}

// Tick accumulates dt and reports whether the structure may re-arm this
// tick: the delay has fully elapsed and the player is at least
// SafeDistance away.
func (r *RespawnGate) Tick(dt time.Duration, playerDistance float64) bool {
	r.elapsed += dt
	if r.elapsed < r.cfg.Delay {
		return false
	}
	return playerDistance >= r.cfg.SafeDistance
}

// Reset rewinds the timer for the next destruction cycle.
func (r *RespawnGate) Reset() {
	r.elapsed = 0
}

// restore sets the accumulated time (persistence).
func (r *RespawnGate) restore(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	r.elapsed = elapsed
}
