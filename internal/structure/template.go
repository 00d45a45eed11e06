package structure

import (
	"time"

	"github.com/udisondev/wildraid/internal/loot"
	"github.com/udisondev/wildraid/internal/model"
)

// Kind identifies a structure type.
type Kind int32

const (
	KindHouseSmall Kind = iota
	KindHouseMedium
	KindHouseLarge
	KindTower
	KindStronghold
	KindGoldMine
)

// String returns the structure kind name.
func (k Kind) String() string {
	switch k {
	case KindHouseSmall:
		return "house_small"
	case KindHouseMedium:
		return "house_medium"
	case KindHouseLarge:
		return "house_large"
	case KindTower:
		return "tower"
	case KindStronghold:
		return "stronghold"
	case KindGoldMine:
		return "gold_mine"
	default:
		return "unknown"
	}
}

// KindFromString parses a structure kind name (as used in config files).
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "house_small":
		return KindHouseSmall, true
	case "house_medium":
		return KindHouseMedium, true
	case "house_large":
		return KindHouseLarge, true
	case "tower":
		return KindTower, true
	case "stronghold":
		return KindStronghold, true
	case "gold_mine":
		return KindGoldMine, true
	default:
		return 0, false
	}
}

// Policy selects how a garrison replenishes.
type Policy int32

const (
	// PolicyDepleting: the spawn counter only grows toward the cap. Dead
	// units are pruned from the live set but never free a slot — a finite
	// garrison that, once spent, never regrows.
	PolicyDepleting Policy = iota
	// PolicyRegenerating: pruning a dead unit frees its slot, so the
	// garrison keeps refilling toward the cap while activation holds.
	PolicyRegenerating
)

// String returns the policy name.
func (p Policy) String() string {
	if p == PolicyRegenerating {
		return "regenerating"
	}
	return "depleting"
}

// RosterEntry is one weighted option in a garrison composition table.
type RosterEntry struct {
	Unit   *model.UnitConfig
	Weight int32
}

// GarrisonConfig parameterizes a garrison controller.
type GarrisonConfig struct {
	Policy          Policy
	Cap             int32
	SpawnInterval   time.Duration
	Radius          float64 // spawn placement scatter
	ActivationRange float64 // player distance that enables the spawn timer
	Roster          []RosterEntry
	// Support substitution (stronghold): each roll has SupportChance to
	// produce the Support unit instead of a roster pick.
	Support       *model.UnitConfig
	SupportChance float64
}

// RespawnConfig parameterizes the destroy/hide/respawn cycle.
type RespawnConfig struct {
	Delay        time.Duration
	SafeDistance float64
}

// MineConfig parameterizes a non-destructible resource node.
type MineConfig struct {
	Capacity         int32
	ExtractionChance float64
	RegenInterval    time.Duration
	RegenAmount      int32
	MinerCap         int32
	MinerPerUnits    int32
	Miner            *model.UnitConfig
	Radius           float64 // miner placement scatter
}

// Template is the per-type policy record a Structure instance is built
// from. One engine, parameterized by data — structure types differ only
// in their template.
type Template struct {
	Kind        Kind
	Name        string
	MaxHP       int32
	CanRespawn  bool
	LootScatter float64 // offset radius for dropped resources

	OnHit     loot.HitChances
	OnDestroy loot.DestroyRanges

	Garrison *GarrisonConfig // nil — no garrison
	Respawn  *RespawnConfig  // nil — no respawn cycle
	Mine     *MineConfig     // nil — destructible structure
}
