package data

import (
	"time"

	"github.com/udisondev/wildraid/internal/loot"
	"github.com/udisondev/wildraid/internal/structure"
)

// rosterEntryDef — one weighted unit option in a composition table.
type rosterEntryDef struct {
	unitID int32
	weight int32
}

// garrisonDef — garrison parameters for Go literals.
type garrisonDef struct {
	policy          structure.Policy
	cap             int32
	spawnInterval   time.Duration
	radius          float64
	activationRange float64
	roster          []rosterEntryDef
	supportID       int32 // 0 = no support substitution
	supportChance   float64
}

// mineDef — resource node parameters for Go literals.
type mineDef struct {
	capacity         int32
	extractionChance float64
	regenInterval    time.Duration
	regenAmount      int32
	minerCap         int32
	minerPerUnits    int32
	minerID          int32
	radius           float64
}

// structureDef — structure definition for Go literals. Composition
// weights follow the design tables: e.g. the small house spawns 70%
// unarmed and 30% armed workers.
type structureDef struct {
	kind        structure.Kind
	name        string
	maxHP       int32
	canRespawn  bool
	lootScatter float64

	onHitWood float64
	onHitGold float64

	destroyWoodMin, destroyWoodMax int32
	destroyGoldMin, destroyGoldMax int32

	garrison *garrisonDef
	respawnDelay time.Duration // 0 = no respawn cycle
	safeDistance float64
	mine         *mineDef
}

var structureDefs = []structureDef{
	{
		kind:        structure.KindHouseSmall,
		name:        "Small House",
		maxHP:       100,
		lootScatter: 1.5,
		onHitWood:   0.20,
		onHitGold:   0.05,
		destroyWoodMin: 5, destroyWoodMax: 8,
		garrison: &garrisonDef{
			policy:          structure.PolicyDepleting,
			cap:             3,
			spawnInterval:   5 * time.Second,
			radius:          2.5,
			activationRange: 25,
			roster: []rosterEntryDef{
				{unitID: UnitVillager, weight: 70},
				{unitID: UnitArmedVillager, weight: 30},
			},
		},
	},
	{
		kind:        structure.KindHouseMedium,
		name:        "House",
		maxHP:       250,
		lootScatter: 2,
		onHitWood:   0.20,
		onHitGold:   0.08,
		destroyWoodMin: 10, destroyWoodMax: 16,
		destroyGoldMin: 1, destroyGoldMax: 3,
		garrison: &garrisonDef{
			policy:          structure.PolicyDepleting,
			cap:             4,
			spawnInterval:   5 * time.Second,
			radius:          3,
			activationRange: 28,
			roster: []rosterEntryDef{
				{unitID: UnitVillager, weight: 30},
				{unitID: UnitArmedVillager, weight: 40},
				{unitID: UnitSpearman, weight: 30},
			},
		},
	},
	{
		kind:        structure.KindHouseLarge,
		name:        "Large House",
		maxHP:       500,
		lootScatter: 2.5,
		onHitWood:   0.22,
		onHitGold:   0.10,
		destroyWoodMin: 18, destroyWoodMax: 28,
		destroyGoldMin: 3, destroyGoldMax: 6,
		garrison: &garrisonDef{
			policy:          structure.PolicyDepleting,
			cap:             6,
			spawnInterval:   4 * time.Second,
			radius:          3.5,
			activationRange: 30,
			roster: []rosterEntryDef{
				{unitID: UnitArmedVillager, weight: 20},
				{unitID: UnitSpearman, weight: 30},
				{unitID: UnitBrute, weight: 30},
				{unitID: UnitArcher, weight: 20},
			},
		},
	},
	{
		kind:        structure.KindTower,
		name:        "Watchtower",
		maxHP:       400,
		lootScatter: 2,
		onHitWood:   0.15,
		onHitGold:   0.05,
		destroyWoodMin: 12, destroyWoodMax: 20,
		destroyGoldMin: 2, destroyGoldMax: 4,
		garrison: &garrisonDef{
			policy:          structure.PolicyDepleting,
			cap:             4,
			spawnInterval:   6 * time.Second,
			radius:          2,
			activationRange: 35,
			roster: []rosterEntryDef{
				{unitID: UnitArcher, weight: 40},
				{unitID: UnitSpearman, weight: 30},
				{unitID: UnitBrute, weight: 30},
			},
		},
	},
	{
		kind:        structure.KindStronghold,
		name:        "Stronghold",
		maxHP:       1500,
		canRespawn:  true,
		lootScatter: 3.5,
		onHitWood:   0.25,
		onHitGold:   0.15,
		destroyWoodMin: 30, destroyWoodMax: 50,
		destroyGoldMin: 10, destroyGoldMax: 20,
		garrison: &garrisonDef{
			policy:          structure.PolicyRegenerating,
			cap:             8,
			spawnInterval:   3 * time.Second,
			radius:          4,
			activationRange: 40,
			// Uniform roster; half of all rolls are substituted by the
			// support unit.
			roster: []rosterEntryDef{
				{unitID: UnitArmedVillager, weight: 1},
				{unitID: UnitSpearman, weight: 1},
				{unitID: UnitBrute, weight: 1},
				{unitID: UnitArcher, weight: 1},
			},
			supportID:     UnitShaman,
			supportChance: 0.5,
		},
		respawnDelay: 60 * time.Second,
		safeDistance: 25,
	},
	{
		kind:        structure.KindGoldMine,
		name:        "Gold Mine",
		maxHP:       1, // never decremented; the node is not destructible
		lootScatter: 1.5,
		mine: &mineDef{
			capacity:         30,
			extractionChance: 0.30,
			regenInterval:    20 * time.Second,
			regenAmount:      1,
			minerCap:         5,
			minerPerUnits:    6,
			minerID:          UnitMiner,
			radius:           3,
		},
	},
}

var structureTemplates map[structure.Kind]*structure.Template

// LoadStructureTemplates builds the structure template table from the
// literal defs. Rate multipliers scale on-hit chances and destroy
// amounts at build time so the roll paths stay pure.
func LoadStructureTemplates(chanceMult, amountMult float64) {
	if chanceMult <= 0 {
		chanceMult = 1
	}
	if amountMult <= 0 {
		amountMult = 1
	}

	loadUnitConfigs()

	structureTemplates = make(map[structure.Kind]*structure.Template, len(structureDefs))
	for _, def := range structureDefs {
		structureTemplates[def.kind] = buildTemplate(def, chanceMult, amountMult)
	}
}

// GetTemplate returns the template for a structure kind, or nil if the
// tables have not been loaded or the kind is unknown.
func GetTemplate(kind structure.Kind) *structure.Template {
	return structureTemplates[kind]
}

func buildTemplate(def structureDef, chanceMult, amountMult float64) *structure.Template {
	tmpl := &structure.Template{
		Kind:        def.kind,
		Name:        def.name,
		MaxHP:       def.maxHP,
		CanRespawn:  def.canRespawn,
		LootScatter: def.lootScatter,
		OnHit: loot.HitChances{
			Wood: clampChance(def.onHitWood * chanceMult),
			Gold: clampChance(def.onHitGold * chanceMult),
		},
		OnDestroy: loot.DestroyRanges{
			WoodMin: scaleAmount(def.destroyWoodMin, amountMult),
			WoodMax: scaleAmount(def.destroyWoodMax, amountMult),
			GoldMin: scaleAmount(def.destroyGoldMin, amountMult),
			GoldMax: scaleAmount(def.destroyGoldMax, amountMult),
		},
	}

	if g := def.garrison; g != nil {
		cfg := &structure.GarrisonConfig{
			Policy:          g.policy,
			Cap:             g.cap,
			SpawnInterval:   g.spawnInterval,
			Radius:          g.radius,
			ActivationRange: g.activationRange,
			SupportChance:   g.supportChance,
		}
		for _, e := range g.roster {
			cfg.Roster = append(cfg.Roster, structure.RosterEntry{
				Unit:   GetUnitConfig(e.unitID),
				Weight: e.weight,
			})
		}
		if g.supportID != 0 {
			cfg.Support = GetUnitConfig(g.supportID)
		}
		tmpl.Garrison = cfg
	}

	if def.respawnDelay > 0 {
		tmpl.Respawn = &structure.RespawnConfig{
			Delay:        def.respawnDelay,
			SafeDistance: def.safeDistance,
		}
	}

	if m := def.mine; m != nil {
		tmpl.Mine = &structure.MineConfig{
			Capacity:         m.capacity,
			ExtractionChance: m.extractionChance,
			RegenInterval:    m.regenInterval,
			RegenAmount:      m.regenAmount,
			MinerCap:         m.minerCap,
			MinerPerUnits:    m.minerPerUnits,
			Miner:            GetUnitConfig(m.minerID),
			Radius:           m.radius,
		}
	}

	return tmpl
}

func clampChance(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < 0 {
		return 0
	}
	return c
}

func scaleAmount(n int32, mult float64) int32 {
	if n <= 0 || mult == 1 {
		return n
	}
	scaled := int32(float64(n) * mult)
	if scaled <= 0 {
		scaled = 1
	}
	return scaled
}
