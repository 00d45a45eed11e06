package data

import "github.com/udisondev/wildraid/internal/model"

// Unit template IDs referenced by structure definitions.
const (
	UnitVillager     int32 = 1
	UnitArmedVillager int32 = 2
	UnitSpearman     int32 = 3
	UnitBrute        int32 = 4
	UnitArcher       int32 = 5
	UnitShaman       int32 = 6
	UnitMiner        int32 = 7
)

// unitDef — guard unit definition for Go literals.
type unitDef struct {
	id   int32
	name string
	role model.UnitRole
}

var unitDefs = []unitDef{
	{id: UnitVillager, name: "Villager", role: model.RoleWorker},
	{id: UnitArmedVillager, name: "Armed Villager", role: model.RoleArmedWorker},
	{id: UnitSpearman, name: "Spearman", role: model.RoleSpearGuard},
	{id: UnitBrute, name: "Brute", role: model.RoleHeavyMelee},
	{id: UnitArcher, name: "Archer", role: model.RoleRanged},
	{id: UnitShaman, name: "Shaman", role: model.RoleSupport},
	{id: UnitMiner, name: "Miner", role: model.RoleMiner},
}

var unitConfigs map[int32]*model.UnitConfig

// loadUnitConfigs builds the unit template table from the literal defs.
func loadUnitConfigs() {
	unitConfigs = make(map[int32]*model.UnitConfig, len(unitDefs))
	for _, def := range unitDefs {
		unitConfigs[def.id] = model.NewUnitConfig(def.id, def.name, def.role)
	}
}

// GetUnitConfig returns the unit template by ID, or nil if unknown.
func GetUnitConfig(id int32) *model.UnitConfig {
	return unitConfigs[id]
}
