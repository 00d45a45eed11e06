package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wildraid/internal/structure"
)

func TestLoadStructureTemplates(t *testing.T) {
	LoadStructureTemplates(1, 1)

	kinds := []structure.Kind{
		structure.KindHouseSmall,
		structure.KindHouseMedium,
		structure.KindHouseLarge,
		structure.KindTower,
		structure.KindStronghold,
		structure.KindGoldMine,
	}
	for _, kind := range kinds {
		require.NotNil(t, GetTemplate(kind), "missing template for %v", kind)
	}

	small := GetTemplate(structure.KindHouseSmall)
	assert.Equal(t, int32(100), small.MaxHP)
	assert.False(t, small.CanRespawn)
	assert.Equal(t, int32(5), small.OnDestroy.WoodMin)
	assert.Equal(t, int32(8), small.OnDestroy.WoodMax)

	require.NotNil(t, small.Garrison)
	require.Len(t, small.Garrison.Roster, 2)
	assert.Equal(t, int32(70), small.Garrison.Roster[0].Weight)
	assert.Equal(t, "Villager", small.Garrison.Roster[0].Unit.Name())
	assert.Equal(t, int32(30), small.Garrison.Roster[1].Weight)
}

func TestStrongholdTemplate(t *testing.T) {
	LoadStructureTemplates(1, 1)
	sh := GetTemplate(structure.KindStronghold)

	assert.True(t, sh.CanRespawn)
	require.NotNil(t, sh.Respawn)
	assert.Equal(t, float64(25), sh.Respawn.SafeDistance)

	require.NotNil(t, sh.Garrison)
	assert.Equal(t, structure.PolicyRegenerating, sh.Garrison.Policy)
	assert.Equal(t, int32(8), sh.Garrison.Cap)
	require.NotNil(t, sh.Garrison.Support)
	assert.Equal(t, "Shaman", sh.Garrison.Support.Name())
	assert.Equal(t, 0.5, sh.Garrison.SupportChance)
}

func TestGoldMineTemplate(t *testing.T) {
	LoadStructureTemplates(1, 1)
	mine := GetTemplate(structure.KindGoldMine)

	require.NotNil(t, mine.Mine)
	assert.Nil(t, mine.Garrison)
	assert.Equal(t, int32(30), mine.Mine.Capacity)
	assert.Equal(t, 0.30, mine.Mine.ExtractionChance)
	assert.Equal(t, int32(5), mine.Mine.MinerCap)
	require.NotNil(t, mine.Mine.Miner)
	assert.Equal(t, "Miner", mine.Mine.Miner.Name())
}

func TestRateMultipliersScaleAtBuildTime(t *testing.T) {
	LoadStructureTemplates(5, 2)
	small := GetTemplate(structure.KindHouseSmall)

	// 0.20 * 5 = 1.0; chances clamp at 1.
	assert.Equal(t, 1.0, small.OnHit.Wood)
	assert.Equal(t, int32(10), small.OnDestroy.WoodMin)
	assert.Equal(t, int32(16), small.OnDestroy.WoodMax)

	// Non-positive multipliers fall back to x1.
	LoadStructureTemplates(0, -3)
	small = GetTemplate(structure.KindHouseSmall)
	assert.Equal(t, 0.20, small.OnHit.Wood)
	assert.Equal(t, int32(5), small.OnDestroy.WoodMin)
}

func TestGetTemplateUnknownKind(t *testing.T) {
	LoadStructureTemplates(1, 1)
	assert.Nil(t, GetTemplate(structure.Kind(99)))
}

func TestAllRosterUnitsResolve(t *testing.T) {
	LoadStructureTemplates(1, 1)

	for _, def := range structureDefs {
		tmpl := GetTemplate(def.kind)
		require.NotNil(t, tmpl)
		if tmpl.Garrison == nil {
			continue
		}
		for _, e := range tmpl.Garrison.Roster {
			assert.NotNil(t, e.Unit, "unresolved roster unit in %s", tmpl.Name)
		}
	}
}
