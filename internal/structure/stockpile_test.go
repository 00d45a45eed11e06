package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wildraid/internal/model"
)

func TestStockpile_DepositAndCount(t *testing.T) {
	s := NewStockpile()

	s.Deposit(model.ResourceMeat, 3)
	s.Deposit(model.ResourceMeat, 2)
	s.Deposit(model.ResourceWood, 1)

	assert.Equal(t, int32(5), s.Count(model.ResourceMeat))
	assert.Equal(t, int32(1), s.Count(model.ResourceWood))
	assert.Equal(t, int32(0), s.Count(model.ResourceGold))
	assert.Equal(t, int32(6), s.Total())
}

func TestStockpile_IgnoresNonPositiveDeposits(t *testing.T) {
	s := NewStockpile()

	s.Deposit(model.ResourceWood, 0)
	s.Deposit(model.ResourceWood, -4)

	assert.Equal(t, int32(0), s.Total())
}

func TestStockpile_DrainEmptiesOnce(t *testing.T) {
	s := NewStockpile()
	s.Deposit(model.ResourceGold, 2)
	s.Deposit(model.ResourceMeat, 1)

	drained := s.Drain()
	require.Len(t, drained, 2)
	// Canonical kind order, not insertion order.
	assert.Equal(t, model.ResourceMeat, drained[0].Kind)
	assert.Equal(t, int32(1), drained[0].Count)
	assert.Equal(t, model.ResourceGold, drained[1].Kind)
	assert.Equal(t, int32(2), drained[1].Count)

	assert.Equal(t, int32(0), s.Total())
	assert.Empty(t, s.Drain(), "second drain yields nothing")
}

func TestStockpile_CountsIsACopy(t *testing.T) {
	s := NewStockpile()
	s.Deposit(model.ResourceWood, 7)

	counts := s.Counts()
	counts[model.ResourceWood] = 0

	assert.Equal(t, int32(7), s.Count(model.ResourceWood))
}

func TestStockpile_RestoreDropsNonPositive(t *testing.T) {
	s := NewStockpile()
	s.Deposit(model.ResourceMeat, 9)

	s.restore(map[model.ResourceKind]int32{
		model.ResourceWood: 3,
		model.ResourceGold: -1,
	})

	assert.Equal(t, int32(0), s.Count(model.ResourceMeat))
	assert.Equal(t, int32(3), s.Count(model.ResourceWood))
	assert.Equal(t, int32(0), s.Count(model.ResourceGold))
}
