package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
)

func TestParseMovementKind(t *testing.T) {
	cases := map[string]string{
		"IN":      entity.MovementKindIN,
		"in":      entity.MovementKindIN,
		" Out ":   entity.MovementKindOUT,
		"entrada": entity.MovementKindIN,
		"saida":   entity.MovementKindOUT,
		"SAÍDA":   entity.MovementKindOUT,
	}
	for in, want := range cases {
		got, err := inventory.ParseMovementKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "ADJUSTMENT", "transfer", "x"} {
		_, err := inventory.ParseMovementKind(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestSignedDelta(t *testing.T) {
	d, err := inventory.SignedDelta(entity.MovementKindIN, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), d)

	d, err = inventory.SignedDelta(entity.MovementKindOUT, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), d)

	_, err = inventory.SignedDelta(entity.MovementKindIN, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.SignedDelta(entity.MovementKindOUT, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.SignedDelta("ADJUSTMENT", 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Igual al mínimo NO está por debajo del mínimo.
func TestBelowMinimum_Frontera(t *testing.T) {
	assert.True(t, inventory.BelowMinimum(4, 5))
	assert.False(t, inventory.BelowMinimum(5, 5))
	assert.False(t, inventory.BelowMinimum(6, 5))
	assert.True(t, inventory.BelowMinimum(-1, 0))
	assert.False(t, inventory.BelowMinimum(0, 0))

	item := &entity.Item{Quantity: 5, MinimumThreshold: 5}
	assert.False(t, item.BelowMinimum())
	item.Quantity = 2
	assert.True(t, item.BelowMinimum())
}

func TestRestockQuantity(t *testing.T) {
	assert.Equal(t, int64(13), inventory.RestockQuantity(2, 10)) // ideal 15
	assert.Equal(t, int64(6), inventory.RestockQuantity(2, 5))   // ideal 8 (7.5 hacia arriba)
	assert.Equal(t, int64(0), inventory.RestockQuantity(20, 10))
	assert.Equal(t, int64(17), inventory.RestockQuantity(-2, 10))
}

func TestValidNegativeStockPolicy(t *testing.T) {
	assert.True(t, inventory.ValidNegativeStockPolicy(inventory.NegativeStockAllow))
	assert.True(t, inventory.ValidNegativeStockPolicy(inventory.NegativeStockReject))
	assert.False(t, inventory.ValidNegativeStockPolicy("floor"))
}
