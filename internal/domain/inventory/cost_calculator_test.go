package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/inventory"
)

func TestWeightedAverage_SinHistorialAdoptaPrecio(t *testing.T) {
	got, err := inventory.WeightedAverage(0, 0, 200, 33)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got)
}

func TestWeightedAverage_Acumula(t *testing.T) {
	// floor((200*33 + 300*11) / 44) = floor(9900/44) = 225
	got, err := inventory.WeightedAverage(200, 33, 300, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(225), got)
}

func TestWeightedAverage_RedondeaHaciaAbajo(t *testing.T) {
	// (10*1 + 11*2) / 3 = 10.66...
	got, err := inventory.WeightedAverage(10, 1, 11, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)
}

func TestWeightedAverage_PrecioCeroConStock(t *testing.T) {
	// Precio 0 con cantidad > 0 no es "sin historial": se promedia.
	got, err := inventory.WeightedAverage(0, 10, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(50), got)
}

func TestWeightedAverage_DenominadorNoPositivo(t *testing.T) {
	_, err := inventory.WeightedAverage(100, -5, 100, 5)
	assert.ErrorIs(t, err, domain.ErrReconciliation)
}

func TestWeightedAverage_SinDesbordarProductosIntermedios(t *testing.T) {
	// price*qty desborda int64 pero el promedio cabe.
	big := int64(math.MaxInt64 / 2)
	got, err := inventory.WeightedAverage(big, 4, big, 4)
	require.NoError(t, err)
	assert.Equal(t, big, got)
}

func TestAddQuantity_Desbordamiento(t *testing.T) {
	_, err := inventory.AddQuantity(math.MaxInt64, 1)
	assert.ErrorIs(t, err, domain.ErrReconciliation)

	n, err := inventory.AddQuantity(33, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(44), n)
}
