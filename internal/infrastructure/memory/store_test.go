package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/orders"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
)

func seed(t *testing.T, store *memory.Store) orders.TxRepos {
	t.Helper()
	ctx := context.Background()
	r := store.Repos()
	require.NoError(t, r.Suppliers.Create(ctx, &entity.Supplier{TaxID: 1, Name: "Acme"}))
	require.NoError(t, r.Products.Create(ctx, &entity.Product{PortNumber: 10, Name: "Tornillo", SupplierTaxID: 1}))
	return r
}

func TestStore_RunRevierteEnError(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	r := seed(t, store)

	boom := errors.New("boom")
	err := store.Run(ctx, func(repos orders.TxRepos) error {
		p, err := repos.Products.GetByPortNumberForUpdate(ctx, 10)
		require.NoError(t, err)
		require.NoError(t, p.ApplyPurchase(100, 5))
		require.NoError(t, repos.Products.UpdateAggregates(ctx, p))
		require.NoError(t, repos.PurchaseOrders.Create(ctx, &entity.PurchaseOrder{UID: "a", ProductPN: 10}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := r.Products.GetByPortNumber(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, p.Amount)
	assert.Equal(t, int64(1), p.Version)
	ok, err := r.PurchaseOrders.ExistsByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_RunConfirma(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	r := seed(t, store)

	require.NoError(t, store.Run(ctx, func(repos orders.TxRepos) error {
		return repos.PurchaseOrders.Create(ctx, &entity.PurchaseOrder{UID: "a", OrderID: 20240101000000})
	}))
	ok, err := r.PurchaseOrders.ExistsByOrderID(ctx, 20240101000000)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProductRepo_UpdateAggregatesVersion(t *testing.T) {
	ctx := context.Background()
	r := seed(t, memory.NewStore())

	p, err := r.Products.GetByPortNumber(ctx, 10)
	require.NoError(t, err)
	stale := *p

	p.Amount = 5
	require.NoError(t, r.Products.UpdateAggregates(ctx, p))
	assert.Equal(t, int64(2), p.Version)

	stale.Amount = 7
	assert.ErrorIs(t, r.Products.UpdateAggregates(ctx, &stale), domain.ErrConcurrentUpdate)

	got, err := r.Products.GetByPortNumber(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Amount)
}

func TestProductRepo_RestriccionesDeEsquema(t *testing.T) {
	ctx := context.Background()
	r := seed(t, memory.NewStore())

	assert.ErrorIs(t, r.Products.Create(ctx, &entity.Product{PortNumber: 10, Name: "Otro", SupplierTaxID: 1}), domain.ErrDuplicate)
	assert.ErrorIs(t, r.Products.Create(ctx, &entity.Product{PortNumber: 11, Name: "Tornillo", SupplierTaxID: 1}), domain.ErrDuplicate)
	assert.ErrorIs(t, r.Products.Create(ctx, &entity.Product{PortNumber: 12, Name: "Tuerca", SupplierTaxID: 99}), domain.ErrConflict)
}

func TestSupplierRepo_CascadaYRestrict(t *testing.T) {
	ctx := context.Background()
	r := seed(t, memory.NewStore())

	require.NoError(t, r.Suppliers.Update(ctx, 1, &entity.Supplier{TaxID: 2, Name: "Acme"}))
	p, err := r.Products.GetByPortNumber(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.SupplierTaxID)

	assert.ErrorIs(t, r.Suppliers.Delete(ctx, 2), domain.ErrConflict)
	assert.ErrorIs(t, r.Suppliers.Delete(ctx, 1), domain.ErrSupplierNotFound)
}

func TestUserRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	users := memory.NewStore().Users()

	require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Email: "a@b.co"}))
	assert.ErrorIs(t, users.Create(ctx, &entity.User{ID: "u2", Email: "A@B.co"}), domain.ErrEmailAlreadyExists)

	u, err := users.GetByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	missing, err := users.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
