package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/lookup"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
)

// ─── Helpers de test ─────────────────────────────────────────────────────────

type fixture struct {
	ctx       context.Context
	suppliers *usecase.SupplierUseCase
	customers *usecase.CustomerUseCase
	products  *usecase.ProductUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	r := store.Repos()
	checker := lookup.NewChecker(r.Suppliers, r.Customers, r.Products, r.PurchaseOrders, r.SaleOrders)
	return &fixture{
		ctx:       context.Background(),
		suppliers: usecase.NewSupplierUseCase(r.Suppliers, checker),
		customers: usecase.NewCustomerUseCase(r.Customers, checker),
		products:  usecase.NewProductUseCase(r.Products, checker),
	}
}

func ptr[T any](v T) *T { return &v }

// ─── Proveedores ─────────────────────────────────────────────────────────────

func TestSupplier_CreateYGet(t *testing.T) {
	f := newFixture()
	created, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1001, Name: "  Acme  "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", created.Name)
	assert.NotZero(t, created.ID)

	got, err := f.suppliers.Get(f.ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestSupplier_CreateDuplicado(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1001, Name: "Acme"})
	require.NoError(t, err)

	_, err = f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1001, Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "taxid repetido")

	_, err = f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1002, Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "nombre repetido")
}

func TestSupplier_CreateEntradaInvalida(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 0, Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 5, Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplier_GetInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Get(f.ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestSupplier_UpdateTaxIDPropagaAProductos(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1001, Name: "Acme"})
	require.NoError(t, err)
	_, err = f.products.Create(f.ctx, 1001, dto.CreateProductRequest{PortNumber: 77, Name: "Tornillo"})
	require.NoError(t, err)

	updated, err := f.suppliers.Update(f.ctx, 1001, dto.PartyRequest{TaxID: 2002, Name: "Acme SAS"})
	require.NoError(t, err)
	assert.Equal(t, int64(2002), updated.TaxID)

	_, err = f.suppliers.Get(f.ctx, 1001)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.products.Get(f.ctx, 2002, 77)
	require.NoError(t, err)
	assert.Equal(t, int64(2002), got.SupplierTaxID)
}

func TestSupplier_DeleteConProductosEsConflicto(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1001, Name: "Acme"})
	require.NoError(t, err)
	_, err = f.products.Create(f.ctx, 1001, dto.CreateProductRequest{PortNumber: 77, Name: "Tornillo"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.suppliers.Delete(f.ctx, 1001), domain.ErrConflict)

	require.NoError(t, f.products.Delete(f.ctx, 1001, 77))
	require.NoError(t, f.suppliers.Delete(f.ctx, 1001))
	assert.ErrorIs(t, f.suppliers.Delete(f.ctx, 1001), domain.ErrNotFound)
}

func TestSupplier_ListPaginado(t *testing.T) {
	f := newFixture()
	for i, name := range []string{"A", "B", "C"} {
		_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: int64(i + 1), Name: name})
		require.NoError(t, err)
	}
	list, err := f.suppliers.List(f.ctx, dto.PageRequest{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Name)
	assert.Equal(t, "C", list[1].Name)
}

// ─── Clientes ────────────────────────────────────────────────────────────────

func TestCustomer_CRUD(t *testing.T) {
	f := newFixture()
	_, err := f.customers.Create(f.ctx, dto.PartyRequest{TaxID: 9, Name: "Cliente"})
	require.NoError(t, err)

	_, err = f.customers.Create(f.ctx, dto.PartyRequest{TaxID: 9, Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	updated, err := f.customers.Update(f.ctx, 9, dto.PartyRequest{TaxID: 10, Name: "Cliente 2"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.TaxID)

	_, err = f.customers.Update(f.ctx, 9, dto.PartyRequest{TaxID: 11, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	require.NoError(t, f.customers.Delete(f.ctx, 10))
	_, err = f.customers.Get(f.ctx, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Productos ───────────────────────────────────────────────────────────────

func TestProduct_CreateRequiereProveedor(t *testing.T) {
	f := newFixture()
	_, err := f.products.Create(f.ctx, 1001, dto.CreateProductRequest{PortNumber: 77, Name: "Tornillo"})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestProduct_CreateInicializaAgregados(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1001, Name: "Acme"})
	require.NoError(t, err)

	p, err := f.products.Create(f.ctx, 1001, dto.CreateProductRequest{PortNumber: 77, Name: "Tornillo"})
	require.NoError(t, err)
	assert.Zero(t, p.CostPrice)
	assert.Zero(t, p.Amount)
	assert.Zero(t, p.SalePrice)
	assert.Zero(t, p.SaleAmount)
	assert.Equal(t, int64(1), p.Version)

	_, err = f.products.Create(f.ctx, 1001, dto.CreateProductRequest{PortNumber: 77, Name: "Tuerca"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_RutaDeOtroProveedorEsNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1, Name: "Uno"})
	require.NoError(t, err)
	_, err = f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 2, Name: "Dos"})
	require.NoError(t, err)
	_, err = f.products.Create(f.ctx, 1, dto.CreateProductRequest{PortNumber: 77, Name: "Tornillo"})
	require.NoError(t, err)

	_, err = f.products.Get(f.ctx, 2, 77)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, f.products.Delete(f.ctx, 2, 77), domain.ErrProductNotFound)
}

func TestProduct_UpdateReasignaProveedor(t *testing.T) {
	f := newFixture()
	_, err := f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 1, Name: "Uno"})
	require.NoError(t, err)
	_, err = f.suppliers.Create(f.ctx, dto.PartyRequest{TaxID: 2, Name: "Dos"})
	require.NoError(t, err)
	_, err = f.products.Create(f.ctx, 1, dto.CreateProductRequest{PortNumber: 77, Name: "Tornillo"})
	require.NoError(t, err)

	_, err = f.products.Update(f.ctx, 1, 77, dto.UpdateProductRequest{SupplierTaxID: ptr(int64(3))})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)

	updated, err := f.products.Update(f.ctx, 1, 77, dto.UpdateProductRequest{
		PortNumber:    ptr(int64(78)),
		Name:          ptr("Tornillo M8"),
		SupplierTaxID: ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(78), updated.PortNumber)
	assert.Equal(t, "Tornillo M8", updated.Name)

	list, err := f.products.ListBySupplier(f.ctx, 2, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(78), list[0].PortNumber)

	all, err := f.products.List(f.ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProduct_ListBySupplierInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.products.ListBySupplier(f.ctx, 5, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
