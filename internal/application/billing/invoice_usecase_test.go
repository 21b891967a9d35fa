package billing_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/application/usecase"
	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test: usecases reales sobre una DB SQLite temporal
// ──────────────────────────────────────────────────────────────────────────────

type billingEnv struct {
	invoiceUC  *billing.InvoiceUseCase
	customerUC *usecase.CustomerUseCase
	itemUC     *usecase.ItemUseCase
	store      *sqlite.Store
}

func newBillingEnv(t *testing.T) *billingEnv {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "billing.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	customerRepo := sqlite.NewCustomerRepository(store.DB())
	itemRepo := sqlite.NewItemRepository(store.DB())
	invoiceRepo := sqlite.NewInvoiceRepository(store.DB())
	txRunner := sqlite.NewTxRunner(store.DB())

	return &billingEnv{
		invoiceUC:  billing.NewInvoiceUseCase(txRunner, customerRepo, itemRepo, invoiceRepo),
		customerUC: usecase.NewCustomerUseCase(customerRepo),
		itemUC:     usecase.NewItemUseCase(itemRepo),
		store:      store,
	}
}

// seedCustomer crea un cliente de prueba y devuelve su ID.
func (env *billingEnv) seedCustomer(t *testing.T) string {
	t.Helper()
	c, err := env.customerUC.Create(dto.CreateCustomerRequest{
		Name:  "Acme S.A.S.",
		Email: "compras@acme.co",
		Phone: "3001112233",
	})
	require.NoError(t, err)
	return c.ID
}

// seedItem crea un ítem de prueba con el precio indicado y devuelve su ID.
func (env *billingEnv) seedItem(t *testing.T, name, price string) string {
	t.Helper()
	it, err := env.itemUC.Create(dto.CreateItemRequest{
		Name:  name,
		Price: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return it.ID
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_TotalEsSumaDeLineas(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	itemID := env.seedItem(t, "Consultoría", "10.0")

	out, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items:      []dto.InvoiceItemRequest{{ItemID: itemID, Quantity: qty("3")}},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// 3 x 10.0 = 30.0
	assert.True(t, out.Total.Equal(qty("30")), "total esperado 30, obtenido %s", out.Total)
	assert.Empty(t, out.Warnings)

	// El detalle persiste la línea con el precio congelado.
	detail, err := env.invoiceUC.Get(out.ID)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.True(t, detail.Lines[0].UnitPrice.Equal(qty("10.0")))
	assert.True(t, detail.Lines[0].Quantity.Equal(qty("3")))
}

func TestInvoiceCreate_ItemInexistente_GeneraWarning(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	itemID := env.seedItem(t, "Consultoría", "10")

	out, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items: []dto.InvoiceItemRequest{
			{ItemID: itemID, Quantity: qty("2")},
			{ItemID: "no-existe", Quantity: qty("5")},
		},
	})
	require.NoError(t, err, "la línea inválida se omite, no tumba la operación")

	assert.True(t, out.Total.Equal(qty("20")), "solo la línea válida aporta al total")
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "no-existe")

	detail, err := env.invoiceUC.Get(out.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Lines, 1, "la línea omitida no debe persistirse")
}

func TestInvoiceCreate_ClienteInexistente_RetornaErrNotFound(t *testing.T) {
	env := newBillingEnv(t)
	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceCreate_CantidadNoPositiva_RetornaErrInvalidInput(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	itemID := env.seedItem(t, "Consultoría", "10")

	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items:      []dto.InvoiceItemRequest{{ItemID: itemID, Quantity: qty("0")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceCreate_PrecioCongelado_NoCambiaConElItem(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	itemID := env.seedItem(t, "Consultoría", "10")

	out, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items:      []dto.InvoiceItemRequest{{ItemID: itemID, Quantity: qty("1")}},
	})
	require.NoError(t, err)

	// Subir el precio del ítem no altera facturas existentes.
	newPrice := qty("99")
	_, err = env.itemUC.Update(itemID, dto.UpdateItemRequest{Price: &newPrice})
	require.NoError(t, err)

	detail, err := env.invoiceUC.Get(out.ID)
	require.NoError(t, err)
	assert.True(t, detail.Total.Equal(qty("10")))
	assert.True(t, detail.Lines[0].UnitPrice.Equal(qty("10")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_ItemsVacios_DejaTotalEnCero(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	itemID := env.seedItem(t, "Consultoría", "10")

	created, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items:      []dto.InvoiceItemRequest{{ItemID: itemID, Quantity: qty("3")}},
	})
	require.NoError(t, err)

	empty := []dto.InvoiceItemRequest{}
	_, err = env.invoiceUC.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Items: &empty})
	require.NoError(t, err)

	detail, err := env.invoiceUC.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, detail.Total.IsZero(), "items:[] debe dejar el total en 0")
	assert.Empty(t, detail.Lines)
}

func TestInvoiceUpdate_SinItems_ConservaLineasYTotal(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	otherID := env.seedCustomer(t)
	itemID := env.seedItem(t, "Consultoría", "10")

	created, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items:      []dto.InvoiceItemRequest{{ItemID: itemID, Quantity: qty("3")}},
	})
	require.NoError(t, err)

	// Reasignar el cliente sin tocar las líneas.
	_, err = env.invoiceUC.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{CustomerID: &otherID})
	require.NoError(t, err)

	detail, err := env.invoiceUC.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, otherID, detail.CustomerID)
	assert.True(t, detail.Total.Equal(qty("30")))
	assert.Len(t, detail.Lines, 1)
}

func TestInvoiceUpdate_ReemplazaLineasYRecalcula(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	itemA := env.seedItem(t, "Servicio A", "10")
	itemB := env.seedItem(t, "Servicio B", "7.5")

	created, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items:      []dto.InvoiceItemRequest{{ItemID: itemA, Quantity: qty("3")}},
	})
	require.NoError(t, err)

	replacement := []dto.InvoiceItemRequest{{ItemID: itemB, Quantity: qty("2")}}
	out, err := env.invoiceUC.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Items: &replacement})
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)

	detail, err := env.invoiceUC.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, itemB, detail.Lines[0].ItemID)
	assert.True(t, detail.Total.Equal(qty("15")), "total esperado 15, obtenido %s", detail.Total)
}

func TestInvoiceUpdate_FacturaInexistente_RetornaErrNotFound(t *testing.T) {
	env := newBillingEnv(t)
	_, err := env.invoiceUC.Update(context.Background(), "no-existe", dto.UpdateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / List
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceDelete_EliminaFacturaYSusLineas(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)
	itemID := env.seedItem(t, "Consultoría", "10")

	created, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items:      []dto.InvoiceItemRequest{{ItemID: itemID, Quantity: qty("3")}},
	})
	require.NoError(t, err)

	require.NoError(t, env.invoiceUC.Delete(context.Background(), created.ID))

	_, err = env.invoiceUC.Get(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Sin líneas huérfanas: el ítem vuelve a ser eliminable.
	assert.NoError(t, env.itemUC.Delete(itemID))
}

func TestInvoiceDelete_Inexistente_RetornaErrNotFound(t *testing.T) {
	env := newBillingEnv(t)
	err := env.invoiceUC.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceList_IncluyeNombreDelCliente(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.seedCustomer(t)

	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{CustomerID: customerID})
	require.NoError(t, err)

	list, err := env.invoiceUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme S.A.S.", list[0].CustomerName)
	assert.True(t, list[0].Total.IsZero())
}
