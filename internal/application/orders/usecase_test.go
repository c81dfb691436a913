package orders_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/application/orders"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
	"github.com/igosistemas/igo/pkg/logger"
)

type memStorage struct{ doc *store.Document }

func (m *memStorage) Load() (*store.Document, error) {
	if m.doc == nil {
		return nil, errors.New("documento ausente")
	}
	return m.doc, nil
}
func (m *memStorage) Save(doc *store.Document) error { m.doc = doc; return nil }

// fixture: un cliente y un producto "Arroz 5kg" con 5 unidades a R$ 10.
func setup(t *testing.T) (*orders.UseCase, *store.Store, entity.Customer, entity.Product) {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	st, err := store.Open(&memStorage{}, log)
	require.NoError(t, err)

	customer, err := st.AddCustomer(entity.Customer{Name: "Maria Silva", TaxID: "111.222.333-44", CreatedAt: entity.Now()})
	require.NoError(t, err)
	product, err := st.AddProduct(entity.Product{
		Name:      "Arroz 5kg",
		Category:  entity.CategoryAlimento,
		Brand:     "Tio João",
		Expiry:    "2030-01-01",
		Quantity:  5,
		Price:     decimal.NewFromInt(10),
		CreatedAt: entity.Now(),
	})
	require.NoError(t, err)
	return orders.NewUseCase(st, log), st, customer, product
}

func TestPlaceCalculaTotalYNoDescuentaStock(t *testing.T) {
	uc, st, customer, product := setup(t)

	order, err := uc.Place(dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPendente, order.Status)
	assert.Equal(t, customer.Name, order.CustomerName)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(30)), "total = Σ subtotales")
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Arroz 5kg", order.Items[0].ProductName)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(10)))

	fresh, err := st.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fresh.Quantity, "crear el pedido no reserva ni descuenta stock")
}

func TestPlaceRechazaStockInsuficiente(t *testing.T) {
	uc, st, customer, product := setup(t)

	_, err := uc.Place(dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, st.Orders(nil), "el pedido fallido no debe quedar registrado")
	assert.Empty(t, st.Movements(nil))
}

func TestPlaceValidaClienteYCantidades(t *testing.T) {
	uc, _, customer, product := setup(t)

	_, err := uc.Place(dto.CreateOrderRequest{CustomerID: 99,
		Items: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Place(dto.CreateOrderRequest{CustomerID: customer.ID,
		Items: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 0}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Place(dto.CreateOrderRequest{CustomerID: customer.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApproveDescuentaStockUnaVez(t *testing.T) {
	uc, st, customer, product := setup(t)
	order, err := uc.Place(dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	approved, err := uc.Approve(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAprovado, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	fresh, err := st.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Quantity, "5 - 3 = 2")
	assert.Empty(t, st.Movements(nil), "la aprobación no registra movimentações")

	_, err = uc.Approve(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "solo un pedido pendente se aprueba")
	fresh, _ = st.GetProduct(product.ID)
	assert.Equal(t, 2, fresh.Quantity, "el stock no se descuenta dos veces")
}

func TestApproveNoRevalidaStock(t *testing.T) {
	uc, st, customer, product := setup(t)
	order, err := uc.Place(dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	// el stock cae entre la creación y la aprobación
	p, _ := st.GetProduct(product.ID)
	p.Quantity = 2
	_, err = st.UpdateProduct(p.ID, p)
	require.NoError(t, err)

	_, err = uc.Approve(order.ID)
	require.NoError(t, err)
	fresh, _ := st.GetProduct(product.ID)
	assert.Equal(t, -2, fresh.Quantity, "el descuento es incondicional")
}

func TestApproveOmiteProductosBorrados(t *testing.T) {
	uc, st, customer, product := setup(t)
	order, err := uc.Place(dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = st.DeleteProduct(product.ID)
	require.NoError(t, err)

	approved, err := uc.Approve(order.ID)
	require.NoError(t, err, "la línea del producto borrado se omite sin fallar")
	assert.Equal(t, entity.OrderStatusAprovado, approved.Status)
}

func TestRejectDejaMotivoSinTocarStock(t *testing.T) {
	uc, st, customer, product := setup(t)
	order, err := uc.Place(dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 3}},
		Notes:      "entrega urgente",
	})
	require.NoError(t, err)

	rejected, err := uc.Reject(order.ID, "sem entrega na região")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejeitado, rejected.Status)
	assert.Equal(t, "Rejeitado: sem entrega na região", rejected.Notes)

	fresh, err := st.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fresh.Quantity)

	_, err = uc.Approve(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "un pedido rechazado no puede aprobarse")
}

func TestItemsConservanSnapshotDePrecioYNombre(t *testing.T) {
	uc, st, customer, product := setup(t)
	order, err := uc.Place(dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// el producto cambia después de crear el pedido
	p, _ := st.GetProduct(product.ID)
	p.Name = "Arroz Premium 5kg"
	p.Price = decimal.NewFromInt(99)
	_, err = st.UpdateProduct(p.ID, p)
	require.NoError(t, err)

	fresh, err := uc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arroz 5kg", fresh.Items[0].ProductName)
	assert.True(t, fresh.Items[0].UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, fresh.Total.Equal(decimal.NewFromInt(20)), "el total no se recalcula")
}

func TestListFiltraPorEstadoYCliente(t *testing.T) {
	uc, st, customer, product := setup(t)
	other, err := st.AddCustomer(entity.Customer{Name: "João", TaxID: "555", CreatedAt: entity.Now()})
	require.NoError(t, err)

	first, err := uc.Place(dto.CreateOrderRequest{CustomerID: customer.ID,
		Items: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}}})
	require.NoError(t, err)
	_, err = uc.Place(dto.CreateOrderRequest{CustomerID: other.ID,
		Items: []dto.OrderItemRequest{{ProductID: product.ID, Quantity: 1}}})
	require.NoError(t, err)
	_, err = uc.Approve(first.ID)
	require.NoError(t, err)

	assert.Len(t, uc.List(""), 2)
	assert.Len(t, uc.List(entity.OrderStatusPendente), 1)
	assert.Len(t, uc.List(entity.OrderStatusAprovado), 1)

	mine := uc.ListByCustomer(customer.ID)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}
