package reports_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/application/reports"
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

type stubPDF struct{ got *dto.StockReport }

func (s *stubPDF) Generate(report dto.StockReport) ([]byte, error) {
	s.got = &report
	return []byte("%PDF-stub"), nil
}

func setup(t *testing.T) (*reports.UseCase, *store.Store, *stubPDF) {
	t.Helper()
	st, err := store.Open(&memStorage{}, logger.New(logger.Config{Env: "production", Level: "error"}))
	require.NoError(t, err)
	pdf := &stubPDF{}
	return reports.NewUseCase(st, pdf), st, pdf
}

func addProduct(t *testing.T, st *store.Store, name, category string, qty int, price string) entity.Product {
	t.Helper()
	p, err := st.AddProduct(entity.Product{
		Name: name, Category: category, Quantity: qty,
		Price: decimal.RequireFromString(price), CreatedAt: entity.Now(),
	})
	require.NoError(t, err)
	return p
}

func TestStockValorizaPorCategoria(t *testing.T) {
	uc, st, _ := setup(t)
	addProduct(t, st, "Camiseta", entity.CategoryRoupa, 10, "30.00") // 300
	addProduct(t, st, "Arroz", entity.CategoryAlimento, 5, "10.00") // 50
	addProduct(t, st, "Feijão", entity.CategoryAlimento, 4, "8.50") // 34

	report := uc.Stock()
	assert.Equal(t, 3, report.TotalProducts)
	assert.True(t, report.TotalValue.Equal(decimal.RequireFromString("384.00")), "Σ preço×quantidade")
	require.Len(t, report.Categories, 2)

	assert.Equal(t, entity.CategoryRoupa, report.Categories[0].Category)
	assert.Equal(t, 1, report.Categories[0].Count)
	assert.True(t, report.Categories[0].Value.Equal(decimal.RequireFromString("300.00")))

	assert.Equal(t, entity.CategoryAlimento, report.Categories[1].Category)
	assert.Equal(t, 2, report.Categories[1].Count)
	assert.True(t, report.Categories[1].Value.Equal(decimal.RequireFromString("84.00")))
}

func TestExportStockPDFDelegaEnElGenerador(t *testing.T) {
	uc, st, pdf := setup(t)
	addProduct(t, st, "Camiseta", entity.CategoryRoupa, 2, "30.00")

	data, err := uc.ExportStockPDF()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), data)
	require.NotNil(t, pdf.got)
	assert.Equal(t, 1, pdf.got.TotalProducts)
}

func TestMovementsCuentaYRecorta(t *testing.T) {
	uc, st, _ := setup(t)
	for i := 0; i < 3; i++ {
		_, err := st.AddMovement(entity.StockMovement{Type: entity.MovementEntrada, ProductID: 1, Quantity: 1, At: entity.Now()})
		require.NoError(t, err)
	}
	_, err := st.AddMovement(entity.StockMovement{Type: entity.MovementSaida, ProductID: 1, Quantity: 2, At: entity.Now()})
	require.NoError(t, err)

	report := uc.Movements(2)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.In)
	assert.Equal(t, 1, report.Out)
	assert.Len(t, report.Latest, 2)
}

func TestTopProductsSoloPedidosAprobados(t *testing.T) {
	uc, st, _ := setup(t)
	now := entity.Now()
	item := func(id, qty int, name string) entity.OrderItem {
		return entity.OrderItem{ProductID: id, ProductName: name, Quantity: qty,
			UnitPrice: decimal.NewFromInt(1), Subtotal: decimal.NewFromInt(int64(qty))}
	}
	_, err := st.AddOrder(entity.Order{CustomerID: 1, CustomerName: "Maria",
		Items: []entity.OrderItem{item(1, 5, "Arroz"), item(2, 2, "Feijão")},
		Total: decimal.NewFromInt(7), Status: entity.OrderStatusAprovado, CreatedAt: now})
	require.NoError(t, err)
	_, err = st.AddOrder(entity.Order{CustomerID: 1, CustomerName: "Maria",
		Items: []entity.OrderItem{item(1, 3, "Arroz")},
		Total: decimal.NewFromInt(3), Status: entity.OrderStatusAprovado, CreatedAt: now})
	require.NoError(t, err)
	_, err = st.AddOrder(entity.Order{CustomerID: 1, CustomerName: "Maria",
		Items: []entity.OrderItem{item(3, 100, "Leite")},
		Total: decimal.NewFromInt(100), Status: entity.OrderStatusPendente, CreatedAt: now})
	require.NoError(t, err)

	top := uc.TopProducts(10)
	require.Len(t, top, 2, "los pendentes no cuentan")
	assert.Equal(t, "Arroz", top[0].Name)
	assert.Equal(t, 8, top[0].TotalQuantity)
	assert.Equal(t, 2, top[0].Orders)
	assert.Equal(t, "Feijão", top[1].Name)

	assert.Len(t, uc.TopProducts(1), 1)
}

func TestSuppliersByRegionAgrupaPorFinalDeDireccion(t *testing.T) {
	uc, st, _ := setup(t)
	add := func(name, address string) {
		_, err := st.AddSupplier(entity.Supplier{Name: name, TaxID: "1", Address: address, CreatedAt: entity.Now()})
		require.NoError(t, err)
	}
	add("Distribuidora A", "Rua das Flores 10, São Paulo")
	add("Distribuidora B", "Av. Central 22, Curitiba")
	add("Distribuidora C", "Rua Nova 5, São Paulo")
	add("Distribuidora D", "")

	regions := uc.SuppliersByRegion()
	require.Len(t, regions, 3)
	assert.Equal(t, "São Paulo", regions[0].Region)
	assert.Len(t, regions[0].Suppliers, 2)
	assert.Equal(t, "Curitiba", regions[1].Region)
	assert.Equal(t, "Não informado", regions[2].Region)
}

func TestGeneralCuentaEntidadesYEstados(t *testing.T) {
	uc, st, _ := setup(t)
	addProduct(t, st, "Camiseta", entity.CategoryRoupa, 2, "30.00")
	_, err := st.AddOrder(entity.Order{CustomerID: 1, CustomerName: "Maria",
		Total: decimal.Zero, Status: entity.OrderStatusPendente, CreatedAt: entity.Now()})
	require.NoError(t, err)
	_, err = st.AddOrder(entity.Order{CustomerID: 1, CustomerName: "Maria",
		Total: decimal.Zero, Status: entity.OrderStatusRejeitado, CreatedAt: entity.Now()})
	require.NoError(t, err)

	report := uc.General()
	assert.Equal(t, 1, report.Products)
	assert.Equal(t, 4, report.Users)
	assert.Equal(t, 2, report.Orders)
	assert.Equal(t, 1, report.OrdersPending)
	assert.Equal(t, 0, report.OrdersApproved)
	assert.Equal(t, 1, report.OrdersRejected)
	assert.Equal(t, 1, report.ByCategory[entity.CategoryRoupa])
	assert.True(t, report.StockValue.Equal(decimal.RequireFromString("60.00")))
}
