package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/application/inventory"
	"github.com/igosistemas/igo/internal/application/usecase"
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

func newStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(&memStorage{}, logger.New(logger.Config{Env: "production", Level: "error"}))
	require.NoError(t, err)
	return st
}

func newProductUseCase(t *testing.T) (*usecase.ProductUseCase, *store.Store) {
	t.Helper()
	st := newStore(t)
	inv := inventory.NewUseCase(st, logger.New(logger.Config{Env: "production", Level: "error"}))
	return usecase.NewProductUseCase(st, inv), st
}

func TestCreateProductoRegistraEntradaInicial(t *testing.T) {
	uc, st := newProductUseCase(t)

	product, err := uc.Create(dto.CreateProductRequest{
		Name:     "Camiseta Básica",
		Category: entity.CategoryRoupa,
		Size:     "m",
		Brand:    "Hering",
		Quantity: 15,
		Price:    decimal.RequireFromString("29.90"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "M", product.Size, "el tamanho se normaliza a mayúsculas")
	assert.Empty(t, product.Expiry, "roupa no lleva validade")

	movements := st.Movements(nil)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementEntrada, movements[0].Type)
	assert.Equal(t, product.ID, movements[0].ProductID)
	assert.Equal(t, 15, movements[0].Quantity)
	assert.Equal(t, "Cadastro inicial", movements[0].Description)
}

func TestCreateProductoValidaPorCategoria(t *testing.T) {
	uc, _ := newProductUseCase(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Camiseta", Category: entity.CategoryRoupa, Brand: "X", Quantity: 1, Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "roupa exige tamanho")

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Leite", Category: entity.CategoryAlimento, Brand: "X", Expiry: "01/12/2026",
		Quantity: 1, Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "alimento exige validade AAAA-MM-DD")

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Parafuso", Category: "ferramenta", Brand: "X", Quantity: 1, Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría fuera del dominio")

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Camiseta", Category: entity.CategoryRoupa, Size: "M", Brand: "X",
		Quantity: -1, Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")
}

func TestSearchPorIDNombreYMarca(t *testing.T) {
	uc, _ := newProductUseCase(t)
	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Arroz 5kg", Category: entity.CategoryAlimento, Brand: "Tio João",
		Expiry: "2030-01-01", Quantity: 5, Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Camiseta", Category: entity.CategoryRoupa, Size: "G", Brand: "Hering",
		Quantity: 5, Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	assert.Len(t, uc.Search("1"), 1, "id exacto")
	assert.Len(t, uc.Search("arroz"), 1, "nombre sin distinguir mayúsculas")
	assert.Len(t, uc.Search("HERING"), 1, "marca sin distinguir mayúsculas")
	assert.Empty(t, uc.Search("feijão"))
	assert.Empty(t, uc.Search("   "))
}

func TestUpdateProductoNoTocaCantidadNiCategoria(t *testing.T) {
	uc, _ := newProductUseCase(t)
	product, err := uc.Create(dto.CreateProductRequest{
		Name: "Camiseta", Category: entity.CategoryRoupa, Size: "M", Brand: "Hering",
		Quantity: 10, Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	name := "Camiseta Premium"
	price := decimal.RequireFromString("49.90")
	expiry := "2030-01-01"
	updated, err := uc.Update(product.ID, dto.UpdateProductRequest{
		Name:   &name,
		Price:  &price,
		Expiry: &expiry, // ignorado: el producto es roupa
	})
	require.NoError(t, err)
	assert.Equal(t, "Camiseta Premium", updated.Name)
	assert.True(t, updated.Price.Equal(price))
	assert.Empty(t, updated.Expiry)
	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, entity.CategoryRoupa, updated.Category)

	bad := decimal.NewFromInt(-1)
	_, err = uc.Update(product.ID, dto.UpdateProductRequest{Price: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(99, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProducto(t *testing.T) {
	uc, _ := newProductUseCase(t)
	product, err := uc.Create(dto.CreateProductRequest{
		Name: "Camiseta", Category: entity.CategoryRoupa, Size: "M", Brand: "Hering",
		Quantity: 1, Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	deleted, err := uc.Delete(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, deleted.ID)

	_, err = uc.Get(product.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
