package store_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
	"github.com/igosistemas/igo/pkg/logger"
)

// memStorage implementación en memoria del puerto de persistencia, con
// contador de escrituras e inyección de fallos.
type memStorage struct {
	doc      *store.Document
	saves    int
	failSave bool
}

func (m *memStorage) Load() (*store.Document, error) {
	if m.doc == nil {
		return nil, errors.New("documento ausente")
	}
	return m.doc, nil
}

func (m *memStorage) Save(doc *store.Document) error {
	if m.failSave {
		return errors.New("disco lleno")
	}
	m.doc = doc
	m.saves++
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func product(name string, qty int, price int64) entity.Product {
	return entity.Product{
		Name:      name,
		Category:  entity.CategoryRoupa,
		Size:      "M",
		Brand:     "Genérica",
		Quantity:  qty,
		Price:     decimal.NewFromInt(price),
		CreatedAt: entity.Now(),
	}
}

func TestOpenSiembraDocumentoCuandoNoExiste(t *testing.T) {
	storage := &memStorage{}
	st, err := store.Open(storage, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, storage.saves, "el documento semilla debe persistirse de inmediato")
	users := st.Users(nil)
	require.Len(t, users, 4, "un usuario semilla por nivel de acceso")
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, entity.RoleAdministrador, users[0].Role)
}

func TestOpenConservaDocumentoExistente(t *testing.T) {
	storage := &memStorage{doc: &store.Document{
		Usuarios: []entity.User{{ID: 7, Username: "ana", Password: "x", Name: "Ana", Role: entity.RoleGerente}},
	}}
	st, err := store.Open(storage, testLogger())
	require.NoError(t, err)

	assert.Zero(t, storage.saves, "un documento legible no debe reescribirse al abrir")
	users := st.Users(nil)
	require.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].Username)
}

func TestAddAsignaIDsSecuenciales(t *testing.T) {
	st, err := store.Open(&memStorage{}, testLogger())
	require.NoError(t, err)

	for i, name := range []string{"Camisa", "Calça", "Boné"} {
		p, err := st.AddProduct(product(name, 5, 10))
		require.NoError(t, err)
		assert.Equal(t, i+1, p.ID)
	}
}

func TestGetInexistenteDevuelveNotFound(t *testing.T) {
	st, err := store.Open(&memStorage{}, testLogger())
	require.NoError(t, err)

	_, err = st.GetProduct(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateConservaElID(t *testing.T) {
	st, err := store.Open(&memStorage{}, testLogger())
	require.NoError(t, err)

	created, err := st.AddProduct(product("Camisa", 5, 10))
	require.NoError(t, err)

	edited := created
	edited.ID = 42 // el id del registro manda, no el del payload
	edited.Name = "Camisa Polo"
	updated, err := st.UpdateProduct(created.ID, edited)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Camisa Polo", updated.Name)
}

func TestDeleteYNoReutilizacionDeIDs(t *testing.T) {
	st, err := store.Open(&memStorage{}, testLogger())
	require.NoError(t, err)

	for _, name := range []string{"A", "B", "C"} {
		_, err := st.AddProduct(product(name, 1, 1))
		require.NoError(t, err)
	}
	deleted, err := st.DeleteProduct(2)
	require.NoError(t, err)
	assert.Equal(t, "B", deleted.Name)

	_, err = st.GetProduct(2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// mientras exista un id mayor, el hueco no se reutiliza
	next, err := st.AddProduct(product("D", 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID)
}

func TestCadaMutacionPersiste(t *testing.T) {
	storage := &memStorage{}
	st, err := store.Open(storage, testLogger())
	require.NoError(t, err)
	base := storage.saves

	created, err := st.AddProduct(product("Camisa", 5, 10))
	require.NoError(t, err)
	assert.Equal(t, base+1, storage.saves)

	_, err = st.UpdateProduct(created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, base+2, storage.saves)

	st.Products(nil) // lectura: no escribe
	assert.Equal(t, base+2, storage.saves)

	_, err = st.DeleteProduct(created.ID)
	require.NoError(t, err)
	assert.Equal(t, base+3, storage.saves)
}

func TestFalloDePersistenciaSePropaga(t *testing.T) {
	storage := &memStorage{}
	st, err := store.Open(storage, testLogger())
	require.NoError(t, err)

	storage.failSave = true
	_, err = st.AddProduct(product("Camisa", 5, 10))
	assert.Error(t, err, "si el documento durable diverge, la mutación debe fallar")
}

func TestListDevuelveSnapshotFiltrado(t *testing.T) {
	st, err := store.Open(&memStorage{}, testLogger())
	require.NoError(t, err)

	_, err = st.AddProduct(product("Camisa", 2, 10))
	require.NoError(t, err)
	_, err = st.AddProduct(product("Calça", 20, 10))
	require.NoError(t, err)

	low := st.Products(func(p entity.Product) bool { return p.Quantity <= 10 })
	require.Len(t, low, 1)
	assert.Equal(t, "Camisa", low[0].Name)

	// mutar el snapshot no afecta al documento
	low[0].Name = "Otra"
	fresh, err := st.GetProduct(low[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Camisa", fresh.Name)
}
