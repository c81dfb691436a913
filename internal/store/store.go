// Package store implementa el almacén de registros: CRUD genérico por
// colección sobre un Document en memoria que espeja el almacenamiento
// durable. Toda mutación reescribe el documento completo; las lecturas
// nunca escriben.
package store

import (
	"fmt"
	"sync"

	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/pkg/logger"
)

// Storage es el puerto de persistencia del documento (DIP): el store es
// testeable sin archivos reales.
type Storage interface {
	Load() (*Document, error)
	Save(*Document) error
}

// Store posee el documento y expone las operaciones por colección.
// El mutex serializa cada secuencia load-mutate-persist: los callers nunca
// tocan el documento directamente.
type Store struct {
	mu      sync.Mutex
	storage Storage
	doc     *Document
}

// Open carga el documento desde el almacenamiento. Si está ausente o es
// ilegible, sintetiza el documento semilla y lo persiste de inmediato.
func Open(storage Storage, log *logger.Logger) (*Store, error) {
	doc, err := storage.Load()
	if err != nil || doc == nil {
		if log != nil {
			log.Warn().Err(err).Msg("documento ausente o ilegible; se crea el documento inicial")
		}
		doc = SeedDocument()
		if err := storage.Save(doc); err != nil {
			return nil, fmt.Errorf("guardar documento inicial: %w", err)
		}
	}
	return &Store{storage: storage, doc: doc}, nil
}

// persist reescribe el documento completo. Un fallo aquí es grave: el estado
// en memoria y el durable han divergido, así que siempre se propaga.
func (s *Store) persist() error {
	if err := s.storage.Save(s.doc); err != nil {
		return fmt.Errorf("persistir documento: %w", err)
	}
	return nil
}

// ── Operaciones genéricas por colección ───────────────────────────────────────

// record restringe T a entidades con id entero asignable.
type record[T any] interface {
	*T
	RecordID() int
	SetRecordID(int)
}

// nextID devuelve max(ids)+1, o 1 si la colección está vacía. Se calcula en
// cada llamada (sin contador cacheado) para tolerar ediciones externas del
// documento. Un id borrado nunca se reutiliza mientras exista uno mayor.
func nextID[T any, PT record[T]](items []T) int {
	max := 0
	for i := range items {
		if id := PT(&items[i]).RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}

func add[T any, PT record[T]](s *Store, items *[]T, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	PT(&rec).SetRecordID(nextID[T, PT](*items))
	*items = append(*items, rec)
	if err := s.persist(); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func get[T any, PT record[T]](s *Store, items []T, id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			return items[i], nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

// list devuelve un snapshot (no una vista viva) de los registros que cumplen
// match, en orden de inserción. match nil equivale a sin filtro.
func list[T any](s *Store, items []T, match func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match == nil || match(it) {
			out = append(out, it)
		}
	}
	return out
}

// update reemplaza el registro con el id dado conservando su id. La fusión
// campo a campo del update parcial ocurre en los casos de uso, con el esquema
// fijo de cada entidad validado en esa frontera.
func update[T any, PT record[T]](s *Store, items []T, id int, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			PT(&rec).SetRecordID(id)
			items[i] = rec
			if err := s.persist(); err != nil {
				var zero T
				return zero, err
			}
			return rec, nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

func remove[T any, PT record[T]](s *Store, items *[]T, id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := *items
	for i := range col {
		if PT(&col[i]).RecordID() == id {
			deleted := col[i]
			*items = append(col[:i], col[i+1:]...)
			if err := s.persist(); err != nil {
				var zero T
				return zero, err
			}
			return deleted, nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

func (s *Store) AddUser(u entity.User) (entity.User, error) { return add(s, &s.doc.Usuarios, u) }
func (s *Store) GetUser(id int) (entity.User, error)        { return get[entity.User](s, s.doc.Usuarios, id) }
func (s *Store) Users(match func(entity.User) bool) []entity.User {
	return list(s, s.doc.Usuarios, match)
}
func (s *Store) UpdateUser(id int, u entity.User) (entity.User, error) {
	return update[entity.User](s, s.doc.Usuarios, id, u)
}
func (s *Store) DeleteUser(id int) (entity.User, error) { return remove(s, &s.doc.Usuarios, id) }

// ── Productos ─────────────────────────────────────────────────────────────────

func (s *Store) AddProduct(p entity.Product) (entity.Product, error) {
	return add(s, &s.doc.Produtos, p)
}
func (s *Store) GetProduct(id int) (entity.Product, error) {
	return get[entity.Product](s, s.doc.Produtos, id)
}
func (s *Store) Products(match func(entity.Product) bool) []entity.Product {
	return list(s, s.doc.Produtos, match)
}
func (s *Store) UpdateProduct(id int, p entity.Product) (entity.Product, error) {
	return update[entity.Product](s, s.doc.Produtos, id, p)
}
func (s *Store) DeleteProduct(id int) (entity.Product, error) {
	return remove(s, &s.doc.Produtos, id)
}
func (s *Store) NextProductID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nextID[entity.Product, *entity.Product](s.doc.Produtos)
}

// ── Fornecedores ──────────────────────────────────────────────────────────────

func (s *Store) AddSupplier(f entity.Supplier) (entity.Supplier, error) {
	return add(s, &s.doc.Fornecedores, f)
}
func (s *Store) GetSupplier(id int) (entity.Supplier, error) {
	return get[entity.Supplier](s, s.doc.Fornecedores, id)
}
func (s *Store) Suppliers(match func(entity.Supplier) bool) []entity.Supplier {
	return list(s, s.doc.Fornecedores, match)
}
func (s *Store) UpdateSupplier(id int, f entity.Supplier) (entity.Supplier, error) {
	return update[entity.Supplier](s, s.doc.Fornecedores, id, f)
}
func (s *Store) DeleteSupplier(id int) (entity.Supplier, error) {
	return remove(s, &s.doc.Fornecedores, id)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (s *Store) AddCustomer(c entity.Customer) (entity.Customer, error) {
	return add(s, &s.doc.Clientes, c)
}
func (s *Store) GetCustomer(id int) (entity.Customer, error) {
	return get[entity.Customer](s, s.doc.Clientes, id)
}
func (s *Store) Customers(match func(entity.Customer) bool) []entity.Customer {
	return list(s, s.doc.Clientes, match)
}
func (s *Store) UpdateCustomer(id int, c entity.Customer) (entity.Customer, error) {
	return update[entity.Customer](s, s.doc.Clientes, id, c)
}
func (s *Store) DeleteCustomer(id int) (entity.Customer, error) {
	return remove(s, &s.doc.Clientes, id)
}

// ── Funcionarios ──────────────────────────────────────────────────────────────

func (s *Store) AddEmployee(e entity.Employee) (entity.Employee, error) {
	return add(s, &s.doc.Funcionarios, e)
}
func (s *Store) GetEmployee(id int) (entity.Employee, error) {
	return get[entity.Employee](s, s.doc.Funcionarios, id)
}
func (s *Store) Employees(match func(entity.Employee) bool) []entity.Employee {
	return list(s, s.doc.Funcionarios, match)
}
func (s *Store) UpdateEmployee(id int, e entity.Employee) (entity.Employee, error) {
	return update[entity.Employee](s, s.doc.Funcionarios, id, e)
}
func (s *Store) DeleteEmployee(id int) (entity.Employee, error) {
	return remove(s, &s.doc.Funcionarios, id)
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func (s *Store) AddOrder(o entity.Order) (entity.Order, error) { return add(s, &s.doc.Pedidos, o) }
func (s *Store) GetOrder(id int) (entity.Order, error) {
	return get[entity.Order](s, s.doc.Pedidos, id)
}
func (s *Store) Orders(match func(entity.Order) bool) []entity.Order {
	return list(s, s.doc.Pedidos, match)
}
func (s *Store) UpdateOrder(id int, o entity.Order) (entity.Order, error) {
	return update[entity.Order](s, s.doc.Pedidos, id, o)
}

// ── Movimentações (append-only: sin update ni delete) ─────────────────────────

func (s *Store) AddMovement(m entity.StockMovement) (entity.StockMovement, error) {
	return add(s, &s.doc.Movimentacoes, m)
}
func (s *Store) Movements(match func(entity.StockMovement) bool) []entity.StockMovement {
	return list(s, s.doc.Movimentacoes, match)
}
