package usecase

import (
	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	store *store.Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(st *store.Store) *CustomerUseCase {
	return &CustomerUseCase{store: st}
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (entity.Customer, error) {
	if in.Name == "" || in.TaxID == "" {
		return entity.Customer{}, domain.ErrInvalidInput
	}
	return uc.store.AddCustomer(entity.Customer{
		Name:      in.Name,
		TaxID:     in.TaxID,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: entity.Now(),
	})
}

// Get devuelve un cliente por id.
func (uc *CustomerUseCase) Get(id int) (entity.Customer, error) {
	return uc.store.GetCustomer(id)
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() []entity.Customer {
	return uc.store.Customers(nil)
}

// FindByEmail devuelve el cliente cuyo email coincide exactamente, si existe.
// Vincula el usuario de nivel cliente con su cadastro.
func (uc *CustomerUseCase) FindByEmail(email string) (entity.Customer, bool) {
	if email == "" {
		return entity.Customer{}, false
	}
	matches := uc.store.Customers(func(cl entity.Customer) bool {
		return cl.Email == email
	})
	if len(matches) == 0 {
		return entity.Customer{}, false
	}
	return matches[0], true
}

// Update edición parcial de cliente. Los pedidos existentes conservan el
// nombre snapshot tomado al crearse.
func (uc *CustomerUseCase) Update(id int, in dto.UpdateCustomerRequest) (entity.Customer, error) {
	customer, err := uc.store.GetCustomer(id)
	if err != nil {
		return entity.Customer{}, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return entity.Customer{}, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.TaxID != nil {
		customer.TaxID = *in.TaxID
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	return uc.store.UpdateCustomer(id, customer)
}

// Delete elimina un cliente por id.
func (uc *CustomerUseCase) Delete(id int) (entity.Customer, error) {
	return uc.store.DeleteCustomer(id)
}
