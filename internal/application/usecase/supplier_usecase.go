package usecase

import (
	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	store *store.Store
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(st *store.Store) *SupplierUseCase {
	return &SupplierUseCase{store: st}
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (entity.Supplier, error) {
	if in.Name == "" || in.TaxID == "" {
		return entity.Supplier{}, domain.ErrInvalidInput
	}
	return uc.store.AddSupplier(entity.Supplier{
		Name:      in.Name,
		TaxID:     in.TaxID,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: entity.Now(),
	})
}

// Get devuelve un proveedor por id.
func (uc *SupplierUseCase) Get(id int) (entity.Supplier, error) {
	return uc.store.GetSupplier(id)
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List() []entity.Supplier {
	return uc.store.Suppliers(nil)
}

// Update edición parcial de proveedor.
func (uc *SupplierUseCase) Update(id int, in dto.UpdateSupplierRequest) (entity.Supplier, error) {
	supplier, err := uc.store.GetSupplier(id)
	if err != nil {
		return entity.Supplier{}, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return entity.Supplier{}, domain.ErrInvalidInput
		}
		supplier.Name = *in.Name
	}
	if in.TaxID != nil {
		supplier.TaxID = *in.TaxID
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	return uc.store.UpdateSupplier(id, supplier)
}

// Delete elimina un proveedor por id.
func (uc *SupplierUseCase) Delete(id int) (entity.Supplier, error) {
	return uc.store.DeleteSupplier(id)
}
