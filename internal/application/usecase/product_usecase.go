package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/application/inventory"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
)

// ProductUseCase casos de uso CRUD para productos. Quantity se muta solo vía
// inventario/pedidos, nunca por edición directa.
type ProductUseCase struct {
	store     *store.Store
	inventory *inventory.UseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(st *store.Store, inv *inventory.UseCase) *ProductUseCase {
	return &ProductUseCase{store: st, inventory: inv}
}

// Create valida y da de alta un producto. La cantidad inicial queda asentada
// como movimentação de entrada ("Cadastro inicial").
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (entity.Product, error) {
	if in.Name == "" || in.Brand == "" {
		return entity.Product{}, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.IsNegative() {
		return entity.Product{}, domain.ErrInvalidInput
	}
	switch in.Category {
	case entity.CategoryRoupa:
		if in.Size == "" {
			return entity.Product{}, domain.ErrInvalidInput
		}
		in.Expiry = ""
	case entity.CategoryAlimento:
		if _, err := time.ParseInLocation(entity.DateLayout, in.Expiry, time.Local); err != nil {
			return entity.Product{}, domain.ErrInvalidInput
		}
		in.Size = ""
	default:
		return entity.Product{}, domain.ErrInvalidInput
	}

	product, err := uc.store.AddProduct(entity.Product{
		Name:      in.Name,
		Category:  in.Category,
		Size:      strings.ToUpper(in.Size),
		Brand:     in.Brand,
		Expiry:    in.Expiry,
		Quantity:  in.Quantity,
		Price:     in.Price,
		CreatedAt: entity.Now(),
	})
	if err != nil {
		return entity.Product{}, err
	}
	if err := uc.inventory.RecordMovement(entity.MovementEntrada, product.ID, in.Quantity, "Cadastro inicial"); err != nil {
		return entity.Product{}, err
	}
	return product, nil
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(id int) (entity.Product, error) {
	return uc.store.GetProduct(id)
}

// List devuelve todos los productos en orden de inserción.
func (uc *ProductUseCase) List() []entity.Product {
	return uc.store.Products(nil)
}

// Search busca por id exacto o por coincidencia parcial en nombre o marca
// (sin distinguir mayúsculas).
func (uc *ProductUseCase) Search(term string) []entity.Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	id, _ := strconv.Atoi(term)
	lower := strings.ToLower(term)
	return uc.store.Products(func(p entity.Product) bool {
		if id != 0 && p.ID == id {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Brand), lower)
	})
}

// Update aplica una edición parcial: solo los campos no nil se sobreescriben.
// No permite tocar Quantity (se maneja vía movimientos) ni Category.
func (uc *ProductUseCase) Update(id int, in dto.UpdateProductRequest) (entity.Product, error) {
	product, err := uc.store.GetProduct(id)
	if err != nil {
		return entity.Product{}, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return entity.Product{}, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Size != nil && product.Category == entity.CategoryRoupa {
		product.Size = strings.ToUpper(*in.Size)
	}
	if in.Expiry != nil && product.Category == entity.CategoryAlimento {
		if _, err := time.ParseInLocation(entity.DateLayout, *in.Expiry, time.Local); err != nil {
			return entity.Product{}, domain.ErrInvalidInput
		}
		product.Expiry = *in.Expiry
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return entity.Product{}, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	return uc.store.UpdateProduct(id, product)
}

// Delete elimina un producto por id y lo devuelve.
func (uc *ProductUseCase) Delete(id int) (entity.Product, error) {
	return uc.store.DeleteProduct(id)
}
