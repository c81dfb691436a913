package inventory

import (
	"time"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
	"github.com/igosistemas/igo/pkg/logger"
)

// Umbrales por defecto de las consultas de inventario.
const (
	DefaultLowStockThreshold = 10
	DefaultExpiryWindowDays  = 30
)

// UseCase lógica de inventario: ajustes manuales de stock con registro de
// movimentação, y consultas de stock bajo y vencimiento próximo.
type UseCase struct {
	store *store.Store
	log   *logger.Logger
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(st *store.Store, log *logger.Logger) *UseCase {
	return &UseCase{store: st, log: log}
}

// AdjustStock aplica un ajuste manual. "saida" exige cantidad <= stock actual
// y falla sin mutar nada; "entrada" suma incondicionalmente. Todo ajuste
// exitoso registra exactamente una movimentação.
func (uc *UseCase) AdjustStock(in dto.AdjustStockRequest) (entity.Product, error) {
	if in.Quantity <= 0 {
		return entity.Product{}, domain.ErrInvalidInput
	}
	product, err := uc.store.GetProduct(in.ProductID)
	if err != nil {
		return entity.Product{}, err
	}

	switch in.Type {
	case entity.MovementEntrada:
		product.Quantity += in.Quantity
	case entity.MovementSaida:
		if product.Quantity < in.Quantity {
			return entity.Product{}, domain.ErrInsufficientStock
		}
		product.Quantity -= in.Quantity
	default:
		return entity.Product{}, domain.ErrInvalidInput
	}

	updated, err := uc.store.UpdateProduct(product.ID, product)
	if err != nil {
		return entity.Product{}, err
	}
	if err := uc.RecordMovement(in.Type, product.ID, in.Quantity, in.Description); err != nil {
		return entity.Product{}, err
	}
	uc.log.Info().
		Int("product_id", product.ID).
		Str("tipo", in.Type).
		Int("cantidad", in.Quantity).
		Int("stock", updated.Quantity).
		Msg("stock ajustado")
	return updated, nil
}

// RecordMovement añade una movimentação al registro de auditoría sin tocar
// el stock. Lo usa también el alta de producto para la entrada inicial.
func (uc *UseCase) RecordMovement(tipo string, productID, quantity int, description string) error {
	_, err := uc.store.AddMovement(entity.StockMovement{
		Type:        tipo,
		ProductID:   productID,
		Quantity:    quantity,
		Description: description,
		At:          entity.Now(),
	})
	return err
}

// LowStock devuelve los productos con quantidade <= threshold, en el orden
// natural del documento. threshold <= 0 usa el valor por defecto.
func (uc *UseCase) LowStock(threshold int) []entity.Product {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return uc.store.Products(func(p entity.Product) bool {
		return p.Quantity <= threshold
	})
}

// NearExpiry devuelve los alimentos con validade <= hoy + days. Productos de
// otra categoría o con validade ausente/ilegible se excluyen en silencio.
func (uc *UseCase) NearExpiry(days int) []entity.Product {
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}
	limit := time.Now().AddDate(0, 0, days)
	return uc.store.Products(func(p entity.Product) bool {
		if p.Category != entity.CategoryAlimento || p.Expiry == "" {
			return false
		}
		expiry, err := time.ParseInLocation(entity.DateLayout, p.Expiry, time.Local)
		if err != nil {
			return false
		}
		return !expiry.After(limit)
	})
}

// Movements devuelve el registro de movimentações (solo lectura).
func (uc *UseCase) Movements() []entity.StockMovement {
	return uc.store.Movements(nil)
}
