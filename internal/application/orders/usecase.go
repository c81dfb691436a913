package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
	"github.com/igosistemas/igo/pkg/logger"
)

// UseCase lógica de pedidos: creación con snapshots de nombre/precio,
// aprobación con descuento de stock y rechazo con motivo.
type UseCase struct {
	store *store.Store
	log   *logger.Logger
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(st *store.Store, log *logger.Logger) *UseCase {
	return &UseCase{store: st, log: log}
}

// Place crea un pedido en estado pendente. Valida que el cliente exista y que
// cada línea pida una cantidad > 0 y <= al stock del producto en este momento.
// No descuenta stock: la reserva es solo conceptual hasta la aprobación.
func (uc *UseCase) Place(in dto.CreateOrderRequest) (entity.Order, error) {
	if len(in.Items) == 0 {
		return entity.Order{}, domain.ErrInvalidInput
	}
	customer, err := uc.store.GetCustomer(in.CustomerID)
	if err != nil {
		return entity.Order{}, err
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, req := range in.Items {
		if req.Quantity <= 0 {
			return entity.Order{}, domain.ErrInvalidInput
		}
		product, err := uc.store.GetProduct(req.ProductID)
		if err != nil {
			return entity.Order{}, err
		}
		if req.Quantity > product.Quantity {
			return entity.Order{}, domain.ErrInsufficientStock
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		items = append(items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	order, err := uc.store.AddOrder(entity.Order{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        items,
		Total:        total,
		Status:       entity.OrderStatusPendente,
		CreatedAt:    entity.Now(),
		Notes:        in.Notes,
	})
	if err != nil {
		return entity.Order{}, err
	}
	uc.log.Info().
		Int("order_id", order.ID).
		Int("customer_id", customer.ID).
		Str("total", total.String()).
		Msg("pedido creado")
	return order, nil
}

// Approve aprueba un pedido pendente y descuenta el stock de cada línea.
// El descuento es incondicional: no se revalida el stock disponible en el
// momento de la aprobación, así que un pedido aprobado mucho después de
// crearse puede dejar quantidade negativa. No se registran movimentações por
// los descuentos de pedidos; solo los ajustes manuales las emiten.
func (uc *UseCase) Approve(orderID int) (entity.Order, error) {
	order, err := uc.store.GetOrder(orderID)
	if err != nil {
		return entity.Order{}, err
	}
	if order.Status != entity.OrderStatusPendente {
		return entity.Order{}, domain.ErrConflict
	}

	now := entity.Now()
	order.Status = entity.OrderStatusAprovado
	order.ApprovedAt = &now
	updated, err := uc.store.UpdateOrder(order.ID, order)
	if err != nil {
		return entity.Order{}, err
	}

	for _, item := range order.Items {
		product, err := uc.store.GetProduct(item.ProductID)
		if err != nil {
			// Producto borrado después de crear el pedido: la línea se omite,
			// igual que en los documentos históricos.
			uc.log.Warn().Int("product_id", item.ProductID).Msg("producto del pedido ya no existe")
			continue
		}
		product.Quantity -= item.Quantity
		if _, err := uc.store.UpdateProduct(product.ID, product); err != nil {
			return entity.Order{}, err
		}
	}
	uc.log.Info().Int("order_id", order.ID).Msg("pedido aprobado y stock descontado")
	return updated, nil
}

// Reject rechaza un pedido pendente dejando el motivo en observações. No
// tiene efecto sobre el stock.
func (uc *UseCase) Reject(orderID int, reason string) (entity.Order, error) {
	order, err := uc.store.GetOrder(orderID)
	if err != nil {
		return entity.Order{}, err
	}
	if order.Status != entity.OrderStatusPendente {
		return entity.Order{}, domain.ErrConflict
	}
	order.Status = entity.OrderStatusRejeitado
	order.Notes = fmt.Sprintf("Rejeitado: %s", reason)
	updated, err := uc.store.UpdateOrder(order.ID, order)
	if err != nil {
		return entity.Order{}, err
	}
	uc.log.Info().Int("order_id", order.ID).Str("motivo", reason).Msg("pedido rechazado")
	return updated, nil
}

// Get devuelve un pedido por id.
func (uc *UseCase) Get(orderID int) (entity.Order, error) {
	return uc.store.GetOrder(orderID)
}

// List devuelve los pedidos con el estado dado; estado vacío lista todos.
func (uc *UseCase) List(status string) []entity.Order {
	if status == "" {
		return uc.store.Orders(nil)
	}
	return uc.store.Orders(func(o entity.Order) bool {
		return o.Status == status
	})
}

// ListByCustomer devuelve los pedidos de un cliente.
func (uc *UseCase) ListByCustomer(customerID int) []entity.Order {
	return uc.store.Orders(func(o entity.Order) bool {
		return o.CustomerID == customerID
	})
}
