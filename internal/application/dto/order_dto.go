package dto

// OrderItemRequest línea solicitada: producto y cantidad. Nombre y precio se
// toman como snapshot del producto al crear el pedido.
type OrderItemRequest struct {
	ProductID int
	Quantity  int
}

// CreateOrderRequest creación de pedido.
type CreateOrderRequest struct {
	CustomerID int
	Items      []OrderItemRequest
	Notes      string
}
