package entity

import "github.com/shopspring/decimal"

// Estados válidos para Order.
const (
	OrderStatusPendente  = "pendente"
	OrderStatusAprovado  = "aprovado"
	OrderStatusRejeitado = "rejeitado"
)

// OrderItem es una línea del pedido. ProductName y UnitPrice son snapshots
// tomados al crear el pedido; no siguen ediciones posteriores del producto.
// Subtotal = Quantity × UnitPrice.
type OrderItem struct {
	ProductID   int             `json:"produto_id"`
	ProductName string          `json:"nome_produto"`
	Quantity    int             `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Order representa un pedido. CustomerName es snapshot del cliente al crear.
// Total es la suma de los subtotales al momento de la creación y no se
// recalcula después.
type Order struct {
	ID           int             `json:"id"`
	CustomerID   int             `json:"cliente_id"`
	CustomerName string          `json:"cliente_nome"`
	Items        []OrderItem     `json:"itens"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"` // pendente, aprovado, rejeitado
	CreatedAt    DateTime        `json:"data_pedido"`
	ApprovedAt   *DateTime       `json:"data_aprovacao"` // null hasta aprobar
	Notes        string          `json:"observacoes"`
}

func (o *Order) RecordID() int      { return o.ID }
func (o *Order) SetRecordID(id int) { o.ID = id }
