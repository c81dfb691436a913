package dto

// AdjustStockRequest ajuste manual de stock. Type es "entrada" o "saida";
// las salidas exigen stock suficiente.
type AdjustStockRequest struct {
	ProductID   int
	Type        string
	Quantity    int
	Description string
}
