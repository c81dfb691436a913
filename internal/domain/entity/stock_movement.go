package entity

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada"
	MovementSaida   = "saida"
)

// StockMovement es un registro de auditoría de ajustes manuales de stock.
// Append-only: nunca se edita ni se borra.
type StockMovement struct {
	ID          int      `json:"id"`
	Type        string   `json:"tipo"` // entrada, saida
	ProductID   int      `json:"produto_id"`
	Quantity    int      `json:"quantidade"`
	Description string   `json:"descricao"`
	At          DateTime `json:"data_hora"`
}

func (m *StockMovement) RecordID() int      { return m.ID }
func (m *StockMovement) SetRecordID(id int) { m.ID = id }
