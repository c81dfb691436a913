package entity

import "github.com/shopspring/decimal"

// Categorías válidas para Product.
const (
	CategoryRoupa    = "roupa"
	CategoryAlimento = "alimento"
)

// Product representa un producto del inventario. Tamanho aplica solo a roupa;
// Expiry (validade, fecha ISO) solo a alimento. Quantity se muta únicamente
// a través de la lógica de inventario/pedidos.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"nome"`
	Category  string          `json:"categoria"` // roupa, alimento
	Size      string          `json:"tamanho"`
	Brand     string          `json:"marca"`
	Expiry    string          `json:"validade"` // "2006-01-02"; vacío si no aplica
	Quantity  int             `json:"quantidade"`
	Price     decimal.Decimal `json:"preco"`
	CreatedAt DateTime        `json:"data_cadastro"`
}

func (p *Product) RecordID() int      { return p.ID }
func (p *Product) SetRecordID(id int) { p.ID = id }
