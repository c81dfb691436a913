package entity

// Supplier representa un proveedor. No se fuerza relación con productos.
type Supplier struct {
	ID        int      `json:"id"`
	Name      string   `json:"nome"`
	TaxID     string   `json:"cnpj"`
	Phone     string   `json:"telefone"`
	Email     string   `json:"email"`
	Address   string   `json:"endereco"`
	CreatedAt DateTime `json:"data_cadastro"`
}

func (s *Supplier) RecordID() int      { return s.ID }
func (s *Supplier) SetRecordID(id int) { s.ID = id }
