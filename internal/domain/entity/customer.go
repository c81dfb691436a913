package entity

// Customer representa un cliente. Los pedidos lo referencian por cliente_id
// y copian su nombre como snapshot al momento de la creación.
type Customer struct {
	ID        int      `json:"id"`
	Name      string   `json:"nome"`
	TaxID     string   `json:"cpf"`
	Phone     string   `json:"telefone"`
	Email     string   `json:"email"`
	Address   string   `json:"endereco"`
	CreatedAt DateTime `json:"data_cadastro"`
}

func (c *Customer) RecordID() int      { return c.ID }
func (c *Customer) SetRecordID(id int) { c.ID = id }
