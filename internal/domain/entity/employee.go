package entity

import "github.com/shopspring/decimal"

// Employee representa un funcionario (entidad independiente, sin relación
// con User).
type Employee struct {
	ID      int             `json:"id"`
	Name    string          `json:"nome"`
	TaxID   string          `json:"cpf"`
	Role    string          `json:"cargo"`
	Phone   string          `json:"telefone"`
	Email   string          `json:"email"`
	Salary  decimal.Decimal `json:"salario"`
	HiredAt DateTime        `json:"data_admissao"`
}

func (e *Employee) RecordID() int      { return e.ID }
func (e *Employee) SetRecordID(id int) { e.ID = id }
