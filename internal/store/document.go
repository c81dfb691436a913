package store

import (
	"github.com/shopspring/decimal"

	"github.com/igosistemas/igo/internal/domain/entity"
)

func init() {
	// El documento histórico serializa precios y totales como números JSON,
	// no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true
}

// Document es la raíz del estado persistido: todas las colecciones en un
// único documento JSON. Las claves de nivel superior son parte del contrato
// con los documentos escritos por versiones anteriores del sistema.
type Document struct {
	Usuarios      []entity.User          `json:"usuarios"`
	Produtos      []entity.Product       `json:"produtos"`
	Fornecedores  []entity.Supplier      `json:"fornecedores"`
	Clientes      []entity.Customer      `json:"clientes"`
	Funcionarios  []entity.Employee      `json:"funcionarios"`
	Pedidos       []entity.Order         `json:"pedidos"`
	Movimentacoes []entity.StockMovement `json:"movimentacoes"`
}

// SeedDocument construye el documento inicial: cuatro usuarios por defecto
// (uno por nivel de acceso) y colecciones vacías.
func SeedDocument() *Document {
	return &Document{
		Usuarios: []entity.User{
			{ID: 1, Username: "admin", Password: "admin123", Name: "Administrador", Role: entity.RoleAdministrador, Email: "admin@igo.com"},
			{ID: 2, Username: "gerente", Password: "gerente123", Name: "Gerente", Role: entity.RoleGerente, Email: "gerente@igo.com"},
			{ID: 3, Username: "vendedor", Password: "vendedor123", Name: "Vendedor", Role: entity.RoleVendedor, Email: "vendedor@igo.com"},
			{ID: 4, Username: "cliente", Password: "cliente123", Name: "Cliente", Role: entity.RoleCliente, Email: "cliente@igo.com"},
		},
		Produtos:      []entity.Product{},
		Fornecedores:  []entity.Supplier{},
		Clientes:      []entity.Customer{},
		Funcionarios:  []entity.Employee{},
		Pedidos:       []entity.Order{},
		Movimentacoes: []entity.StockMovement{},
	}
}
