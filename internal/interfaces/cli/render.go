package cli

import (
	"fmt"
	"strings"

	"github.com/igosistemas/igo/internal/domain/entity"
)

// header imprime un encabezado centrado entre líneas de '='.
func (c *CLI) header(title string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintf(c.out, "%*s\n", (50+len(title))/2, title)
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
}

func (c *CLI) printProducts(products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(c.out, "Nenhum produto encontrado.")
		return
	}
	fmt.Fprintf(c.out, "%-4s %-25s %-10s %-8s %-15s %-5s %-10s\n",
		"ID", "Nome", "Categoria", "Tamanho", "Marca", "Qtd", "Preço")
	fmt.Fprintln(c.out, strings.Repeat("-", 80))
	for _, p := range products {
		size := p.Size
		if size == "" {
			size = "N/A"
		}
		fmt.Fprintf(c.out, "%-4d %-25s %-10s %-8s %-15s %-5d R$ %s\n",
			p.ID, p.Name, p.Category, size, p.Brand, p.Quantity, p.Price.StringFixed(2))
	}
	fmt.Fprintf(c.out, "Total: %d produto(s)\n", len(products))
}

func (c *CLI) printProductDetail(p entity.Product) {
	fmt.Fprintln(c.out, strings.Repeat("-", 50))
	fmt.Fprintf(c.out, "ID: %d\nNome: %s\nCategoria: %s\n", p.ID, p.Name, p.Category)
	if p.Category == entity.CategoryRoupa {
		fmt.Fprintf(c.out, "Tamanho: %s\n", p.Size)
	}
	fmt.Fprintf(c.out, "Marca: %s\n", p.Brand)
	if p.Category == entity.CategoryAlimento {
		fmt.Fprintf(c.out, "Validade: %s\n", p.Expiry)
	}
	fmt.Fprintf(c.out, "Quantidade: %d\nPreço: R$ %s\nCadastro: %s\n",
		p.Quantity, p.Price.StringFixed(2), p.CreatedAt)
	fmt.Fprintln(c.out, strings.Repeat("-", 50))
}

func (c *CLI) printOrders(orders []entity.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "Nenhum pedido encontrado.")
		return
	}
	fmt.Fprintf(c.out, "%-4s %-25s %-12s %-12s %-20s\n", "ID", "Cliente", "Total", "Status", "Data")
	fmt.Fprintln(c.out, strings.Repeat("-", 76))
	for _, o := range orders {
		fmt.Fprintf(c.out, "%-4d %-25s R$ %-9s %-12s %-20s\n",
			o.ID, o.CustomerName, o.Total.StringFixed(2), o.Status, o.CreatedAt)
	}
	fmt.Fprintf(c.out, "Total: %d pedido(s)\n", len(orders))
}

func (c *CLI) printOrderDetail(o entity.Order) {
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
	fmt.Fprintf(c.out, "Pedido #%d\nCliente: %s\nData: %s\nStatus: %s\nTotal: R$ %s\n",
		o.ID, o.CustomerName, o.CreatedAt, o.Status, o.Total.StringFixed(2))
	if o.ApprovedAt != nil && !o.ApprovedAt.IsZero() {
		fmt.Fprintf(c.out, "Aprovação: %s\n", *o.ApprovedAt)
	}
	if o.Notes != "" {
		fmt.Fprintf(c.out, "Observações: %s\n", o.Notes)
	}
	fmt.Fprintf(c.out, "\n%-25s %-5s %-10s %-10s\n", "Produto", "Qtd", "Preço", "Subtotal")
	fmt.Fprintln(c.out, strings.Repeat("-", 55))
	for _, item := range o.Items {
		fmt.Fprintf(c.out, "%-25s %-5d R$ %-7s R$ %s\n",
			item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2), item.Subtotal.StringFixed(2))
	}
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
}

func (c *CLI) printMovements(movements []entity.StockMovement) {
	if len(movements) == 0 {
		fmt.Fprintln(c.out, "Nenhuma movimentação registrada.")
		return
	}
	fmt.Fprintf(c.out, "%-20s %-8s %-10s %-5s %-30s\n", "Data/Hora", "Tipo", "Produto", "Qtd", "Descrição")
	fmt.Fprintln(c.out, strings.Repeat("-", 76))
	for _, m := range movements {
		fmt.Fprintf(c.out, "%-20s %-8s %-10d %-5d %-30s\n",
			m.At, m.Type, m.ProductID, m.Quantity, m.Description)
	}
}

func (c *CLI) printSuppliers(suppliers []entity.Supplier) {
	if len(suppliers) == 0 {
		fmt.Fprintln(c.out, "Nenhum fornecedor cadastrado.")
		return
	}
	fmt.Fprintf(c.out, "%-4s %-30s %-18s %-15s\n", "ID", "Nome", "CNPJ", "Telefone")
	fmt.Fprintln(c.out, strings.Repeat("-", 70))
	for _, s := range suppliers {
		fmt.Fprintf(c.out, "%-4d %-30s %-18s %-15s\n", s.ID, s.Name, s.TaxID, s.Phone)
	}
}

func (c *CLI) printCustomers(customers []entity.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(c.out, "Nenhum cliente cadastrado.")
		return
	}
	fmt.Fprintf(c.out, "%-4s %-30s %-15s %-15s\n", "ID", "Nome", "CPF", "Telefone")
	fmt.Fprintln(c.out, strings.Repeat("-", 68))
	for _, cl := range customers {
		fmt.Fprintf(c.out, "%-4d %-30s %-15s %-15s\n", cl.ID, cl.Name, cl.TaxID, cl.Phone)
	}
}

func (c *CLI) printEmployees(employees []entity.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(c.out, "Nenhum funcionário cadastrado.")
		return
	}
	fmt.Fprintf(c.out, "%-4s %-30s %-20s %-12s\n", "ID", "Nome", "Cargo", "Salário")
	fmt.Fprintln(c.out, strings.Repeat("-", 70))
	for _, e := range employees {
		fmt.Fprintf(c.out, "%-4d %-30s %-20s R$ %s\n", e.ID, e.Name, e.Role, e.Salary.StringFixed(2))
	}
}

func (c *CLI) printUsers(users []entity.User) {
	fmt.Fprintf(c.out, "%-4s %-15s %-25s %-15s %-25s\n", "ID", "Username", "Nome", "Nível", "Email")
	fmt.Fprintln(c.out, strings.Repeat("-", 86))
	for _, u := range users {
		fmt.Fprintf(c.out, "%-4d %-15s %-25s %-15s %-25s\n", u.ID, u.Username, u.Name, u.Role, u.Email)
	}
}
