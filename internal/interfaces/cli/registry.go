package cli

import (
	"fmt"

	"github.com/igosistemas/igo/internal/application/dto"
)

// registryMenu cadastros básicos: fornecedores, clientes e funcionários.
func (c *CLI) registryMenu() {
	for {
		c.header("CADASTROS")
		fmt.Fprintln(c.out, "1 - Produtos")
		fmt.Fprintln(c.out, "2 - Fornecedores")
		fmt.Fprintln(c.out, "3 - Clientes")
		fmt.Fprintln(c.out, "4 - Funcionários")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.productsMenu()
		case "2":
			c.suppliersMenu()
		case "3":
			c.customersMenu()
		case "4":
			c.employeesMenu()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

func (c *CLI) suppliersMenu() {
	for {
		c.header("FORNECEDORES")
		fmt.Fprintln(c.out, "1 - Listar")
		fmt.Fprintln(c.out, "2 - Cadastrar")
		fmt.Fprintln(c.out, "3 - Editar")
		fmt.Fprintln(c.out, "4 - Excluir")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.printSuppliers(c.suppliers.List())
		case "2":
			c.createSupplier()
		case "3":
			c.editSupplier()
		case "4":
			c.deleteSupplier()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

func (c *CLI) createSupplier() {
	c.header("CADASTRAR FORNECEDOR")
	var req dto.CreateSupplierRequest
	var err error
	if req.Name, err = c.readRequired("Nome: "); err != nil {
		return
	}
	if req.TaxID, err = c.readRequired("CNPJ: "); err != nil {
		return
	}
	if req.Phone, err = c.readLine("Telefone: "); err != nil {
		return
	}
	if req.Email, err = c.readLine("Email: "); err != nil {
		return
	}
	if req.Address, err = c.readLine("Endereço (rua, cidade): "); err != nil {
		return
	}
	supplier, err := c.suppliers.Create(req)
	if err != nil {
		fmt.Fprintln(c.out, "Não foi possível cadastrar o fornecedor: dados inválidos.")
		return
	}
	fmt.Fprintf(c.out, "Fornecedor cadastrado com ID %d.\n", supplier.ID)
}

func (c *CLI) editSupplier() {
	id, err := c.readPositiveInt("ID do fornecedor: ")
	if err != nil {
		return
	}
	if _, err := c.suppliers.Get(id); err != nil {
		fmt.Fprintln(c.out, "Fornecedor não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Deixe em branco para manter o valor atual.")
	var req dto.UpdateSupplierRequest
	if req.Name, err = c.readOptional("Nome: "); err != nil {
		return
	}
	if req.TaxID, err = c.readOptional("CNPJ: "); err != nil {
		return
	}
	if req.Phone, err = c.readOptional("Telefone: "); err != nil {
		return
	}
	if req.Email, err = c.readOptional("Email: "); err != nil {
		return
	}
	if req.Address, err = c.readOptional("Endereço: "); err != nil {
		return
	}
	if _, err := c.suppliers.Update(id, req); err != nil {
		fmt.Fprintln(c.out, "Não foi possível editar o fornecedor.")
		return
	}
	fmt.Fprintln(c.out, "Fornecedor atualizado.")
}

func (c *CLI) deleteSupplier() {
	id, err := c.readPositiveInt("ID do fornecedor: ")
	if err != nil {
		return
	}
	ok, err := c.confirm("Confirma a exclusão?")
	if err != nil || !ok {
		return
	}
	if _, err := c.suppliers.Delete(id); err != nil {
		fmt.Fprintln(c.out, "Fornecedor não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Fornecedor excluído.")
}

func (c *CLI) customersMenu() {
	for {
		c.header("CLIENTES")
		fmt.Fprintln(c.out, "1 - Listar")
		fmt.Fprintln(c.out, "2 - Cadastrar")
		fmt.Fprintln(c.out, "3 - Editar")
		fmt.Fprintln(c.out, "4 - Excluir")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.printCustomers(c.customers.List())
		case "2":
			c.createCustomer()
		case "3":
			c.editCustomer()
		case "4":
			c.deleteCustomer()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

func (c *CLI) createCustomer() {
	c.header("CADASTRAR CLIENTE")
	var req dto.CreateCustomerRequest
	var err error
	if req.Name, err = c.readRequired("Nome: "); err != nil {
		return
	}
	if req.TaxID, err = c.readRequired("CPF: "); err != nil {
		return
	}
	if req.Phone, err = c.readLine("Telefone: "); err != nil {
		return
	}
	if req.Email, err = c.readLine("Email: "); err != nil {
		return
	}
	if req.Address, err = c.readLine("Endereço (rua, cidade): "); err != nil {
		return
	}
	customer, err := c.customers.Create(req)
	if err != nil {
		fmt.Fprintln(c.out, "Não foi possível cadastrar o cliente: dados inválidos.")
		return
	}
	fmt.Fprintf(c.out, "Cliente cadastrado com ID %d.\n", customer.ID)
}

func (c *CLI) editCustomer() {
	id, err := c.readPositiveInt("ID do cliente: ")
	if err != nil {
		return
	}
	if _, err := c.customers.Get(id); err != nil {
		fmt.Fprintln(c.out, "Cliente não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Deixe em branco para manter o valor atual.")
	var req dto.UpdateCustomerRequest
	if req.Name, err = c.readOptional("Nome: "); err != nil {
		return
	}
	if req.TaxID, err = c.readOptional("CPF: "); err != nil {
		return
	}
	if req.Phone, err = c.readOptional("Telefone: "); err != nil {
		return
	}
	if req.Email, err = c.readOptional("Email: "); err != nil {
		return
	}
	if req.Address, err = c.readOptional("Endereço: "); err != nil {
		return
	}
	if _, err := c.customers.Update(id, req); err != nil {
		fmt.Fprintln(c.out, "Não foi possível editar o cliente.")
		return
	}
	fmt.Fprintln(c.out, "Cliente atualizado.")
}

func (c *CLI) deleteCustomer() {
	id, err := c.readPositiveInt("ID do cliente: ")
	if err != nil {
		return
	}
	ok, err := c.confirm("Confirma a exclusão?")
	if err != nil || !ok {
		return
	}
	if _, err := c.customers.Delete(id); err != nil {
		fmt.Fprintln(c.out, "Cliente não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Cliente excluído. Os pedidos existentes mantêm o nome registrado.")
}

func (c *CLI) employeesMenu() {
	for {
		c.header("FUNCIONÁRIOS")
		fmt.Fprintln(c.out, "1 - Listar")
		fmt.Fprintln(c.out, "2 - Cadastrar")
		fmt.Fprintln(c.out, "3 - Editar")
		fmt.Fprintln(c.out, "4 - Excluir")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.printEmployees(c.employees.List())
		case "2":
			c.createEmployee()
		case "3":
			c.editEmployee()
		case "4":
			c.deleteEmployee()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

func (c *CLI) createEmployee() {
	c.header("CADASTRAR FUNCIONÁRIO")
	var req dto.CreateEmployeeRequest
	var err error
	if req.Name, err = c.readRequired("Nome: "); err != nil {
		return
	}
	if req.TaxID, err = c.readRequired("CPF: "); err != nil {
		return
	}
	if req.Role, err = c.readRequired("Cargo: "); err != nil {
		return
	}
	if req.Phone, err = c.readLine("Telefone: "); err != nil {
		return
	}
	if req.Email, err = c.readLine("Email: "); err != nil {
		return
	}
	if req.Salary, err = c.readDecimal("Salário (R$): "); err != nil {
		return
	}
	employee, err := c.employees.Create(req)
	if err != nil {
		fmt.Fprintln(c.out, "Não foi possível cadastrar o funcionário: dados inválidos.")
		return
	}
	fmt.Fprintf(c.out, "Funcionário cadastrado com ID %d.\n", employee.ID)
}

func (c *CLI) editEmployee() {
	id, err := c.readPositiveInt("ID do funcionário: ")
	if err != nil {
		return
	}
	if _, err := c.employees.Get(id); err != nil {
		fmt.Fprintln(c.out, "Funcionário não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Deixe em branco para manter o valor atual.")
	var req dto.UpdateEmployeeRequest
	if req.Name, err = c.readOptional("Nome: "); err != nil {
		return
	}
	if req.Role, err = c.readOptional("Cargo: "); err != nil {
		return
	}
	if req.Phone, err = c.readOptional("Telefone: "); err != nil {
		return
	}
	if req.Email, err = c.readOptional("Email: "); err != nil {
		return
	}
	salaryText, err := c.readOptional("Salário (R$): ")
	if err != nil {
		return
	}
	if salaryText != nil {
		salary, perr := parseDecimal(*salaryText)
		if perr != nil {
			fmt.Fprintln(c.out, "Salário inválido; edição cancelada.")
			return
		}
		req.Salary = &salary
	}
	if _, err := c.employees.Update(id, req); err != nil {
		fmt.Fprintln(c.out, "Não foi possível editar o funcionário.")
		return
	}
	fmt.Fprintln(c.out, "Funcionário atualizado.")
}

func (c *CLI) deleteEmployee() {
	id, err := c.readPositiveInt("ID do funcionário: ")
	if err != nil {
		return
	}
	ok, err := c.confirm("Confirma a exclusão?")
	if err != nil || !ok {
		return
	}
	if _, err := c.employees.Delete(id); err != nil {
		fmt.Fprintln(c.out, "Funcionário não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Funcionário excluído.")
}
