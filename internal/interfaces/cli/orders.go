package cli

import (
	"errors"
	"fmt"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/domain/policy"
)

// ordersMenu gestión completa de pedidos (administrador).
func (c *CLI) ordersMenu() {
	for {
		c.header("PEDIDOS")
		fmt.Fprintln(c.out, "1 - Criar Pedido")
		fmt.Fprintln(c.out, "2 - Listar Pedidos")
		fmt.Fprintln(c.out, "3 - Detalhar Pedido")
		fmt.Fprintln(c.out, "4 - Aprovar/Rejeitar Pedidos")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.createOrder()
		case "2":
			c.listOrders()
		case "3":
			c.orderDetail()
		case "4":
			c.approveOrders()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

// createOrder arma un pedido línea a línea validando el stock de cada una.
func (c *CLI) createOrder() {
	if !c.allowed(policy.ActionCriarPedidos) {
		return
	}
	c.header("CRIAR PEDIDO")
	c.printCustomers(c.customers.List())
	customerID, err := c.readPositiveInt("ID do cliente: ")
	if err != nil {
		return
	}
	if _, err := c.customers.Get(customerID); err != nil {
		fmt.Fprintln(c.out, "Cliente não encontrado.")
		return
	}

	var items []dto.OrderItemRequest
	for {
		c.printProducts(c.products.List())
		productID, err := c.readPositiveInt("ID do produto: ")
		if err != nil {
			return
		}
		product, err := c.products.Get(productID)
		if err != nil {
			fmt.Fprintln(c.out, "Produto não encontrado.")
			continue
		}
		quantity, err := c.readPositiveInt("Quantidade: ")
		if err != nil {
			return
		}
		if quantity > product.Quantity {
			fmt.Fprintf(c.out, "Estoque insuficiente: disponível %d unidade(s).\n", product.Quantity)
			continue
		}
		items = append(items, dto.OrderItemRequest{ProductID: productID, Quantity: quantity})
		fmt.Fprintf(c.out, "Adicionado: %s x%d\n", product.Name, quantity)

		more, err := c.confirm("Adicionar outro produto?")
		if err != nil {
			return
		}
		if !more {
			break
		}
	}
	if len(items) == 0 {
		fmt.Fprintln(c.out, "Pedido sem itens; cancelado.")
		return
	}
	notes, err := c.readLine("Observações (opcional): ")
	if err != nil {
		return
	}

	order, err := c.orders.Place(dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      items,
		Notes:      notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			fmt.Fprintln(c.out, "Estoque insuficiente para um dos itens; pedido cancelado.")
			return
		}
		fmt.Fprintln(c.out, "Não foi possível criar o pedido.")
		return
	}
	fmt.Fprintf(c.out, "Pedido #%d criado — total R$ %s (aguardando aprovação).\n",
		order.ID, order.Total.StringFixed(2))
}

// listOrders lista pedidos filtrando opcionalmente por estado.
func (c *CLI) listOrders() {
	status, err := c.readLine("Filtrar por status (pendente/aprovado/rejeitado, vazio = todos): ")
	if err != nil {
		return
	}
	c.printOrders(c.orders.List(status))
}

func (c *CLI) orderDetail() {
	id, err := c.readPositiveInt("ID do pedido: ")
	if err != nil {
		return
	}
	order, err := c.orders.Get(id)
	if err != nil {
		fmt.Fprintln(c.out, "Pedido não encontrado.")
		return
	}
	c.printOrderDetail(order)
}

// viewOrders listado de solo lectura para el vendedor.
func (c *CLI) viewOrders() {
	if !c.allowed(policy.ActionVisualizarPedidos) {
		return
	}
	c.header("PEDIDOS")
	c.listOrders()
}

// myOrders pedidos del cliente de la sesión. El vínculo usuario -> cliente es
// por email; sin coincidencia se pide el ID del cadastro.
func (c *CLI) myOrders() {
	if !c.allowed(policy.ActionVisualizarMeusPedidos) {
		return
	}
	c.header("MEUS PEDIDOS")
	customerID := 0
	if customer, ok := c.customers.FindByEmail(c.session.User.Email); ok {
		customerID = customer.ID
	} else {
		id, err := c.readPositiveInt("ID do seu cadastro de cliente: ")
		if err != nil {
			return
		}
		customerID = id
	}
	c.printOrders(c.orders.ListByCustomer(customerID))
}

// approveOrders recorre los pedidos pendentes uno a uno.
func (c *CLI) approveOrders() {
	if !c.allowed(policy.ActionAprovarPedidos) {
		return
	}
	c.header("APROVAR/REJEITAR PEDIDOS")
	pending := c.orders.List(entity.OrderStatusPendente)
	if len(pending) == 0 {
		fmt.Fprintln(c.out, "Nenhum pedido pendente.")
		return
	}
	for _, order := range pending {
		c.printOrderDetail(order)
		opt, err := c.readLine("(a)provar / (r)ejeitar / (p)ular: ")
		if err != nil {
			return
		}
		switch opt {
		case "a":
			if _, err := c.orders.Approve(order.ID); err != nil {
				fmt.Fprintln(c.out, "Não foi possível aprovar o pedido.")
				continue
			}
			fmt.Fprintf(c.out, "Pedido #%d aprovado; estoque descontado.\n", order.ID)
		case "r":
			reason, err := c.readRequired("Motivo da rejeição: ")
			if err != nil {
				return
			}
			if _, err := c.orders.Reject(order.ID, reason); err != nil {
				fmt.Fprintln(c.out, "Não foi possível rejeitar o pedido.")
				continue
			}
			fmt.Fprintf(c.out, "Pedido #%d rejeitado.\n", order.ID)
		default:
			continue
		}
	}
}
