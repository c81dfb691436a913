package cli

import (
	"errors"
	"fmt"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/domain/policy"
)

// stockMenu controle de estoque (administrador y gerente).
func (c *CLI) stockMenu() {
	if !c.allowed(policy.ActionGerenciarEstoque) {
		return
	}
	for {
		c.header("CONTROLE DE ESTOQUE")
		fmt.Fprintln(c.out, "1 - Registrar Entrada/Saída")
		fmt.Fprintln(c.out, "2 - Produtos com Estoque Baixo")
		fmt.Fprintln(c.out, "3 - Produtos Próximos do Vencimento")
		fmt.Fprintln(c.out, "4 - Histórico de Movimentações")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.adjustStock()
		case "2":
			fmt.Fprintf(c.out, "\nProdutos com quantidade <= %d:\n", c.lowStockThreshold)
			c.printProducts(c.inventory.LowStock(c.lowStockThreshold))
		case "3":
			fmt.Fprintf(c.out, "\nAlimentos com validade nos próximos %d dias:\n", c.expiryWindowDays)
			c.printProducts(c.inventory.NearExpiry(c.expiryWindowDays))
		case "4":
			c.printMovements(c.inventory.Movements())
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

// adjustStock ajuste manual con movimentação. También entra por aquí el
// vendedor vía "Atualizar Estoque".
func (c *CLI) adjustStock() {
	if !c.allowedAny(policy.ActionAtualizarEstoque, policy.ActionGerenciarEstoque) {
		return
	}
	c.header("AJUSTE DE ESTOQUE")
	id, err := c.readPositiveInt("ID do produto: ")
	if err != nil {
		return
	}
	product, err := c.products.Get(id)
	if err != nil {
		fmt.Fprintln(c.out, "Produto não encontrado.")
		return
	}
	fmt.Fprintf(c.out, "%s — estoque atual: %d\n", product.Name, product.Quantity)

	var tipo string
	for {
		tipo, err = c.readRequired("Tipo (entrada/saida): ")
		if err != nil {
			return
		}
		if tipo == entity.MovementEntrada || tipo == entity.MovementSaida {
			break
		}
		fmt.Fprintln(c.out, "Tipo deve ser 'entrada' ou 'saida'.")
	}
	quantity, err := c.readPositiveInt("Quantidade: ")
	if err != nil {
		return
	}
	description, err := c.readRequired("Descrição: ")
	if err != nil {
		return
	}

	updated, err := c.inventory.AdjustStock(dto.AdjustStockRequest{
		ProductID:   id,
		Type:        tipo,
		Quantity:    quantity,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			fmt.Fprintln(c.out, "Estoque insuficiente para a saída.")
			return
		}
		fmt.Fprintln(c.out, "Não foi possível ajustar o estoque.")
		return
	}
	fmt.Fprintf(c.out, "Estoque atualizado: %d unidade(s).\n", updated.Quantity)
}
