package cli

import (
	"errors"
	"fmt"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/domain/policy"
)

// productsMenu gestión completa de productos (administrador y gerente).
func (c *CLI) productsMenu() {
	for {
		c.header("PRODUTOS")
		fmt.Fprintln(c.out, "1 - Listar Produtos")
		fmt.Fprintln(c.out, "2 - Buscar Produto")
		fmt.Fprintln(c.out, "3 - Cadastrar Produto")
		fmt.Fprintln(c.out, "4 - Editar Produto")
		fmt.Fprintln(c.out, "5 - Excluir Produto")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.printProducts(c.products.List())
		case "2":
			c.searchProduct()
		case "3":
			if c.allowed(policy.ActionCadastrarProduto) {
				c.createProduct()
			}
		case "4":
			if c.allowed(policy.ActionEditarProduto) {
				c.editProduct()
			}
		case "5":
			if c.allowed(policy.ActionEditarProduto) {
				c.deleteProduct()
			}
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

// viewProducts listado de solo lectura (vendedor y cliente).
func (c *CLI) viewProducts() {
	if !c.allowed(policy.ActionVisualizarProdutos) {
		return
	}
	for {
		c.header("PRODUTOS")
		fmt.Fprintln(c.out, "1 - Listar Produtos")
		fmt.Fprintln(c.out, "2 - Buscar Produto")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.printProducts(c.products.List())
		case "2":
			c.searchProduct()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

func (c *CLI) searchProduct() {
	term, err := c.readRequired("Buscar por ID, nome ou marca: ")
	if err != nil {
		return
	}
	c.printProducts(c.products.Search(term))
}

func (c *CLI) createProduct() {
	c.header("CADASTRAR PRODUTO")
	name, err := c.readRequired("Nome: ")
	if err != nil {
		return
	}
	var category string
	for {
		category, err = c.readRequired("Categoria (roupa/alimento): ")
		if err != nil {
			return
		}
		if category == entity.CategoryRoupa || category == entity.CategoryAlimento {
			break
		}
		fmt.Fprintln(c.out, "Categoria deve ser 'roupa' ou 'alimento'.")
	}
	req := dto.CreateProductRequest{Name: name, Category: category}
	if category == entity.CategoryRoupa {
		if req.Size, err = c.readRequired("Tamanho (P/M/G/GG): "); err != nil {
			return
		}
	} else {
		if req.Expiry, err = c.readRequired("Validade (AAAA-MM-DD): "); err != nil {
			return
		}
	}
	if req.Brand, err = c.readRequired("Marca: "); err != nil {
		return
	}
	if req.Quantity, err = c.readInt("Quantidade inicial: "); err != nil {
		return
	}
	if req.Price, err = c.readDecimal("Preço (R$): "); err != nil {
		return
	}

	product, err := c.products.Create(req)
	if err != nil {
		fmt.Fprintln(c.out, "Não foi possível cadastrar o produto: dados inválidos.")
		return
	}
	fmt.Fprintf(c.out, "Produto cadastrado com ID %d.\n", product.ID)
}

func (c *CLI) editProduct() {
	c.header("EDITAR PRODUTO")
	id, err := c.readPositiveInt("ID do produto: ")
	if err != nil {
		return
	}
	product, err := c.products.Get(id)
	if err != nil {
		fmt.Fprintln(c.out, "Produto não encontrado.")
		return
	}
	c.printProductDetail(product)
	fmt.Fprintln(c.out, "Deixe em branco para manter o valor atual.")

	req := dto.UpdateProductRequest{}
	if req.Name, err = c.readOptional("Nome: "); err != nil {
		return
	}
	if req.Brand, err = c.readOptional("Marca: "); err != nil {
		return
	}
	switch product.Category {
	case entity.CategoryRoupa:
		if req.Size, err = c.readOptional("Tamanho: "); err != nil {
			return
		}
	case entity.CategoryAlimento:
		if req.Expiry, err = c.readOptional("Validade (AAAA-MM-DD): "); err != nil {
			return
		}
	}
	priceText, err := c.readOptional("Preço (R$): ")
	if err != nil {
		return
	}
	if priceText != nil {
		price, perr := parseDecimal(*priceText)
		if perr != nil {
			fmt.Fprintln(c.out, "Preço inválido; edição cancelada.")
			return
		}
		req.Price = &price
	}

	if _, err := c.products.Update(id, req); err != nil {
		fmt.Fprintln(c.out, "Não foi possível editar o produto: dados inválidos.")
		return
	}
	fmt.Fprintln(c.out, "Produto atualizado.")
}

func (c *CLI) deleteProduct() {
	c.header("EXCLUIR PRODUTO")
	id, err := c.readPositiveInt("ID do produto: ")
	if err != nil {
		return
	}
	product, err := c.products.Get(id)
	if err != nil {
		fmt.Fprintln(c.out, "Produto não encontrado.")
		return
	}
	c.printProductDetail(product)
	ok, err := c.confirm("Confirma a exclusão?")
	if err != nil || !ok {
		return
	}
	if _, err := c.products.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(c.out, "Produto não encontrado.")
			return
		}
		fmt.Fprintln(c.out, "Não foi possível excluir o produto.")
		return
	}
	fmt.Fprintln(c.out, "Produto excluído.")
}
