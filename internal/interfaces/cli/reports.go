package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/igosistemas/igo/internal/domain/policy"
)

// reportsMenu relatórios (administrador y gerente).
func (c *CLI) reportsMenu() {
	if !c.allowed(policy.ActionGerarRelatorios) {
		return
	}
	for {
		c.header("RELATÓRIOS")
		fmt.Fprintln(c.out, "1 - Estoque")
		fmt.Fprintln(c.out, "2 - Exportar Estoque (PDF)")
		fmt.Fprintln(c.out, "3 - Movimentações")
		fmt.Fprintln(c.out, "4 - Produtos Mais Pedidos")
		fmt.Fprintln(c.out, "5 - Fornecedores por Região")
		fmt.Fprintln(c.out, "6 - Relatório Geral")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.stockReport()
		case "2":
			c.exportStockPDF()
		case "3":
			c.movementReport()
		case "4":
			c.topProductsReport()
		case "5":
			c.suppliersByRegionReport()
		case "6":
			c.generalReport()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

func (c *CLI) stockReport() {
	report := c.reports.Stock()
	c.header("RELATÓRIO DE ESTOQUE")
	fmt.Fprintf(c.out, "Total de produtos: %d\n", report.TotalProducts)
	fmt.Fprintf(c.out, "Valor total em estoque: R$ %s\n", report.TotalValue.StringFixed(2))
	for _, category := range report.Categories {
		fmt.Fprintf(c.out, "\n%s — %d produto(s), R$ %s\n",
			strings.ToUpper(category.Category), category.Count, category.Value.StringFixed(2))
		c.printProducts(category.Products)
	}
}

// exportStockPDF escribe el reporte de estoque en reportDir con nombre
// fechado.
func (c *CLI) exportStockPDF() {
	data, err := c.reports.ExportStockPDF()
	if err != nil {
		c.log.Error().Err(err).Msg("exportación de PDF fallida")
		fmt.Fprintln(c.out, "Não foi possível gerar o PDF.")
		return
	}
	if err := os.MkdirAll(c.reportDir, 0o755); err != nil {
		fmt.Fprintln(c.out, "Não foi possível criar o diretório de relatórios.")
		return
	}
	name := fmt.Sprintf("relatorio_estoque_%s.pdf", time.Now().Format("20060102_150405"))
	path := filepath.Join(c.reportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("escritura de PDF fallida")
		fmt.Fprintln(c.out, "Não foi possível salvar o PDF.")
		return
	}
	fmt.Fprintf(c.out, "Relatório exportado: %s\n", path)
}

func (c *CLI) movementReport() {
	report := c.reports.Movements(20)
	c.header("RELATÓRIO DE MOVIMENTAÇÕES")
	fmt.Fprintf(c.out, "Total: %d | Entradas: %d | Saídas: %d\n", report.Total, report.In, report.Out)
	fmt.Fprintln(c.out, "\nÚltimas movimentações:")
	c.printMovements(report.Latest)
}

func (c *CLI) topProductsReport() {
	top := c.reports.TopProducts(10)
	c.header("PRODUTOS MAIS PEDIDOS")
	if len(top) == 0 {
		fmt.Fprintln(c.out, "Nenhum pedido aprovado ainda.")
		return
	}
	fmt.Fprintf(c.out, "%-4s %-25s %-10s %-8s\n", "ID", "Produto", "Qtd Total", "Pedidos")
	fmt.Fprintln(c.out, strings.Repeat("-", 50))
	for _, p := range top {
		fmt.Fprintf(c.out, "%-4d %-25s %-10d %-8d\n", p.ProductID, p.Name, p.TotalQuantity, p.Orders)
	}
}

func (c *CLI) suppliersByRegionReport() {
	regions := c.reports.SuppliersByRegion()
	c.header("FORNECEDORES POR REGIÃO")
	if len(regions) == 0 {
		fmt.Fprintln(c.out, "Nenhum fornecedor cadastrado.")
		return
	}
	for _, region := range regions {
		fmt.Fprintf(c.out, "\n%s (%d):\n", region.Region, len(region.Suppliers))
		c.printSuppliers(region.Suppliers)
	}
}

func (c *CLI) generalReport() {
	report := c.reports.General()
	c.header("RELATÓRIO GERAL")
	fmt.Fprintf(c.out, "Produtos: %d\n", report.Products)
	for category, count := range report.ByCategory {
		fmt.Fprintf(c.out, "  %s: %d\n", category, count)
	}
	fmt.Fprintf(c.out, "Fornecedores: %d\n", report.Suppliers)
	fmt.Fprintf(c.out, "Clientes: %d\n", report.Customers)
	fmt.Fprintf(c.out, "Funcionários: %d\n", report.Employees)
	fmt.Fprintf(c.out, "Usuários: %d\n", report.Users)
	fmt.Fprintf(c.out, "Pedidos: %d (pendentes %d, aprovados %d, rejeitados %d)\n",
		report.Orders, report.OrdersPending, report.OrdersApproved, report.OrdersRejected)
	fmt.Fprintf(c.out, "Valor em estoque: R$ %s\n", report.StockValue.StringFixed(2))
}
