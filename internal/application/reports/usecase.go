package reports

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
)

// StockReportPDFGenerator puerto de exportación del reporte de estoque a PDF.
type StockReportPDFGenerator interface {
	Generate(report dto.StockReport) ([]byte, error)
}

// UseCase agregaciones de reporte sobre el documento: estoque, movimentações,
// productos más pedidos, proveedores por región y reporte general.
type UseCase struct {
	store *store.Store
	pdf   StockReportPDFGenerator
}

// NewUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewUseCase(st *store.Store, pdf StockReportPDFGenerator) *UseCase {
	return &UseCase{store: st, pdf: pdf}
}

// Stock genera el reporte de estoque: totales, valorización y desglose por
// categoría en el orden natural del documento.
func (uc *UseCase) Stock() dto.StockReport {
	products := uc.store.Products(nil)

	report := dto.StockReport{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		GeneratedAt:   entity.Now(),
	}
	byCategory := make(map[string]*dto.CategoryStock)
	order := make([]string, 0, 2)
	for _, p := range products {
		value := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		report.TotalValue = report.TotalValue.Add(value)

		cat, ok := byCategory[p.Category]
		if !ok {
			cat = &dto.CategoryStock{Category: p.Category, Value: decimal.Zero}
			byCategory[p.Category] = cat
			order = append(order, p.Category)
		}
		cat.Count++
		cat.Value = cat.Value.Add(value)
		cat.Products = append(cat.Products, p)
	}
	for _, name := range order {
		report.Categories = append(report.Categories, *byCategory[name])
	}
	return report
}

// ExportStockPDF genera el reporte de estoque y lo exporta a PDF.
func (uc *UseCase) ExportStockPDF() ([]byte, error) {
	return uc.pdf.Generate(uc.Stock())
}

// Movements genera el reporte de movimentações con las últimas limit
// entradas, más recientes primero.
func (uc *UseCase) Movements(limit int) dto.MovementReport {
	movements := uc.store.Movements(nil)

	report := dto.MovementReport{Total: len(movements)}
	for _, m := range movements {
		switch m.Type {
		case entity.MovementEntrada:
			report.In++
		case entity.MovementSaida:
			report.Out++
		}
	}

	latest := make([]entity.StockMovement, len(movements))
	copy(latest, movements)
	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].At.After(latest[j].At.Time)
	})
	if limit > 0 && len(latest) > limit {
		latest = latest[:limit]
	}
	report.Latest = latest
	return report
}

// TopProducts agrega las líneas de los pedidos aprobados y devuelve los
// limit productos más pedidos por cantidad total.
func (uc *UseCase) TopProducts(limit int) []dto.TopProduct {
	approved := uc.store.Orders(func(o entity.Order) bool {
		return o.Status == entity.OrderStatusAprovado
	})

	byProduct := make(map[int]*dto.TopProduct)
	for _, order := range approved {
		for _, item := range order.Items {
			top, ok := byProduct[item.ProductID]
			if !ok {
				top = &dto.TopProduct{ProductID: item.ProductID, Name: item.ProductName}
				byProduct[item.ProductID] = top
			}
			top.TotalQuantity += item.Quantity
			top.Orders++
		}
	}

	result := make([]dto.TopProduct, 0, len(byProduct))
	for _, top := range byProduct {
		result = append(result, *top)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalQuantity != result[j].TotalQuantity {
			return result[i].TotalQuantity > result[j].TotalQuantity
		}
		return result[i].ProductID < result[j].ProductID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// regionOf extrae la región del tramo final de la dirección ("..., Ciudad").
func regionOf(address string) string {
	parts := strings.Split(address, ",")
	if address == "" || len(parts) < 2 {
		return "Não informado"
	}
	return strings.TrimSpace(parts[len(parts)-1])
}

// SuppliersByRegion agrupa proveedores por región, en orden de aparición.
func (uc *UseCase) SuppliersByRegion() []dto.SupplierRegion {
	suppliers := uc.store.Suppliers(nil)

	byRegion := make(map[string]*dto.SupplierRegion)
	order := make([]string, 0)
	for _, s := range suppliers {
		region := regionOf(s.Address)
		group, ok := byRegion[region]
		if !ok {
			group = &dto.SupplierRegion{Region: region}
			byRegion[region] = group
			order = append(order, region)
		}
		group.Suppliers = append(group.Suppliers, s)
	}

	result := make([]dto.SupplierRegion, 0, len(order))
	for _, region := range order {
		result = append(result, *byRegion[region])
	}
	return result
}

// General genera el reporte general del sistema.
func (uc *UseCase) General() dto.GeneralReport {
	products := uc.store.Products(nil)
	orders := uc.store.Orders(nil)

	report := dto.GeneralReport{
		Products:    len(products),
		Suppliers:   len(uc.store.Suppliers(nil)),
		Customers:   len(uc.store.Customers(nil)),
		Employees:   len(uc.store.Employees(nil)),
		Orders:      len(orders),
		Users:       len(uc.store.Users(nil)),
		ByCategory:  make(map[string]int),
		StockValue:  decimal.Zero,
		GeneratedAt: entity.Now(),
	}
	for _, o := range orders {
		switch o.Status {
		case entity.OrderStatusPendente:
			report.OrdersPending++
		case entity.OrderStatusAprovado:
			report.OrdersApproved++
		case entity.OrderStatusRejeitado:
			report.OrdersRejected++
		}
	}
	for _, p := range products {
		report.ByCategory[p.Category]++
		report.StockValue = report.StockValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return report
}
