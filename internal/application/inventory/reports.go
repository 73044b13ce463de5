package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	domInv "github.com/tu-usuario/supply-chain-api/internal/domain/inventory"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

// ReportPolicy parámetros configurables de los reportes. El multiplicador de
// reposición es política explícita (no un valor descubierto): objetivo de
// stock = mínimo * multiplicador.
type ReportPolicy struct {
	ReorderMultiplier float64
}

// ReportUseCase reportes de solo lectura calculados sobre un snapshot del
// catálogo al momento de la llamada. Nunca observan un movimiento a medio aplicar.
type ReportUseCase struct {
	itemRepo repository.InventoryItemRepository
	policy   ReportPolicy
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(itemRepo repository.InventoryItemRepository, policy ReportPolicy) *ReportUseCase {
	if policy.ReorderMultiplier <= 0 {
		policy.ReorderMultiplier = 2
	}
	return &ReportUseCase{itemRepo: itemRepo, policy: policy}
}

// LowStock devuelve los ítems en low-stock u out-of-stock con la cantidad
// sugerida de reposición (max(mínimo*mult - actual, 0)) y su costo estimado.
// Orden: out-of-stock primero, luego mayor déficit relativo frente al mínimo.
func (uc *ReportUseCase) LowStock(ctx context.Context) (*dto.LowStockReport, error) {
	items, err := uc.itemRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	entries := make([]dto.LowStockEntry, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		status := domInv.Status(item.CurrentStock, item.MinimumStock)
		if status == domInv.StatusInStock {
			continue
		}
		qty := domInv.ReorderQuantity(item.CurrentStock, item.MinimumStock, uc.policy.ReorderMultiplier)
		cost := item.CostPrice.Mul(decimal.NewFromInt(int64(qty)))
		entries = append(entries, dto.LowStockEntry{
			SKU:               item.SKU,
			Name:              item.Name,
			Category:          item.Category,
			CurrentStock:      item.CurrentStock,
			MinimumStock:      item.MinimumStock,
			Status:            string(status),
			SuggestedQuantity: qty,
			EstimatedCost:     cost,
			SupplierID:        item.SupplierID,
		})
		total = total.Add(cost)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		aOut := a.CurrentStock == 0
		bOut := b.CurrentStock == 0
		if aOut != bOut {
			return aOut
		}
		// Déficit relativo: menor actual/mínimo = más urgente
		ra := ratio(a.CurrentStock, a.MinimumStock)
		rb := ratio(b.CurrentStock, b.MinimumStock)
		if ra != rb {
			return ra < rb
		}
		return a.SKU < b.SKU
	})
	return &dto.LowStockReport{Total: len(entries), TotalEstimatedCost: total, Items: entries}, nil
}

func ratio(current, minimum int) float64 {
	if minimum == 0 {
		return 0
	}
	return float64(current) / float64(minimum)
}

// FindDuplicates agrupa ítems cuyo nombre normalizado (minúsculas, sin
// diacríticos, espacios colapsados) y categoría coinciden. Grupos de tamaño > 1
// se devuelven como candidatos para resolución manual; nunca se fusiona nada.
func (uc *ReportUseCase) FindDuplicates(ctx context.Context) (*dto.DuplicateReport, error) {
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, err
	}
	type group struct {
		normalized string
		category   string
		members    []dto.DuplicateMember
	}
	byKey := make(map[string]*group)
	order := make([]string, 0)
	for _, item := range items {
		key := domInv.DuplicateKey(item.Name, item.Category)
		g, ok := byKey[key]
		if !ok {
			g = &group{normalized: domInv.NormalizeName(item.Name), category: item.Category}
			byKey[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, dto.DuplicateMember{SKU: item.SKU, Name: item.Name})
	}
	groups := make([]dto.DuplicateGroup, 0)
	for _, key := range order {
		g := byKey[key]
		if len(g.members) < 2 {
			continue
		}
		groups = append(groups, dto.DuplicateGroup{
			NormalizedName: g.normalized,
			Category:       g.category,
			Items:          g.members,
		})
	}
	return &dto.DuplicateReport{
		TotalAnalyzed: len(items),
		GroupsFound:   len(groups),
		Groups:        groups,
	}, nil
}

// Quality calcula el puntaje de calidad de datos: ítems sin descripción o sin
// categoría cuentan como incompletos. Catálogo vacío puntúa 100.
func (uc *ReportUseCase) Quality(ctx context.Context) (*dto.QualityReport, error) {
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" || strings.TrimSpace(item.Category) == "" {
			missing = append(missing, item.SKU)
		}
	}
	return &dto.QualityReport{
		Score:        domInv.QualityScore(len(items), len(missing)),
		TotalItems:   len(items),
		MissingItems: len(missing),
		MissingSKUs:  missing,
	}, nil
}

// Summary resumen agregado para el dashboard: totales, valor del inventario a
// costo y a precio de venta, y conteos por estado derivado.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryReport, error) {
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, err
	}
	report := &dto.SummaryReport{
		TotalItems:        len(items),
		TotalStockValue:   decimal.Zero,
		TotalSellingValue: decimal.Zero,
	}
	categories := make(map[string]struct{})
	for _, item := range items {
		report.TotalStockValue = report.TotalStockValue.Add(itemValue(item, item.CostPrice))
		report.TotalSellingValue = report.TotalSellingValue.Add(itemValue(item, item.SellingPrice))
		switch domInv.Status(item.CurrentStock, item.MinimumStock) {
		case domInv.StatusLowStock:
			report.LowStockItems++
		case domInv.StatusOutOfStock:
			report.OutOfStockItems++
		}
		if c := strings.TrimSpace(item.Category); c != "" {
			categories[c] = struct{}{}
		}
	}
	report.TotalCategories = len(categories)
	return report, nil
}

// Categories lista las categorías distintas del catálogo, ordenadas.
func (uc *ReportUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.itemRepo.Categories()
}
