package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/supply-chain-api/internal/domain"
	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia, para probar los casos de
// uso sin PostgreSQL. Reproducen la semántica relevante del adaptador real:
// unicidad de SKU, orden de inserción y copias en las lecturas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
	order []string
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.InventoryItem)}
}

func clone(item *entity.InventoryItem) *entity.InventoryItem {
	c := *item
	return &c
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	if _, exists := r.items[item.SKU]; exists {
		return domain.ErrDuplicateSKU
	}
	r.items[item.SKU] = clone(item)
	r.order = append(r.order, item.SKU)
	return nil
}

func (r *fakeItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	item, ok := r.items[sku]
	if !ok {
		return nil, nil
	}
	return clone(item), nil
}

func (r *fakeItemRepo) GetBySKUForUpdate(sku string) (*entity.InventoryItem, error) {
	return r.GetBySKU(sku)
}

func (r *fakeItemRepo) List(filter repository.ItemFilter) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, sku := range r.order {
		item, ok := r.items[sku]
		if !ok {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(item.SKU), q) &&
				!strings.Contains(strings.ToLower(item.Name), q) {
				continue
			}
		}
		out = append(out, clone(item))
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeItemRepo) ListAll() ([]*entity.InventoryItem, error) {
	return r.List(repository.ItemFilter{})
}

func (r *fakeItemRepo) ListBelowMinimum() ([]*entity.InventoryItem, error) {
	all, _ := r.ListAll()
	var out []*entity.InventoryItem
	for _, item := range all {
		if item.CurrentStock <= item.MinimumStock {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	if _, ok := r.items[item.SKU]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.SKU] = clone(item)
	return nil
}

func (r *fakeItemRepo) UpdateStock(sku string, newStock int) error {
	item, ok := r.items[sku]
	if !ok {
		return domain.ErrNotFound
	}
	item.CurrentStock = newStock
	item.UpdatedAt = time.Now()
	return nil
}

func (r *fakeItemRepo) Delete(sku string) error {
	if _, ok := r.items[sku]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, sku)
	for i, s := range r.order {
		if s == sku {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeItemRepo) Categories() ([]string, error) {
	seen := make(map[string]struct{})
	for _, item := range r.items {
		if c := strings.TrimSpace(item.Category); c != "" {
			seen[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

type fakeMovRepo struct {
	movements []entity.StockMovement
}

func (r *fakeMovRepo) Create(mov *entity.StockMovement) error {
	r.movements = append(r.movements, *mov)
	return nil
}

func (r *fakeMovRepo) ListBySKU(sku string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.movements[i].SKU == sku {
			m := r.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) NetDeltasByDay(sku string, since time.Time) ([]repository.DailyNetDelta, error) {
	byDay := make(map[time.Time]int)
	var days []time.Time
	for _, m := range r.movements {
		if m.SKU != sku || m.CreatedAt.Before(since) {
			continue
		}
		day := m.CreatedAt.Truncate(24 * time.Hour)
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] += m.Delta
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	out := make([]repository.DailyNetDelta, 0, len(days))
	for _, d := range days {
		out = append(out, repository.DailyNetDelta{Day: d, Net: byDay[d]})
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback contra los mismos dobles, simulando la
// atomicidad por estado compartido: los tests verifican que un rechazo no
// dejó efectos (los casos de uso validan antes de escribir).
type fakeTxRunner struct {
	items *fakeItemRepo
	movs  *fakeMovRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.items, r.movs)
}
