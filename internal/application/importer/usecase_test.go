package importer_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/importer"
	"github.com/tu-usuario/supply-chain-api/internal/application/inventory"
	"github.com/tu-usuario/supply-chain-api/internal/domain"
	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

// Doble en memoria mínimo del catálogo + libro para ejercitar el importador
// contra el ledger real.
type memStore struct {
	items map[string]*entity.InventoryItem
	order []string
	movs  []entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]*entity.InventoryItem)}
}

func (s *memStore) Create(item *entity.InventoryItem) error {
	if _, ok := s.items[item.SKU]; ok {
		return domain.ErrDuplicateSKU
	}
	c := *item
	s.items[item.SKU] = &c
	s.order = append(s.order, item.SKU)
	return nil
}

func (s *memStore) GetBySKU(sku string) (*entity.InventoryItem, error) {
	item, ok := s.items[sku]
	if !ok {
		return nil, nil
	}
	c := *item
	return &c, nil
}

func (s *memStore) GetBySKUForUpdate(sku string) (*entity.InventoryItem, error) {
	return s.GetBySKU(sku)
}

func (s *memStore) List(filter repository.ItemFilter) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, sku := range s.order {
		if item, ok := s.items[sku]; ok {
			c := *item
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *memStore) ListAll() ([]*entity.InventoryItem, error) { return s.List(repository.ItemFilter{}) }

func (s *memStore) ListBelowMinimum() ([]*entity.InventoryItem, error) {
	all, _ := s.ListAll()
	var out []*entity.InventoryItem
	for _, item := range all {
		if item.CurrentStock <= item.MinimumStock {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *memStore) Update(item *entity.InventoryItem) error {
	if _, ok := s.items[item.SKU]; !ok {
		return domain.ErrNotFound
	}
	c := *item
	s.items[item.SKU] = &c
	return nil
}

func (s *memStore) UpdateStock(sku string, newStock int) error {
	item, ok := s.items[sku]
	if !ok {
		return domain.ErrNotFound
	}
	item.CurrentStock = newStock
	return nil
}

func (s *memStore) Delete(sku string) error {
	delete(s.items, sku)
	return nil
}

func (s *memStore) Categories() ([]string, error) {
	seen := map[string]struct{}{}
	for _, item := range s.items {
		if c := strings.TrimSpace(item.Category); c != "" {
			seen[c] = struct{}{}
		}
	}
	var out []string
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (s *memStore) CreateMovement(mov *entity.StockMovement) error {
	s.movs = append(s.movs, *mov)
	return nil
}

type memMovRepo struct{ store *memStore }

func (r *memMovRepo) Create(mov *entity.StockMovement) error { return r.store.CreateMovement(mov) }

func (r *memMovRepo) ListBySKU(sku string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.store.movs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.store.movs[i].SKU == sku {
			m := r.store.movs[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *memMovRepo) NetDeltasByDay(sku string, since time.Time) ([]repository.DailyNetDelta, error) {
	return nil, nil
}

type memTxRunner struct {
	store *memStore
	movs  *memMovRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(r.store, r.movs)
}

func newImporter() (*importer.UseCase, *memStore) {
	store := newMemStore()
	movs := &memMovRepo{store: store}
	ledger := inventory.NewLedgerUseCase(&memTxRunner{store: store, movs: movs}, store, movs)
	return importer.NewUseCase(ledger, 100, zerolog.Nop()), store
}

func row(line int, sku, name string, qty int) importer.Row {
	return importer.Row{
		Line: line,
		ImportRowRequest: dto.ImportRowRequest{
			SKU:      sku,
			Name:     name,
			Category: "importados",
			Quantity: qty,
		},
	}
}

func TestImportRows_LoteMixto(t *testing.T) {
	uc, store := newImporter()
	ctx := context.Background()

	rows := []importer.Row{
		row(2, "I-001", "Producto uno", 10),
		row(3, "I-002", "Producto dos", 5),
		row(4, "I-001", "Duplicado en lote", 99), // primera fila gana
		row(5, "", "Sin SKU", 1),                 // error de fila, el lote continúa
		row(6, "I-003", "Producto tres", 0),
	}

	summary, err := uc.ImportRows(ctx, rows, importer.Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ImportedCount)
	assert.Equal(t, 1, summary.SkippedCount, "SKU repetido dentro del lote")
	assert.Equal(t, 1, summary.ErrorCount)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, 5, summary.Errors[0].Line)

	// La primera fila ganó: el duplicado no sobrescribe
	item, _ := store.GetBySKU("I-001")
	assert.Equal(t, "Producto uno", item.Name)
	assert.Equal(t, 10, item.CurrentStock)
}

func TestImportRows_ExistentesSeSaltanPorDefecto(t *testing.T) {
	uc, store := newImporter()
	ctx := context.Background()

	_, err := uc.ImportRows(ctx, []importer.Row{row(2, "I-001", "Original", 10)}, importer.Options{})
	require.NoError(t, err)

	summary, err := uc.ImportRows(ctx, []importer.Row{row(2, "I-001", "Reimportado", 7)}, importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ImportedCount)
	assert.Equal(t, 1, summary.SkippedCount)

	item, _ := store.GetBySKU("I-001")
	assert.Equal(t, 10, item.CurrentStock, "sin modo actualización nada cambia")
}

func TestImportRows_ModoActualizacion(t *testing.T) {
	uc, store := newImporter()
	ctx := context.Background()

	_, err := uc.ImportRows(ctx, []importer.Row{row(2, "I-001", "Original", 10)}, importer.Options{})
	require.NoError(t, err)

	r := row(2, "I-001", "Renombrado", 7)
	r.CostPrice = decimal.NewFromInt(4)
	summary, err := uc.ImportRows(ctx, []importer.Row{r}, importer.Options{UpdateExisting: true, Actor: "ocr"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.UpdatedCount)
	assert.Equal(t, 0, summary.ErrorCount)

	item, _ := store.GetBySKU("I-001")
	assert.Equal(t, 17, item.CurrentStock, "la cantidad entra como movimiento")
	assert.Equal(t, "Renombrado", item.Name)
	assert.True(t, item.CostPrice.Equal(decimal.NewFromInt(4)))

	// El movimiento quedó auditado con la razón de importación
	last := store.movs[len(store.movs)-1]
	assert.Equal(t, entity.ReasonImport, last.Reason)
	assert.Equal(t, 7, last.Delta)
	assert.Equal(t, 17, last.ResultingStock)
	assert.Equal(t, "ocr", last.Actor)
}

func TestImportRows_LoteSobreElTope(t *testing.T) {
	store := newMemStore()
	movs := &memMovRepo{store: store}
	ledger := inventory.NewLedgerUseCase(&memTxRunner{store: store, movs: movs}, store, movs)
	uc := importer.NewUseCase(ledger, 3, zerolog.Nop())

	rows := []importer.Row{
		row(2, "T-001", "Uno", 1),
		row(3, "T-002", "Dos", 2),
		row(4, "T-003", "Tres", 3),
		row(5, "T-004", "Cuatro", 4),
		row(6, "T-005", "Cinco", 5),
	}
	summary, err := uc.ImportRows(context.Background(), rows, importer.Options{})
	require.NoError(t, err)

	// Toda fila enviada aparece en algún contador del resumen.
	accounted := summary.ImportedCount + summary.UpdatedCount + summary.SkippedCount + summary.ErrorCount
	assert.Equal(t, len(rows), accounted)
	assert.Equal(t, 3, summary.ImportedCount)
	assert.Equal(t, 2, summary.ErrorCount, "las filas sobre el tope se reportan como error")
	require.Len(t, summary.Errors, 2)
	assert.Equal(t, 5, summary.Errors[0].Line)
	assert.Equal(t, "T-004", summary.Errors[0].SKU)
	assert.Contains(t, summary.Errors[0].Message, "tope")

	// Solo las filas dentro del tope tocaron el catálogo.
	_, err = store.GetBySKU("T-003")
	require.NoError(t, err)
	item, _ := store.GetBySKU("T-004")
	assert.Nil(t, item)
}

func TestImportRows_LoteVacio(t *testing.T) {
	uc, _ := newImporter()
	_, err := uc.ImportRows(context.Background(), nil, importer.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
