package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/domain"
	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
	domInv "github.com/tu-usuario/supply-chain-api/internal/domain/inventory"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

// LedgerUseCase fuente única de verdad sobre niveles de stock y su historia.
// Toda mutación de current_stock pasa por un movimiento auditado dentro de una
// transacción con bloqueo de fila por SKU (SELECT FOR UPDATE).
type LedgerUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	movRepo  repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso. itemRepo/movRepo se usan para
// lecturas fuera de transacción; las mutaciones van por txRunner.
func NewLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// Create crea un ítem y registra el movimiento inicial (reason "stock inicial")
// con el stock de partida, en la misma transacción.
// Falla con ErrDuplicateSKU si el SKU ya existe y con ErrInvalidInput si alguna
// restricción numérica se viola; en ambos casos sin cambio de estado.
func (uc *LedgerUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	if in.SKU == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Category:     in.Category,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		WarehouseID:  in.WarehouseID,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		// Movimiento inicial: deja la suma de deltas igual al stock desde el nacimiento
		return movRepo.Create(&entity.StockMovement{
			ID:             uuid.New().String(),
			SKU:            item.SKU,
			Delta:          item.CurrentStock,
			ResultingStock: item.CurrentStock,
			Reason:         entity.ReasonInitialStock,
			Actor:          in.Actor,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Get obtiene un ítem por SKU con su estado derivado.
func (uc *LedgerUseCase) Get(ctx context.Context, sku string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista ítems con filtros. Categoría y búsqueda se resuelven en la BD;
// el estado derivado se filtra después de leer, con la misma función Status
// que usan todas las lecturas. Con filtro de estado la paginación se aplica
// sobre el conjunto ya filtrado y Total es el total de coincidencias, de modo
// que una página nunca viene corta habiendo más resultados.
// Orden de inserción, estable. Resultado vacío no es error.
func (uc *LedgerUseCase) List(ctx context.Context, in dto.ListItemsRequest) (*dto.ItemListResponse, error) {
	in.DefaultPage()
	filter := repository.ItemFilter{
		Category: in.Category,
		Search:   in.Search,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}
	if in.Status != "" {
		// El estado no está almacenado: leer el conjunto completo y paginar después.
		filter.Limit, filter.Offset = 0, 0
	}
	items, err := uc.itemRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		resp := toItemResponse(item)
		if in.Status != "" && resp.Status != in.Status {
			continue
		}
		out = append(out, *resp)
	}
	if in.Status == "" {
		return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
	}
	total := len(out)
	if in.Offset >= len(out) {
		out = out[len(out):]
	} else {
		out = out[in.Offset:]
	}
	if len(out) > in.Limit {
		out = out[:in.Limit]
	}
	return &dto.ItemListResponse{Items: out, Total: total}, nil
}

// Update edición parcial de ficha (nombre, descripción, categoría, mínimo, precios).
// Prohibido tocar current_stock por este camino: ErrInvalidOperation si se intenta
// (el stock solo cambia vía RecordMovement, para preservar la pista de auditoría).
func (uc *LedgerUseCase) Update(ctx context.Context, sku string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.CurrentStock != nil {
		return nil, domain.ErrInvalidOperation
	}
	item, err := uc.itemRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinimumStock = *in.MinimumStock
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.SellingPrice = *in.SellingPrice
	}
	if in.WarehouseID != nil {
		item.WarehouseID = *in.WarehouseID
	}
	if in.SupplierID != nil {
		item.SupplierID = *in.SupplierID
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete retira el ítem del catálogo activo y devuelve su último snapshot para
// confirmación. La historia de movimientos se conserva intacta para auditoría.
func (uc *LedgerUseCase) Delete(ctx context.Context, sku string) (*dto.ItemResponse, error) {
	var snapshot *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		item, err := itemRepo.GetBySKUForUpdate(sku)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		snapshot = item
		return itemRepo.Delete(sku)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(snapshot), nil
}

// toItemResponse mapea la entidad al DTO calculando el estado derivado.
func toItemResponse(item *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           item.ID,
		SKU:          item.SKU,
		Name:         item.Name,
		Description:  item.Description,
		Category:     item.Category,
		CurrentStock: item.CurrentStock,
		MinimumStock: item.MinimumStock,
		CostPrice:    item.CostPrice,
		SellingPrice: item.SellingPrice,
		WarehouseID:  item.WarehouseID,
		SupplierID:   item.SupplierID,
		Status:       string(domInv.Status(item.CurrentStock, item.MinimumStock)),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// itemValue valor de inventario de un ítem a costo: stock * costo unitario.
func itemValue(item *entity.InventoryItem, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(item.CurrentStock)))
}
