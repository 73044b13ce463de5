package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/supply-chain-api/internal/domain"
	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
	"github.com/tu-usuario/supply-chain-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, sku, name, description, category, current_stock, minimum_stock,
	cost_price, selling_price, warehouse_id, supplier_id, created_at, updated_at`

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un nuevo ítem. La unicidad del SKU la garantiza el constraint
// único; la violación se mapea a ErrDuplicateSKU.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Description, item.Category,
		item.CurrentStock, item.MinimumStock, item.CostPrice, item.SellingPrice,
		item.WarehouseID, item.SupplierID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetBySKU obtiene un ítem por SKU. Devuelve nil si no existe.
func (r *InventoryItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get inventory item")
}

// GetBySKUForUpdate obtiene el ítem y bloquea su fila (SELECT FOR UPDATE):
// serializa las mutaciones de stock por SKU dentro de la transacción en curso.
func (r *InventoryItemRepo) GetBySKUForUpdate(sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE sku = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get inventory item for update")
}

// List lista ítems con filtros de categoría y búsqueda, en orden de inserción estable.
func (r *InventoryItemRepo) List(filter repository.ItemFilter) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (sku ILIKE $%d OR name ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY created_at, sku"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.scanMany(query, args...)
}

// ListAll devuelve el catálogo completo en orden de inserción (para reportes).
func (r *InventoryItemRepo) ListAll() ([]*entity.InventoryItem, error) {
	return r.scanMany(`SELECT ` + itemColumns + ` FROM inventory_items ORDER BY created_at, sku`)
}

// ListBelowMinimum ítems con stock en o bajo el mínimo (low-stock y out-of-stock).
func (r *InventoryItemRepo) ListBelowMinimum() ([]*entity.InventoryItem, error) {
	return r.scanMany(`
		SELECT ` + itemColumns + ` FROM inventory_items
		WHERE current_stock <= minimum_stock
		ORDER BY created_at, sku`)
}

// Update actualiza la ficha del ítem. No toca current_stock: eso va por UpdateStock
// dentro de la transacción del movimiento.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, category = $4, minimum_stock = $5,
		    cost_price = $6, selling_price = $7, warehouse_id = $8, supplier_id = $9, updated_at = $10
		WHERE sku = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.SKU, item.Name, item.Description, item.Category, item.MinimumStock,
		item.CostPrice, item.SellingPrice, item.WarehouseID, item.SupplierID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock ajusta solo current_stock (camino del movimiento auditado).
func (r *InventoryItemRepo) UpdateStock(sku string, newStock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET current_stock = $2, updated_at = now() WHERE sku = $1`,
		sku, newStock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ítem del catálogo activo. La historia de movimientos no se
// toca: referencia por SKU, sin FK en cascada.
func (r *InventoryItemRepo) Delete(sku string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE sku = $1`, sku)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Categories categorías distintas no vacías, ordenadas.
func (r *InventoryItemRepo) Categories() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT category FROM inventory_items WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *InventoryItemRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := row.Scan(
		&item.ID, &item.SKU, &item.Name, &item.Description, &item.Category,
		&item.CurrentStock, &item.MinimumStock, &item.CostPrice, &item.SellingPrice,
		&item.WarehouseID, &item.SupplierID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}

func (r *InventoryItemRepo) scanMany(query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.SKU, &item.Name, &item.Description, &item.Category,
			&item.CurrentStock, &item.MinimumStock, &item.CostPrice, &item.SellingPrice,
			&item.WarehouseID, &item.SupplierID, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
