package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/inventory"
)

// InventoryHandler maneja el CRUD de ítems y el libro de movimientos.
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Description  Crea el ítem y registra el movimiento inicial "stock inicial" en la misma transacción.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "sku, name, current_stock, minimum_stock, precios"
// @Success      201   {object}  dto.APIResponse{data=dto.ItemResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	item, err := h.ledger.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success("ítem creado", item))
}

// List godoc
// @Summary      Listar ítems
// @Tags         inventory
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría exacta"
// @Param        status    query  string  false  "in-stock | low-stock | out-of-stock"
// @Param        search    query  string  false  "Búsqueda parcial por SKU o nombre"
// @Param        limit     query  int     false  "Máximo de filas (por defecto 50, tope 500)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.APIResponse{data=dto.ItemListResponse}
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListItemsRequest
	if ok, err := parseQueryAndValidate(c, &in); !ok {
		return err
	}
	list, err := h.ledger.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", list))
}

// Get godoc
// @Summary      Obtener un ítem por SKU
// @Tags         inventory
// @Produce      json
// @Param        sku  path  string  true  "SKU del ítem"
// @Success      200  {object}  dto.APIResponse{data=dto.ItemResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/inventory/{sku} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	item, err := h.ledger.Get(c.Context(), c.Params("sku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", item))
}

// Update godoc
// @Summary      Editar ficha de un ítem
// @Description  Edición parcial de metadatos. current_stock en el body se rechaza con 400: el stock solo cambia vía movimientos.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.APIResponse{data=dto.ItemResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/inventory/{sku} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	item, err := h.ledger.Update(c.Context(), c.Params("sku"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("ítem actualizado", item))
}

// Delete godoc
// @Summary      Eliminar un ítem
// @Description  Elimina el ítem; su historial de movimientos se conserva para auditoría.
// @Tags         inventory
// @Produce      json
// @Param        sku  path  string  true  "SKU del ítem"
// @Success      200  {object}  dto.APIResponse{data=dto.ItemResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/inventory/{sku} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	item, err := h.ledger.Delete(c.Context(), c.Params("sku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("ítem eliminado", item))
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica un delta firmado al stock del SKU dentro de una transacción serializada por fila. Un delta que dejaría el stock negativo se rechaza con 409 sin efecto.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del ítem"
// @Param        body  body  dto.RecordMovementRequest  true  "delta (≠0), reason, actor"
// @Success      201   {object}  dto.APIResponse{data=dto.MovementResult}
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/inventory/{sku}/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	result, err := h.ledger.RecordMovement(c.Context(), c.Params("sku"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success("movimiento registrado", result))
}

// ListMovements godoc
// @Summary      Historial de movimientos de un SKU
// @Tags         inventory
// @Produce      json
// @Param        sku    path   string  true   "SKU del ítem"
// @Param        limit  query  int     false  "Máximo de registros (por defecto 50, tope 500)"
// @Success      200  {object}  dto.APIResponse{data=dto.MovementListResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/inventory/{sku}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := h.ledger.ListMovements(c.Context(), c.Params("sku"), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", list))
}
