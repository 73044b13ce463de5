package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/inventory"
	"github.com/tu-usuario/supply-chain-api/internal/domain"
	"github.com/tu-usuario/supply-chain-api/internal/domain/entity"
)

// Row una fila cruda de importación ya estructurada (hoja de cálculo, CSV o
// líneas extraídas por OCR). Line es el número de fila en el origen, para
// reportar errores accionables.
type Row struct {
	Line int
	dto.ImportRowRequest
}

// Options modo del lote. Por defecto un SKU existente se salta; con
// UpdateExisting la cantidad entra como movimiento de stock (reason
// "importación") y la ficha se actualiza.
type Options struct {
	UpdateExisting bool
	Actor          string
}

// UseCase importación por lotes contra el ledger. Cada fila se procesa de forma
// independiente: una fila mala nunca aborta el lote; los reintentos son del caller.
type UseCase struct {
	ledger  *inventory.LedgerUseCase
	maxRows int
	log     zerolog.Logger
}

// NewUseCase construye el importador. maxRows limita el tamaño del lote
// (IMPORT_MAX_ROWS, por defecto 10000).
func NewUseCase(ledger *inventory.LedgerUseCase, maxRows int, log zerolog.Logger) *UseCase {
	if maxRows <= 0 {
		maxRows = 10000
	}
	return &UseCase{ledger: ledger, maxRows: maxRows, log: log}
}

// ImportRows procesa el lote fila a fila acumulando el resultado por fila.
// SKUs duplicados dentro del mismo lote: la primera fila gana, el resto se salta.
func (uc *UseCase) ImportRows(ctx context.Context, rows []Row, opts Options) (*dto.ImportSummary, error) {
	if len(rows) == 0 {
		return nil, domain.ErrInvalidInput
	}
	summary := &dto.ImportSummary{}

	// Filas sobre el tope: cada una queda reflejada como error en el resumen,
	// nunca descartada en silencio.
	if len(rows) > uc.maxRows {
		uc.log.Warn().Int("rows", len(rows)).Int("max", uc.maxRows).Msg("lote truncado")
		for _, row := range rows[uc.maxRows:] {
			uc.addError(summary, row.Line, strings.TrimSpace(row.SKU),
				fmt.Sprintf("fila descartada: el lote supera el tope de %d filas", uc.maxRows))
		}
		rows = rows[:uc.maxRows]
	}
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		sku := strings.TrimSpace(row.SKU)
		if sku == "" {
			uc.addError(summary, row.Line, "", "sku vacío")
			continue
		}
		if _, dup := seen[sku]; dup {
			summary.SkippedCount++
			continue
		}
		seen[sku] = struct{}{}

		existing, err := uc.ledger.Get(ctx, sku)
		switch {
		case err == nil:
			uc.applyExisting(ctx, summary, row, existing, opts)
		case errors.Is(err, domain.ErrNotFound):
			uc.createNew(ctx, summary, row, opts)
		default:
			uc.addError(summary, row.Line, sku, err.Error())
		}
	}
	return summary, nil
}

// applyExisting fila cuyo SKU ya está en catálogo: saltar, o en modo
// actualización registrar la cantidad como entrada y refrescar la ficha.
func (uc *UseCase) applyExisting(ctx context.Context, summary *dto.ImportSummary, row Row, existing *dto.ItemResponse, opts Options) {
	if !opts.UpdateExisting {
		summary.SkippedCount++
		return
	}
	if row.Quantity > 0 {
		_, err := uc.ledger.RecordMovement(ctx, existing.SKU, dto.RecordMovementRequest{
			Delta:  row.Quantity,
			Reason: entity.ReasonImport,
			Actor:  opts.Actor,
		})
		if err != nil {
			uc.addError(summary, row.Line, existing.SKU, fmt.Sprintf("movimiento de importación: %v", err))
			return
		}
	}
	update := dto.UpdateItemRequest{}
	if strings.TrimSpace(row.Name) != "" {
		update.Name = &row.Name
	}
	if row.Category != "" {
		update.Category = &row.Category
	}
	if row.Description != "" {
		update.Description = &row.Description
	}
	if row.MinimumStock > 0 {
		update.MinimumStock = &row.MinimumStock
	}
	if row.CostPrice.IsPositive() {
		update.CostPrice = &row.CostPrice
	}
	if row.SellingPrice.IsPositive() {
		update.SellingPrice = &row.SellingPrice
	}
	if _, err := uc.ledger.Update(ctx, existing.SKU, update); err != nil {
		uc.addError(summary, row.Line, existing.SKU, fmt.Sprintf("actualización de ficha: %v", err))
		return
	}
	summary.UpdatedCount++
}

func (uc *UseCase) createNew(ctx context.Context, summary *dto.ImportSummary, row Row, opts Options) {
	_, err := uc.ledger.Create(ctx, dto.CreateItemRequest{
		SKU:          row.SKU,
		Name:         row.Name,
		Category:     row.Category,
		Description:  row.Description,
		CurrentStock: row.Quantity,
		MinimumStock: row.MinimumStock,
		CostPrice:    row.CostPrice,
		SellingPrice: row.SellingPrice,
		Actor:        opts.Actor,
	})
	if err != nil {
		uc.addError(summary, row.Line, row.SKU, err.Error())
		return
	}
	summary.ImportedCount++
}

func (uc *UseCase) addError(summary *dto.ImportSummary, line int, sku, msg string) {
	summary.ErrorCount++
	summary.Errors = append(summary.Errors, dto.ImportRowError{Line: line, SKU: sku, Message: msg})
}
