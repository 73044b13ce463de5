package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/importer"
	"github.com/tu-usuario/supply-chain-api/internal/infrastructure/spreadsheet"
)

// ImportHandler maneja la importación masiva desde archivo o filas JSON.
type ImportHandler struct {
	importer *importer.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(imp *importer.UseCase) *ImportHandler {
	return &ImportHandler{importer: imp}
}

// ImportFile godoc
// @Summary      Importar inventario desde XLSX o CSV
// @Description  Multipart con campo "file". Campos opcionales: update_existing ("true" aplica el delta a los SKUs existentes como movimiento "importación") y actor. Los errores de fila no abortan el lote.
// @Tags         imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file             formData  file    true   "Archivo .xlsx o .csv con encabezado"
// @Param        update_existing  formData  string  false  "true | false (por defecto false: existentes se saltan)"
// @Param        actor            formData  string  false  "Quién origina la importación"
// @Success      200  {object}  dto.APIResponse{data=dto.ImportSummary}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/imports/file [post]
func (h *ImportHandler) ImportFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "falta el campo multipart \"file\"", nil))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "no se pudo abrir el archivo", err.Error()))
	}
	defer file.Close()

	var rows []importer.Row
	var rowErrs []dto.ImportRowError
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		rows, rowErrs, err = spreadsheet.ReadXLSX(file)
	case ".csv":
		rows, rowErrs, err = spreadsheet.ReadCSV(file)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "formato no soportado, use .xlsx o .csv", nil))
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "archivo ilegible", err.Error()))
	}

	opts := importer.Options{
		UpdateExisting: c.FormValue("update_existing") == "true",
		Actor:          c.FormValue("actor"),
	}
	summary, err := h.importer.ImportRows(c.Context(), rows, opts)
	if err != nil {
		return respondError(c, err)
	}
	// Errores de parseo de archivo se acumulan con los de aplicación.
	summary.Errors = append(rowErrs, summary.Errors...)
	summary.ErrorCount = len(summary.Errors)
	return c.JSON(dto.Success("importación procesada", summary))
}

// ImportRows godoc
// @Summary      Importar inventario desde filas estructuradas
// @Description  Acepta filas ya extraídas (p. ej. por un OCR externo). Dentro del lote la primera fila de cada SKU gana; las repetidas se saltan.
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRowsRequest  true  "rows, update_existing, actor"
// @Success      200   {object}  dto.APIResponse{data=dto.ImportSummary}
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/imports/rows [post]
func (h *ImportHandler) ImportRows(c *fiber.Ctx) error {
	var in dto.ImportRowsRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	rows := make([]importer.Row, 0, len(in.Rows))
	for i, r := range in.Rows {
		rows = append(rows, importer.Row{Line: i + 1, ImportRowRequest: r})
	}
	summary, err := h.importer.ImportRows(c.Context(), rows, importer.Options{
		UpdateExisting: in.UpdateExisting,
		Actor:          in.Actor,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("importación procesada", summary))
}
