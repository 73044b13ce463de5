// Package spreadsheet convierte archivos XLSX/CSV en filas estructuradas para
// el importador. Los encabezados se normalizan a un conjunto canónico de
// columnas; los errores de parseo son por fila y nunca abortan el archivo.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
	"github.com/tu-usuario/supply-chain-api/internal/application/importer"
)

// Alias de encabezados aceptados -> columna canónica.
var headerAliases = map[string]string{
	"sku":           "sku",
	"codigo":        "sku",
	"código":        "sku",
	"name":          "name",
	"nombre":        "name",
	"product":       "name",
	"product_name":  "name",
	"producto":      "name",
	"category":      "category",
	"categoria":     "category",
	"categoría":     "category",
	"description":   "description",
	"descripcion":   "description",
	"descripción":   "description",
	"quantity":      "quantity",
	"qty":           "quantity",
	"stock":         "quantity",
	"current_stock": "quantity",
	"cantidad":      "quantity",
	"minimum_stock": "minimum_stock",
	"min_stock":     "minimum_stock",
	"reorder_level": "minimum_stock",
	"minimo":        "minimum_stock",
	"mínimo":        "minimum_stock",
	"cost_price":    "cost_price",
	"cost":          "cost_price",
	"costo":         "cost_price",
	"selling_price": "selling_price",
	"price":         "selling_price",
	"precio":        "selling_price",
}

// ReadXLSX lee la primera hoja de un archivo Excel.
func ReadXLSX(r io.Reader) ([]importer.Row, []dto.ImportRowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("el archivo no tiene hojas")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return parseRecords(records)
}

// ReadCSV lee un archivo CSV con encabezado. Tolera filas con columnas de menos.
func ReadCSV(r io.Reader) ([]importer.Row, []dto.ImportRowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("leer csv: %w", err)
	}
	return parseRecords(records)
}

// parseRecords interpreta la primera fila como encabezado y mapea el resto.
func parseRecords(records [][]string) ([]importer.Row, []dto.ImportRowError, error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("archivo vacío")
	}
	columns := mapHeader(records[0])
	if _, ok := columns["sku"]; !ok {
		return nil, nil, fmt.Errorf("encabezado sin columna sku (aceptados: sku, codigo)")
	}

	var rows []importer.Row
	var rowErrs []dto.ImportRowError
	for i, record := range records[1:] {
		line := i + 2 // 1-based, tras el encabezado
		if isEmptyRecord(record) {
			continue
		}
		row, err := parseRecord(line, record, columns)
		if err != nil {
			rowErrs = append(rowErrs, dto.ImportRowError{Line: line, SKU: cell(record, columns["sku"]), Message: err.Error()})
			continue
		}
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

func mapHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for i, h := range header {
		key := strings.ReplaceAll(strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_"), " ", "_")
		if canonical, ok := headerAliases[key]; ok {
			if _, dup := columns[canonical]; !dup {
				columns[canonical] = i
			}
		}
	}
	return columns
}

func parseRecord(line int, record []string, columns map[string]int) (importer.Row, error) {
	row := importer.Row{Line: line}
	row.SKU = cell(record, columns["sku"])
	if idx, ok := columns["name"]; ok {
		row.Name = cell(record, idx)
	}
	if idx, ok := columns["category"]; ok {
		row.Category = cell(record, idx)
	}
	if idx, ok := columns["description"]; ok {
		row.Description = cell(record, idx)
	}
	var err error
	if idx, ok := columns["quantity"]; ok {
		if row.Quantity, err = parseInt(cell(record, idx)); err != nil {
			return row, fmt.Errorf("cantidad inválida: %v", err)
		}
	}
	if idx, ok := columns["minimum_stock"]; ok {
		if row.MinimumStock, err = parseInt(cell(record, idx)); err != nil {
			return row, fmt.Errorf("stock mínimo inválido: %v", err)
		}
	}
	if idx, ok := columns["cost_price"]; ok {
		if row.CostPrice, err = parseDecimal(cell(record, idx)); err != nil {
			return row, fmt.Errorf("precio de costo inválido: %v", err)
		}
	}
	if idx, ok := columns["selling_price"]; ok {
		if row.SellingPrice, err = parseDecimal(cell(record, idx)); err != nil {
			return row, fmt.Errorf("precio de venta inválido: %v", err)
		}
	}
	return row, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func isEmptyRecord(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
