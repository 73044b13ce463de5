package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/supply-chain-api/internal/infrastructure/spreadsheet"
)

func buildXLSX(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX_EncabezadosConAlias(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"Codigo", "Producto", "Categoria", "Stock", "Reorder Level", "Costo", "Precio"},
		{"M-001", "Mouse Inalámbrico", "Electrónica", 5, 10, "12.50", "25.00"},
		{"K-002", "Teclado", "Electrónica", 40, 8, "30", "59.90"},
	})

	rows, rowErrs, err := spreadsheet.ReadXLSX(buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "M-001", rows[0].SKU)
	assert.Equal(t, "Mouse Inalámbrico", rows[0].Name)
	assert.Equal(t, 5, rows[0].Quantity)
	assert.Equal(t, 10, rows[0].MinimumStock)
	assert.Equal(t, "12.5", rows[0].CostPrice.String())
	assert.Equal(t, "59.9", rows[1].SellingPrice.String())
}

func TestReadXLSX_FilasInvalidasNoAbortanElLote(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"sku", "name", "quantity"},
		{"A-1", "Bueno", 3},
		{"B-2", "Malo", "muchos"},
		{"", "", ""},
		{"C-3", "Bueno también", 0},
	})

	rows, rowErrs, err := spreadsheet.ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A-1", rows[0].SKU)
	assert.Equal(t, "C-3", rows[1].SKU)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, 3, rowErrs[0].Line)
	assert.Equal(t, "B-2", rowErrs[0].SKU)
	assert.Contains(t, rowErrs[0].Message, "cantidad inválida")
}

func TestReadXLSX_SinColumnaSKU(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"name", "quantity"},
		{"Sin código", 1},
	})

	_, _, err := spreadsheet.ReadXLSX(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sku")
}

func TestReadCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"sku,name,category,quantity,minimum_stock,cost_price,selling_price",
		"M-001,Mouse,Accesorios,5,10,12.50,25.00",
		"M-002,Pad,Accesorios,100,10,1.10,3.00",
	}, "\n")

	rows, rowErrs, err := spreadsheet.ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)
	assert.Equal(t, "M-002", rows[1].SKU)
	assert.Equal(t, 100, rows[1].Quantity)
}

func TestReadCSV_Vacio(t *testing.T) {
	_, _, err := spreadsheet.ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}
