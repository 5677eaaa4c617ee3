package export_test

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/infrastructure/export"
)

func sampleRows() []dto.SaleDetailDTO {
	return []dto.SaleDetailDTO{
		{
			SaleID:     "s1",
			Timestamp:  time.Date(2024, 5, 10, 9, 15, 0, 0, time.UTC),
			Name:       "Burger",
			Category:   "food",
			Price:      120,
			Quantity:   2,
			TotalPrice: 240,
			Username:   "alice",
		},
		{
			SaleID:     "s2",
			Timestamp:  time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
			Name:       "Café, grande",
			Category:   "drink",
			Price:      90,
			Quantity:   1,
			TotalPrice: 90,
			Username:   "bob",
		},
	}
}

// ── UTF-8 ─────────────────────────────────────────────────────────────────────

func TestExportSales_CabeceraYFilas(t *testing.T) {
	w := export.NewCSVWriter()
	data, err := w.ExportSales(sampleRows(), "")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"timestamp", "name", "category", "quantity", "price", "total_price", "username"}, records[0])
	assert.Equal(t, []string{"2024-05-10 09:15:00", "Burger", "food", "2", "120", "240", "alice"}, records[1])
	assert.Equal(t, "Café, grande", records[2][1])
}

func TestExportSales_SinVentasSoloCabecera(t *testing.T) {
	w := export.NewCSVWriter()
	data, err := w.ExportSales(nil, export.CharsetUTF8)
	require.NoError(t, err)
	assert.Equal(t, "timestamp,name,category,quantity,price,total_price,username\n", string(data))
}

// ── Charsets ──────────────────────────────────────────────────────────────────

func TestExportSales_Windows1252(t *testing.T) {
	w := export.NewCSVWriter()
	data, err := w.ExportSales(sampleRows(), "Windows-1252")
	require.NoError(t, err)
	// "é" en windows-1252 es un solo byte 0xE9.
	assert.Contains(t, string(data), "Caf\xe9, grande")
	assert.NotContains(t, string(data), "Café")
}

func TestExportSales_CharsetDesconocido(t *testing.T) {
	w := export.NewCSVWriter()
	_, err := w.ExportSales(sampleRows(), "ebcdic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
