// Package export serializa reportes a formatos descargables.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/application/report"
	"github.com/jhoicas/hotel-pos/internal/domain"
)

var _ report.CSVExporter = (*CSVWriter)(nil)

// Charsets aceptados por ExportSales.
const (
	CharsetUTF8        = "utf-8"
	CharsetWindows1252 = "windows-1252"
)

// TimestampLayout formato de la columna timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Header columnas del CSV de ventas, en orden.
var Header = []string{"timestamp", "name", "category", "quantity", "price", "total_price", "username"}

// CSVWriter genera el CSV de ventas del día.
type CSVWriter struct{}

// NewCSVWriter construye el exportador.
func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// ExportSales escribe cabecera + una fila por venta. charset vacío = UTF-8.
// windows-1252 sirve para abrir el archivo directamente en Excel; caracteres sin
// representación en ese charset devuelven error.
func (w *CSVWriter) ExportSales(rows []dto.SaleDetailDTO, charset string) ([]byte, error) {
	cs := strings.ToLower(strings.TrimSpace(charset))
	if cs != "" && cs != CharsetUTF8 && cs != CharsetWindows1252 {
		return nil, fmt.Errorf("%w: charset no soportado %q", domain.ErrInvalidInput, charset)
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(Header); err != nil {
		return nil, fmt.Errorf("export: cabecera: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Timestamp.Format(TimestampLayout),
			r.Name,
			r.Category,
			strconv.FormatInt(r.Quantity, 10),
			strconv.FormatInt(r.Price, 10),
			strconv.FormatInt(r.TotalPrice, 10),
			r.Username,
		}
		if err := cw.Write(record); err != nil {
			return nil, fmt.Errorf("export: fila %s: %w", r.SaleID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("export: flush: %w", err)
	}

	if cs != CharsetWindows1252 {
		return buf.Bytes(), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("export: convertir a %s: %w", CharsetWindows1252, err)
	}
	return out, nil
}
