package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura para los reportes de ventas.
// Todos los rangos son semiabiertos: timestamp >= start AND timestamp < end.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el repositorio de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByItem agrega cantidad e ingresos por artículo.
func (r *ReportRepo) SalesByItem(ctx context.Context, start, end time.Time) ([]repository.ItemSalesResult, error) {
	const q = `
		SELECT
			i.id,
			i.name,
			i.category,
			COALESCE(SUM(s.quantity), 0)::BIGINT    AS quantity_sold,
			COALESCE(SUM(s.total_price), 0)::BIGINT AS revenue
		FROM sales s
		JOIN inventory i ON i.id = s.item_id
		WHERE s.timestamp >= $1 AND s.timestamp < $2
		GROUP BY i.id, i.name, i.category
		ORDER BY i.category COLLATE "C", i.name COLLATE "C"`

	rows, err := r.q.Query(ctx, q, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by item: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ItemSalesResult, 0)
	for rows.Next() {
		var row repository.ItemSalesResult
		if err := rows.Scan(&row.ItemID, &row.Name, &row.Category, &row.QuantitySold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("sales by item scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

const detailSelect = `
		SELECT
			s.id,
			s.timestamp,
			i.name,
			i.category,
			i.price,
			s.quantity,
			s.total_price,
			u.username
		FROM sales s
		JOIN inventory i ON i.id = s.item_id
		JOIN users u     ON u.id = s.user_id`

func scanDetail(row pgx.Row, d *repository.SaleDetailResult) error {
	return row.Scan(&d.SaleID, &d.Timestamp, &d.ItemName, &d.Category,
		&d.UnitPrice, &d.Quantity, &d.TotalPrice, &d.Username)
}

// SalesDetail una fila por venta en orden cronológico.
func (r *ReportRepo) SalesDetail(ctx context.Context, start, end time.Time) ([]repository.SaleDetailResult, error) {
	q := detailSelect + `
		WHERE s.timestamp >= $1 AND s.timestamp < $2
		ORDER BY s.timestamp, s.id`

	rows, err := r.q.Query(ctx, q, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales detail: %w", err)
	}
	defer rows.Close()

	out := make([]repository.SaleDetailResult, 0)
	for rows.Next() {
		var d repository.SaleDetailResult
		if err := scanDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("sales detail scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Totals totales del período. SUM(bigint) devuelve NUMERIC y se castea a BIGINT;
// AVG queda NUMERIC y llega como decimal.Decimal vía pgx-shopspring-decimal.
func (r *ReportRepo) Totals(ctx context.Context, start, end time.Time) (*repository.SalesTotals, error) {
	const q = `
		SELECT
			COUNT(*)                              AS transactions,
			COALESCE(SUM(quantity), 0)::BIGINT    AS items_sold,
			COALESCE(SUM(total_price), 0)::BIGINT AS revenue,
			COALESCE(AVG(total_price), 0)::NUMERIC AS average_ticket
		FROM sales
		WHERE timestamp >= $1 AND timestamp < $2`

	var t repository.SalesTotals
	if err := r.q.QueryRow(ctx, q, start, end).Scan(
		&t.Transactions, &t.ItemsSold, &t.Revenue, &t.AverageTicket,
	); err != nil {
		return nil, fmt.Errorf("sales totals: %w", err)
	}
	return &t, nil
}

// SaleByID detalle de una venta para el recibo.
func (r *ReportRepo) SaleByID(ctx context.Context, saleID string) (*repository.SaleDetailResult, error) {
	var d repository.SaleDetailResult
	err := scanDetail(r.q.QueryRow(ctx, detailSelect+` WHERE s.id = $1`, saleID), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sale by id: %w", err)
	}
	return &d, nil
}
