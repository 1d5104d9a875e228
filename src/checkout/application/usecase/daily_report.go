package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"caixa/src/checkout/application/response"
	"caixa/src/checkout/domain/entity"

	"github.com/shopspring/decimal"
)

// DailyReportUseCase caso de uso para el resumen de caja de un día.
// Consulta agregaciones directo sobre la tabla de ventas finalizadas.
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{db: db}
}

// Execute genera el resumen para una fecha (YYYY-MM-DD).
// Usa rango [from, to) en vez de DATE(timestamp) para aprovechar índice.
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	var salesCount int
	var grossTotal decimal.Decimal
	var firstSale, lastSale sql.NullTime

	err = uc.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0),
			MIN(timestamp),
			MAX(timestamp)
		FROM sales
		WHERE status = $1
			AND timestamp >= $2
			AND timestamp < $3
	`, entity.SaleStatusFinalized, from, to).Scan(
		&salesCount,
		&grossTotal,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying daily totals: %w", err)
	}

	// Desglose por forma de pago
	rows, err := uc.db.QueryContext(ctx, `
		SELECT payment_method, COALESCE(SUM(total), 0)
		FROM sales
		WHERE status = $1
			AND timestamp >= $2
			AND timestamp < $3
		GROUP BY payment_method
	`, entity.SaleStatusFinalized, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying payment breakdown: %w", err)
	}
	defer rows.Close()

	byPayment := make(map[string]decimal.Decimal)
	for rows.Next() {
		var method string
		var total decimal.Decimal
		if err := rows.Scan(&method, &total); err != nil {
			return nil, fmt.Errorf("error scanning payment breakdown: %w", err)
		}
		byPayment[method] = total
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment breakdown: %w", err)
	}

	resp := &response.DailyReportResponse{
		Date:       date,
		SalesCount: salesCount,
		GrossTotal: grossTotal,
		ByPayment:  byPayment,
	}
	if firstSale.Valid {
		resp.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		resp.LastSaleAt = &lastSale.Time
	}

	return resp, nil
}
