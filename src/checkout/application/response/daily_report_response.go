package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el resumen de ventas de un día
type DailyReportResponse struct {
	Date        string                     `json:"date"`
	SalesCount  int                        `json:"sales_count"`
	GrossTotal  decimal.Decimal            `json:"gross_total"`
	ByPayment   map[string]decimal.Decimal `json:"by_payment_method"`
	FirstSaleAt *time.Time                 `json:"first_sale_at,omitempty"`
	LastSaleAt  *time.Time                 `json:"last_sale_at,omitempty"`
}
