package controller

import (
	"log"
	"net/http"

	"caixa/src/checkout/application/usecase"

	"github.com/gin-gonic/gin"
)

// SalesController maneja las peticiones HTTP del historial de ventas y reportes
type SalesController struct {
	getSaleUC     *usecase.GetSaleUseCase
	listSalesUC   *usecase.ListSalesUseCase
	deleteSaleUC  *usecase.DeleteSaleUseCase
	dailyReportUC *usecase.DailyReportUseCase
}

// NewSalesController crea una nueva instancia del controlador
func NewSalesController(
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	deleteSaleUC *usecase.DeleteSaleUseCase,
	dailyReportUC *usecase.DailyReportUseCase,
) *SalesController {
	return &SalesController{
		getSaleUC:     getSaleUC,
		listSalesUC:   listSalesUC,
		deleteSaleUC:  deleteSaleUC,
		dailyReportUC: dailyReportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SalesController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
		sales.DELETE("/:sale_id", c.DeleteSale)
	}
	router.GET("/reports/daily", c.DailyReport)

	log.Println("Rutas Sales disponibles:")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/:sale_id")
	log.Println("  DELETE /api/v1/sales/:sale_id")
	log.Println("  GET    /api/v1/reports/daily")
}

// ListSales lista las ventas, opcionalmente filtradas por status
func (c *SalesController) ListSales(ctx *gin.Context) {
	status := ctx.Query("status")

	items, err := c.listSalesUC.Execute(ctx.Request.Context(), status)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// GetSale retorna una venta con sus líneas
func (c *SalesController) GetSale(ctx *gin.Context) {
	saleID, ok := parseUUIDParam(ctx, "sale_id")
	if !ok {
		return
	}

	sale, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sale)
}

// DeleteSale elimina una venta y sus líneas
func (c *SalesController) DeleteSale(ctx *gin.Context) {
	saleID, ok := parseUUIDParam(ctx, "sale_id")
	if !ok {
		return
	}

	deleted, err := c.deleteSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// DailyReport retorna el resumen de caja de un día (query param date=YYYY-MM-DD)
func (c *SalesController) DailyReport(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date query param is required (YYYY-MM-DD)"})
		return
	}

	report, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, report)
}
