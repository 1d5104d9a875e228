package controller

import (
	"errors"
	"log"
	"net/http"

	catalogEntity "caixa/src/catalog/domain/entity"
	"caixa/src/checkout/application/request"
	"caixa/src/checkout/application/usecase"
	"caixa/src/checkout/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutController maneja las peticiones HTTP del flujo de caja
type CheckoutController struct {
	beginSaleUC    *usecase.BeginSaleUseCase
	getCartUC      *usecase.GetCartUseCase
	addItemUC      *usecase.AddItemUseCase
	removeItemUC   *usecase.RemoveItemUseCase
	finalizeSaleUC *usecase.FinalizeSaleUseCase
}

// NewCheckoutController crea una nueva instancia del controlador
func NewCheckoutController(
	beginSaleUC *usecase.BeginSaleUseCase,
	getCartUC *usecase.GetCartUseCase,
	addItemUC *usecase.AddItemUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	finalizeSaleUC *usecase.FinalizeSaleUseCase,
) *CheckoutController {
	return &CheckoutController{
		beginSaleUC:    beginSaleUC,
		getCartUC:      getCartUC,
		addItemUC:      addItemUC,
		removeItemUC:   removeItemUC,
		finalizeSaleUC: finalizeSaleUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CheckoutController) RegisterRoutes(router *gin.RouterGroup) {
	carts := router.Group("/checkout/carts")
	{
		carts.POST("", c.BeginSale)
		carts.GET("/:cart_id", c.GetCart)
		carts.POST("/:cart_id/items", c.AddItem)
		carts.DELETE("/:cart_id/items/:item_id", c.RemoveItem)
		carts.POST("/:cart_id/finalize", c.FinalizeSale)
	}

	log.Println("Rutas Checkout disponibles:")
	log.Println("  POST   /api/v1/checkout/carts")
	log.Println("  GET    /api/v1/checkout/carts/:cart_id")
	log.Println("  POST   /api/v1/checkout/carts/:cart_id/items")
	log.Println("  DELETE /api/v1/checkout/carts/:cart_id/items/:item_id")
	log.Println("  POST   /api/v1/checkout/carts/:cart_id/finalize")
}

// BeginSale abre una venta nueva y retorna el carrito vacío
func (c *CheckoutController) BeginSale(ctx *gin.Context) {
	cart := c.beginSaleUC.Execute()
	ctx.JSON(http.StatusCreated, cart)
}

// GetCart retorna el estado actual del carrito
func (c *CheckoutController) GetCart(ctx *gin.Context) {
	cartID, ok := parseUUIDParam(ctx, "cart_id")
	if !ok {
		return
	}

	cart, err := c.getCartUC.Execute(cartID)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

// AddItem agrega una línea al carrito
func (c *CheckoutController) AddItem(ctx *gin.Context) {
	cartID, ok := parseUUIDParam(ctx, "cart_id")
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	cart, err := c.addItemUC.Execute(ctx.Request.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

// RemoveItem quita una línea del carrito
func (c *CheckoutController) RemoveItem(ctx *gin.Context) {
	cartID, ok := parseUUIDParam(ctx, "cart_id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(ctx, "item_id")
	if !ok {
		return
	}

	cart, err := c.removeItemUC.Execute(cartID, itemID)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

// FinalizeSale cierra la venta del carrito con la forma de pago indicada
func (c *CheckoutController) FinalizeSale(ctx *gin.Context) {
	cartID, ok := parseUUIDParam(ctx, "cart_id")
	if !ok {
		return
	}

	var req request.FinalizeSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := c.finalizeSaleUC.Execute(ctx.Request.Context(), cartID, req.PaymentMethod)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// parseUUIDParam parsea un path param UUID o responde 400
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondCheckoutError mapea errores de dominio a status HTTP.
// Todos se reportan con contexto; ninguno tumba el proceso.
func respondCheckoutError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrSaleNotFound),
		errors.Is(err, entity.ErrItemNotFound),
		errors.Is(err, catalogEntity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalogEntity.ErrInsufficientStock):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrEmptySale),
		errors.Is(err, entity.ErrInvalidPaymentMethod),
		errors.Is(err, entity.ErrInvalidStatusFilter),
		errors.Is(err, entity.ErrSaleNotOpen),
		errors.Is(err, entity.ErrSaleAlreadyFinalized),
		errors.Is(err, catalogEntity.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ Error interno en checkout: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
