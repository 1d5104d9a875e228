package controller

import (
	"errors"
	"log"
	"net/http"

	"caixa/src/catalog/application/request"
	"caixa/src/catalog/application/usecase"
	"caixa/src/catalog/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController maneja las peticiones HTTP del catálogo de productos.
// Las operaciones de escritura van detrás del gate de administración.
type ProductController struct {
	createProductUC  *usecase.CreateProductUseCase
	updateProductUC  *usecase.UpdateProductUseCase
	deleteProductUC  *usecase.DeleteProductUseCase
	listProductsUC   *usecase.ListProductsUseCase
	searchProductUC  *usecase.SearchProductUseCase
	restockProductUC *usecase.RestockProductUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
	listProductsUC *usecase.ListProductsUseCase,
	searchProductUC *usecase.SearchProductUseCase,
	restockProductUC *usecase.RestockProductUseCase,
) *ProductController {
	return &ProductController{
		createProductUC:  createProductUC,
		updateProductUC:  updateProductUC,
		deleteProductUC:  deleteProductUC,
		listProductsUC:   listProductsUC,
		searchProductUC:  searchProductUC,
		restockProductUC: restockProductUC,
	}
}

// RegisterRoutes registra las rutas del controlador. adminGate protege
// las operaciones de administración del catálogo.
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup, adminGate gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:product_id", c.GetProduct)
	}

	admin := router.Group("/products", adminGate)
	{
		admin.POST("", c.CreateProduct)
		admin.PUT("/:product_id", c.UpdateProduct)
		admin.DELETE("/:product_id", c.DeleteProduct)
		admin.POST("/:product_id/restock", c.RestockProduct)
	}

	log.Println("Rutas Product disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products  🔒")
	log.Println("  PUT    /api/v1/products/:product_id  🔒")
	log.Println("  DELETE /api/v1/products/:product_id  🔒")
	log.Println("  POST   /api/v1/products/:product_id/restock  🔒")
}

// ListProducts lista el catálogo. Con ?name= busca el primer producto
// cuyo nombre contenga el texto.
func (c *ProductController) ListProducts(ctx *gin.Context) {
	if name := ctx.Query("name"); name != "" {
		product, err := c.searchProductUC.ByName(ctx.Request.Context(), name)
		if err != nil {
			respondCatalogError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, product)
		return
	}

	items, err := c.listProductsUC.Execute(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// GetProduct retorna un producto por ID
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	product, err := c.searchProductUC.ByID(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// CreateProduct da de alta un producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct edita un producto existente
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	product, err := c.updateProductUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct elimina un producto no referenciado por ventas
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	deleted, err := c.deleteProductUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// RestockProduct repone stock de un producto
func (c *ProductController) RestockProduct(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var req request.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	product, err := c.restockProductUC.Execute(ctx.Request.Context(), id, req.Quantity)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// parseProductID parsea el path param product_id o responde 400
func parseProductID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondCatalogError mapea errores de dominio a status HTTP
func respondCatalogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrProductInUse),
		errors.Is(err, entity.ErrProductNameTaken),
		errors.Is(err, entity.ErrInsufficientStock):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrProductNameRequired),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidUnitKind),
		errors.Is(err, entity.ErrInvalidStock),
		errors.Is(err, entity.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ Error interno en catálogo: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
