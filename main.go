package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	catalogUseCase "caixa/src/catalog/application/usecase"
	catalogController "caixa/src/catalog/infrastructure/controller"
	catalogPersistence "caixa/src/catalog/infrastructure/persistence"
	checkoutUseCase "caixa/src/checkout/application/usecase"
	checkoutCache "caixa/src/checkout/infrastructure/cache"
	checkoutController "caixa/src/checkout/infrastructure/controller"
	checkoutPersistence "caixa/src/checkout/infrastructure/persistence"
	sharedConfig "caixa/src/shared/infrastructure/config"
	"caixa/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 Caixa Service - Iniciando...")

	// Cargar .env si existe (desarrollo local)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, usando variables de entorno")
	}

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Conectar a la base de datos (opcional para bootstrap)
	db := sharedConfig.ConnectDB()
	if db != nil {
		defer db.Close()
		if err := sharedConfig.CreateTables(db); err != nil {
			log.Printf("⚠️  Advertencia: Error creando esquema: %v", err)
		}
	}

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "db": db != nil})
	})

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	setupCatalogModule(v1, db)
	setupCheckoutModule(v1, db)

	// Iniciar el servidor
	port := sharedConfig.GetEnv("PORT", "8080")
	log.Printf("✅ Servidor Caixa Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupCatalogModule configura el módulo Catálogo
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB) {
	if db == nil {
		log.Println("⚠️  Módulo Catálogo deshabilitado (sin DB)")
		return
	}
	log.Println("Configurando módulo Catálogo...")

	productRepo := catalogPersistence.NewProductPostgresRepository(db)

	createProductUC := catalogUseCase.NewCreateProductUseCase(productRepo)
	updateProductUC := catalogUseCase.NewUpdateProductUseCase(productRepo)
	deleteProductUC := catalogUseCase.NewDeleteProductUseCase(productRepo)
	listProductsUC := catalogUseCase.NewListProductsUseCase(productRepo)
	searchProductUC := catalogUseCase.NewSearchProductUseCase(productRepo)
	restockProductUC := catalogUseCase.NewRestockProductUseCase(productRepo)

	adminGate := middleware.AdminGate(os.Getenv("ADMIN_PASSWORD"))

	productCtrl := catalogController.NewProductController(
		createProductUC,
		updateProductUC,
		deleteProductUC,
		listProductsUC,
		searchProductUC,
		restockProductUC,
	)
	productCtrl.RegisterRoutes(router, adminGate)
}

// setupCheckoutModule configura el módulo Checkout (caja)
func setupCheckoutModule(router *gin.RouterGroup, db *sql.DB) {
	if db == nil {
		log.Println("⚠️  Módulo Checkout deshabilitado (sin DB)")
		return
	}
	log.Println("Configurando módulo Checkout...")

	productRepo := catalogPersistence.NewProductPostgresRepository(db)
	saleRepo := checkoutPersistence.NewSalePostgresRepository(db)
	carts := checkoutCache.NewCartStore()

	beginSaleUC := checkoutUseCase.NewBeginSaleUseCase(carts)
	getCartUC := checkoutUseCase.NewGetCartUseCase(carts)
	addItemUC := checkoutUseCase.NewAddItemUseCase(carts, productRepo)
	removeItemUC := checkoutUseCase.NewRemoveItemUseCase(carts)
	finalizeSaleUC := checkoutUseCase.NewFinalizeSaleUseCase(carts, saleRepo)
	getSaleUC := checkoutUseCase.NewGetSaleUseCase(saleRepo)
	listSalesUC := checkoutUseCase.NewListSalesUseCase(saleRepo)
	deleteSaleUC := checkoutUseCase.NewDeleteSaleUseCase(saleRepo)
	dailyReportUC := checkoutUseCase.NewDailyReportUseCase(db)

	checkoutCtrl := checkoutController.NewCheckoutController(
		beginSaleUC,
		getCartUC,
		addItemUC,
		removeItemUC,
		finalizeSaleUC,
	)
	salesCtrl := checkoutController.NewSalesController(
		getSaleUC,
		listSalesUC,
		deleteSaleUC,
		dailyReportUC,
	)

	checkoutCtrl.RegisterRoutes(router)
	salesCtrl.RegisterRoutes(router)
}
