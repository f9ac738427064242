package router

import (
	"time"

	"inventario/internal/config"
	"inventario/internal/handler"
	"inventario/internal/infra"
	"inventario/internal/middleware"
	"inventario/internal/repository"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil, in which case pending carts live in process memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Infrastructure ───────────────────────────────────────────────────────
	cartTTL := time.Duration(cfg.CartTTLMinutes) * time.Minute
	var cartStore repository.CartStore
	if rdb != nil {
		cartStore = repository.NewRedisCartStore(rdb, cartTTL)
	} else {
		cartStore = repository.NewMemoryCartStore(cartTTL)
	}
	renderer := infra.NewPDFReceiptRenderer(cfg.BusinessName)

	// ── Repositories ─────────────────────────────────────────────────────────
	stockRepo := repository.NewStockRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	restockRepo := repository.NewRestockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	stockSvc := service.NewStockService(stockRepo)
	builder := service.NewSaleBuilder(stockSvc, saleRepo)
	saleSvc := service.NewSaleService(saleRepo, cfg.VoidStrict)
	restockSvc := service.NewRestockService(restockRepo, supplierRepo, cfg.SupplierDedup)
	receiptSvc := service.NewReceiptService(renderer, saleRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	stockH := handler.NewStockHandler(stockSvc)
	cartsH := handler.NewCartsHandler(builder, cartStore)
	salesH := handler.NewSalesHandler(saleSvc, receiptSvc)
	restocksH := handler.NewRestocksHandler(restockSvc)
	receiptsH := handler.NewReceiptsHandler(receiptSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/menu", handler.Menu)

		stock := v1.Group("/stock")
		{
			stock.GET("", stockH.Listar)
			stock.POST("", stockH.Crear)
			stock.GET("/export", stockH.Exportar)
		}

		carts := v1.Group("/carts")
		{
			carts.POST("", cartsH.Crear)
			carts.GET("/:id", cartsH.Obtener)
			carts.POST("/:id/lines", cartsH.AgregarLinea)
			carts.POST("/:id/commit", cartsH.Confirmar)
			carts.DELETE("/:id", cartsH.Descartar)
		}

		sales := v1.Group("/sales")
		{
			sales.GET("", salesH.Listar)
			sales.POST("/:id/void", salesH.Anular)
			sales.GET("/:id/receipt", salesH.Recibo)
		}

		v1.POST("/restocks", restocksH.Registrar)
		v1.GET("/restocks", restocksH.Listar)
		v1.GET("/suppliers", restocksH.ListarProveedores)

		v1.POST("/receipts", receiptsH.Generar)
	}

	// API browser, outside production only
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
