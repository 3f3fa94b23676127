// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"kontora/internal/domain/auth"
	"kontora/internal/domain/equipment"
	"kontora/internal/domain/individual"
	"kontora/internal/domain/legalentity"
	"kontora/internal/domain/product"
	"kontora/internal/domain/user"
	"kontora/internal/infrastructure/http/v1/handlers"
	"kontora/internal/infrastructure/http/v1/middleware"
	"kontora/internal/infrastructure/storage/postgres"
	"kontora/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	JWTValidator middleware.JWTValidator

	IndividualService  *individual.Service
	LegalEntityService *legalentity.Service
	ProductService     *product.Service
	EquipmentService   *equipment.Service
	UserService        *user.Service
	AuthService        *auth.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	api := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(base, cfg.UserService, cfg.AuthService)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Entity routes accept anonymous requests; a valid bearer token
		// makes the caller the default actor on mutations.
		entities := api.Group("")
		entities.Use(middleware.OptionalAuth(cfg.JWTValidator))

		individualHandler := handlers.NewIndividualHandler(base, cfg.IndividualService)
		individuals := entities.Group("/individuals")
		{
			individuals.GET("", individualHandler.List)
			individuals.POST("", individualHandler.Create)
			individuals.GET("/:uid", individualHandler.Get)
			individuals.PATCH("/:uid", individualHandler.Update)
			individuals.POST("/:uid/contacts", individualHandler.AddContact)
			individuals.DELETE("/:uid", individualHandler.Delete)
		}

		legalEntityHandler := handlers.NewLegalEntityHandler(base, cfg.LegalEntityService)
		legalEntities := entities.Group("/legal-entities")
		{
			legalEntities.GET("", legalEntityHandler.List)
			legalEntities.POST("", legalEntityHandler.Create)
			legalEntities.GET("/:uid", legalEntityHandler.Get)
			legalEntities.PATCH("/:uid", legalEntityHandler.Update)
			legalEntities.DELETE("/:uid", legalEntityHandler.Delete)
		}

		productHandler := handlers.NewProductHandler(base, cfg.ProductService)
		products := entities.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.GET("/:uid", productHandler.Get)
			products.PATCH("/:uid", productHandler.Update)
			products.DELETE("/:uid", productHandler.Delete)
		}

		equipmentHandler := handlers.NewEquipmentHandler(base, cfg.EquipmentService)
		equipmentGroup := entities.Group("/equipment")
		{
			equipmentGroup.GET("", equipmentHandler.List)
			equipmentGroup.POST("", equipmentHandler.Create)
			equipmentGroup.GET("/:uid", equipmentHandler.Get)
			equipmentGroup.PATCH("/:uid", equipmentHandler.Update)
			equipmentGroup.PATCH("/:uid/status", equipmentHandler.ChangeStatus)
			equipmentGroup.DELETE("/:uid", equipmentHandler.Delete)
		}
	}

	return router
}
