package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/config"
	"github.com/ovenledger/backend/internal/api"
	"github.com/ovenledger/backend/internal/middleware"
	"github.com/ovenledger/backend/internal/service"
)

// SetupRouter wires services, middleware and handlers into the gin engine.
// redisClient and s3cfg may be nil; the features backed by them degrade
// gracefully.
func SetupRouter(db *gorm.DB, redisClient *redis.Client, s3cfg *config.S3Config, jwtSecret string) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authService := service.NewAuthService(db, jwtSecret)
	ingredientService := service.NewIngredientService(db)
	priceService := service.NewPriceService(db)
	recipeService := service.NewRecipeService(db, priceService)
	sessionService := service.NewSessionService(db, priceService)
	clientService := service.NewClientService(db)
	productService := service.NewProductService(db, s3cfg)
	orderService := service.NewOrderService(db, priceService)
	dashboardService := service.NewDashboardService(db, redisClient)

	v1 := router.Group("/api/v1")

	api.NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	if redisClient != nil {
		limit := middleware.NewWriteRateLimiter(redisClient).Middleware()
		protected.Use(func(c *gin.Context) {
			if c.Request.Method == http.MethodGet {
				c.Next()
				return
			}
			limit(c)
		})
	}

	api.NewIngredientHandler(ingredientService).RegisterRoutes(protected)
	api.NewPriceHandler(priceService).RegisterRoutes(protected)
	api.NewRecipeHandler(recipeService).RegisterRoutes(protected)
	api.NewSessionHandler(sessionService).RegisterRoutes(protected)
	api.NewClientHandler(clientService).RegisterRoutes(protected)
	api.NewProductHandler(productService).RegisterRoutes(protected)
	api.NewOrderHandler(orderService).RegisterRoutes(protected)
	api.NewDashboardHandler(dashboardService).RegisterRoutes(protected)

	return router
}
