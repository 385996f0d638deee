package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jwtpizza/pizza-mock/internal/config"
	"github.com/jwtpizza/pizza-mock/internal/handlers"
	"github.com/jwtpizza/pizza-mock/internal/httperr"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
	"github.com/jwtpizza/pizza-mock/internal/middleware"
	"github.com/jwtpizza/pizza-mock/internal/observability"
)

// NewRouter builds the engine with the ambient middleware stack and all
// mock API routes. Unmatched verbs on known paths get a JSON 405.
func NewRouter(store *memstore.Store, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(observability.HTTPMetrics())

	r.HandleMethodNotAllowed = true
	r.NoMethod(httperr.MethodNotAllowed)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, store, cfg)
	return r
}

func RegisterRoutes(r *gin.Engine, store *memstore.Store, cfg *config.Config) {

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(store, cfg)
	userHandler := handlers.NewUserHandler(store)
	franchiseHandler := handlers.NewFranchiseHandler(store, cfg)
	storeHandler := handlers.NewStoreHandler(store)
	orderHandler := handlers.NewOrderHandler(store)

	authRequired := middleware.Auth(cfg, store)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (single resource, dispatched by verb)
		// ------------------------------
		api.POST("/auth", authHandler.Register)
		api.PUT("/auth", authHandler.Login)
		api.DELETE("/auth", authRequired, authHandler.Logout)

		// ------------------------------
		// USERS
		// ------------------------------
		api.GET("/user/me", userHandler.Me)
		api.PUT("/user/:userId", authRequired, userHandler.Update)

		// ------------------------------
		// FRANCHISES & STORES
		// ------------------------------
		api.GET("/franchise", franchiseHandler.List)
		api.POST("/franchise", franchiseHandler.Create)
		api.GET("/franchise/:franchiseId", authRequired, franchiseHandler.ListByAdmin)
		api.DELETE("/franchise/:franchiseId", franchiseHandler.Delete)

		api.POST("/franchise/:franchiseId/store", authRequired, storeHandler.Create)
		api.DELETE("/franchise/:franchiseId/store/:storeId", authRequired, storeHandler.Delete)

		// ------------------------------
		// MENU & ORDERS
		// ------------------------------
		api.GET("/order/menu", orderHandler.Menu)
		api.POST("/order", orderHandler.Create)
	}
}
