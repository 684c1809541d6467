package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/tezcart/tezcart/internal/config"
	"github.com/tezcart/tezcart/internal/domain/model"
	"github.com/tezcart/tezcart/internal/server/http/handlers"
	"github.com/tezcart/tezcart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.StoreOrigin, cfg.AdminOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(facade, cfg.SessionTTL)
	productHandler := handlers.NewProductHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	couponHandler := handlers.NewCouponHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	authRequired := middleware.AuthRequired(facade)
	manageOnly := middleware.RoleRequired(facade, model.Role.CanManage)
	staffOnly := middleware.RoleRequired(facade, model.Role.IsStaff)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authRequired, authHandler.Me)
	auth.PUT("/email", authRequired, authHandler.UpdateEmail)
	auth.PUT("/password", authRequired, authHandler.UpdatePassword)
	auth.PUT("/theme", authRequired, authHandler.UpdateTheme)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:slug", productHandler.Get)
	products.POST("", authRequired, manageOnly, productHandler.Create)
	products.PUT("/:id", authRequired, manageOnly, productHandler.Update)
	products.DELETE("/:id", authRequired, manageOnly, productHandler.Delete)

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:slug", categoryHandler.Get)
	categories.POST("", authRequired, manageOnly, categoryHandler.Create)
	categories.PUT("/:id", authRequired, manageOnly, categoryHandler.Update)
	categories.DELETE("/:id", authRequired, manageOnly, categoryHandler.Delete)

	coupons := api.Group("/coupons")
	coupons.GET("", authRequired, manageOnly, couponHandler.List)
	coupons.GET("/validate/:code", couponHandler.Validate)
	coupons.POST("", authRequired, manageOnly, couponHandler.Create)
	coupons.PUT("/:id", authRequired, manageOnly, couponHandler.Update)
	coupons.DELETE("/:id", authRequired, manageOnly, couponHandler.Delete)

	orders := api.Group("/orders")
	orders.Use(authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("/my-orders", orderHandler.MyOrders)
	orders.GET("", staffOnly, orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id/status", staffOnly, orderHandler.UpdateStatus)

	users := api.Group("/users")
	users.Use(authRequired, manageOnly)
	users.GET("", userHandler.List)
	users.PUT("/:id/ban", userHandler.ToggleBan)
	users.GET("/stats", userHandler.Stats)

	return engine
}
