package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authrepo "github.com/RajaKumar829891/customer-API/auth/repository"
	authsvc "github.com/RajaKumar829891/customer-API/auth/service"
	"github.com/RajaKumar829891/customer-API/catalog"
	catalogrepo "github.com/RajaKumar829891/customer-API/catalog/repository"
	catalogsvc "github.com/RajaKumar829891/customer-API/catalog/service"
	cartrepo "github.com/RajaKumar829891/customer-API/cart/repository"
	cartsvc "github.com/RajaKumar829891/customer-API/cart/service"
	customerrepo "github.com/RajaKumar829891/customer-API/customer/repository"
	customersvc "github.com/RajaKumar829891/customer-API/customer/service"
	api "github.com/RajaKumar829891/customer-API/handler"
	"github.com/RajaKumar829891/customer-API/middleware"
)

func main() {
	cfg := loadConfig()
	db := setupDatabase(cfg)

	customerService := customersvc.NewCustomerService(customerrepo.NewGormCustomerRepo(db))
	customerHandler := api.NewCustomerHandler(customerService)

	authService := authsvc.NewAuthService(authrepo.NewGormAuthRepo(db), cfg.JWTSecret)
	authHandler := api.NewAuthHandler(authService)

	var stock catalog.StockProvider
	if cfg.StockEnabled {
		stock = catalogrepo.NewGormStockRepo(db)
	}
	catalogService := catalogsvc.NewCatalogService(catalogrepo.NewGormCatalogRepo(db), stock, cfg.BaseURL)
	productHandler := api.NewProductHandler(catalogService)
	utilityHandler := api.NewUtilityHandler(catalogService)

	cartService := cartsvc.NewCartService(cartrepo.NewGormCartRepo(db), cfg.BaseURL, cfg.DefaultCurrency)
	cartHandler := api.NewCartHandler(cartService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/customer/create", customerHandler.CreateCustomer())
		apiGroup.POST("/customer/login", authHandler.Login())
		apiGroup.POST("/products", productHandler.ListProducts())
		apiGroup.POST("/categories", utilityHandler.ListCategories())
		apiGroup.POST("/health", utilityHandler.Health())

		cartGroup := apiGroup.Group("/cart", middleware.RequireSession(cfg.JWTSecret))
		{
			cartGroup.POST("/add", cartHandler.AddToCart())
			cartGroup.POST("/view", cartHandler.ViewCart())
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
