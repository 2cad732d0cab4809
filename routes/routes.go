package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ANNI69/Nutrscan-Fact-Scanner/controllers"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/middlewares"
	"github.com/ANNI69/Nutrscan-Fact-Scanner/services"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RateLimit(rate.Limit(10), 30))

	off := services.NewOpenFoodFactsService()
	usda := services.NewUSDAService()
	productSvc := services.NewProductService(off)

	productCtl := controllers.NewProductController(productSvc)
	alternativeCtl := controllers.NewAlternativeController(
		services.NewAlternativeService(off, usda), productSvc)
	pantryCtl := controllers.NewPantryController(services.NewPantryService())
	shoppingCtl := controllers.NewShoppingController(services.NewShoppingService())
	favoriteCtl := controllers.NewFavoriteController(services.NewFavoriteService())
	dietCtl := controllers.NewDietController(services.NewDietService())
	historyCtl := controllers.NewHistoryController(services.NewHistoryService())
	realtimeCtl := controllers.NewRealtimeController(services.ScanHub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Scanning works without an account; a valid token adds history
	products := r.Group("/products")
	{
		products.GET("/check/:barcode", middlewares.OptionalAuth(), productCtl.CheckProduct)
		products.GET("", productCtl.ListProducts)
		products.GET("/:barcode", productCtl.GetProduct)
		products.GET("/:barcode/nutrients", productCtl.GetProductNutrients)
		products.GET("/:barcode/alternatives", alternativeCtl.FindAlternatives)
	}

	r.POST("/additives/analyze", controllers.AnalyzeAdditives)

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/user/profile", controllers.GetProfile)
		protected.PUT("/user/profile", controllers.UpdateProfile)

		protected.GET("/pantry", pantryCtl.List)
		protected.GET("/pantry/expiring", pantryCtl.ListExpiring)
		protected.POST("/pantry", pantryCtl.Add)
		protected.PUT("/pantry/:id", pantryCtl.Update)
		protected.DELETE("/pantry/:id", pantryCtl.Delete)

		protected.GET("/shopping", shoppingCtl.List)
		protected.POST("/shopping", shoppingCtl.Add)
		protected.PATCH("/shopping/:id/toggle", shoppingCtl.Toggle)
		protected.DELETE("/shopping/checked", shoppingCtl.ClearChecked)
		protected.DELETE("/shopping/:id", shoppingCtl.Delete)

		protected.GET("/favorites", favoriteCtl.List)
		protected.POST("/favorites", favoriteCtl.Add)
		protected.GET("/favorites/check/:barcode", favoriteCtl.Check)
		protected.DELETE("/favorites/:id", favoriteCtl.Delete)

		protected.GET("/diet/plans", dietCtl.ListPlans)
		protected.POST("/diet/plans", dietCtl.CreatePlan)
		protected.GET("/diet/plans/:id", dietCtl.GetPlan)
		protected.PUT("/diet/plans/:id", dietCtl.UpdatePlan)
		protected.DELETE("/diet/plans/:id", dietCtl.DeletePlan)
		protected.POST("/diet/today/meals", dietCtl.AddMealToday)

		protected.GET("/history", historyCtl.List)
		protected.DELETE("/history/:id", historyCtl.Delete)
		protected.DELETE("/history", historyCtl.Clear)

		protected.POST("/uploads/barcode", controllers.UploadBarcodeImage)

		protected.GET("/ws/scans", realtimeCtl.ScansWS)
	}

	return r
}
