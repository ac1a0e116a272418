package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"epp-portal/internal/handlers"
	"epp-portal/internal/middleware"
)

// CORSMiddleware lets the portfolio frontend talk to the API during local
// development.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Portal Auth Routes (Public) ---
		v1.POST("/auth/epp", h.Login)
		v1.GET("/auth/epp", h.CheckSession)

		// --- Catalog Routes (Public, read-only) ---
		v1.GET("/catalog/categories", h.GetCategories)
		v1.GET("/catalog/:category/models", h.GetModels)
		v1.GET("/catalog/:category/models/:model/options", h.GetOptions)
		v1.POST("/catalog/price", h.QuotePrice)

		// --- Ordering Flow (Session Required) ---
		epp := v1.Group("/epp")
		epp.Use(middleware.AuthMiddleware())
		{
			epp.GET("/basket", h.GetBasket)
			epp.POST("/basket/items", h.AddBasketItem)
			epp.DELETE("/basket/items/:id", h.DeleteBasketItem)

			epp.POST("/order", h.SubmitOrder)
		}
	}

	return router
}
