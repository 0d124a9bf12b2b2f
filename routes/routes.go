package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/configs"
	"github.com/tekrabyte/waui-sub001/controllers"
	"github.com/tekrabyte/waui-sub001/middlewares"
	"github.com/tekrabyte/waui-sub001/services"
	"github.com/tekrabyte/waui-sub001/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, sessions *services.SessionManager, hub *ws.TableHub) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "sessions": sessions.Count(), "wsClients": hub.Clients()})
	})

	auth := middlewares.AuthMiddleware(cfg.JWTSecret, sessions)

	// Controllers
	sessCtrl := controllers.NewSessionController(sessions, cfg.JWTSecret, cfg.SessionTTL)
	catCtrl := controllers.NewCatalogController()
	cartCtrl := controllers.NewCartController(sessions.Checkout)
	pmCtrl := controllers.NewPaymentMethodController()
	tableCtrl := controllers.NewTableController()

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", sessCtrl.Login)
		a.POST("/logout", auth, sessCtrl.Logout)
		a.GET("/me", auth, sessCtrl.Me)
	}

	cat := r.Group("/catalog", auth)
	{
		cat.GET("/products", catCtrl.Products) // ?category=
		cat.GET("/categories", catCtrl.Categories)
		cat.GET("/customers", catCtrl.Customers)
		cat.POST("/reload", catCtrl.Reload)
	}

	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.POST("/checkout", cartCtrl.CheckoutCart)
	}

	pm := r.Group("/payment-methods", auth)
	{
		pm.GET("", pmCtrl.List) // ?enabled=true
		pm.POST("", pmCtrl.Create)
		pm.POST("/reload", pmCtrl.Reload)
		pm.PATCH("/:id/toggle", pmCtrl.Toggle)
		pm.PUT("/:id/config", pmCtrl.UpdateConfig)
		pm.DELETE("/:id", pmCtrl.Delete) // ?confirm=true
		pm.GET("/:id/fee", pmCtrl.Fee)   // ?total=
	}

	tables := r.Group("/tables", auth)
	{
		tables.GET("", tableCtrl.List) // ?status=&area=
		tables.POST("", tableCtrl.Create)
		tables.GET("/summary", tableCtrl.Summary)
		tables.POST("/reload", tableCtrl.Reload)
		tables.PUT("/:id", tableCtrl.Update)
		tables.DELETE("/:id", tableCtrl.Delete)
		tables.PATCH("/:id/status", tableCtrl.SetStatus)
	}

	// WebSocket
	r.GET("/ws/tables", middlewares.WSAuthMiddleware(cfg.JWTSecret, sessions), hub.HandleWebSocket)
}
