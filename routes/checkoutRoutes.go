package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/controllers"
	"github.com/sehatku/sehatku-api/middlewares"
)

func CheckoutRoutes(server *gin.Engine, cc *controllers.CheckoutController, oc *controllers.OrderController, jwtSecret string) {
	api := server.Group("/api", middlewares.RequireAuth(jwtSecret))
	{
		api.POST("/checkout", cc.CreateInvoice)
		api.GET("/orders", oc.GetMyOrders)
		api.GET("/orders/:orderId", oc.GetOrder)
	}
}

func WebhookRoutes(server *gin.Engine, wc *controllers.WebhookController) {
	server.POST("/api/webhooks/payment", wc.HandlePaymentWebhook)
}
