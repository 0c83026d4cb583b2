package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Sehatku API.

PUBLIC
- GET "/api/products" - List active products
- GET "/api/products/:id" - Get product by ID
- GET "/api/articles" - List published articles
- GET "/api/articles/:slug" - Get article by slug
- GET "/api/doctors" - List active doctors
- GET "/api/webinars" - List active webinars
- GET "/api/partners" - List partners

CHECKOUT (bearer token required)
- POST "/api/checkout" - Create an order and payment invoice
- GET "/api/orders" - List your orders
- GET "/api/orders/:orderId" - Get one of your orders

WEBHOOK
- POST "/api/webhooks/payment" - Payment gateway status callback

ADMIN (bearer token with admin role required)
- Product, article, doctor, webinar and partner management under "/api/admin"`

	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
