package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/controllers"
)

func ProductRoutes(server *gin.Engine, pc *controllers.ProductController) {
	server.GET("/api/products", pc.GetProducts)
	server.GET("/api/products/:id", pc.GetProduct)
}
