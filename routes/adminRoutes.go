package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/controllers"
	"github.com/sehatku/sehatku-api/middlewares"
)

type AdminControllers struct {
	Orders   *controllers.OrderController
	Products *controllers.ProductController
	Articles *controllers.ArticleController
	Doctors  *controllers.DoctorController
	Webinars *controllers.WebinarController
	Partners *controllers.PartnerController
}

func AdminRoutes(server *gin.Engine, c AdminControllers, jwtSecret string) {
	admin := server.Group("/api/admin", middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin())
	{
		admin.GET("/orders", c.Orders.GetOrders)
		admin.GET("/orders/:orderId", c.Orders.GetOrder)
		admin.PATCH("/orders/:orderId/status", c.Orders.UpdateOrderStatus)
		admin.GET("/orders/:orderId/payments", c.Orders.GetOrderPayments)

		admin.GET("/products", c.Products.GetAllProducts)
		admin.POST("/products", c.Products.CreateProduct)
		admin.PUT("/products/:id", c.Products.UpdateProduct)
		admin.DELETE("/products/:id", c.Products.DeleteProduct)
		admin.POST("/products/image", c.Products.UploadProductImage)

		admin.POST("/articles", c.Articles.CreateArticle)
		admin.PUT("/articles/:id", c.Articles.UpdateArticle)
		admin.DELETE("/articles/:id", c.Articles.DeleteArticle)
		admin.POST("/articles/image", c.Articles.UploadArticleImage)

		admin.POST("/doctors", c.Doctors.CreateDoctor)
		admin.PUT("/doctors/:id", c.Doctors.UpdateDoctor)
		admin.DELETE("/doctors/:id", c.Doctors.DeleteDoctor)
		admin.POST("/doctors/photo", c.Doctors.UploadDoctorPhoto)

		admin.POST("/webinars", c.Webinars.CreateWebinar)
		admin.PUT("/webinars/:id", c.Webinars.UpdateWebinar)
		admin.DELETE("/webinars/:id", c.Webinars.DeleteWebinar)
		admin.POST("/webinars/image", c.Webinars.UploadWebinarImage)

		admin.POST("/partners", c.Partners.CreatePartner)
		admin.PUT("/partners/:id", c.Partners.UpdatePartner)
		admin.DELETE("/partners/:id", c.Partners.DeletePartner)
		admin.POST("/partners/logo", c.Partners.UploadPartnerLogo)
	}
}
