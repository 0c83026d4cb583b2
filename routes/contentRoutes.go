package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/controllers"
)

func ContentRoutes(server *gin.Engine, ac *controllers.ArticleController, dc *controllers.DoctorController, wc *controllers.WebinarController, pc *controllers.PartnerController) {
	server.GET("/api/articles", ac.GetArticles)
	server.GET("/api/articles/:slug", ac.GetArticleBySlug)
	server.GET("/api/doctors", dc.GetDoctors)
	server.GET("/api/webinars", wc.GetWebinars)
	server.GET("/api/partners", pc.GetPartners)
}
