package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sehatku/sehatku-api/controllers"
	"github.com/sehatku/sehatku-api/initializers"
	"github.com/sehatku/sehatku-api/paygate"
	"github.com/sehatku/sehatku-api/routes"
	"github.com/sehatku/sehatku-api/utils"
)

func main() {
	initializers.LoadEnv()
	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := initializers.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	gateway := paygate.NewClient(cfg.GatewayBaseURL, cfg.GatewayAPIKey, cfg.GatewayCallbackToken)

	var storage utils.ImageStore
	if cfg.S3Bucket != "" {
		s3Store, err := utils.NewS3Store(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			log.Printf("Image storage unavailable: %v", err)
		} else {
			storage = s3Store
		}
	}

	var notifier utils.Notifier = utils.LogNotifier{}
	if cfg.SMTPAddress != "" && cfg.FulfillmentEmail != "" {
		notifier = &utils.MailNotifier{
			SMTPAddress: cfg.SMTPAddress,
			SMTPHost:    cfg.SMTPHost,
			From:        cfg.FromEmail,
			Password:    cfg.FromEmailPassword,
			To:          cfg.FulfillmentEmail,
		}
	}

	checkout := &controllers.CheckoutController{DB: db, Gateway: gateway, FrontendURL: cfg.FrontendURL}
	webhook := &controllers.WebhookController{DB: db, Verifier: gateway, Notifier: notifier}
	orders := &controllers.OrderController{DB: db}
	products := &controllers.ProductController{DB: db, Storage: storage}
	articles := &controllers.ArticleController{DB: db, Storage: storage}
	doctors := &controllers.DoctorController{DB: db, Storage: storage}
	webinars := &controllers.WebinarController{DB: db, Storage: storage}
	partners := &controllers.PartnerController{DB: db, Storage: storage}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, products)
	routes.ContentRoutes(server, articles, doctors, webinars, partners)
	routes.CheckoutRoutes(server, checkout, orders, cfg.JWTSecret)
	routes.WebhookRoutes(server, webhook)
	routes.AdminRoutes(server, routes.AdminControllers{
		Orders:   orders,
		Products: products,
		Articles: articles,
		Doctors:  doctors,
		Webinars: webinars,
		Partners: partners,
	}, cfg.JWTSecret)

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
