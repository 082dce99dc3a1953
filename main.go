package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vd437/quick-cash-control/config"
	"github.com/vd437/quick-cash-control/controllers"
	"github.com/vd437/quick-cash-control/middleware"
	"github.com/vd437/quick-cash-control/routes"
	"github.com/vd437/quick-cash-control/store"
	"github.com/vd437/quick-cash-control/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)

	gin.SetMode(gin.ReleaseMode)
	log.Printf("Running in %s mode", gin.Mode())

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	db := openStore(cfg)

	mailer := &utils.Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}

	photos, err := controllers.NewPhotoStorage(cfg)
	if err != nil {
		log.Fatalf("Photo storage init failed: %v", err)
	}

	// Daily stock report for the shop admin.
	s := gocron.NewScheduler(time.Local)
	s.Every(1).Day().At("07:00").Do(func() {
		utils.CheckLowStock(db, mailer, cfg.AdminEmail)
	})
	s.StartAsync()

	routes.InitializeRoutes(r, routes.Controllers{
		Auth:      controllers.NewAuthController(db, mailer),
		Products:  controllers.NewProductController(db, photos),
		Sales:     controllers.NewSalesController(db),
		Dashboard: controllers.NewDashboardController(db),
	}, cfg.UploadDir)

	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// openStore picks the persistence backend: MongoDB when MONGO_URI is set,
// otherwise the in-memory store. Both start from the demo seed.
func openStore(cfg config.Config) store.Store {
	if cfg.MongoURI == "" {
		log.Println("MONGO_URI not set, using in-memory store")
		return store.NewMemory(store.DemoSeed())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m, err := store.DialMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := m.SeedIfEmpty(ctx, store.DemoSeed()); err != nil {
		log.Fatalf("Failed to seed MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")
	return m
}
