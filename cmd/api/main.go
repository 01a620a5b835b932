package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bellamoda/salon-booking/internal/cache"
	"github.com/bellamoda/salon-booking/internal/config"
	dbpkg "github.com/bellamoda/salon-booking/internal/db"
	"github.com/bellamoda/salon-booking/internal/middleware"
	"github.com/bellamoda/salon-booking/internal/routes"
	"github.com/bellamoda/salon-booking/internal/storage"
	"github.com/bellamoda/salon-booking/internal/timezone"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	timezone.Set(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	slotCache, err := cache.NewAvailability(cfg.RedisURL)
	if err != nil {
		log.Printf("availability cache disabled: %v", err)
		slotCache = nil
	}

	images := storage.NewImageStore(
		cfg.S3Bucket,
		cfg.S3Region,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3BaseURL,
	)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, slotCache, images)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
