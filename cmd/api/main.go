package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/labarberiamataro/booking-api/internal/config"
	dbpkg "github.com/labarberiamataro/booking-api/internal/db"
	gcalendar "github.com/labarberiamataro/booking-api/internal/infra/calendar"
	"github.com/labarberiamataro/booking-api/internal/middleware"
	"github.com/labarberiamataro/booking-api/internal/routes"
	"github.com/labarberiamataro/booking-api/internal/timezone"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	loc := timezone.Location(cfg.Timezone)

	source, err := gcalendar.NewGoogleCalendarSource(context.Background(), cfg, loc)
	if err != nil {
		log.Fatalf("failed to init calendar source: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, source, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
