package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/mhdatheek136/branfern/internal/api/http"
	"github.com/mhdatheek136/branfern/internal/api/http/middleware"
	"github.com/mhdatheek136/branfern/internal/api/http/routes"
	"github.com/mhdatheek136/branfern/internal/booking/service"
	"github.com/mhdatheek136/branfern/internal/imageurl"
	"github.com/mhdatheek136/branfern/internal/pages"
	"github.com/mhdatheek136/branfern/internal/sanity"
	"github.com/mhdatheek136/branfern/internal/sitemap"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	BookingPerMin  int

	Content   *sanity.Client
	Redis     *redis.Client
	DB        *pgxpool.Pool
	Assembler *pages.Assembler
	Images    *imageurl.Builder
	Bookings  *service.BookingService
	Sitemap   *sitemap.Generator
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Content, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	r.GET("/sitemap.xml", sitemap.Handler(dep.Sitemap))

	routes.RegisterV1(r, routes.V1Deps{
		Assembler:     dep.Assembler,
		Images:        dep.Images,
		Bookings:      dep.Bookings,
		BookingPerMin: dep.BookingPerMin,
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
