package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mhdatheek136/branfern/config"
	"github.com/mhdatheek136/branfern/internal/booking/repository"
	"github.com/mhdatheek136/branfern/internal/booking/service"
	"github.com/mhdatheek136/branfern/internal/content"
	"github.com/mhdatheek136/branfern/internal/imageurl"
	"github.com/mhdatheek136/branfern/internal/logging"
	"github.com/mhdatheek136/branfern/internal/pages"
	"github.com/mhdatheek136/branfern/internal/sanity"
	"github.com/mhdatheek136/branfern/internal/sitemap"
)

const ServiceName = "branfern-api"

// App holds every long-lived dependency of the service.
type App struct {
	Config    *config.Config
	Content   *sanity.Client
	Writer    *sanity.Client
	Store     *content.Store
	Images    *imageurl.Builder
	Assembler *pages.Assembler
	Redis     *redis.Client
	DB        *pgxpool.Pool
	Bookings  *service.BookingService
	Sitemap   *sitemap.Generator
}

// NewApp connects to Redis (required) and Postgres (when DB_DSN is set) and wires
// the content, page and booking layers.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewLogger(ctx)

	reader := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		UseCDN:     cfg.Sanity.UseCDN,
		Token:      cfg.Sanity.ReadToken,
		APIHost:    cfg.Sanity.APIHost,
	})
	// the write credential never leaves the server
	writer := reader.WithToken(cfg.Sanity.WriteToken)
	if !writer.HasToken() {
		logger.LogWarn("bootstrap", "SANITY_WRITE_TOKEN not set; brand review submissions will fail")
	}

	defaults, err := pages.LoadDefaults()
	if err != nil {
		return nil, fmt.Errorf("page defaults: %w", err)
	}

	rdb, err := OpenRedis(ctx, RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Content: reader,
		Writer:  writer,
		Store:   content.NewStore(reader),
		Images:  imageurl.New(cfg.Sanity.ProjectID, cfg.Sanity.Dataset, cfg.Sanity.ImageHost),
		Redis:   rdb,
	}
	app.Assembler = pages.NewAssembler(app.Store, app.Images, defaults)
	app.Sitemap = sitemap.NewGenerator(app.Store, cfg.App.BaseURL, sitemap.NewRedisCache(rdb))

	var ledger service.Ledger
	if cfg.Database.DSN != "" {
		pool, err := OpenDB(ctx, DBOptions{
			DSN:      cfg.Database.DSN,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			app.Close()
			return nil, err
		}
		app.DB = pool

		repo := repository.NewLedgerRepository(SQLDB(pool))
		if err := repo.EnsureSchema(ctx); err != nil {
			app.Close()
			return nil, fmt.Errorf("ledger schema: %w", err)
		}
		ledger = repo
		logger.LogInfo("bootstrap", "submission ledger enabled")
	}

	app.Bookings = service.NewBookingService(
		repository.NewDraftRepository(rdb),
		service.NewWriter(writer),
		app.Assembler,
		ledger,
	)
	return app, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}

// Router builds the HTTP engine for the app.
func (a *App) Router() *gin.Engine {
	return BuildRouter(RouterDeps{
		ServiceName:    ServiceName,
		Version:        a.Config.App.Version,
		AllowedOrigins: a.Config.Server.AllowedOrigins,
		BookingPerMin:  a.Config.Booking.RatePerMinute,
		Content:        a.Writer,
		Redis:          a.Redis,
		DB:             a.DB,
		Assembler:      a.Assembler,
		Images:         a.Images,
		Bookings:       a.Bookings,
		Sitemap:        a.Sitemap,
	})
}
