package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/mhdatheek136/branfern/config"
	"github.com/mhdatheek136/branfern/internal/bootstrap"
	"github.com/mhdatheek136/branfern/internal/sitemap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker sitemap|schedule")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	switch os.Args[1] {
	case "sitemap":
		runOnce(ctx, app.Sitemap)
	case "schedule":
		runScheduled(ctx, app.Sitemap, cfg.Sitemap.Schedule)
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

// runOnce rebuilds the shared sitemap and exits.
func runOnce(ctx context.Context, gen *sitemap.Generator) {
	if err := gen.Refresh(ctx); err != nil {
		log.Fatalf("sitemap refresh: %v", err)
	}
	log.Info("sitemap refreshed")
}

// runScheduled refreshes immediately, then on every tick until interrupted.
func runScheduled(ctx context.Context, gen *sitemap.Generator, schedule string) {
	if err := gen.Refresh(ctx); err != nil {
		log.Warnf("initial sitemap refresh failed: %v", err)
	}

	s := sitemap.NewScheduler(gen, schedule)
	if err := s.Start(ctx); err != nil {
		log.Fatalf("sitemap scheduler: %v", err)
	}
	<-ctx.Done()
	s.Stop()
	log.Info("worker stopped")
}
