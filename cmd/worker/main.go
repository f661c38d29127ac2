package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/db"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	campaignRepo := repositories.NewCampaignRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	publisher := events.NewRedisPublisher(rdb, log)

	log.Info("worker started")

	expiryTicker := time.NewTicker(cfg.CampaignExpiryInterval)
	overdueTicker := time.NewTicker(cfg.InvoiceOverdueInterval)
	defer expiryTicker.Stop()
	defer overdueTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-expiryTicker.C:
			runCampaignExpiry(ctx, campaignRepo, publisher, log)
		case <-overdueTicker.C:
			runInvoiceOverdue(ctx, invoiceRepo, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func runCampaignExpiry(ctx context.Context, campaignRepo *repositories.CampaignRepo, publisher events.Publisher, log *zap.Logger) {
	expired, err := campaignRepo.ExpireEnded(ctx)
	if err != nil {
		log.Error("failed to expire ended campaigns", zap.Error(err))
		return
	}

	for _, e := range expired {
		log.Info("campaign expired", zap.String("campaign_id", e.ID.String()))
		_ = publisher.Publish(ctx, events.ChannelApplications, events.Event{
			Type: events.EventCampaignExpired,
			Payload: map[string]any{
				"campaign_id": e.ID.String(),
				"recipients":  []string{e.BrandUserID.String()},
			},
		})
	}
}

func runInvoiceOverdue(ctx context.Context, invoiceRepo *repositories.InvoiceRepo, log *zap.Logger) {
	n, err := invoiceRepo.MarkOverdue(ctx)
	if err != nil {
		log.Error("failed to mark overdue invoices", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("invoices marked overdue", zap.Int64("count", n))
	}
}
