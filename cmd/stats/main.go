package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/db"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/statsparser"
	"go.uber.org/zap"
)

// The stats worker refreshes follower counts for all active creators by
// scraping their public profile pages. A snapshot is recorded per
// platform so the analytics history keeps growing without manual entry.
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

	creatorRepo := repositories.NewCreatorRepo(pool)
	analyticsRepo := repositories.NewAnalyticsRepo(pool)
	parser := statsparser.NewParser(cfg.StatsFetchTimeoutMS, cfg.StatsFetchMaxRetries, log)

	log.Info("stats worker started", zap.Duration("interval", cfg.StatsRefreshInterval))

	ticker := time.NewTicker(cfg.StatsRefreshInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// First pass on startup, then on the ticker.
	refreshAll(ctx, creatorRepo, analyticsRepo, parser, log)

	for {
		select {
		case <-ticker.C:
			refreshAll(ctx, creatorRepo, analyticsRepo, parser, log)
		case <-sigCh:
			log.Info("shutting down stats worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func refreshAll(ctx context.Context, creatorRepo *repositories.CreatorRepo, analyticsRepo *repositories.AnalyticsRepo, parser *statsparser.Parser, log *zap.Logger) {
	creators, err := creatorRepo.ListActive(ctx)
	if err != nil {
		log.Error("failed to list active creators", zap.Error(err))
		return
	}

	for _, creator := range creators {
		refreshCreator(ctx, creator, creatorRepo, analyticsRepo, parser, log)
	}
}

func refreshCreator(ctx context.Context, creator *models.Creator, creatorRepo *repositories.CreatorRepo, analyticsRepo *repositories.AnalyticsRepo, parser *statsparser.Parser, log *zap.Logger) {
	handles := map[string]*string{
		models.PlatformInstagram: creator.InstagramHandle,
		models.PlatformTiktok:    creator.TiktokHandle,
		models.PlatformYoutube:   creator.YoutubeHandle,
	}

	counts := map[string]*int{}
	for platform, handle := range handles {
		if handle == nil || *handle == "" {
			continue
		}
		stats, err := parser.FetchFollowers(ctx, platform, *handle)
		if err != nil {
			log.Warn("follower fetch failed",
				zap.String("creator_id", creator.ID.String()),
				zap.String("platform", platform),
				zap.Error(err),
			)
			continue
		}
		if stats.Followers == nil {
			continue
		}
		counts[platform] = stats.Followers

		snapshot := &models.AnalyticsSnapshot{
			CreatorID: creator.ID,
			Platform:  platform,
			Date:      time.Now().UTC().Truncate(24 * time.Hour),
			Followers: stats.Followers,
			Source:    "profile_parser",
		}
		if err := analyticsRepo.Record(ctx, snapshot); err != nil {
			log.Error("failed to record snapshot",
				zap.String("creator_id", creator.ID.String()),
				zap.String("platform", platform),
				zap.Error(err),
			)
		}
	}

	if len(counts) == 0 {
		return
	}

	err := creatorRepo.UpdateFollowers(ctx, creator.ID,
		counts[models.PlatformInstagram],
		counts[models.PlatformTiktok],
		counts[models.PlatformYoutube],
	)
	if err != nil {
		log.Error("failed to update follower counts",
			zap.String("creator_id", creator.ID.String()),
			zap.Error(err),
		)
	}
}
