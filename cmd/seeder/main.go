// Command seeder embeds every record of the configured domains and builds
// their vector indices. Record position in the metadata file becomes the
// `pos` field of the stored hash, which is the alignment contract the query
// engine relies on.
package main

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/catalog"
	"github.com/kailas-cloud/askdex/internal/config"
	dbRedis "github.com/kailas-cloud/askdex/internal/db/redis"
	"github.com/kailas-cloud/askdex/internal/domain"
	logpkg "github.com/kailas-cloud/askdex/internal/logger"
	"github.com/kailas-cloud/askdex/internal/metrics"
	"github.com/kailas-cloud/askdex/internal/registry"
	indexrepo "github.com/kailas-cloud/askdex/internal/repository/index"
	openaiTransport "github.com/kailas-cloud/askdex/internal/transport/openai"
)

func main() {
	recreate := flag.Bool("recreate", false, "drop and rebuild existing indices")
	flag.Parse()

	env := config.GetEnv()
	if env == "local" {
		_ = godotenv.Load()
	}

	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	metrics.RegisterEmbeddingMetrics()

	embedder := openaiTransport.NewEmbedder(&openaiTransport.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})

	pool, err := ants.NewPool(cfg.Seeder.PoolSize)
	if err != nil {
		logger.Fatal("Failed to create worker pool", zap.Error(err))
	}
	defer pool.Release()

	seeds := []struct {
		def  catalog.Definition
		meta string
	}{
		{catalog.Cars(), cfg.Domains.Car.Metadata},
		{catalog.Countries(), cfg.Domains.Country.Metadata},
	}

	for _, seed := range seeds {
		if err := seedDomain(ctx, seed.def, seed.meta, store, embedder, pool, cfg, *recreate, logger); err != nil {
			logger.Fatal("Seeding failed",
				zap.String("domain", seed.def.Name.String()), zap.Error(err))
		}
	}

	logger.Info("Seeding complete")
}

func seedDomain(
	ctx context.Context,
	def catalog.Definition,
	metadataPath string,
	store *dbRedis.Store,
	embedder domain.Embedder,
	pool *ants.Pool,
	cfg config.Config,
	recreate bool,
	logger *zap.Logger,
) error {
	records, err := registry.LoadRecords(metadataPath, def)
	if err != nil {
		return err
	}

	repo := indexrepo.New(store, def.Name.String())
	if err := repo.EnsureIndex(ctx, cfg.Embedding.Dimensions, recreate); err != nil {
		return err
	}

	logger.Info("Embedding records",
		zap.String("domain", def.Name.String()),
		zap.Int("records", len(records)),
		zap.Int("workers", cfg.Seeder.PoolSize),
	)

	items := make([]indexrepo.Item, len(records))
	errs := make([]error, len(records))

	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			emb, err := embedder.Embed(ctx, rec.Text)
			if err != nil {
				errs[i] = fmt.Errorf("embed record %s: %w", rec.ID, err)
				return
			}
			items[i] = indexrepo.Item{
				Position: i,
				ID:       rec.ID,
				Text:     rec.Text,
				Vector:   emb.Embedding,
			}
		})
		if submitErr != nil {
			wg.Done()
			return fmt.Errorf("submit embed task: %w", submitErr)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	for start := 0; start < len(items); start += cfg.Seeder.BatchSize {
		end := min(start+cfg.Seeder.BatchSize, len(items))
		if err := repo.Ingest(ctx, items[start:end]); err != nil {
			return err
		}
	}

	logger.Info("Domain seeded",
		zap.String("domain", def.Name.String()),
		zap.Int("records", len(items)),
	)
	return nil
}
