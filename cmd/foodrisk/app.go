package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"foodrisk/internal/config"
	"foodrisk/internal/metrics"
	"foodrisk/internal/normalize"
	"foodrisk/internal/publisher"
	"foodrisk/internal/service"
	"foodrisk/internal/source/rasff"
	"foodrisk/internal/storage/postgres"
	redisstore "foodrisk/internal/storage/redis"
)

// app holds the connections shared by the commands.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	db         *sqlx.DB
	redis      *redisstore.Client
	publisher  *publisher.RabbitMQ
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	normalizer *normalize.Normalizer

	tracker service.UnmappedTracker
	queue   service.ReviewQueue
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	a := &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = metrics.New(a.registry)

	client, err := redisstore.New(ctx, cfg.Redis.URL)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	if client != nil {
		a.redis = client
		store := redisstore.NewUnmappedStore(client, cfg.Redis.KeyPrefix)
		a.tracker, a.queue = store, store
		logger.Info("connected to redis")
	} else {
		logger.Warn("redis not configured, unmapped values will not be tracked")
	}

	cache := normalize.NewMappingCache(
		postgres.NewMappingStore(db),
		cfg.Normalizer.MappingTTL,
		cfg.Normalizer.MinConfidence,
	)
	a.normalizer = normalize.New(
		normalize.WithMappings(cache),
		normalize.WithLinkBase(cfg.Normalizer.LinkBase),
		normalize.WithSuggestThreshold(cfg.Normalizer.SuggestThreshold),
	)

	return a, nil
}

func (a *app) connectPublisher() error {
	pub, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
		QueueName:  a.cfg.RabbitMQ.QueueName,
	}, a.logger)
	if err != nil {
		return err
	}
	a.publisher = pub
	return nil
}

func (a *app) ingestService() *service.IngestService {
	source := rasff.New(rasff.Config{
		BaseURL:        a.cfg.Feed.BaseURL,
		Timeout:        a.cfg.Feed.Timeout,
		MaxAttempts:    a.cfg.Feed.Retry.MaxAttempts,
		InitialBackoff: a.cfg.Feed.Retry.InitialBackoff,
		MaxBackoff:     a.cfg.Feed.Retry.MaxBackoff,
	}, a.logger)
	a.logger.Info("feed configured",
		"source", source.Name(),
		"max_pages", a.cfg.Feed.MaxPages,
	)

	return service.NewIngestService(
		source,
		postgres.NewRawStore(a.db),
		postgres.NewFactStore(a.db),
		a.tracker,
		a.normalizer,
		a.metrics,
		a.logger,
		a.cfg.Feed,
	)
}

func (a *app) digestService() *service.DigestService {
	return service.NewDigestService(
		postgres.NewSubscriptionStore(a.db),
		postgres.NewFactStore(a.db),
		postgres.NewDeliveryStore(a.db),
		postgres.NewTransactionManager(a.db),
		a.publisher,
		a.metrics,
		a.logger,
		a.cfg.Digest,
	)
}

func (a *app) mappingService() *service.MappingService {
	return service.NewMappingService(postgres.NewMappingStore(a.db), a.queue, a.normalizer, a.logger)
}

func (a *app) Close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
