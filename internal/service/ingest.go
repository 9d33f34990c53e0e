package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodrisk/internal/config"
	"foodrisk/internal/domain"
	"foodrisk/internal/facts"
	"foodrisk/internal/identity"
	"foodrisk/internal/metrics"
	"foodrisk/internal/normalize"
	"foodrisk/internal/record"
)

// IngestService pulls the feed page by page and writes raw envelopes and per-hazard
// facts. Records are processed one at a time; a failing record is logged and skipped.
type IngestService struct {
	source     Source
	raw        RawStore
	facts      FactStore
	unmapped   UnmappedTracker
	normalizer *normalize.Normalizer
	metrics    *metrics.Metrics
	logger     *slog.Logger
	config     config.FeedConfig
	now        func() time.Time
}

func NewIngestService(
	source Source,
	raw RawStore,
	facts FactStore,
	unmapped UnmappedTracker,
	normalizer *normalize.Normalizer,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg config.FeedConfig,
) *IngestService {
	return &IngestService{
		source:     source,
		raw:        raw,
		facts:      facts,
		unmapped:   unmapped,
		normalizer: normalizer,
		metrics:    m,
		logger:     logger.With("job", "ingest", "source", source.ID()),
		config:     cfg,
		now:        time.Now,
	}
}

// Run ingests up to MaxPages pages. A page fetch failure ends the run and is returned
// together with the stats gathered so far; earlier pages stay written.
func (s *IngestService) Run(ctx context.Context) (*domain.IngestStats, error) {
	startTime := s.now()
	stats := &domain.IngestStats{}

	s.logger.Info("starting ingest", "max_pages", s.config.MaxPages)
	s.refreshMappings(ctx, startTime)

	url := s.source.StartURL()
	for url != "" && stats.Pages < s.config.MaxPages {
		page, err := s.source.FetchPage(ctx, url)
		if err != nil {
			stats.Duration = s.now().Sub(startTime)
			s.metrics.ObserveRun("ingest", "failed", stats.Duration)
			s.logger.Error("fetch page failed, aborting run",
				"page", stats.Pages+1,
				"url", url,
				"error", err,
			)
			return stats, fmt.Errorf("fetch page %d: %w", stats.Pages+1, err)
		}

		stats.Pages++
		s.metrics.PageFetched()
		s.logger.Debug("fetched page",
			"page", stats.Pages,
			"records", len(page.Records),
		)

		for _, rec := range page.Records {
			if err := ctx.Err(); err != nil {
				stats.Duration = s.now().Sub(startTime)
				s.metrics.ObserveRun("ingest", "failed", stats.Duration)
				s.logger.Error("ingest interrupted",
					"pages", stats.Pages,
					"records", stats.Records,
					"error", err,
				)
				return stats, err
			}
			s.ingestRecord(ctx, rec, stats)
		}

		url = page.NextLink
	}

	stats.Duration = s.now().Sub(startTime)
	s.metrics.ObserveRun("ingest", "ok", stats.Duration)

	s.logger.Info("ingest completed",
		"pages", stats.Pages,
		"records", stats.Records,
		"raw_upserted", stats.RawUpserted,
		"facts_upserted", stats.FactsUpserted,
		"unmapped", stats.Unmapped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *IngestService) refreshMappings(ctx context.Context, now time.Time) {
	refreshed, err := s.normalizer.RefreshIfStale(ctx, now)
	switch {
	case err != nil:
		s.metrics.MappingRefresh("error")
		s.logger.Warn("mapping refresh failed, using previous mappings", "error", err)
	case refreshed:
		s.metrics.MappingRefresh("ok")
		s.logger.Debug("mappings refreshed")
	}
}

func (s *IngestService) ingestRecord(ctx context.Context, rec domain.RawRecord, stats *domain.IngestStats) {
	stats.Records++
	s.metrics.RecordProcessed()

	sourceID := identity.SourceID(rec)
	logger := s.logger.With("source_id", sourceID)

	envelope := &domain.RawEnvelope{
		ID:          identity.RawID(sourceID),
		SourceID:    sourceID,
		Payload:     rec,
		PublishedAt: normalize.Date(record.String(rec, normalize.PublishedFields...)),
	}

	rawID, err := s.raw.Upsert(ctx, envelope)
	if err != nil {
		stats.Errors++
		s.metrics.RecordError("raw")
		logger.Error("upsert raw record", "error", err)
		return
	}
	stats.RawUpserted++

	result := s.normalizer.Record(rec)
	rows := facts.Expand(sourceID, rawID, result.Alert, result.Hazards)

	if err := s.facts.UpsertBatch(ctx, rows); err != nil {
		stats.Errors++
		s.metrics.RecordError("facts")
		logger.Error("upsert facts", "facts", len(rows), "error", err)
		return
	}
	stats.FactsUpserted += len(rows)
	s.metrics.AddFacts(len(rows))

	s.trackUnmapped(ctx, logger, result.Unmapped, stats)
}

func (s *IngestService) trackUnmapped(ctx context.Context, logger *slog.Logger, observations []domain.Observation, stats *domain.IngestStats) {
	if len(observations) == 0 {
		return
	}
	stats.Unmapped += len(observations)
	for _, o := range observations {
		s.metrics.Unmapped(string(o.Kind))
	}

	if s.unmapped == nil {
		return
	}
	if err := s.unmapped.Track(ctx, observations); err != nil {
		logger.Warn("track unmapped values", "count", len(observations), "error", err)
	}
}
