package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"foodrisk/internal/admin"
	"foodrisk/internal/config"
	"foodrisk/internal/domain"
	"foodrisk/internal/facts"
	"foodrisk/internal/identity"
	"foodrisk/internal/normalize"
	"foodrisk/internal/scheduler"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "foodrisk",
		Short:         "Food safety alert ingestion and digest pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = setupLogger("info")
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				opts.logger.Error("failed to load config", "error", err)
				return err
			}
			opts.cfg = cfg
			opts.logger = setupLogger(cfg.LogLevel)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to config file")

	cmd.AddCommand(
		newIngestCmd(opts),
		newDigestCmd(opts),
		newServeCmd(opts),
		newNormalizeCmd(),
		newMappingsCmd(opts),
		newUnknownsCmd(opts),
	)
	return cmd
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// withApp runs fn with connected dependencies and logs the failure, if any.
func withApp(opts *rootOptions, needPublisher bool, fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp(ctx, opts.cfg, opts.logger)
	if err != nil {
		opts.logger.Error("failed to start", "error", err)
		return err
	}
	defer a.Close()

	if needPublisher {
		if err := a.connectPublisher(); err != nil {
			opts.logger.Error("failed to connect to rabbitmq", "error", err)
			return err
		}
	}

	if err := fn(ctx, a); err != nil {
		opts.logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

func newIngestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Fetch the feed once and store raw records and facts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, false, func(ctx context.Context, a *app) error {
				ctx, cancel := context.WithTimeout(ctx, opts.cfg.Ingest.Timeout)
				defer cancel()
				stats, err := a.ingestService().Run(ctx)
				if stats != nil {
					_ = printJSON(cmd.OutOrStdout(), stats)
				}
				return err
			})
		},
	}
}

func newDigestCmd(opts *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Build and dispatch the digests due today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := time.Now().UTC()
			if date != "" {
				d, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				today = d
			}

			return withApp(opts, true, func(ctx context.Context, a *app) error {
				ctx, cancel := context.WithTimeout(ctx, opts.cfg.Digest.Timeout)
				defer cancel()
				stats, err := a.digestService().Run(ctx, today)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), digestSummary(stats))
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "run as if today were this date (YYYY-MM-DD)")
	return cmd
}

func digestSummary(stats *domain.DigestStats) map[string]any {
	return map[string]any{
		"processed":   stats.Processed,
		"due":         stats.Due,
		"sent":        stats.Sent,
		"all_clear":   stats.AllClear,
		"failed":      stats.Failed,
		"empty":       stats.Empty,
		"duration_ms": stats.Duration.Milliseconds(),
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduler together with the admin and metrics endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, true, func(ctx context.Context, a *app) error {
				return serve(ctx, a)
			})
		},
	}
}

func serve(ctx context.Context, a *app) error {
	ingest := a.ingestService()
	digests := a.digestService()

	sched := scheduler.NewScheduler(a.logger,
		scheduler.Job{
			Name:     "ingest",
			Schedule: a.cfg.Ingest.Schedule,
			Timeout:  a.cfg.Ingest.Timeout,
			Run: func(ctx context.Context) error {
				_, err := ingest.Run(ctx)
				return err
			},
		},
		scheduler.Job{
			Name:     "digest",
			Schedule: a.cfg.Digest.Schedule,
			Timeout:  a.cfg.Digest.Timeout,
			Run: func(ctx context.Context) error {
				_, err := digests.Run(ctx, time.Now().UTC())
				return err
			},
		},
	)

	handler := admin.New(a.mappingService(), a.cfg.HTTP.AdminSecret, a.logger)
	server := admin.NewServer(a.cfg.HTTP.Addr, admin.NewRouter(handler, a.registry))
	if a.cfg.HTTP.AdminSecret == "" {
		a.logger.Warn("http.admin_secret is empty, admin routes are disabled")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scheduler: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		a.logger.Info("http server listening", "addr", a.cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize raw records from a JSON file or stdin without storing them",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			records, err := readRecords(in)
			if err != nil {
				return err
			}

			n := normalize.New()
			type output struct {
				SourceID string                   `json:"source_id"`
				Alert    domain.NormalizedAlert   `json:"alert"`
				Facts    []domain.AlertFact       `json:"facts"`
				Unmapped []domain.Observation     `json:"unmapped,omitempty"`
				Grouped  []domain.AggregatedAlert `json:"aggregated"`
			}
			out := make([]output, 0, len(records))
			for _, rec := range records {
				res := n.Record(rec)
				sourceID := identity.SourceID(rec)
				fs := facts.Expand(sourceID, identity.RawID(sourceID), res.Alert, res.Hazards)
				out = append(out, output{
					SourceID: sourceID,
					Alert:    res.Alert,
					Facts:    fs,
					Unmapped: res.Unmapped,
					Grouped:  facts.Aggregate(fs),
				})
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

// readRecords accepts a single JSON object or an array of objects.
func readRecords(r io.Reader) ([]domain.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var many []domain.RawRecord
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}

	var one domain.RawRecord
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return []domain.RawRecord{one}, nil
}

func newMappingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Manage normalization overrides",
	}

	var confidence float64
	add := &cobra.Command{
		Use:   "add <kind> <raw value> <normalized value>",
		Short: "Register an override for a raw value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, false, func(ctx context.Context, a *app) error {
				m := &domain.Mapping{
					Kind:            domain.MappingKind(args[0]),
					RawValue:        args[1],
					NormalizedValue: args[2],
					Confidence:      confidence,
				}
				if err := a.mappingService().Add(ctx, m); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), m)
			})
		},
	}
	add.Flags().Float64Var(&confidence, "confidence", 1, "confidence in [0, 1]")

	var kind string
	list := &cobra.Command{
		Use:   "list",
		Short: "List registered overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, false, func(ctx context.Context, a *app) error {
				mappings, err := a.mappingService().List(ctx, domain.MappingKind(kind))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), mappings)
			})
		},
	}
	list.Flags().StringVar(&kind, "kind", "", "hazard, country or category")

	cmd.AddCommand(add, list)
	return cmd
}

func newUnknownsCmd(opts *rootOptions) *cobra.Command {
	var (
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "unknowns",
		Short: "Show the most frequent values that no rule or override recognizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return errors.New("--limit must be a positive integer")
			}
			return withApp(opts, false, func(ctx context.Context, a *app) error {
				values, err := a.mappingService().Unknowns(ctx, domain.MappingKind(kind), limit)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), values)
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "hazard, country or category")
	cmd.Flags().IntVar(&limit, "limit", 25, "number of values to show")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
