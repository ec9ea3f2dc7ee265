package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/squaredcircle/ringside/internal/app"
	"github.com/squaredcircle/ringside/internal/config"
	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/reign"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
	"github.com/squaredcircle/ringside/internal/infrastructure/repository/memory"
	"github.com/squaredcircle/ringside/internal/observability"
	"github.com/squaredcircle/ringside/internal/platform/logging"
)

type standingsRow struct {
	Performer string          `json:"performer"`
	Buckets   scoring.Buckets `json:"buckets"`
	Total     int             `json:"total"`
}

func main() {
	eventsFile := flag.String("events", "", "score a JSON event archive instead of the database")
	reignsFile := flag.String("reigns", "", "JSON title reigns file (optional; inferred from events when omitted)")
	asOf := flag.String("as-of", "", "treat this date (YYYY-MM-DD) as now for title-holding accrual")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	demo := flag.Bool("demo", false, "score the built-in sample season instead of the database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownUptrace(ctx)
		_ = stopPyroscope()
		_ = observability.StopPprofServer(pprofSrv, logger, 5*time.Second)
	}()

	if err := run(cfg, logger, *eventsFile, *reignsFile, *asOf, *pretty, *demo); err != nil {
		logger.Error("scorer run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger, eventsFile, reignsFile, asOf string, pretty, demo bool) error {
	ctx := context.Background()

	var application *app.App
	if demo {
		application = app.NewInMemory(cfg, logger, memory.SeedEvents(), memory.SeedReigns())
	} else if eventsFile != "" {
		events, err := readEventsFile(eventsFile)
		if err != nil {
			return fmt.Errorf("read events file: %w", err)
		}
		var reigns []reign.Reign
		if reignsFile != "" {
			reigns, err = readReignsFile(reignsFile)
			if err != nil {
				return fmt.Errorf("read reigns file: %w", err)
			}
		}
		application = app.NewInMemory(cfg, logger, events, reigns)
	} else {
		var err error
		application, err = app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = application.Close() }()
	}

	events, err := application.Events.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	logger.InfoContext(ctx, "scoring season", "events", len(events))

	totals := application.Aggregator.Aggregate(ctx, events)

	reigns, err := application.Reigns.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list title reigns: %w", err)
	}
	if len(reigns) == 0 {
		reigns = application.Titles.InferReignsFromEvents(ctx, events)
		logger.InfoContext(ctx, "inferred title reigns from events", "reigns", len(reigns))
	}

	now, err := resolveNow(asOf)
	if err != nil {
		return err
	}
	for performer, points := range application.Titles.ComputeTitleHolding(ctx, reigns, now) {
		totals.Add(performer, scoring.Buckets{TitleHolding: points})
	}

	return writeStandings(totals, pretty)
}

func resolveNow(asOf string) (time.Time, error) {
	if asOf == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse("2006-01-02", asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -as-of date %q: %w", asOf, err)
	}
	return parsed.UTC(), nil
}

func readEventsFile(path string) ([]event.Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []event.Event
	if err := sonic.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return events, nil
}

func readReignsFile(path string) ([]reign.Reign, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reigns []reign.Reign
	if err := sonic.Unmarshal(raw, &reigns); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return reigns, nil
}

func writeStandings(totals scoring.SeasonTotals, pretty bool) error {
	rows := make([]standingsRow, 0, len(totals))
	for performer, buckets := range totals {
		rows = append(rows, standingsRow{
			Performer: performer,
			Buckets:   buckets,
			Total:     buckets.Total(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Performer < rows[j].Performer
	})

	var out []byte
	var err error
	if pretty {
		out, err = sonic.MarshalIndent(rows, "", "  ")
	} else {
		out, err = sonic.Marshal(rows)
	}
	if err != nil {
		return fmt.Errorf("encode standings: %w", err)
	}
	out = append(out, '\n')
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	return nil
}
