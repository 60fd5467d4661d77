package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crimson-sun/sift/internal/config"
	"github.com/crimson-sun/sift/internal/engine"
	"github.com/crimson-sun/sift/internal/engine/dense"
	"github.com/crimson-sun/sift/internal/logging"
	"github.com/crimson-sun/sift/internal/model"
	"github.com/crimson-sun/sift/internal/pipeline"
	"github.com/crimson-sun/sift/internal/report"
	"github.com/crimson-sun/sift/internal/source"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logging.Init(cfg.Report == "json", logging.ParseLevel(cfg.LogLevel))

	// One seed drives both the shuffle and the weight initialization,
	// so a fixed SIFT_SEED reproduces an entire run.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	params := dense.NewParams(model.EmbeddingDim, rng)
	eng, err := engine.New(params, cfg.Workers)
	if err != nil {
		log.Fatalf("failed to create engine: %v", err)
	}

	ctor, err := source.Get(cfg.Source)
	if err != nil {
		log.Fatalf("failed to get source: %v", err)
	}
	src := ctor()

	writer, err := buildWriter(cfg)
	if err != nil {
		log.Fatalf("failed to build report writer: %v", err)
	}

	p := pipeline.New(src, eng, writer)
	defer p.Close()

	// Set up graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	srcCfg := source.Config{Path: cfg.Dataset, Encoding: cfg.Encoding}

	fmt.Fprintf(os.Stderr, "sift: starting with source=%s seed=%d\n", cfg.Source, seed)
	if _, err := p.Run(ctx, srcCfg, rng, seed); err != nil && err != context.Canceled {
		log.Fatalf("pipeline error: %v", err)
	}
}

// buildWriter assembles the configured report destinations: the
// primary format on stdout, plus an optional JSON copy at ReportPath.
func buildWriter(cfg config.Config) (report.Writer, error) {
	var primary report.Writer
	switch cfg.Report {
	case "json":
		primary = report.NewJSON(os.Stdout, cfg.ReportPretty)
	default:
		primary = report.NewText(os.Stdout, cfg.Colors)
	}

	if cfg.ReportPath == "" {
		return primary, nil
	}

	f, err := os.Create(cfg.ReportPath)
	if err != nil {
		return nil, fmt.Errorf("report path: %w", err)
	}
	return report.NewMulti(primary, report.NewJSON(f, cfg.ReportPretty)), nil
}
