// Command pressdeck aggregates corporate newsroom feeds and serves the
// merged list over HTTP, prints it once, or browses it in a TUI.
//
// Usage:
//
//	pressdeck                 Serve HTTP on the configured address
//	pressdeck -once           Aggregate once, print JSON, exit
//	pressdeck -tui            Browse the feed in the terminal
//	pressdeck -addr :9090     Override the listen address
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abelbrown/pressdeck/internal/aggregate"
	"github.com/abelbrown/pressdeck/internal/config"
	"github.com/abelbrown/pressdeck/internal/feeds"
	"github.com/abelbrown/pressdeck/internal/fetch"
	"github.com/abelbrown/pressdeck/internal/logging"
	"github.com/abelbrown/pressdeck/internal/server"
)

func main() {
	var (
		addr       = flag.String("addr", "", "HTTP listen address (overrides config)")
		configPath = flag.String("config", "", "path to config file (default ~/.pressdeck/config.json)")
		timeout    = flag.Duration("timeout", 0, "per-source fetch timeout (overrides config)")
		once       = flag.Bool("once", false, "aggregate once, print JSON to stdout, exit")
		tuiMode    = flag.Bool("tui", false, "browse the feed in a terminal UI")
	)
	flag.Parse()

	if err := logging.Init(!*tuiMode && !*once); err != nil {
		fmt.Fprintf(os.Stderr, "pressdeck: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("failed to load config", "err", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	fetchTimeout := cfg.FetchTimeout()
	if *timeout > 0 {
		fetchTimeout = *timeout
	}

	sources := cfg.SourceList()
	dispatcher := aggregate.NewDispatcher(fetch.New(fetchTimeout))
	agg := aggregate.New(dispatcher, cfg.PostLimit, logging.WithPrefix("aggregate"))

	run := func(ctx context.Context) feeds.Result {
		return agg.Run(ctx, sources)
	}

	switch {
	case *once:
		if err := runOnce(run); err != nil {
			logging.Fatal("aggregation failed", "err", err)
		}
	case *tuiMode:
		if err := runTUI(run); err != nil {
			logging.Fatal("tui failed", "err", err)
		}
	default:
		if err := serve(cfg, run); err != nil {
			logging.Fatal("server failed", "err", err)
		}
	}
}

// runOnce aggregates a single time and prints the API payload.
func runOnce(run server.RefreshFunc) error {
	res := run(context.Background())
	payload := map[string]any{
		"fetched_at": time.Now().UTC().Format(time.RFC3339),
		"count":      len(res.Posts),
		"companies":  res.Companies,
		"errors":     res.Errors,
		"posts":      res.Posts,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// serve runs the HTTP front end until interrupted.
func serve(cfg *config.Config, run server.RefreshFunc) error {
	cache := server.NewCache(cfg.CacheTTL(), run)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(cache, logging.WithPrefix("http")).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
