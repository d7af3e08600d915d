package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	cache "github.com/krisalay/mind-reader"
	"github.com/krisalay/mind-reader/config"
	"github.com/krisalay/mind-reader/dispatch"
	"github.com/krisalay/mind-reader/logging"
	"github.com/krisalay/mind-reader/registry"
	"github.com/krisalay/mind-reader/types"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the CLI and logs a failure to logOut, one line per joined error.
func run(ctx context.Context, args []string, out, logOut io.Writer) error {
	err := newCommand(out, logOut).Run(ctx, args)
	if err != nil {
		logger := logging.New(logOut, zerolog.ErrorLevel)
		logging.ErrorUnwrapped(&logger, "mindreader failed", err)
	}
	return err
}

// app is everything a subcommand needs, built once from flags and config.
type app struct {
	out        io.Writer
	metrics    *types.Counters
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
}

func newCommand(out, logOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "mindreader",
		Usage: "read files through an expiring cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file; environment variables and flags override it",
				Sources: cli.EnvVars("MINDREADER_CONFIG"),
			},
			&cli.IntFlag{
				Name:  "lru-capacity",
				Usage: "entries kept by each bounded_lru cache (default: 1000)",
			},
			&cli.DurationFlag{
				Name:  "lru-ttl",
				Usage: "freshness window of bounded_lru entries (default: 60s)",
			},
			&cli.DurationFlag{
				Name:  "write-through-ttl",
				Usage: "freshness window of write_through entries (default: 60s)",
			},
			&cli.IntFlag{
				Name:  "write-through-shards",
				Usage: "independently locked shards per write_through cache, 1 to 256 (default: 16)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error (default: info)",
			},
		},
		Commands: []*cli.Command{
			readCommand(out, logOut),
			benchCommand(out, logOut),
		},
	}
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "structured_records (json), image, delimited_rows (csv) or text_lines (text)",
		Value:   string(registry.StructuredRecords),
	}
}

func policyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "policy",
		Aliases: []string{"p"},
		Usage:   "bounded_lru (lru) or write_through",
		Value:   "bounded_lru",
	}
}

// setup loads configuration, applies flag overrides and wires the cache stack.
func setup(cmd *cli.Command, out, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	logger := logging.New(logOut, level)
	metrics := &types.Counters{}

	reg, err := registry.New(
		cfg.Registry(),
		registry.DefaultProducers(),
		cache.WithMetrics(metrics),
		cache.WithLogger(logging.WithScope(logger, "cache")),
	)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("lru_capacity", cfg.LRU.Capacity).
		Dur("lru_ttl", cfg.LRU.TTL).
		Dur("write_through_ttl", cfg.WriteThrough.TTL).
		Int("write_through_shards", cfg.WriteThrough.Shards).
		Msg("cache stack ready")

	return &app{
		out:        out,
		metrics:    metrics,
		registry:   reg,
		dispatcher: dispatch.New(reg, logger),
	}, nil
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Parse(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("lru-capacity") {
		cfg.LRU.Capacity = int(cmd.Int("lru-capacity"))
	}
	if cmd.IsSet("lru-ttl") {
		cfg.LRU.TTL = cmd.Duration("lru-ttl")
	}
	if cmd.IsSet("write-through-ttl") {
		cfg.WriteThrough.TTL = cmd.Duration("write-through-ttl")
	}
	if cmd.IsSet("write-through-shards") {
		cfg.WriteThrough.Shards = int(cmd.Int("write-through-shards"))
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) printMetrics() {
	s := a.metrics.Snapshot()
	fmt.Fprintln(a.out, "\n==================== METRICS ====================")
	fmt.Fprintf(a.out, "HITS        : %d\n", s.Hits)
	fmt.Fprintf(a.out, "MISSES      : %d\n", s.Misses)
	fmt.Fprintf(a.out, "EVICTIONS   : %d\n", s.Evictions)
	fmt.Fprintf(a.out, "EXPIRED     : %d\n", s.Expired)
	fmt.Fprintf(a.out, "LOAD ERRORS : %d\n", s.LoadErrors)
	fmt.Fprintf(a.out, "HIT RATIO   : %.2f\n", s.HitRatio())

	sizes := a.registry.Sizes()
	names := make([]string, 0, len(sizes))
	for name, n := range sizes {
		if n > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(a.out, "ENTRIES     : %-32s %d\n", name, sizes[name])
	}
}
