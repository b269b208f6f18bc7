// Command gpx2kml bulk-converts a directory of GPX track logs into KML
// documents. It parses flags, validates config and paths, and runs the
// bounded-concurrency conversion pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/BuschnicK/GpxToKml/internal/config"
	"github.com/BuschnicK/GpxToKml/internal/display"
	"github.com/BuschnicK/GpxToKml/internal/logging"
	"github.com/BuschnicK/GpxToKml/internal/pipeline"
)

// version is injected at build time via -ldflags; plain "go build" keeps the default.
var version = "1.0.0-dev"

func main() {
	// .env is optional; when present it feeds the GPX2KML_* flag defaults.
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "gpx2kml",
		Usage:   "Bulk-convert a directory of GPX track logs to KML documents",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input_dir",
				Usage:   "Input directory containing GPX files",
				EnvVars: []string{"GPX2KML_INPUT_DIR"},
			},
			&cli.StringFlag{
				Name:    "output_dir",
				Usage:   "Output directory for KML results. Defaults to input_dir",
				EnvVars: []string{"GPX2KML_OUTPUT_DIR"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "Worker pool size. Defaults to the available hardware parallelism",
				EnvVars: []string{"GPX2KML_WORKERS"},
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Optional YAML config file; flags override file values",
			},
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "Append logs to file",
				EnvVars: []string{"GPX2KML_LOG"},
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Colored logs: auto | always | never",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Verbose output",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gpx2kml: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// Phase 1: Bootstrap — assemble config from defaults, optional file, then
	// flags. The logger doesn't exist yet, so errors surface via the returned
	// error and land on stderr.
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		if err := config.LoadFile(path, &cfg); err != nil {
			return err
		}
	}
	applyFlags(c, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Pre-flight: input must be an existing directory; nothing is scheduled
	// otherwise. The output directory is created when missing.
	fi, err := os.Stat(cfg.InputDir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("not a directory: %q", cfg.InputDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory %q: %w", cfg.OutputDir, err)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()
	log.Info("=== gpx2kml v%s ===", version)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	log.Debug(cfg.Verbose, "Workers: %d (admitting up to %d in-flight tasks)", cfg.Workers, 2*cfg.Workers)
	log.Info("")

	// Phase 3: Run the batch. Per-file failures are counted, not propagated;
	// a completed run always exits 0.
	summary, err := pipeline.Run(context.Background(), &cfg, log)
	if err != nil {
		return err
	}

	fmt.Printf("Succeeded: %d Failed: %d\n", summary.Succeeded, summary.Failed)
	return nil
}

// applyFlags overlays explicitly-set CLI flags onto cfg (flags win over the
// config file, which wins over defaults).
func applyFlags(c *cli.Context, cfg *config.Config) {
	if v := c.String("input_dir"); v != "" {
		cfg.InputDir = config.NormalizeDirArg(filepath.Clean(v))
	}
	if v := c.String("output_dir"); v != "" {
		cfg.OutputDir = config.NormalizeDirArg(filepath.Clean(v))
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("log") {
		cfg.LogFile = c.String("log")
	}
	if v := c.String("color"); v != "" {
		cfg.ColorMode = config.ColorMode(v)
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}
}
