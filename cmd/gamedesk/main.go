package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/gamedesk/pkg/config"
	"github.com/umputun/gamedesk/pkg/content"
	"github.com/umputun/gamedesk/pkg/repository"
	"github.com/umputun/gamedesk/pkg/store"
	"github.com/umputun/gamedesk/pkg/theme"
	"github.com/umputun/gamedesk/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"config file, built-in defaults if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting gamedesk version %s", revision)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called explicitly above
	}
	log.Print("[INFO] shutdown complete")
}

// run wires config, article store, theme preference and the web server, blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	articles, err := store.Load(ctx, sources(cfg.Content)...)
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}
	log.Printf("[INFO] loaded %d articles", articles.Len())

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if settings, err := repos.Setting.ListSettings(ctx); err == nil {
		for _, st := range settings {
			log.Printf("[DEBUG] stored setting %s=%q, updated %s", st.Key, st.Value, st.UpdatedAt.Format(time.RFC3339))
		}
	}

	pref := theme.New(repos.Setting)
	if err := pref.Init(ctx); err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	srv := server.New(cfg, articles, pref, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file if set and applies command line overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	return cfg, nil
}

// sources lists article sources from config, the embedded dataset when nothing is configured
func sources(c config.ContentConfig) []store.Source {
	if len(c.Files) == 0 && len(c.Feeds) == 0 {
		return []store.Source{store.EmbeddedSource{}}
	}
	res := make([]store.Source, 0, len(c.Files)+len(c.Feeds))
	for _, f := range c.Files {
		res = append(res, store.FileSource{Path: f})
	}
	sanitizer := content.NewSanitizer()
	for _, f := range c.Feeds {
		res = append(res, store.FeedSource{Path: f, Sanitizer: sanitizer})
	}
	return res
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
