package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/plantbot/pkg/bot"
	"github.com/umputun/plantbot/pkg/config"
	"github.com/umputun/plantbot/pkg/repository"
	"github.com/umputun/plantbot/pkg/scheduler"
	"github.com/umputun/plantbot/pkg/telegram"
	"github.com/umputun/plantbot/server"
)

// Opts with all CLI options
type Opts struct {
	Config    string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults only if empty"`
	Token     string `long:"token" env:"TELEGRAM_BOT_TOKEN" description:"telegram bot token"`
	Store     string `long:"store" env:"REDIS_URL" description:"store url, redis://, rediss://, sqlite:// or memory://"`
	StoreTLS  bool   `long:"store-tls" env:"REDIS_SSL" description:"force TLS for redis"`
	Greetings string `long:"greetings" env:"REMINDERS_FILE" description:"file with reminder greetings"`
	Mode      string `long:"mode" env:"BOT_MODE" description:"update delivery, polling or webhook"`
	Listen    string `short:"l" long:"listen" env:"LISTEN" description:"listen address"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// .env is optional, real environment wins
	dotEnvErr := godotenv.Load()

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

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug, opts.Token)
	if dotEnvErr != nil && !errors.Is(dotEnvErr, os.ErrNotExist) {
		log.Printf("[WARN] can't load .env: %v", dotEnvErr)
	}

	log.Printf("[INFO] starting plantbot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if cfg.Telegram.Token != opts.Token {
		setupLog(opts.Debug, cfg.Telegram.Token) // token from config file, hide it too
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		URL:          cfg.Store.URL,
		TLS:          cfg.Store.TLS,
		MaxOpenConns: cfg.Store.MaxOpenConns,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	api, err := telegram.NewBotAPI(cfg.Telegram.Token, cfg.Telegram.APIEndpoint, cfg.Telegram.PollTimeout, cfg.Telegram.Debug)
	if err != nil {
		return fmt.Errorf("failed to connect to telegram: %w", err)
	}
	log.Printf("[INFO] authorized as @%s", api.Self.UserName)

	tg := telegram.NewClient(api)
	if err := tg.RegisterCommands(bot.Commands()); err != nil {
		log.Printf("[WARN] can't register bot commands: %v", err)
	}

	listener := telegram.NewListener(tg, bot.New(bot.Params{Store: repos.Plant}), api.Self.UserName, cfg.Telegram.PollTimeout)

	sched, err := scheduler.NewScheduler(scheduler.Params{
		Store:             repos.Plant,
		Sender:            tg,
		GreetingsFile:     cfg.Reminders.GreetingsFile,
		ReminderInterval:  cfg.Schedule.ReminderInterval,
		RetentionInterval: cfg.Schedule.RetentionInterval,
		SendWorkers:       cfg.Schedule.SendWorkers,
		RunOnStart:        cfg.Schedule.RunOnStart,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Printf("[WARN] scheduler stop: %v", err)
		}
	}()

	srv := server.New(cfg, listener, repos.Plant, repos, revision, opts.Debug)

	if cfg.Telegram.Mode == config.ModeWebhook {
		if cfg.Telegram.WebhookURL != "" {
			if err := tg.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
				return fmt.Errorf("failed to set webhook: %w", err)
			}
			log.Printf("[INFO] webhook registered, updates expected on %s", cfg.Server.WebhookPath)
		}
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	// polling doesn't work while a webhook is set
	if err := tg.DeleteWebhook(); err != nil {
		log.Printf("[WARN] %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := listener.Run(gctx); err != nil {
			return fmt.Errorf("listener failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// loadConfig reads config file if set and applies command line overrides on top of it
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.New()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if opts.Token != "" {
		cfg.Telegram.Token = opts.Token
	}
	if opts.Store != "" {
		cfg.Store.URL = opts.Store
	}
	if opts.StoreTLS {
		cfg.Store.TLS = true
	}
	if opts.Greetings != "" {
		cfg.Reminders.GreetingsFile = opts.Greetings
	}
	if opts.Mode != "" {
		cfg.Telegram.Mode = opts.Mode
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Debug {
		cfg.Telegram.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
