package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// delivery modes for telegram updates
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Telegram  TelegramConfig  `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot configuration"`
	Store     StoreConfig     `yaml:"store" json:"store" jsonschema:"description=Key-value store configuration"`
	Schedule  ScheduleConfig  `yaml:"schedule" json:"schedule" jsonschema:"description=Periodic jobs configuration"`
	Reminders RemindersConfig `yaml:"reminders" json:"reminders" jsonschema:"description=Reminder messages configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	WebhookPath string        `yaml:"webhook_path" json:"webhook_path" jsonschema:"default=/webhook,description=Path telegram posts updates to"`
}

// TelegramConfig holds bot settings
type TelegramConfig struct {
	Token       string `yaml:"token" json:"token" jsonschema:"description=Bot token (can use environment variable)"`
	Mode        string `yaml:"mode" json:"mode" jsonschema:"default=polling,enum=polling,enum=webhook,description=How updates are delivered"`
	WebhookURL  string `yaml:"webhook_url" json:"webhook_url" jsonschema:"description=Public webhook url registered on start in webhook mode"`
	APIEndpoint string `yaml:"api_endpoint" json:"api_endpoint" jsonschema:"description=Custom Bot API endpoint format string"`
	PollTimeout int    `yaml:"poll_timeout" json:"poll_timeout" jsonschema:"default=60,minimum=0,description=Long poll timeout in seconds"`
	Debug       bool   `yaml:"debug" json:"debug" jsonschema:"default=false,description=Log Bot API requests"`
}

// StoreConfig holds store settings
type StoreConfig struct {
	URL          string `yaml:"url" json:"url" jsonschema:"default=redis://localhost:6379/0,description=Store url: redis:// rediss:// sqlite:// or memory://"`
	TLS          bool   `yaml:"tls" json:"tls" jsonschema:"default=false,description=Force TLS for redis"`
	MaxOpenConns int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Redis connection pool size"`
}

// ScheduleConfig holds periodic jobs settings
type ScheduleConfig struct {
	ReminderInterval  time.Duration `yaml:"reminder_interval" json:"reminder_interval" jsonschema:"default=12h,description=How often to check for plants needing water"`
	RetentionInterval time.Duration `yaml:"retention_interval" json:"retention_interval" jsonschema:"default=24h,description=How often to remove stale plants"`
	RunOnStart        bool          `yaml:"run_on_start" json:"run_on_start" jsonschema:"default=false,description=Run both jobs right after start"`
	SendWorkers       int           `yaml:"send_workers" json:"send_workers" jsonschema:"default=4,minimum=1,description=Concurrent reminder sends"`
}

// RemindersConfig holds reminder message settings
type RemindersConfig struct {
	GreetingsFile string `yaml:"greetings_file" json:"greetings_file" jsonschema:"description=File with reminder greetings, one per line"`
}

// New returns configuration with all defaults set
func New() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.WebhookPath == "" {
		cfg.Server.WebhookPath = "/webhook"
	}

	if cfg.Telegram.Mode == "" {
		cfg.Telegram.Mode = ModePolling
	}
	if cfg.Telegram.PollTimeout == 0 {
		cfg.Telegram.PollTimeout = 60
	}

	if cfg.Store.URL == "" {
		cfg.Store.URL = "redis://localhost:6379/0"
	}
	if cfg.Store.MaxOpenConns == 0 {
		cfg.Store.MaxOpenConns = 10
	}

	if cfg.Schedule.ReminderInterval == 0 {
		cfg.Schedule.ReminderInterval = 12 * time.Hour
	}
	if cfg.Schedule.RetentionInterval == 0 {
		cfg.Schedule.RetentionInterval = 24 * time.Hour
	}
	if cfg.Schedule.SendWorkers == 0 {
		cfg.Schedule.SendWorkers = 4
	}
}

// Validate checks the final configuration, after command line overrides, including the bot token
func (c *Config) Validate() error {
	if err := validate(c); err != nil {
		return err
	}
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return errors.New("telegram.token is required")
	}
	return nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return errors.New("server timeout must be at least 1 second")
	}
	if !strings.HasPrefix(cfg.Server.WebhookPath, "/") || strings.ContainsAny(cfg.Server.WebhookPath, " {}") {
		return fmt.Errorf("server.webhook_path %q must be a plain absolute path", cfg.Server.WebhookPath)
	}

	switch cfg.Telegram.Mode {
	case ModePolling, ModeWebhook:
	default:
		return fmt.Errorf("telegram.mode must be %s or %s, got %q", ModePolling, ModeWebhook, cfg.Telegram.Mode)
	}
	if cfg.Telegram.PollTimeout < 0 {
		return errors.New("telegram.poll_timeout must be non-negative")
	}
	if cfg.Telegram.WebhookURL != "" && !strings.HasPrefix(cfg.Telegram.WebhookURL, "https://") {
		return errors.New("telegram.webhook_url must be https")
	}

	if cfg.Store.URL == "" {
		return errors.New("store.url is required")
	}

	if cfg.Schedule.ReminderInterval < time.Minute {
		return errors.New("schedule.reminder_interval must be at least 1 minute")
	}
	if cfg.Schedule.RetentionInterval < time.Minute {
		return errors.New("schedule.retention_interval must be at least 1 minute")
	}
	if cfg.Schedule.SendWorkers < 1 {
		return errors.New("schedule.send_workers must be at least 1")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetWebhookPath returns the path telegram updates are posted to
func (c *Config) GetWebhookPath() string {
	return c.Server.WebhookPath
}
