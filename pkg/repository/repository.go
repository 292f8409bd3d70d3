package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/kv.go -pkg mocks -skip-ensure -fmt goimports . KV

// KV is a string key-value backend. Get returns ErrNotFound for a missing key.
// A single call is atomic for a single key, nothing more is expected.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Config represents store configuration
type Config struct {
	URL          string // redis://, rediss://, sqlite://path or memory://
	TLS          bool   // force TLS for redis even with redis:// scheme
	MaxOpenConns int    // redis pool size, ignored by other backends
}

// Repositories contains the store backend and the plant store on top of it
type Repositories struct {
	Plant *PlantStore
	KV    KV
	url   string
}

// NewRepositories connects to the backend selected by url scheme and creates the plant store
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.URL == "" {
		cfg.URL = "redis://localhost:6379/0"
	}

	kv, err := newKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lgr.Printf("[INFO] connected to store %s", maskURL(cfg.URL))
	return &Repositories{Plant: NewPlantStore(kv), KV: kv, url: cfg.URL}, nil
}

func newKV(ctx context.Context, cfg Config) (KV, error) {
	switch {
	case strings.HasPrefix(cfg.URL, "redis://"), strings.HasPrefix(cfg.URL, "rediss://"):
		kv, err := NewRedisKV(ctx, cfg.URL, cfg.TLS, cfg.MaxOpenConns)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		return kv, nil
	case strings.HasPrefix(cfg.URL, "sqlite://"):
		kv, err := NewSQLiteKV(ctx, strings.TrimPrefix(cfg.URL, "sqlite://"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return kv, nil
	case strings.HasPrefix(cfg.URL, "memory://"):
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unsupported store url %q", maskURL(cfg.URL))
	}
}

// Close closes the store connection
func (r *Repositories) Close() error {
	return r.KV.Close()
}

// Ping verifies the store connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.KV.Ping(ctx)
}

// DiagnosticStep is the outcome of one diagnostic operation
type DiagnosticStep struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Diagnostics is the report of a store self-check
type Diagnostics struct {
	Store    string           `json:"store"`
	OK       bool             `json:"ok"`
	Steps    []DiagnosticStep `json:"steps"`
	Duration string           `json:"duration"`
}

const diagKey = "plant_bot:diag:check"

// Diagnose runs ping, write, read back and delete of a scratch key against the store.
// It stops at the first failed step. The report never contains the store password.
func (r *Repositories) Diagnose(ctx context.Context) Diagnostics {
	st := time.Now()
	res := Diagnostics{Store: maskURL(r.url), OK: true}
	marker := fmt.Sprintf("check-%d", st.UnixNano())

	steps := []struct {
		name string
		fn   func() error
	}{
		{"ping", func() error { return r.KV.Ping(ctx) }},
		{"write", func() error { return r.KV.Set(ctx, diagKey, marker) }},
		{"read", func() error {
			val, err := r.KV.Get(ctx, diagKey)
			if err != nil {
				return err
			}
			if val != marker {
				return fmt.Errorf("read back %q, expected %q", val, marker)
			}
			return nil
		}},
		{"delete", func() error { return r.KV.Delete(ctx, diagKey) }},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			lgr.Printf("[WARN] store diagnostics, %s failed: %v", step.name, err)
			res.Steps = append(res.Steps, DiagnosticStep{Name: step.name, Error: err.Error()})
			res.OK = false
			break
		}
		res.Steps = append(res.Steps, DiagnosticStep{Name: step.name, OK: true})
	}
	res.Duration = time.Since(st).String()
	return res
}
