package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startUpdate = `{"update_id":%d,"message":{"message_id":1,"date":1757000000,"text":"/start",` +
	`"chat":{"id":555,"type":"private"},"from":{"id":555,"is_bot":false,"first_name":"Alice"},` +
	`"entities":[{"type":"bot_command","offset":0,"length":6}]}}`

// fakeTelegram emulates Bot API methods used by the bot
type fakeTelegram struct {
	*httptest.Server
	mu      sync.Mutex
	calls   []string
	sent    map[string]string // chat_id -> text
	pending []string          // updates returned by the first getUpdates
}

func newFakeTelegram(t *testing.T, pending ...string) *fakeTelegram {
	t.Helper()
	f := &fakeTelegram{sent: map[string]string{}, pending: pending}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeTelegram) handle(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	method, ok := strings.CutPrefix(r.URL.Path, "/botTEST-TOKEN/")
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
		return
	}
	f.mu.Lock()
	f.calls = append(f.calls, method)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch method {
	case "getMe":
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":7,"is_bot":true,"first_name":"Plant","username":"plant_bot"}}`))
	case "setMyCommands", "deleteWebhook", "setWebhook":
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	case "sendMessage":
		f.mu.Lock()
		f.sent[r.Form.Get("chat_id")] = r.Form.Get("text")
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":2,"date":1757000000,"chat":{"id":555,"type":"private"}}}`))
	case "getUpdates":
		f.mu.Lock()
		pending := f.pending
		f.pending = nil
		f.mu.Unlock()
		if len(pending) == 0 {
			select {
			case <-r.Context().Done():
			case <-time.After(100 * time.Millisecond):
			}
		}
		_, _ = fmt.Fprintf(w, `{"ok":true,"result":[%s]}`, strings.Join(pending, ","))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
	}
}

func (f *fakeTelegram) sentTo(chatID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[chatID]
}

func (f *fakeTelegram) called(method string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == method {
			return true
		}
	}
	return false
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: writeFile(t, "invalid.yml", "invalid: yaml: content: [")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_MissingToken(t *testing.T) {
	err := run(context.Background(), Opts{Store: "memory://"})
	require.EqualError(t, err, "invalid config: telegram.token is required")
}

func TestRun_BadStore(t *testing.T) {
	err := run(context.Background(), Opts{Token: "TEST-TOKEN", Store: "mongodb://localhost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open store")
}

func TestRun_BadToken(t *testing.T) {
	tg := newFakeTelegram(t)
	cfg := writeFile(t, "config.yml", fmt.Sprintf("telegram:\n  api_endpoint: %s/nope%%s/%%s\n", tg.URL))

	err := run(context.Background(), Opts{Config: cfg, Token: "TEST-TOKEN", Store: "memory://"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to telegram")
}

func TestRun_Webhook(t *testing.T) {
	tg := newFakeTelegram(t)
	port := freePort(t)
	cfg := writeFile(t, "config.yml", fmt.Sprintf(`
server:
  listen: 127.0.0.1:%d
  webhook_path: /tg-hook
telegram:
  mode: webhook
  api_endpoint: %s/bot%%s/%%s
store:
  url: memory://
`, port, tg.URL))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: cfg, Token: "TEST-TOKEN"}) }()

	hookURL := fmt.Sprintf("http://127.0.0.1:%d/tg-hook", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(hookURL)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Post(hookURL, "application/json", strings.NewReader(fmt.Sprintf(startUpdate, 1)))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// handled synchronously, the reply is out before the response
	assert.Contains(t, tg.sentTo("555"), "Welcome Alice! Your personal Plant Bot!")
	assert.Contains(t, tg.sentTo("555"), "Your plant: Alice's Plant")
	assert.True(t, tg.called("setMyCommands"))
	assert.False(t, tg.called("setWebhook"), "no webhook url configured")
	assert.False(t, tg.called("getUpdates"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestRun_Polling(t *testing.T) {
	tg := newFakeTelegram(t, fmt.Sprintf(startUpdate, 1))
	opts := Opts{
		Token:  "TEST-TOKEN",
		Store:  "memory://",
		Mode:   "polling",
		Listen: fmt.Sprintf("127.0.0.1:%d", freePort(t)),
		Config: writeFile(t, "config.yml", fmt.Sprintf("telegram:\n  poll_timeout: 1\n  api_endpoint: %s/bot%%s/%%s\n", tg.URL)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, opts) }()

	require.Eventually(t, func() bool { return tg.sentTo("555") != "" }, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, tg.sentTo("555"), "Welcome Alice!")
	assert.True(t, tg.called("deleteWebhook"))
	assert.True(t, tg.called("setMyCommands"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with overrides", func(t *testing.T) {
		cfg, err := loadConfig(Opts{Token: "1:x", Store: "sqlite:///tmp/plants.db", StoreTLS: true,
			Greetings: "/tmp/g.txt", Mode: "webhook", Listen: ":9999", Debug: true})
		require.NoError(t, err)
		assert.Equal(t, "1:x", cfg.Telegram.Token)
		assert.Equal(t, "sqlite:///tmp/plants.db", cfg.Store.URL)
		assert.True(t, cfg.Store.TLS)
		assert.Equal(t, "/tmp/g.txt", cfg.Reminders.GreetingsFile)
		assert.Equal(t, "webhook", cfg.Telegram.Mode)
		assert.Equal(t, ":9999", cfg.Server.Listen)
		assert.True(t, cfg.Telegram.Debug)
		assert.Equal(t, 12*time.Hour, cfg.Schedule.ReminderInterval)
	})

	t.Run("file values kept unless overridden", func(t *testing.T) {
		path := writeFile(t, "config.yml", "telegram:\n  token: from-file\nstore:\n  url: memory://\nserver:\n  listen: :7000\n")
		cfg, err := loadConfig(Opts{Config: path, Listen: ":7001"})
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Telegram.Token)
		assert.Equal(t, "memory://", cfg.Store.URL)
		assert.Equal(t, ":7001", cfg.Server.Listen)
	})

	t.Run("bad mode override", func(t *testing.T) {
		_, err := loadConfig(Opts{Token: "1:x", Mode: "carrier-pigeon"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}
