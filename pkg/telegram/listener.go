package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/umputun/plantbot/pkg/bot"
)

// Handler handles a bot request and returns reply text, empty for no reply
type Handler interface {
	Handle(ctx context.Context, req bot.Request) string
}

// Listener gets updates from telegram and replies to commands
type Listener struct {
	client      *Client
	handler     Handler
	botName     string
	pollTimeout int
}

// NewListener makes a listener. botName is the bot username, commands mentioning another bot
// are ignored. pollTimeout is long-poll timeout in seconds.
func NewListener(client *Client, handler Handler, botName string, pollTimeout int) *Listener {
	return &Listener{client: client, handler: handler, botName: botName, pollTimeout: pollTimeout}
}

// Run long-polls updates until ctx is canceled. Each update is handled in its own goroutine,
// so a stuck store or send call holds up only that command.
func (l *Listener) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = l.pollTimeout
	updates := l.client.api.GetUpdatesChan(u)
	lgr.Printf("[INFO] start polling telegram updates")

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		select {
		case <-ctx.Done():
			l.client.api.StopReceivingUpdates()
			lgr.Printf("[INFO] polling stopped")
			return nil
		case upd, ok := <-updates:
			if !ok {
				return errors.New("updates channel closed")
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				l.HandleUpdate(ctx, upd)
			}()
		}
	}
}

// HandleUpdate handles a single update, delivered by polling or by webhook.
// Updates other than command messages are ignored.
func (l *Listener) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	req, ok := toRequest(upd, l.botName)
	if !ok {
		return
	}
	reply := l.handler.Handle(ctx, req)
	if reply == "" {
		return
	}
	if err := l.client.Send(ctx, req.ChatID, reply); err != nil {
		lgr.Printf("[WARN] failed to reply to /%s in chat %d: %v", req.Command, req.ChatID, err)
	}
}

// toRequest converts a command message to a bot request. A command like /start@other_bot
// is addressed to another bot in the same group and skipped.
func toRequest(upd tgbotapi.Update, botName string) (bot.Request, bool) {
	msg := upd.Message
	if msg == nil || msg.Chat == nil || msg.From == nil || !msg.IsCommand() {
		return bot.Request{}, false
	}
	if _, mention, found := strings.Cut(msg.CommandWithAt(), "@"); found && botName != "" &&
		!strings.EqualFold(mention, botName) {
		return bot.Request{}, false
	}
	return bot.Request{
		ChatID:    msg.Chat.ID,
		ChatType:  msg.Chat.Type,
		UserID:    strconv.FormatInt(msg.From.ID, 10),
		FirstName: msg.From.FirstName,
		UserName:  msg.From.UserName,
		Command:   msg.Command(),
		Args:      strings.TrimSpace(msg.CommandArguments()),
	}, true
}
