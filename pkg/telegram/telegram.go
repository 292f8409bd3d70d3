// Package telegram connects the bot to Telegram Bot API: it converts updates to bot requests,
// runs the long-poll loop, sends messages and manages the webhook and the command menu.
package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/umputun/plantbot/pkg/bot"
)

//go:generate moq -out mocks/bot_api.go -pkg mocks -skip-ensure -fmt goimports . BotAPI

// BotAPI is the part of tgbotapi.BotAPI used here
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// NewBotAPI makes Telegram API client and checks the token. Empty endpoint means the official api,
// otherwise it is a format string like tgbotapi.APIEndpoint.
func NewBotAPI(token, endpoint string, pollTimeout int, debug bool) (*tgbotapi.BotAPI, error) {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	// route library debug output through the std logger, it masks secrets
	if err := tgbotapi.SetLogger(log.Default()); err != nil {
		return nil, fmt.Errorf("set telegram logger: %w", err)
	}
	// long poll requests are held by telegram up to poll timeout
	client := &http.Client{Timeout: time.Duration(pollTimeout)*time.Second + 10*time.Second}
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram api: %w", err)
	}
	api.Debug = debug
	return api, nil
}

// Client sends messages and manages bot settings
type Client struct {
	api BotAPI
}

// NewClient makes a client on top of api
func NewClient(api BotAPI) *Client {
	return &Client{api: api}
}

// Send sends a plain text message to the chat, single attempt
func (c *Client) Send(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return nil
}

// RegisterCommands sets the bot command menu
func (c *Client) RegisterCommands(cmds []bot.Command) error {
	botCmds := make([]tgbotapi.BotCommand, 0, len(cmds))
	for _, cmd := range cmds {
		botCmds = append(botCmds, tgbotapi.BotCommand{Command: cmd.Name, Description: cmd.Description})
	}
	if _, err := c.api.Request(tgbotapi.NewSetMyCommands(botCmds...)); err != nil {
		return fmt.Errorf("set commands: %w", err)
	}
	return nil
}

// SetWebhook tells telegram to push updates to url
func (c *Client) SetWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("make webhook config: %w", err)
	}
	if _, err := c.api.Request(wh); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	return nil
}

// DeleteWebhook removes the webhook, required before long polling. Pending updates are kept.
func (c *Client) DeleteWebhook() error {
	if _, err := c.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}
