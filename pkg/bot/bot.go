package bot

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/plantbot/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

const maxPlantNameLen = 64

// Store is the plant store used by command handlers, fail-soft by contract
type Store interface {
	LookupPlant(ctx context.Context, ownerID string) (domain.Plant, domain.Lookup)
	SavePlant(ctx context.Context, ownerID string, p domain.Plant) bool
	ListPlants(ctx context.Context) []domain.OwnedPlant
	AddRegisteredChat(ctx context.Context, chatID int64) bool
	SetRemindersEnabled(ctx context.Context, enabled bool) bool
}

// Request is a single command received from a chat, independent of the transport
type Request struct {
	ChatID    int64
	ChatType  string // private, group, supergroup or channel
	UserID    string
	FirstName string
	UserName  string
	Command   string // without slash and bot mention
	Args      string // raw text after the command
}

func (r Request) isGroup() bool {
	return r.ChatType == "group" || r.ChatType == "supergroup"
}

// displayName returns first name, user name or fallback, whichever is set first
func (r Request) displayName(fallback string) string {
	if name := strings.TrimSpace(r.FirstName); name != "" {
		return name
	}
	if name := strings.TrimSpace(r.UserName); name != "" {
		return name
	}
	return fallback
}

// Params for the bot
type Params struct {
	Store    Store
	Now      func() time.Time // defaults to time.Now
	Location *time.Location   // for dates in replies, defaults to time.Local
}

// Bot handles chat commands. It keeps no state between calls, everything goes through the store.
type Bot struct {
	store  Store
	now    func() time.Time
	loc    *time.Location
	policy *bluemonday.Policy
}

// New makes a bot with given params
func New(p Params) *Bot {
	res := &Bot{store: p.Store, now: p.Now, loc: p.Location, policy: bluemonday.StrictPolicy()}
	if res.now == nil {
		res.now = time.Now
	}
	if res.loc == nil {
		res.loc = time.Local
	}
	return res
}

// Handle runs the command and returns the reply. Empty reply means nothing to send back,
// this is the case for unknown commands.
func (b *Bot) Handle(ctx context.Context, req Request) string {
	now := b.now().UTC()
	lgr.Printf("[DEBUG] command /%s from user %s in chat %d", req.Command, req.UserID, req.ChatID)

	switch strings.ToLower(req.Command) {
	case cmdStart:
		return b.start(ctx, req, now)
	case cmdWatered:
		return b.watered(ctx, req, now)
	case cmdMyStatus:
		return b.myStatus(ctx, req, now)
	case cmdStatus:
		return b.allStatus(ctx, now)
	case cmdAllPlants:
		return b.allPlants(ctx)
	case cmdSetPlant:
		return b.setPlant(ctx, req, now)
	case cmdEnable:
		b.store.SetRemindersEnabled(ctx, true)
		lgr.Printf("[INFO] reminders enabled by user %s", req.UserID)
		return remindersOnText
	case cmdDisable:
		b.store.SetRemindersEnabled(ctx, false)
		lgr.Printf("[INFO] reminders disabled by user %s", req.UserID)
		return remindersOffText
	case cmdHelp:
		if req.isGroup() {
			return fmt.Sprintf(helpGroupFmt, domain.WateringIntervalDays, domain.RetentionDays)
		}
		return fmt.Sprintf(helpPrivateFmt, domain.WateringIntervalDays, domain.RetentionDays)
	default:
		return ""
	}
}

// start registers the chat and makes sure the user has a plant. Existing plant keeps its
// watering history, only the owner name is refreshed.
func (b *Bot) start(ctx context.Context, req Request, now time.Time) string {
	name := req.displayName("Unknown")
	b.store.AddRegisteredChat(ctx, req.ChatID)

	plant, res := b.store.LookupPlant(ctx, req.UserID)
	switch res {
	case domain.LookupFailed:
		return storeBusyText
	case domain.LookupAbsent:
		plant = domain.NewPlant(name, now)
		lgr.Printf("[INFO] new plant %q for user %s", plant.Name, req.UserID)
	}
	plant.OwnerName = name
	b.store.SavePlant(ctx, req.UserID, plant)

	if req.isGroup() {
		return fmt.Sprintf(welcomeGroupFmt, name, plant.Name, domain.RetentionDays)
	}
	return fmt.Sprintf(welcomePrivateFmt, name, plant.Name, domain.RetentionDays)
}

func (b *Bot) watered(ctx context.Context, req Request, now time.Time) string {
	name := req.displayName("Someone")
	plant, res := b.store.LookupPlant(ctx, req.UserID)
	switch res {
	case domain.LookupFailed:
		return storeBusyText
	case domain.LookupAbsent:
		plant = domain.NewPlant(name, now)
	}
	plant.OwnerName = name
	plant.MarkWatered(name, now)
	b.store.SavePlant(ctx, req.UserID, plant)

	date := now.In(b.loc).Format("2006-01-02 15:04")
	if req.isGroup() {
		return fmt.Sprintf(wateredGroupFmt, name, plant.Name, date, domain.WateringIntervalDays)
	}
	return fmt.Sprintf(wateredPrivateFmt, plant.Name, date, domain.WateringIntervalDays)
}

func (b *Bot) myStatus(ctx context.Context, req Request, now time.Time) string {
	plant, res := b.store.LookupPlant(ctx, req.UserID)
	switch res {
	case domain.LookupFailed:
		return storeBusyText
	case domain.LookupAbsent:
		return notRegisteredText
	}
	b.refreshOwner(ctx, req, &plant)

	if !plant.Watered() {
		return fmt.Sprintf(neverWateredFmt, plant.Name)
	}
	return renderMyStatus(plant, domain.Status(plant, now), b.loc)
}

func (b *Bot) allStatus(ctx context.Context, now time.Time) string {
	plants := b.store.ListPlants(ctx)
	if len(plants) == 0 {
		return noPlantsStatus
	}
	return renderAllStatus(plants, now, b.loc)
}

func (b *Bot) allPlants(ctx context.Context) string {
	plants := b.store.ListPlants(ctx)
	if len(plants) == 0 {
		return noPlantsList
	}
	return renderPlantList(plants)
}

// setPlant renames the plant, an empty name after cleanup shows the current one instead
func (b *Bot) setPlant(ctx context.Context, req Request, now time.Time) string {
	name := req.displayName("Unknown")
	plant, res := b.store.LookupPlant(ctx, req.UserID)
	switch res {
	case domain.LookupFailed:
		return storeBusyText
	case domain.LookupAbsent:
		plant = domain.NewPlant(name, now)
		b.store.SavePlant(ctx, req.UserID, plant)
	case domain.LookupFound:
		b.refreshOwner(ctx, req, &plant)
	}

	newName := b.cleanPlantName(req.Args)
	if newName == "" {
		return fmt.Sprintf(currentNameFmt, plant.Name)
	}

	plant.Name = newName
	b.store.SavePlant(ctx, req.UserID, plant)
	lgr.Printf("[INFO] user %s renamed plant to %q", req.UserID, newName)
	return fmt.Sprintf(renamedFmt, newName)
}

// refreshOwner saves the current display name of the owner if it changed
func (b *Bot) refreshOwner(ctx context.Context, req Request, plant *domain.Plant) {
	name := req.displayName("")
	if name == "" || name == plant.OwnerName {
		return
	}
	plant.OwnerName = name
	b.store.SavePlant(ctx, req.UserID, *plant)
}

// cleanPlantName strips markup, collapses whitespace and limits the length
func (b *Bot) cleanPlantName(raw string) string {
	stripped := html.UnescapeString(b.policy.Sanitize(raw))
	res := strings.Join(strings.Fields(stripped), " ")
	if utf8.RuneCountInString(res) > maxPlantNameLen {
		res = strings.TrimSpace(string([]rune(res)[:maxPlantNameLen]))
	}
	return res
}
