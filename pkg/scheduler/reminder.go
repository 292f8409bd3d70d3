package scheduler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/plantbot/pkg/domain"
)

const callToAction = "Use /watered when you've watered your plant! 🌿"

// ReminderResult is the outcome of a reminder run
type ReminderResult struct {
	Overdue int    // plants needing water
	Sent    int    // chats the reminder was delivered to
	Failed  int    // chats the send failed for
	Skipped string // reason nothing was sent, empty if broadcast happened
}

// Reminder finds overdue plants and broadcasts a reminder to all registered chats
type Reminder struct {
	store         Store
	sender        Sender
	greetingsFile string
	workers       int
	now           func() time.Time
	pick          func(n int) int
}

// NewReminder makes a reminder job
func NewReminder(store Store, sender Sender, greetingsFile string, workers int) *Reminder {
	if workers <= 0 {
		workers = 4
	}
	return &Reminder{store: store, sender: sender, greetingsFile: greetingsFile, workers: workers,
		now: time.Now, pick: rand.IntN}
}

// Run does a single reminder pass. Each chat gets one send attempt, failures are counted
// and logged, they don't stop sending to other chats.
func (r *Reminder) Run(ctx context.Context) ReminderResult {
	if !r.store.RemindersEnabled(ctx) {
		return r.skip("reminders disabled")
	}
	chats := r.store.RegisteredChats(ctx)
	if len(chats) == 0 {
		return r.skip("no registered chats")
	}

	lines := overdueLines(r.store.ListPlants(ctx), r.now().UTC())
	if len(lines) == 0 {
		return r.skip("no plants need water")
	}

	greetings := LoadGreetings(r.greetingsFile)
	msg := composeReminder(greetings[r.pick(len(greetings))], lines)

	var sent, failed atomic.Int32
	var g errgroup.Group
	g.SetLimit(r.workers)
	for _, chatID := range chats {
		g.Go(func() error {
			if err := r.sender.Send(ctx, chatID, msg); err != nil {
				lgr.Printf("[WARN] failed to send reminder to chat %d: %v", chatID, err)
				failed.Add(1)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	res := ReminderResult{Overdue: len(lines), Sent: int(sent.Load()), Failed: int(failed.Load())}
	lgr.Printf("[INFO] reminder for %d overdue plant(s) sent to %d chat(s), failed %d", res.Overdue, res.Sent, res.Failed)
	return res
}

func (r *Reminder) skip(reason string) ReminderResult {
	lgr.Printf("[DEBUG] reminder skipped, %s", reason)
	return ReminderResult{Skipped: reason}
}

// overdueLines makes a line per plant needing water
func overdueLines(plants []domain.OwnedPlant, now time.Time) []string {
	res := []string{}
	for _, op := range plants {
		p := op.Plant
		if !domain.NeedsWater(p.LastWatered, now) {
			continue
		}
		prefix := fmt.Sprintf("🌱 %s (%s)", p.Name, p.OwnerName)
		switch overdue := domain.DaysOverdue(p.LastWatered, now); {
		case !p.Watered():
			res = append(res, prefix+" - Never watered!")
		case overdue == 0:
			res = append(res, prefix+" - Due today!")
		default:
			res = append(res, fmt.Sprintf("%s - %d days overdue!", prefix, overdue))
		}
	}
	return res
}

func composeReminder(greeting string, lines []string) string {
	return greeting + "\n\n" + strings.Join(lines, "\n") + "\n\n" + callToAction
}
