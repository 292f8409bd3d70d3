package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/plantbot/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// Store is the plant store used by periodic jobs, fail-soft by contract
type Store interface {
	ListPlants(ctx context.Context) []domain.OwnedPlant
	DeletePlant(ctx context.Context, ownerID string) bool
	RegisteredChats(ctx context.Context) []int64
	RemindersEnabled(ctx context.Context) bool
}

// Sender delivers a text message to a chat
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// Params for the scheduler
type Params struct {
	Store             Store
	Sender            Sender
	GreetingsFile     string
	ReminderInterval  time.Duration
	RetentionInterval time.Duration
	SendWorkers       int
	RunOnStart        bool
}

// Scheduler runs reminder and retention jobs periodically, one gocron duration job each.
// A job never overlaps with its own previous run.
type Scheduler struct {
	cron              gocron.Scheduler
	reminder          *Reminder
	retention         *Retention
	reminderInterval  time.Duration
	retentionInterval time.Duration
	runOnStart        bool

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(p Params) (*Scheduler, error) {
	if p.ReminderInterval <= 0 {
		p.ReminderInterval = 12 * time.Hour
	}
	if p.RetentionInterval <= 0 {
		p.RetentionInterval = 24 * time.Hour
	}

	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Scheduler{
		cron:              cron,
		reminder:          NewReminder(p.Store, p.Sender, p.GreetingsFile, p.SendWorkers),
		retention:         NewRetention(p.Store),
		reminderInterval:  p.ReminderInterval,
		retentionInterval: p.RetentionInterval,
		runOnStart:        p.RunOnStart,
	}, nil
}

// Start registers jobs and begins the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	if err := s.addJob(ctx, "reminder", s.reminderInterval, func(ctx context.Context) { s.RemindNow(ctx) }); err != nil {
		return err
	}
	if err := s.addJob(ctx, "retention", s.retentionInterval, func(ctx context.Context) { s.CleanupNow(ctx) }); err != nil {
		return err
	}

	s.cron.Start()
	lgr.Printf("[INFO] scheduler started with reminder interval %v, retention interval %v, run on start %v",
		s.reminderInterval, s.retentionInterval, s.runOnStart)
	return nil
}

func (s *Scheduler) addJob(ctx context.Context, name string, interval time.Duration, fn func(ctx context.Context)) error {
	opts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if s.runOnStart {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	task := gocron.NewTask(func() {
		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	})
	if _, err := s.cron.NewJob(gocron.DurationJob(interval), task, opts...); err != nil {
		return fmt.Errorf("add %s job: %w", name, err)
	}
	return nil
}

// Stop gracefully stops the scheduler, waits for running jobs
func (s *Scheduler) Stop() error {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	if err := s.cron.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	lgr.Printf("[INFO] scheduler stopped")
	return nil
}

// RemindNow runs the reminder job right away
func (s *Scheduler) RemindNow(ctx context.Context) ReminderResult {
	return s.reminder.Run(ctx)
}

// CleanupNow runs the retention job right away
func (s *Scheduler) CleanupNow(ctx context.Context) RetentionResult {
	return s.retention.Run(ctx)
}
