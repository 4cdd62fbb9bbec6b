package cron

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/robfig/cron/v3"

	"github.com/in-nis/studytrack/internal/metrics"
	"github.com/in-nis/studytrack/internal/models"
)

const DefaultInterval = 60 * time.Second

var ErrPollerRunning = errors.New("reminder poller already started")

// ReminderStore is the slice of the data layer the poller needs.
type ReminderStore interface {
	CompleteDueReminders(ctx context.Context, now time.Time, visit func(models.Reminder)) (int, error)
}

// ReminderPoller periodically marks due reminders as done. It is owned by
// the process entry point and started at most once.
type ReminderPoller struct {
	store    ReminderStore
	log      logr.Logger
	now      func() time.Time
	interval time.Duration

	mu      sync.Mutex
	sched   *cron.Cron
	started bool
}

type Option func(*ReminderPoller)

func WithInterval(d time.Duration) Option {
	return func(p *ReminderPoller) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *ReminderPoller) { p.now = now }
}

func NewReminderPoller(store ReminderStore, log logr.Logger, opts ...Option) *ReminderPoller {
	p := &ReminderPoller{
		store:    store,
		log:      log.WithName("reminders"),
		now:      time.Now,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tick runs one pass: every reminder due at the clock's now and not yet
// done is logged and marked done. It returns how many were marked.
func (p *ReminderPoller) Tick(ctx context.Context) (int, error) {
	now := p.now().UTC()
	fired, err := p.store.CompleteDueReminders(ctx, now, func(r models.Reminder) {
		p.log.Info("Reminder due", "reminder_id", r.ID, "title", r.Title, "remind_time", r.RemindTime)
	})
	metrics.RecordReminderTick(fired, err)
	if err != nil {
		return 0, fmt.Errorf("reminder tick: %w", err)
	}
	return fired, nil
}

// Start schedules Tick every interval. Overlapping ticks are skipped.
func (p *ReminderPoller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return ErrPollerRunning
	}

	c := cron.New(
		cron.WithLogger(p.log),
		cron.WithChain(cron.Recover(p.log), cron.SkipIfStillRunning(p.log)),
	)
	c.Schedule(cron.Every(p.interval), cron.FuncJob(func() {
		fired, err := p.Tick(context.Background())
		if err != nil {
			p.log.Error(err, "Failed to process reminders")
			return
		}
		if fired > 0 {
			p.log.Info("Processed reminders", "count", fired)
		}
	}))
	c.Start()

	p.sched = c
	p.started = true
	p.log.Info("Reminder poller started", "interval", p.interval.String())
	return nil
}

// Stop halts scheduling and waits for a running tick to finish or ctx to end.
func (p *ReminderPoller) Stop(ctx context.Context) error {
	p.mu.Lock()
	c := p.sched
	p.sched = nil
	p.mu.Unlock()
	if c == nil {
		return nil
	}

	select {
	case <-c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Running reports whether Start has been called and Stop has not.
func (p *ReminderPoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched != nil
}
