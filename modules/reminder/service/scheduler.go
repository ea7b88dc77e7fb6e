package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"romantic-api/core/constants"
	"romantic-api/core/logger"
	eventEntity "romantic-api/modules/event/entity"
	"romantic-api/modules/reminder/channel"
	"romantic-api/modules/reminder/entity"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"
	"github.com/robfig/cron/v3"
)

// EventSource is the read side of the event store the scheduler scans.
type EventSource interface {
	ListReminderCandidates(ctx context.Context, windowStart, windowEnd time.Time) ([]eventEntity.CalendarEvent, error)
}

// LogStore records dispatch attempts and answers the dedup lookback.
type LogStore interface {
	Append(ctx context.Context, entry *entity.ReminderLog) error
	HasRecentEntry(ctx context.Context, eventID uuid.UUID, ch string, since time.Time) (bool, error)
}

// Scheduler scans upcoming events once per minute and dispatches at most one
// reminder per event and channel per 24-hour window. All dependencies are
// injected so tests can drive scans with a fake clock.
type Scheduler struct {
	events    EventSource
	log       LogStore
	channels  *channel.Registry
	clk       clock.Clock
	recipient string

	runner *cron.Cron

	// scanMu serializes scans; a tick that fires while a scan is still
	// running is skipped rather than queued.
	scanMu sync.Mutex
}

func NewScheduler(events EventSource, log LogStore, channels *channel.Registry, clk clock.Clock, recipient string) *Scheduler {
	if clk == nil {
		clk = clock.New()
	}
	return &Scheduler{
		events:    events,
		log:       log,
		channels:  channels,
		clk:       clk,
		recipient: recipient,
	}
}

// Start registers the per-minute scan job and begins ticking.
func (s *Scheduler) Start() error {
	if s.runner != nil {
		return fmt.Errorf("reminder scheduler already started")
	}

	runner := cron.New()
	if _, err := runner.AddFunc(constants.ReminderCronSpec, s.tick); err != nil {
		return fmt.Errorf("failed to schedule reminder scan: %w", err)
	}
	runner.Start()
	s.runner = runner

	logger.Info("ReminderScheduler:Started", "spec", constants.ReminderCronSpec, "recipient", s.recipient)
	return nil
}

// Stop halts the tick loop and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	if s.runner == nil {
		return
	}
	<-s.runner.Stop().Done()
	s.runner = nil
	logger.Info("ReminderScheduler:Stopped")
}

func (s *Scheduler) tick() {
	if !s.scanMu.TryLock() {
		logger.Warn("ReminderScheduler:Tick:PreviousScanStillRunning")
		return
	}
	defer s.scanMu.Unlock()

	if err := s.scanOnce(context.Background()); err != nil {
		logger.Error("ReminderScheduler:Tick:ScanAborted", "error", err)
	}
}

// ScanOnce runs a single scan with the reentrancy guard held. Exposed for
// callers that drive the scheduler manually.
func (s *Scheduler) ScanOnce(ctx context.Context) error {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()
	return s.scanOnce(ctx)
}

// scanOnce performs one scan tick: query the candidate window, apply the
// trigger and dedup checks per event, dispatch and log. A store error aborts
// only this tick; a channel error never aborts the scan.
func (s *Scheduler) scanOnce(ctx context.Context) error {
	now := s.clk.Now()

	candidates, err := s.events.ListReminderCandidates(ctx,
		now.Add(-constants.ReminderWindowBefore),
		now.Add(constants.ReminderWindowAfter))
	if err != nil {
		return fmt.Errorf("failed to query reminder candidates: %w", err)
	}

	for i := range candidates {
		s.dispatch(ctx, &candidates[i], now)
	}
	return nil
}

func (s *Scheduler) dispatch(ctx context.Context, event *eventEntity.CalendarEvent, now time.Time) {
	if !event.HasReminder() {
		return
	}

	start, err := time.Parse(time.RFC3339, event.Start)
	if err != nil {
		logger.Error("ReminderScheduler:Dispatch:BadStartTime", "event_id", event.ID, "start", event.Start)
		return
	}

	// Due iff reminderTime <= now <= start, both bounds inclusive.
	reminderTime := start.Add(-time.Duration(event.ReminderMinutes.Int64) * time.Minute)
	if now.Before(reminderTime) || now.After(start) {
		return
	}

	method := event.ReminderMethod.String

	recent, err := s.log.HasRecentEntry(ctx, event.ID, method, now.Add(-constants.ReminderDedupLookback))
	if err != nil {
		logger.Error("ReminderScheduler:Dispatch:DedupCheckFailed", "event_id", event.ID, "error", err)
		return
	}
	if recent {
		// Already attempted inside the dedup window: silent no-op, no log row.
		return
	}

	result := s.send(ctx, event, method, start)

	entry := &entity.ReminderLog{
		EventID: event.ID,
		Channel: method,
		SentAt:  now.UTC().Format(time.RFC3339),
		Status:  result.Status,
	}
	if result.Details != "" {
		details := result.Details
		entry.Details = &details
	}

	if err := s.log.Append(ctx, entry); err != nil {
		logger.Error("ReminderScheduler:Dispatch:AppendLogFailed", "event_id", event.ID, "error", err)
		return
	}

	logger.Info("ReminderScheduler:Dispatch:Logged",
		"event_id", event.ID, "channel", method, "status", result.Status)
}

func (s *Scheduler) send(ctx context.Context, event *eventEntity.CalendarEvent, method string, start time.Time) channel.Result {
	ch, ok := s.channels.Get(method)
	if !ok {
		return channel.Skipped("unsupported channel")
	}

	return ch.Send(ctx, channel.Message{
		To:       s.recipient,
		Subject:  fmt.Sprintf("Recordatorio romántico: %s", event.Title),
		HTMLBody: buildReminderBody(event, start),
	})
}

func buildReminderBody(event *eventEntity.CalendarEvent, start time.Time) string {
	return fmt.Sprintf(
		"<h2>%s</h2>\n<p>%s</p>\n<p><strong>Etiqueta:</strong> %s</p>\n<p>Empieza el %s</p>",
		event.Title, event.Notes, event.Tag, start.Format("02/01/2006 15:04"))
}
