package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"focusly/internal/modules/focus/domain"
	focusout "focusly/internal/modules/focus/port/out"
	apperrors "focusly/internal/platform/errors"
	"focusly/internal/platform/clock"
)

const (
	unknownProcess = "unknown"
	// reportDebounce drops reports arriving this close to the previous one.
	reportDebounce      = time.Second
	topAppsLimit        = 8
	defaultPollInterval = 2 * time.Second
)

type Settings struct {
	Window               time.Duration
	DistractorThreshold  int
	NotificationCooldown time.Duration
	Strategy             domain.Strategy
	ProductiveKeywords   []string
	DistractorKeywords   []string
	TimerMinutes         int
}

// TrackerService owns the scoring timeline. Every ledger, gate and timer
// mutation happens under mu; persistence runs after it is released.
type TrackerService struct {
	mu         sync.Mutex
	clock      clock.Clock
	logger     *slog.Logger
	sink       focusout.SessionSink
	probe      focusout.WindowProbe
	listeners  []focusout.Listener
	classifier *domain.Classifier
	ledger     *domain.Ledger
	gate       *domain.NotificationGate
	pomodoro   *domain.Pomodoro
	strategy   domain.Strategy

	tracking     bool
	sessionStart time.Time
	perApp       map[domain.AppKey]int
	score        int

	hasReport    bool
	lastProcess  string
	lastTitle    string
	lastReportAt time.Time
}

// Snapshot is a consistent view of the tracker for presentation.
type Snapshot struct {
	TimerText      string
	Remaining      int
	Progress       int
	Running        bool
	Minutes        int
	Score          int
	Strategy       domain.Strategy
	Process        string
	Title          string
	Classification domain.Classification
	SessionStarted time.Time
	TopApps        []domain.AppUsage
	TopClasses     []domain.Classification
}

// Outcome is the result of closing a session. Record is only meaningful when
// Saved is true.
type Outcome struct {
	Saved     bool
	SessionID string
	Record    domain.SessionRecord
}

func NewTrackerService(clk clock.Clock, logger *slog.Logger, sink focusout.SessionSink, probe focusout.WindowProbe, settings Settings, listeners ...focusout.Listener) *TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := settings.DistractorThreshold
	if threshold <= 0 {
		threshold = domain.DefaultDistractorThresholdSeconds
	}
	classifier := domain.NewClassifier(settings.ProductiveKeywords, settings.DistractorKeywords, threshold)
	strategy := settings.Strategy
	if strategy == "" {
		strategy = domain.StrategyProgressive
	}
	return &TrackerService{
		clock:      clk,
		logger:     logger,
		sink:       sink,
		probe:      probe,
		listeners:  listeners,
		classifier: classifier,
		ledger:     domain.NewLedger(classifier, settings.Window),
		gate:       domain.NewNotificationGate(settings.NotificationCooldown),
		pomodoro:   domain.NewPomodoro(settings.TimerMinutes),
		strategy:   strategy,
		perApp:     map[domain.AppKey]int{},
		score:      domain.MaxScore,
	}
}

// AddListener registers l for subsequent events.
func (s *TrackerService) AddListener(l focusout.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *TrackerService) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pomodoro.Running() {
		return apperrors.ErrActiveSessionExists
	}
	now := s.clock.Now()
	s.pomodoro.Start(now)
	s.tracking = true
	s.hasReport = false
	if s.sessionStart.IsZero() {
		s.sessionStart = now
	}
	s.logger.Info("session started", slog.String("event", "session_start"), slog.Int("minutes", s.pomodoro.Minutes()))
	return nil
}

func (s *TrackerService) Pause(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pomodoro.Running() {
		return apperrors.ErrNoActiveSession
	}
	s.pomodoro.Pause()
	s.flushLocked(s.clock.Now())
	s.tracking = false
	s.logger.Info("session paused", slog.String("event", "session_pause"), slog.String("remaining", s.pomodoro.Format()))
	return nil
}

// Reset persists the current session when it ran long enough and clears all
// activity so the next session starts from an empty ledger.
func (s *TrackerService) Reset(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	now := s.clock.Now()
	record, ok := s.closeLocked(now, domain.EndReset)
	s.pomodoro.Reset()
	s.ledger.Clear()
	s.gate.Reset()
	s.score = domain.MaxScore
	s.logger.Info("session reset", slog.String("event", "session_reset"))
	s.mu.Unlock()
	return s.persist(ctx, record, ok)
}

// Stop flushes the open interval and persists the session.
func (s *TrackerService) Stop(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	now := s.clock.Now()
	s.pomodoro.Pause()
	record, ok := s.closeLocked(now, domain.EndStopped)
	s.mu.Unlock()
	return s.persist(ctx, record, ok)
}

// ReportActive ingests one observation of the foreground window. The time
// since the previous report is credited to the previous window in whole
// seconds; the sub-second remainder carries into the next report.
func (s *TrackerService) ReportActive(_ context.Context, process, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tracking {
		return
	}
	now := s.clock.Now()
	reportAt := now
	if s.hasReport {
		if gap := now.Sub(s.lastReportAt); gap > reportDebounce {
			credited := gap.Truncate(time.Second)
			s.creditLocked(s.lastProcess, s.lastTitle, int(credited/time.Second), now)
			reportAt = s.lastReportAt.Add(credited)
		}
	}
	s.hasReport = true
	s.lastProcess = process
	s.lastTitle = title
	s.lastReportAt = reportAt
}

// Tick advances the timer by one second and re-scores. When the timer runs
// out the session is finished and persisted.
func (s *TrackerService) Tick(ctx context.Context) (int, bool, Outcome, error) {
	s.mu.Lock()
	now := s.clock.Now()
	wasRunning := s.pomodoro.Running()
	finished := s.pomodoro.Tick()
	score := s.scoreLocked(now)
	if wasRunning {
		s.emitScoreLocked(score)
	}
	var (
		record domain.SessionRecord
		ok     bool
	)
	if finished {
		record, ok = s.closeLocked(now, domain.EndFinished)
		s.pomodoro.Reset()
		s.gate.Reset()
		s.logger.Info("timer finished", slog.String("event", "timer_finished"), slog.Int("score", score))
	}
	s.mu.Unlock()
	if !finished {
		return score, false, Outcome{}, nil
	}
	outcome, err := s.persist(ctx, record, ok)
	return score, true, outcome, err
}

func (s *TrackerService) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = s.scoreLocked(s.clock.Now())
	return s.score
}

func (s *TrackerService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	s.score = s.scoreLocked(now)
	apps := domain.RankApps(s.perApp, 0)
	if len(apps) > topAppsLimit {
		apps = apps[:topAppsLimit]
	}
	classes := make([]domain.Classification, 0, len(apps))
	for _, app := range apps {
		classes = append(classes, s.classifier.ClassifyByName(app.Process, app.Title))
	}
	snap := Snapshot{
		TimerText:      s.pomodoro.Format(),
		Remaining:      s.pomodoro.Remaining(),
		Progress:       s.pomodoro.Progress(),
		Running:        s.pomodoro.Running(),
		Minutes:        s.pomodoro.Minutes(),
		Score:          s.score,
		Strategy:       s.strategy,
		SessionStarted: s.sessionStart,
		TopApps:        apps,
		TopClasses:     classes,
	}
	if s.hasReport {
		snap.Process = s.lastProcess
		snap.Title = s.lastTitle
		snap.Classification = s.classifier.Classify(s.lastProcess, s.lastTitle, int(now.Sub(s.lastReportAt).Seconds()))
	}
	return snap
}

func (s *TrackerService) Classify(process, title string, seconds int) domain.Classification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.classifier.Classify(process, title, seconds)
}

// EditKeyword adds or removes one keyword and returns the resulting list.
func (s *TrackerService) EditKeyword(list, keyword string, remove bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch list {
	case string(domain.Productive):
		if remove {
			s.classifier.RemoveProductive(keyword)
		} else {
			s.classifier.AddProductive(keyword)
		}
		return s.classifier.ProductiveKeywords(), nil
	case string(domain.Distractor):
		if remove {
			s.classifier.RemoveDistractor(keyword)
		} else {
			s.classifier.AddDistractor(keyword)
		}
		return s.classifier.DistractorKeywords(), nil
	default:
		return nil, fmt.Errorf("%w: unknown keyword list %q", apperrors.ErrInvalidInput, list)
	}
}

// Configure applies scorer settings to the running tracker. Zero values keep
// the current setting; nil keyword lists restore the defaults.
func (s *TrackerService) Configure(settings Settings) error {
	switch settings.Strategy {
	case "", domain.StrategyProgressive, domain.StrategyRatio:
	default:
		return fmt.Errorf("%w: unknown strategy %q", apperrors.ErrInvalidInput, settings.Strategy)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if settings.Window > 0 {
		s.ledger.SetWindow(settings.Window, now)
	}
	if settings.DistractorThreshold > 0 {
		s.classifier.SetThresholdSeconds(settings.DistractorThreshold)
	}
	if settings.NotificationCooldown > 0 {
		s.gate.SetCooldown(settings.NotificationCooldown)
	}
	if settings.Strategy != "" {
		s.strategy = settings.Strategy
	}
	if settings.TimerMinutes > 0 {
		s.pomodoro.SetMinutes(settings.TimerMinutes)
	}
	syncKeywords(s.classifier.ProductiveKeywords(), orDefault(settings.ProductiveKeywords, domain.DefaultProductiveKeywords), s.classifier.AddProductive, s.classifier.RemoveProductive)
	syncKeywords(s.classifier.DistractorKeywords(), orDefault(settings.DistractorKeywords, domain.DefaultDistractorKeywords), s.classifier.AddDistractor, s.classifier.RemoveDistractor)
	s.logger.Info("scorer reconfigured",
		slog.String("event", "scorer_configure"),
		slog.Duration("window", s.ledger.Window()),
		slog.Int("threshold_seconds", s.classifier.ThresholdSeconds()),
		slog.Duration("cooldown", s.gate.Cooldown()),
		slog.String("strategy", string(s.strategy)),
	)
	return nil
}

func (s *TrackerService) SetTimerMinutes(minutes int) error {
	if minutes < 1 {
		return fmt.Errorf("%w: timer minutes must be at least 1", apperrors.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pomodoro.SetMinutes(minutes)
	return nil
}

// History returns the retained ledger events with their classification.
func (s *TrackerService) History() []domain.ClassifiedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Prune(s.clock.Now())
	return s.ledger.Classified()
}

// Run ticks the timer until ctx is done, then stops the session. The probe is
// polled from its own goroutine so a slow probe never delays a tick. With
// exitOnFinish it returns after the timer runs out.
func (s *TrackerService) Run(ctx context.Context, pollInterval time.Duration, exitOnFinish bool) error {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	pollCtx, stopPolling := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.pollLoop(pollCtx, pollInterval)
	}()
	defer func() {
		stopPolling()
		wg.Wait()
	}()

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			_, err := s.Stop(context.WithoutCancel(ctx))
			return err
		case <-tick.C:
			_, finished, _, err := s.Tick(ctx)
			if err != nil {
				s.logger.Error("tick failed", slog.String("event", "tick_error"), slog.String("error", err.Error()))
			}
			if finished && exitOnFinish {
				return err
			}
		}
	}
}

func (s *TrackerService) pollLoop(ctx context.Context, interval time.Duration) {
	if s.probe == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		s.poll(ctx, interval)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// poll asks the probe for the active window, giving up after timeout.
func (s *TrackerService) poll(ctx context.Context, timeout time.Duration) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	process, title, err := s.probe.ActiveWindow(callCtx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		s.logger.Debug("probe failed", slog.String("event", "probe_error"), slog.String("error", err.Error()))
		process, title = "", ""
	}
	s.ReportActive(ctx, process, title)
}

// creditLocked records seconds of activity for a window in both the ledger
// and the per-app totals.
func (s *TrackerService) creditLocked(process, title string, seconds int, now time.Time) {
	s.pushLocked(process, title, seconds, now)
	key := domain.NewAppKey(process, title)
	if key.Process == "" {
		key.Process = unknownProcess
	}
	s.perApp[key] += seconds
}

func (s *TrackerService) pushLocked(process, title string, seconds int, now time.Time) {
	ev, cls := s.ledger.Push(process, title, seconds, now)
	if cls != domain.Distractor || ev.Seconds < domain.DistractionAlertSeconds {
		return
	}
	if !s.gate.OnDistraction(now) {
		return
	}
	s.logger.Info("distraction detected",
		slog.String("event", "distraction_alert"),
		slog.String("process", ev.Process),
		slog.String("title", ev.Title),
		slog.Int("seconds", ev.Seconds),
	)
	for _, l := range s.listeners {
		l.DistractionAlert(ev.Process, ev.Title, ev.Seconds)
	}
}

func (s *TrackerService) flushLocked(now time.Time) {
	if !s.hasReport {
		return
	}
	if credited := now.Sub(s.lastReportAt).Truncate(time.Second); credited > 0 {
		s.creditLocked(s.lastProcess, s.lastTitle, int(credited/time.Second), now)
	}
	s.hasReport = false
}

func (s *TrackerService) scoreLocked(now time.Time) int {
	if s.strategy == domain.StrategyRatio {
		return s.ledger.CurrentScore(0, s.sessionStart, now)
	}
	var elapsed time.Duration
	if !s.sessionStart.IsZero() {
		elapsed = now.Sub(s.sessionStart)
	} else {
		elapsed = s.pomodoro.Elapsed(now)
	}
	return domain.ProgressiveScore(s.pomodoro.Minutes(), elapsed, s.perApp, s.isDistractorByName)
}

func (s *TrackerService) isDistractorByName(key domain.AppKey) bool {
	return s.classifier.ClassifyByName(key.Process, key.Title) == domain.Distractor
}

func (s *TrackerService) emitScoreLocked(score int) {
	s.score = score
	for _, l := range s.listeners {
		l.ScoreUpdated(score)
	}
	msg, ok := s.gate.OnScore(score)
	if !ok {
		return
	}
	s.logger.Info("score threshold crossed", slog.String("event", "score_alert"), slog.Int("score", score))
	for _, l := range s.listeners {
		l.ScoreThresholdAlert(score, msg)
	}
}

// closeLocked flushes the open interval and turns the session into a record.
// Per-app totals are cleared either way.
func (s *TrackerService) closeLocked(now time.Time, reason domain.EndReason) (domain.SessionRecord, bool) {
	s.flushLocked(now)
	s.tracking = false
	defer func() {
		s.sessionStart = time.Time{}
		clear(s.perApp)
	}()
	if s.sessionStart.IsZero() {
		return domain.SessionRecord{}, false
	}
	final := s.scoreLocked(now)
	record, err := domain.NewSessionRecord(s.sessionStart, now, final, s.perApp, reason)
	if err != nil {
		s.logger.Debug("session not persisted", slog.String("event", "session_skip"), slog.String("reason", err.Error()))
		return domain.SessionRecord{}, false
	}
	return record, true
}

func (s *TrackerService) persist(ctx context.Context, record domain.SessionRecord, ok bool) (Outcome, error) {
	if !ok {
		return Outcome{}, nil
	}
	if s.sink == nil {
		return Outcome{}, fmt.Errorf("persist session: %w", errors.New("no session sink configured"))
	}
	id, err := s.sink.Persist(ctx, record)
	if err != nil {
		s.logger.Error("persist session failed", slog.String("event", "session_persist_error"), slog.String("error", err.Error()))
		return Outcome{Record: record}, fmt.Errorf("persist session: %w", err)
	}
	s.logger.Info("session saved",
		slog.String("event", "session_saved"),
		slog.String("session_id", id),
		slog.Int("duration_seconds", record.DurationSeconds),
		slog.Int("score", record.FinalScore),
		slog.String("reason", string(record.Reason)),
	)
	s.mu.Lock()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()
	for _, l := range listeners {
		l.SessionSaved(id, record)
	}
	return Outcome{Saved: true, SessionID: id, Record: record}, nil
}

func orDefault(list, fallback []string) []string {
	if len(list) == 0 {
		return fallback
	}
	return list
}

func syncKeywords(current, want []string, add, remove func(string)) {
	for _, k := range current {
		if !slices.ContainsFunc(want, func(w string) bool { return domain.NormalizeKeyword(w) == k }) {
			remove(k)
		}
	}
	for _, k := range want {
		add(k)
	}
}
