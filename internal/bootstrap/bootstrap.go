package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	ambientinadapter "focusly/internal/modules/ambient/adapter/in"
	ambientoutadapter "focusly/internal/modules/ambient/adapter/out"
	ambientin "focusly/internal/modules/ambient/port/in"
	ambientservice "focusly/internal/modules/ambient/service"
	ambientusecase "focusly/internal/modules/ambient/usecase"
	focusinadapter "focusly/internal/modules/focus/adapter/in"
	focusoutadapter "focusly/internal/modules/focus/adapter/out"
	"focusly/internal/modules/focus/domain"
	focusdto "focusly/internal/modules/focus/dto"
	focusin "focusly/internal/modules/focus/port/in"
	focusservice "focusly/internal/modules/focus/service"
	focususecase "focusly/internal/modules/focus/usecase"
	probeinadapter "focusly/internal/modules/probe/adapter/in"
	probeoutadapter "focusly/internal/modules/probe/adapter/out"
	probeout "focusly/internal/modules/probe/port/out"
	probeservice "focusly/internal/modules/probe/service"
	probeusecase "focusly/internal/modules/probe/usecase"
	sessioninadapter "focusly/internal/modules/session/adapter/in"
	sessionoutadapter "focusly/internal/modules/session/adapter/out"
	sessionservice "focusly/internal/modules/session/service"
	sessionusecase "focusly/internal/modules/session/usecase"
	"focusly/internal/platform/clock"
	"focusly/internal/platform/config"
	"focusly/internal/platform/id"
	uiapp "focusly/internal/ui/app"
)

type App struct {
	Config     config.Config
	Logger     *slog.Logger
	FocusCLI   focusinadapter.CLIHandler
	FocusTUI   focusinadapter.TUIHandler
	SessionCLI sessioninadapter.CLIHandler
	ProbeCLI   probeinadapter.CLIHandler
	AmbientCLI ambientinadapter.CLIHandler

	focus   focusin.Usecase
	ambient ambientin.Usecase
	events  *focusoutadapter.EventListener
	closers []func() error
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	clk := clock.SystemClock{}

	sessionStore, err := sessionoutadapter.NewSQLiteSessionStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session store: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		id.UUID{},
		sessionStore,
		sessionoutadapter.NewMarkdownNoteStore(cfg.SessionsDir()),
	))

	probeSvc := probeservice.NewProbeService(newWindowSource(cfg.Probe), logger.With(slog.String("component", "probe")))
	probeUC := probeusecase.NewInteractor(probeSvc)

	events := focusoutadapter.NewEventListener(0)
	tracker := focusservice.NewTrackerService(
		clk,
		logger.With(slog.String("component", "tracker")),
		focusoutadapter.NewSessionSinkAdapter(sessionUC),
		focusoutadapter.NewProbeAdapter(probeUC),
		trackerSettings(cfg),
		focusoutadapter.NewSlogListener(logger),
		events,
	)
	focusUC := focususecase.NewInteractor(tracker, focusoutadapter.NewCSVHistoryWriter())

	ambientUC := ambientusecase.NewInteractor(ambientservice.NewAmbientService(
		ambientoutadapter.NewDirCatalog(assetsDir(cfg)),
		ambientoutadapter.NewProcessPlayer(cfg.Audio.Player),
		float64(cfg.Audio.Volume)/100,
		logger.With(slog.String("component", "ambient")),
	))

	return &App{
		Config:     cfg,
		Logger:     logger,
		FocusCLI:   focusinadapter.NewCLIHandler(focusUC),
		FocusTUI:   focusinadapter.NewTUIHandler(focusUC),
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		ProbeCLI:   probeinadapter.NewCLIHandler(probeUC),
		AmbientCLI: ambientinadapter.NewCLIHandler(ambientUC),
		focus:      focusUC,
		ambient:    ambientUC,
		events:     events,
		closers: []func() error{
			func() error {
				_, err := ambientUC.Stop(context.Background())
				return err
			},
			probeUC.Close,
			sessionStore.Close,
		},
	}, nil
}

// Close stops background players and plugin processes and closes the store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ApplyConfig pushes reloadable settings into the running tracker.
func (a *App) ApplyConfig(ctx context.Context, cfg config.Config) error {
	if err := a.focus.Configure(ctx, scorerSettings(cfg.Scorer)); err != nil {
		return fmt.Errorf("apply scorer config: %w", err)
	}
	if err := a.focus.SetTimerMinutes(ctx, cfg.Timer.Minutes); err != nil {
		return fmt.Errorf("apply timer config: %w", err)
	}
	a.Config.Scorer = cfg.Scorer
	a.Config.Timer = cfg.Timer
	return nil
}

// WatchConfig re-applies the config file whenever it changes on disk.
func WatchConfig(loader *config.Loader, app *App) {
	watching := loader.Watch(func(cfg config.Config, err error) {
		if err != nil {
			app.Logger.Warn("config reload rejected", slog.String("event", "config_reload"), slog.String("error", err.Error()))
			return
		}
		if err := app.ApplyConfig(context.Background(), cfg); err != nil {
			app.Logger.Warn("config reload failed", slog.String("event", "config_reload"), slog.String("error", err.Error()))
			return
		}
		app.Logger.Info("config reloaded", slog.String("event", "config_reload"), slog.String("file", cfg.File))
	})
	if !watching {
		app.Logger.Debug("no config file to watch", slog.String("event", "config_watch"))
	}
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.FocusTUI, app.SessionCLI, app.ambient, uiapp.Options{
		ExportDir:    filepath.Join(app.Config.DataDir, "exports"),
		PollInterval: app.Config.Probe.PollInterval,
		ScoreRefresh: app.Config.UI.ScoreRefresh,
		Events:       app.events.Events(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// RunHeadless tracks one timer cycle without a UI and optionally exports the
// activity ledger when it ends.
func RunHeadless(ctx context.Context, app *App, minutes int, exportPath string) (focusdto.ExportOutput, error) {
	err := app.FocusCLI.Track(ctx, minutes, focusdto.RunInput{
		PollInterval: app.Config.Probe.PollInterval,
		ExitOnFinish: true,
	})
	if err != nil {
		return focusdto.ExportOutput{}, err
	}
	if exportPath == "" {
		return focusdto.ExportOutput{}, nil
	}
	return app.FocusCLI.Export(context.WithoutCancel(ctx), exportPath)
}

func newWindowSource(cfg config.ProbeConfig) probeout.WindowSource {
	if cfg.Binary != "" {
		return probeoutadapter.NewPluginSource(cfg.Binary)
	}
	return probeoutadapter.NewXdotoolSource()
}

func assetsDir(cfg config.Config) string {
	if cfg.Audio.AssetsDir != "" {
		return cfg.Audio.AssetsDir
	}
	return filepath.Join(cfg.DataDir, "assets")
}

func trackerSettings(cfg config.Config) focusservice.Settings {
	return focusservice.Settings{
		Window:               time.Duration(cfg.Scorer.WindowSeconds) * time.Second,
		DistractorThreshold:  cfg.Scorer.DistractorThresholdSeconds,
		NotificationCooldown: time.Duration(cfg.Scorer.NotificationCooldownSeconds) * time.Second,
		Strategy:             domain.Strategy(cfg.Scorer.Strategy),
		ProductiveKeywords:   nonEmpty(cfg.Scorer.ProductiveKeywords),
		DistractorKeywords:   nonEmpty(cfg.Scorer.DistractorKeywords),
		TimerMinutes:         cfg.Timer.Minutes,
	}
}

func scorerSettings(cfg config.ScorerConfig) focusdto.ScorerSettings {
	return focusdto.ScorerSettings{
		WindowSeconds:               cfg.WindowSeconds,
		DistractorThresholdSeconds:  cfg.DistractorThresholdSeconds,
		NotificationCooldownSeconds: cfg.NotificationCooldownSeconds,
		Strategy:                    cfg.Strategy,
		ProductiveKeywords:          nonEmpty(cfg.ProductiveKeywords),
		DistractorKeywords:          nonEmpty(cfg.DistractorKeywords),
	}
}

// nonEmpty maps an empty config list to nil, which keeps the built-in list.
func nonEmpty(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	return list
}
