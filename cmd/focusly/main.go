package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"focusly/internal/bootstrap"
	focusdto "focusly/internal/modules/focus/dto"
	"focusly/internal/platform/config"
	"focusly/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "focusly",
		Short:         "Pomodoro timer that scores how focused you stay",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to focusly.yaml")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newTrackCmd(opts))
	root.AddCommand(newClassifyCmd(opts))
	root.AddCommand(newSessionCmd(opts))
	root.AddCommand(newAudioCmd(opts))
	root.AddCommand(newProbeCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (*config.Loader, config.Config, error) {
	loader := config.NewLoader(opts.configPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	return loader, cfg, nil
}

// loadApp wires the application with a stderr logger.
func loadApp(opts *rootOptions, stderr io.Writer) (*bootstrap.App, error) {
	_, cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(stderr, cfg.LogLevel))
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the focus dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			loader, cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.NewFile(cfg.LogPath(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			bootstrap.WatchConfig(loader, app)
			runErr := bootstrap.RunTUI(app)
			return errors.Join(runErr, app.Close())
		},
	}
}

func newTrackCmd(opts *rootOptions) *cobra.Command {
	var minutes int
	var exportPath string
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track one focus session without the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cfg, logging.New(cmd.ErrOrStderr(), cfg.LogLevel))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			bootstrap.WatchConfig(loader, app)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			out, err := bootstrap.RunHeadless(ctx, app, minutes, exportPath)
			if err != nil {
				return err
			}
			if out.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d events to %s\n", out.Events, out.Path)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 0, "timer length in minutes (default from config)")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the activity ledger to this CSV path when the session ends (.zst compresses)")
	return cmd
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var seconds int
	var productive, distractor []string
	cmd := &cobra.Command{
		Use:   "classify <process> <title>",
		Short: "Show how a window would be classified",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := cmd.Context()
			for list, words := range map[string][]string{focusdto.ListProductive: productive, focusdto.ListDistractor: distractor} {
				for _, w := range words {
					if _, err := app.FocusCLI.EditKeyword(ctx, list, w, false); err != nil {
						return err
					}
				}
			}
			out, err := app.FocusCLI.Classify(ctx, args[0], args[1], seconds)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Classification)
			return nil
		},
	}
	cmd.Flags().IntVar(&seconds, "seconds", 0, "accumulated seconds in the window")
	cmd.Flags().StringSliceVar(&productive, "productive", nil, "extra productive keywords")
	cmd.Flags().StringSliceVar(&distractor, "distractor", nil, "extra distractor keywords")
	return cmd
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Recorded focus sessions"}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			sessions, err := app.SessionCLI.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tSTARTED\tMIN\tSCORE\tAPPS")
			for _, s := range sessions {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d%%\t%s\n",
					s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04"), s.DurationSeconds/60, s.FinalScore, s.AppsUsed)
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "max sessions to list")

	var sessionID string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show one session with its per-app breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			s, err := app.SessionCLI.Show(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "session %s\n", s.SessionID)
			_, _ = fmt.Fprintf(w, "  started  %s\n", s.StartedAt.Local().Format(time.RFC3339))
			_, _ = fmt.Fprintf(w, "  ended    %s (%s)\n", s.EndedAt.Local().Format(time.RFC3339), s.Reason)
			_, _ = fmt.Fprintf(w, "  duration %s\n", (time.Duration(s.DurationSeconds) * time.Second).String())
			_, _ = fmt.Fprintf(w, "  score    %d%%\n", s.FinalScore)
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "  APP\tSECONDS\tTITLE")
			for _, a := range s.Apps {
				_, _ = fmt.Fprintf(tw, "  %s\t%d\t%s\n", a.Process, a.Seconds, a.Title)
			}
			return tw.Flush()
		},
	}
	showCmd.Flags().StringVar(&sessionID, "id", "", "session id")
	_ = showCmd.MarkFlagRequired("id")

	session.AddCommand(listCmd, showCmd)
	return session
}

func newAudioCmd(opts *rootOptions) *cobra.Command {
	audio := &cobra.Command{Use: "audio", Short: "Ambient sounds"}

	audio.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sound categories and tracks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			categories, err := app.AmbientCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sound categories")
				return nil
			}
			for _, c := range categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", c.Name)
				for i, t := range c.Tracks {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %d  %s\n", i, t)
				}
			}
			return nil
		},
	})

	audio.AddCommand(&cobra.Command{
		Use:   "play <category> <track>",
		Short: "Loop a track until interrupted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			state, err := app.AmbientCLI.Play(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "playing %s / %s (ctrl+c to stop)\n", state.Category, state.Track)
			<-ctx.Done()
			_, err = app.AmbientCLI.Stop(context.WithoutCancel(ctx))
			return err
		},
	})
	return audio
}

func newProbeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print the window the probe currently sees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			meta, err := app.ProbeCLI.Describe(cmd.Context())
			if err != nil {
				return err
			}
			window, err := app.ProbeCLI.Current(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "probe    %s %s (%s)\n", meta.Name, meta.Version, meta.Platform)
			_, _ = fmt.Fprintf(w, "process  %s\n", window.Process)
			_, _ = fmt.Fprintf(w, "title    %s\n", window.Title)
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration"}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(configView(cfg)); err != nil {
				return err
			}
			return enc.Close()
		},
	})
	return cfgCmd
}

type scorerView struct {
	WindowSeconds               int      `yaml:"window_seconds"`
	DistractorThresholdSeconds  int      `yaml:"distractor_threshold_seconds"`
	NotificationCooldownSeconds int      `yaml:"notification_cooldown_seconds"`
	Strategy                    string   `yaml:"strategy"`
	ProductiveKeywords          []string `yaml:"productive_keywords,omitempty"`
	DistractorKeywords          []string `yaml:"distractor_keywords,omitempty"`
}

type effectiveConfig struct {
	File    string     `yaml:"file,omitempty"`
	DataDir string     `yaml:"data_dir"`
	DBPath  string     `yaml:"db_path"`
	Log     struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Scorer scorerView `yaml:"scorer"`
	Timer  struct {
		Minutes int `yaml:"minutes"`
	} `yaml:"timer"`
	Probe struct {
		Binary       string `yaml:"binary"`
		PollInterval string `yaml:"poll_interval"`
	} `yaml:"probe"`
	UI struct {
		ScoreRefresh string `yaml:"score_refresh"`
	} `yaml:"ui"`
	Audio struct {
		AssetsDir string `yaml:"assets_dir"`
		Player    string `yaml:"player"`
		Volume    int    `yaml:"volume"`
	} `yaml:"audio"`
}

func configView(cfg config.Config) effectiveConfig {
	var v effectiveConfig
	v.File = cfg.File
	v.DataDir = cfg.DataDir
	v.DBPath = cfg.DBPath
	v.Log.Level = cfg.LogLevel
	v.Scorer = scorerView(cfg.Scorer)
	v.Timer.Minutes = cfg.Timer.Minutes
	v.Probe.Binary = cfg.Probe.Binary
	v.Probe.PollInterval = cfg.Probe.PollInterval.String()
	v.UI.ScoreRefresh = cfg.UI.ScoreRefresh.String()
	v.Audio.AssetsDir = cfg.Audio.AssetsDir
	v.Audio.Player = cfg.Audio.Player
	v.Audio.Volume = cfg.Audio.Volume
	return v
}
