package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	apperrors "focusly/internal/platform/errors"
)

const (
	StrategyProgressive = "progressive"
	StrategyRatio       = "ratio"
)

type Config struct {
	File     string
	DataDir  string
	DBPath   string
	LogLevel string
	Scorer   ScorerConfig
	Timer    TimerConfig
	Probe    ProbeConfig
	UI       UIConfig
	Audio    AudioConfig
}

type ScorerConfig struct {
	WindowSeconds               int
	DistractorThresholdSeconds  int
	NotificationCooldownSeconds int
	Strategy                    string
	// Empty keyword lists keep the built-in defaults.
	ProductiveKeywords []string
	DistractorKeywords []string
}

type TimerConfig struct {
	Minutes int
}

type ProbeConfig struct {
	Binary       string
	PollInterval time.Duration
}

type UIConfig struct {
	ScoreRefresh time.Duration
}

type AudioConfig struct {
	AssetsDir string
	Player    string
	Volume    int
}

func defaults(v *viper.Viper) {
	v.SetDefault("data_dir", "~/.local/share/focusly")
	v.SetDefault("log.level", "info")
	v.SetDefault("scorer.window_seconds", 1800)
	v.SetDefault("scorer.distractor_threshold_seconds", 60)
	v.SetDefault("scorer.notification_cooldown_seconds", 30)
	v.SetDefault("scorer.strategy", StrategyProgressive)
	v.SetDefault("scorer.productive_keywords", []string{})
	v.SetDefault("scorer.distractor_keywords", []string{})
	v.SetDefault("timer.minutes", 25)
	v.SetDefault("probe.binary", "")
	v.SetDefault("probe.poll_interval", "2s")
	v.SetDefault("ui.score_refresh", "5s")
	v.SetDefault("audio.assets_dir", "")
	v.SetDefault("audio.player", "mpv")
	v.SetDefault("audio.volume", 70)
}

// Loader reads focusly.yaml and can watch it for edits.
type Loader struct {
	v        *viper.Viper
	explicit string
}

// NewLoader uses explicitPath when set, otherwise searches the XDG config dirs.
func NewLoader(explicitPath string) *Loader {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix("FOCUSLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	explicitPath = expandHome(explicitPath)
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName("focusly")
		v.SetConfigType("yaml")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}
	return &Loader{v: v, explicit: explicitPath}
}

func (l *Loader) Load() (Config, error) {
	if l.explicit != "" {
		if _, err := os.Stat(l.explicit); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return l.decode()
}

// Watch calls onChange with the re-read configuration each time the file changes.
// It reports false when no config file was found to watch.
func (l *Loader) Watch(onChange func(Config, error)) bool {
	if l.v.ConfigFileUsed() == "" {
		return false
	}
	l.v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := l.decode()
		onChange(cfg, err)
	})
	l.v.WatchConfig()
	return true
}

func (l *Loader) decode() (Config, error) {
	v := l.v
	dataDir := expandHome(v.GetString("data_dir"))
	cfg := Config{
		File:     v.ConfigFileUsed(),
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, "focusly.db"),
		LogLevel: v.GetString("log.level"),
		Scorer: ScorerConfig{
			WindowSeconds:               v.GetInt("scorer.window_seconds"),
			DistractorThresholdSeconds:  v.GetInt("scorer.distractor_threshold_seconds"),
			NotificationCooldownSeconds: v.GetInt("scorer.notification_cooldown_seconds"),
			Strategy:                    strings.ToLower(v.GetString("scorer.strategy")),
			ProductiveKeywords:          v.GetStringSlice("scorer.productive_keywords"),
			DistractorKeywords:          v.GetStringSlice("scorer.distractor_keywords"),
		},
		Timer: TimerConfig{
			Minutes: v.GetInt("timer.minutes"),
		},
		Probe: ProbeConfig{
			Binary:       expandHome(v.GetString("probe.binary")),
			PollInterval: v.GetDuration("probe.poll_interval"),
		},
		UI: UIConfig{
			ScoreRefresh: v.GetDuration("ui.score_refresh"),
		},
		Audio: AudioConfig{
			AssetsDir: expandHome(v.GetString("audio.assets_dir")),
			Player:    v.GetString("audio.player"),
			Volume:    v.GetInt("audio.volume"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if c.Scorer.WindowSeconds < 1 {
		errs = append(errs, errors.New("scorer.window_seconds must be >= 1"))
	}
	if c.Scorer.DistractorThresholdSeconds < 1 {
		errs = append(errs, errors.New("scorer.distractor_threshold_seconds must be >= 1"))
	}
	if c.Scorer.NotificationCooldownSeconds < 1 {
		errs = append(errs, errors.New("scorer.notification_cooldown_seconds must be >= 1"))
	}
	if c.Scorer.Strategy != StrategyProgressive && c.Scorer.Strategy != StrategyRatio {
		errs = append(errs, fmt.Errorf("scorer.strategy must be %q or %q", StrategyProgressive, StrategyRatio))
	}
	if c.Timer.Minutes < 1 {
		errs = append(errs, errors.New("timer.minutes must be >= 1"))
	}
	if c.Probe.PollInterval <= 0 {
		errs = append(errs, errors.New("probe.poll_interval must be positive"))
	}
	if c.UI.ScoreRefresh <= 0 {
		errs = append(errs, errors.New("ui.score_refresh must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		errs = append(errs, errors.New("audio.volume must be within 0..100"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

func (c Config) SessionsDir() string {
	return filepath.Join(c.DataDir, "sessions")
}

func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "focusly.log")
}

func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "focusly"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "focusly"))
	}
	return dirs
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
