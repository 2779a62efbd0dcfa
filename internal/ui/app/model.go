package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ambientdto "focusly/internal/modules/ambient/dto"
	focusdto "focusly/internal/modules/focus/dto"
	apperrors "focusly/internal/platform/errors"
	"focusly/internal/ui/components"
	"focusly/internal/ui/theme"
	focusview "focusly/internal/ui/views/focus"
	sessionsview "focusly/internal/ui/views/sessions"
	soundsview "focusly/internal/ui/views/sounds"
)

const (
	snapshotInterval   = time.Second
	thresholdBannerTTL = 8 * time.Second
	distractBannerTTL  = 3 * time.Second
)

// ─── ports ───────────────────────────────────────────────────────────────────

type focusPort interface {
	Toggle(ctx context.Context) (focusdto.Snapshot, error)
	Pause(ctx context.Context) error
	Reset(ctx context.Context) (focusdto.SessionResult, error)
	Run(ctx context.Context, input focusdto.RunInput) error
	Snapshot(ctx context.Context) (focusdto.Snapshot, error)
	SetMinutes(ctx context.Context, minutes int) error
	Export(ctx context.Context, path string) (focusdto.ExportOutput, error)
	EditKeyword(ctx context.Context, list, keyword string, remove bool) (focusdto.KeywordOutput, error)
}

type ambientPort interface {
	soundsview.AmbientPort
	SetVolume(ctx context.Context, volume float64) (ambientdto.StateOutput, error)
}

// Options carries the dashboard's runtime settings.
type Options struct {
	ExportDir    string
	PollInterval time.Duration
	ScoreRefresh time.Duration
	Events       <-chan focusdto.Event
}

// ─── tabs ────────────────────────────────────────────────────────────────────

type tabID int

const (
	tabFocus tabID = iota
	tabSessions
	tabSounds
	tabCount
)

var tabLabels = [tabCount]string{"Focus", "Sessions", "Sounds"}

var paletteHints = []string{
	"timer <minutes>",
	"keyword add <productive|distractor> <keyword>",
	"keyword rm <productive|distractor> <keyword>",
	"volume <0-100>",
	"sound stop",
	"export",
}

// ─── messages ────────────────────────────────────────────────────────────────

type refreshMsg time.Time

type snapshotMsg struct {
	snap focusdto.Snapshot
	err  error
}

type eventMsg focusdto.Event

type runDoneMsg struct{ err error }

type statusMsg struct {
	text string
	err  error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle  key.Binding
	Pause   key.Binding
	Reset   key.Binding
	Export  key.Binding
	Tab     key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/pause")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export activity")),
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch view")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Pause, k.Reset, k.Export},
		{k.Tab, k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root dashboard. The tracker loop runs in the background for
// the lifetime of the program; the model renders snapshots and forwards keys.
type Model struct {
	focus   focusPort
	ambient ambientPort
	opts    Options

	runCtx    context.Context
	cancelRun context.CancelFunc
	quitting  bool

	focusView    focusview.Model
	sessionsView sessionsview.Model
	soundsView   soundsview.Model

	activeTab        tabID
	keys             keyMap
	help             help.Model
	showHelp         bool
	palette          components.Palette
	banner           components.Banner
	lastScoreRefresh time.Time
	status           string
	width            int
	height           int
}

func NewModel(focus focusPort, sessions sessionsview.SessionPort, ambient ambientPort, opts Options) Model {
	if opts.ScoreRefresh <= 0 {
		opts.ScoreRefresh = 5 * time.Second
	}
	runCtx, cancel := context.WithCancel(context.Background())
	var sounds soundsview.AmbientPort
	if ambient != nil {
		sounds = ambient
	}
	return Model{
		focus:        focus,
		ambient:      ambient,
		opts:         opts,
		runCtx:       runCtx,
		cancelRun:    cancel,
		focusView:    focusview.New(),
		sessionsView: sessionsview.New(sessions),
		soundsView:   soundsview.New(sounds),
		activeTab:    tabFocus,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(paletteHints),
		status:       "press s to start a focus session",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.runCmd(),
		m.snapshotCmd(),
		refreshCmd(),
		m.waitForEvent(),
		m.sessionsView.Init(),
		m.soundsView.Init(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.palette.SetWidth(min(m.width-4, 80))
		m.propagateSize()
		return m, nil

	case refreshMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.snapshotCmd(), refreshCmd())

	case snapshotMsg:
		if msg.err != nil {
			m.status = "snapshot: " + msg.err.Error()
			return m, nil
		}
		now := time.Now()
		refreshScore := now.Sub(m.lastScoreRefresh) >= m.opts.ScoreRefresh
		if refreshScore {
			m.lastScoreRefresh = now
		}
		m.focusView.SetSnapshot(msg.snap, refreshScore)
		return m, nil

	case eventMsg:
		return m.handleEvent(focusdto.Event(msg))

	case runDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.status = "session save failed: " + msg.err.Error()
		}
		return m, tea.Quit

	case statusMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = msg.text
		}
		return m, m.snapshotCmd()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.subViewFiltering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.status = "saving session…"
			m.cancelRun()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case msg.String() == "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case msg.String() == "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		}
		if m.activeTab == tabFocus {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				return m, m.toggleCmd()
			case key.Matches(msg, m.keys.Pause):
				return m, m.pauseCmd()
			case key.Matches(msg, m.keys.Reset):
				return m, m.resetCmd()
			case key.Matches(msg, m.keys.Export):
				return m, m.exportCmd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabSessions:
		m.sessionsView, cmd = m.sessionsView.Update(msg)
	case tabSounds:
		m.soundsView, cmd = m.soundsView.Update(msg)
	default:
		// Async results for background tabs still need to land.
		switch msg.(type) {
		case sessionsview.LoadedMsg, sessionsview.DetailLoadedMsg:
			m.sessionsView, cmd = m.sessionsView.Update(msg)
		case soundsview.LoadedMsg, soundsview.StateMsg:
			m.soundsView, cmd = m.soundsView.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) handleEvent(ev focusdto.Event) (tea.Model, tea.Cmd) {
	now := time.Now()
	cmds := []tea.Cmd{m.waitForEvent()}
	switch ev.Kind {
	case focusdto.EventThreshold:
		m.banner.Show(ev.Message, now, thresholdBannerTTL)
		m.focusView.PushAlert(now.Format("15:04") + "  " + ev.Message)
	case focusdto.EventDistraction:
		m.banner.Show(ev.Message, now, distractBannerTTL)
		m.focusView.PushAlert(now.Format("15:04") + "  " + ev.Message)
	case focusdto.EventSaved:
		m.status = fmt.Sprintf("session saved: %d%% over %dm", ev.Score, ev.Seconds/60)
		m.focusView.SetScore(100)
		cmds = append(cmds, m.sessionsView.Reload())
	}
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(1, m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar))

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabSessions:
		return m.sessionsView.View()
	case tabSounds:
		return m.soundsView.View()
	default:
		return m.focusView.View()
	}
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "focusly  " + strings.Join(parts, theme.Muted.Render(" │ "))
	if banner := m.banner.View(time.Now()); banner != "" {
		bar += "   " + banner
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette ─────────────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "timer":
		if len(parts) != 2 {
			m.status = "usage: timer <minutes>"
			return m, nil
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid minutes: " + parts[1]
			return m, nil
		}
		return m, m.statusCmd(fmt.Sprintf("timer set to %d minutes", minutes), func(ctx context.Context) error {
			return m.focus.SetMinutes(ctx, minutes)
		})

	case "keyword":
		if len(parts) < 4 || (parts[1] != "add" && parts[1] != "rm") {
			m.status = "usage: keyword add|rm <productive|distractor> <keyword>"
			return m, nil
		}
		list, word, remove := parts[2], strings.Join(parts[3:], " "), parts[1] == "rm"
		return m, func() tea.Msg {
			out, err := m.focus.EditKeyword(context.Background(), list, word, remove)
			if err != nil {
				return statusMsg{err: err}
			}
			return statusMsg{text: fmt.Sprintf("%s keywords: %d", out.List, len(out.Keywords))}
		}

	case "volume":
		if m.ambient == nil {
			m.status = "ambient audio is not configured"
			return m, nil
		}
		if len(parts) != 2 {
			m.status = "usage: volume <0-100>"
			return m, nil
		}
		percent, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid volume: " + parts[1]
			return m, nil
		}
		return m, func() tea.Msg {
			state, err := m.ambient.SetVolume(context.Background(), float64(percent)/100)
			if err != nil {
				return statusMsg{err: err}
			}
			return statusMsg{text: fmt.Sprintf("volume %d%% (applies to the next track)", int(state.Volume*100+0.5))}
		}

	case "sound":
		if m.ambient == nil || len(parts) != 2 || parts[1] != "stop" {
			m.status = "usage: sound stop"
			return m, nil
		}
		return m, func() tea.Msg {
			state, err := m.ambient.Stop(context.Background())
			return soundsview.StateMsg{State: state, Err: err}
		}

	case "export":
		return m, m.exportCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabSessions:
		return m.sessionsView.Filtering()
	case tabSounds:
		return m.soundsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.focusView, _ = m.focusView.Update(sz)
	m.sessionsView, _ = m.sessionsView.Update(sz)
	m.soundsView, _ = m.soundsView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func refreshCmd() tea.Cmd {
	return tea.Tick(snapshotInterval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func (m Model) runCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.focus.Run(m.runCtx, focusdto.RunInput{PollInterval: m.opts.PollInterval})
		return runDoneMsg{err: err}
	}
}

func (m Model) waitForEvent() tea.Cmd {
	if m.opts.Events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.opts.Events
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func (m Model) snapshotCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.focus.Snapshot(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m Model) toggleCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.focus.Toggle(context.Background())
		if err != nil {
			return statusMsg{err: err}
		}
		if snap.Running {
			return statusMsg{text: "focus session running"}
		}
		return statusMsg{text: "paused at " + snap.TimerText}
	}
}

func (m Model) pauseCmd() tea.Cmd {
	return m.statusCmd("paused", func(ctx context.Context) error {
		err := m.focus.Pause(ctx)
		if errors.Is(err, apperrors.ErrNoActiveSession) {
			return errors.New("timer is not running")
		}
		return err
	})
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.focus.Reset(context.Background())
		if err != nil {
			return statusMsg{err: fmt.Errorf("reset: %w", err)}
		}
		if result.Saved {
			return statusMsg{text: fmt.Sprintf("reset, session saved at %d%%", result.FinalScore)}
		}
		return statusMsg{text: "reset"}
	}
}

func (m Model) exportCmd() tea.Cmd {
	path := filepath.Join(m.opts.ExportDir, "activity-"+time.Now().Format("20060102-150405")+".csv")
	return func() tea.Msg {
		out, err := m.focus.Export(context.Background(), path)
		if err != nil {
			return statusMsg{err: fmt.Errorf("export: %w", err)}
		}
		return statusMsg{text: fmt.Sprintf("exported %d events to %s", out.Events, out.Path)}
	}
}

func (m Model) statusCmd(text string, call func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := call(context.Background()); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: text}
	}
}
