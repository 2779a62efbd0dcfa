package focus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	focusdto "focusly/internal/modules/focus/dto"
	"focusly/internal/ui/theme"
)

const maxAlerts = 5

// Model renders the timer, the focus score and the per-app breakdown of the
// running session. It holds no tracker state beyond the last snapshot.
type Model struct {
	snap     focusdto.Snapshot
	score    int
	timerBar progress.Model
	scoreBar progress.Model
	apps     table.Model
	alerts   []string
	width    int
	height   int
}

func New() Model {
	apps := table.New(
		table.WithColumns(appColumns(60)),
		table.WithHeight(8),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Sapphire).BorderForeground(theme.Surface1).Bold(true)
	styles.Selected = lipgloss.NewStyle()
	apps.SetStyles(styles)

	return Model{
		score:    100,
		timerBar: progress.New(progress.WithSolidFill(string(theme.Lavender)), progress.WithoutPercentage()),
		scoreBar: progress.New(progress.WithSolidFill(string(theme.Green))),
		apps:     apps,
	}
}

// SetSnapshot refreshes the timer and app table. The score only moves when
// refreshScore is set so the gauge updates at its own cadence.
func (m *Model) SetSnapshot(snap focusdto.Snapshot, refreshScore bool) {
	m.snap = snap
	if refreshScore {
		m.SetScore(snap.Score)
	}
	rows := make([]table.Row, 0, len(snap.TopApps))
	for _, app := range snap.TopApps {
		rows = append(rows, table.Row{app.Process, app.Title, formatSeconds(app.Seconds), app.Classification})
	}
	m.apps.SetRows(rows)
}

func (m *Model) SetScore(score int) {
	m.score = score
	m.scoreBar = progress.New(progress.WithSolidFill(string(theme.ScoreColor(score))))
	m.scoreBar.Width = m.barWidth()
}

func (m *Model) PushAlert(text string) {
	m.alerts = append(m.alerts, text)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[len(m.alerts)-maxAlerts:]
	}
}

func (m Model) Score() int { return m.score }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.timerBar.Width = m.barWidth()
		m.scoreBar.Width = m.barWidth()
		m.apps.SetColumns(appColumns(m.width - 4))
		m.apps.SetHeight(max(3, m.height-16))
	}
	return m, nil
}

func (m Model) View() string {
	s := m.snap
	state := theme.Muted.Render("paused")
	if s.Running {
		state = theme.Hot.Render("running")
	}
	timer := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.TimerText)
	header := fmt.Sprintf("%s  %s  %s", timer, state, theme.Muted.Render(fmt.Sprintf("%d min · %s", s.Minutes, s.Strategy)))

	scoreLabel := lipgloss.NewStyle().Foreground(theme.ScoreColor(m.score)).Bold(true).
		Render("Focus " + strconv.Itoa(m.score) + "%")

	current := theme.Muted.Render("no window observed yet")
	if s.Process != "" || s.Title != "" {
		class := lipgloss.NewStyle().Foreground(theme.ClassColor(s.Classification)).Render(s.Classification)
		current = fmt.Sprintf("%s %s  %s", theme.Title.Render(s.Process), s.Title, class)
	}

	var sb strings.Builder
	sb.WriteString(header + "\n")
	sb.WriteString(m.timerBar.ViewAs(float64(s.Progress)/100) + "\n\n")
	sb.WriteString(scoreLabel + "\n")
	sb.WriteString(m.scoreBar.ViewAs(float64(m.score)/100) + "\n\n")
	sb.WriteString(current + "\n\n")
	sb.WriteString(m.apps.View() + "\n")
	if len(m.alerts) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Recent alerts") + "\n")
		for _, a := range m.alerts {
			sb.WriteString(theme.Muted.Render("  "+a) + "\n")
		}
	}
	return theme.Pane.Width(max(20, m.width-2)).Render(sb.String())
}

func (m Model) barWidth() int {
	if m.width <= 0 {
		return 40
	}
	return max(10, m.width-8)
}

func appColumns(width int) []table.Column {
	if width < 40 {
		width = 40
	}
	titleW := width - 16 - 8 - 12 - 6
	return []table.Column{
		{Title: "App", Width: 16},
		{Title: "Window", Width: titleW},
		{Title: "Time", Width: 8},
		{Title: "Class", Width: 12},
	}
}

func formatSeconds(sec int) string {
	if sec >= 3600 {
		return fmt.Sprintf("%dh%02dm", sec/3600, (sec%3600)/60)
	}
	return fmt.Sprintf("%dm%02ds", sec/60, sec%60)
}
