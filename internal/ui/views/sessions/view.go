package sessions

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "focusly/internal/modules/session/dto"
	"focusly/internal/ui/theme"
)

const listLimit = 100

type SessionPort interface {
	List(ctx context.Context, limit int) ([]sessiondto.SessionOutput, error)
	Show(ctx context.Context, sessionID string) (sessiondto.SessionDetailOutput, error)
}

type LoadedMsg struct {
	Sessions []sessiondto.SessionOutput
	Err      error
}

type DetailLoadedMsg struct {
	Detail sessiondto.SessionDetailOutput
	Err    error
}

type sessionItem struct {
	session sessiondto.SessionOutput
}

func (i sessionItem) Title() string {
	return fmt.Sprintf("%s  %d%%", i.session.StartedAt.Local().Format("2006-01-02 15:04"), i.session.FinalScore)
}

func (i sessionItem) Description() string {
	return fmt.Sprintf("%dm  %s", i.session.DurationSeconds/60, i.session.AppsUsed)
}

func (i sessionItem) FilterValue() string { return i.session.AppsUsed }

// Model lists recorded sessions with a detail pane for the selected one.
type Model struct {
	port    SessionPort
	list    list.Model
	detail  sessiondto.SessionDetailOutput
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port SessionPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sessions"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, preview: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload fetches the session list again, e.g. after a session is saved.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		items, err := m.port.List(context.Background(), listLimit)
		return LoadedMsg{Sessions: items, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Sessions: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Sessions) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Sessions[0].SessionID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.session.SessionID))
			}
		}
		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading sessions…")
	}
	listW := m.width / 2
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := theme.Pane.Width(m.width - listW - 2).Height(m.height - 2).Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list filter has the keyboard.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width / 2
	m.list.SetSize(listW, m.height)
	m.preview.Width = m.width - listW - 6
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.SessionID == "" {
		return theme.Muted.Render("No session selected")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.StartedAt.Local().Format("Mon 02 Jan 15:04")) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:       ") + d.SessionID + "\n")
	sb.WriteString(theme.Muted.Render("ended:    ") + d.EndedAt.Local().Format("15:04:05") + " (" + d.Reason + ")\n")
	sb.WriteString(fmt.Sprintf("%s%dm%02ds\n", theme.Muted.Render("duration: "), d.DurationSeconds/60, d.DurationSeconds%60))
	score := lipgloss.NewStyle().Foreground(theme.ScoreColor(d.FinalScore)).Bold(true).Render(fmt.Sprintf("%d%%", d.FinalScore))
	sb.WriteString(theme.Muted.Render("score:    ") + score + "\n\n")
	for _, app := range d.Apps {
		title := app.Title
		if title == "" {
			title = "-"
		}
		sb.WriteString(fmt.Sprintf("%-14s %6ds  %s\n", app.Process, app.Seconds, theme.Muted.Render(title)))
	}
	return sb.String()
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Show(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
