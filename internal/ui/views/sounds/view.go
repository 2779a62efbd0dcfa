package sounds

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ambientdto "focusly/internal/modules/ambient/dto"
	"focusly/internal/ui/theme"
)

type AmbientPort interface {
	Categories(ctx context.Context) ([]ambientdto.CategoryOutput, error)
	Play(ctx context.Context, input ambientdto.PlayInput) (ambientdto.StateOutput, error)
	Pause(ctx context.Context) (ambientdto.StateOutput, error)
	Resume(ctx context.Context) (ambientdto.StateOutput, error)
	Stop(ctx context.Context) (ambientdto.StateOutput, error)
}

type LoadedMsg struct {
	Categories []ambientdto.CategoryOutput
	Err        error
}

// StateMsg reports the player state after a command.
type StateMsg struct {
	State ambientdto.StateOutput
	Err   error
}

type trackItem struct {
	category string
	track    string
}

func (i trackItem) Title() string       { return i.track }
func (i trackItem) Description() string { return i.category }
func (i trackItem) FilterValue() string { return i.category + " " + i.track }

// Model is a flat list of every track grouped by category.
type Model struct {
	port    AmbientPort
	list    list.Model
	state   ambientdto.StateOutput
	loaded  bool
	errText string
	width   int
	height  int
}

func New(port AmbientPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Ambient sounds"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	return Model{port: port, list: l, state: ambientdto.StateOutput{Status: "stopped"}}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		categories, err := m.port.Categories(context.Background())
		return LoadedMsg{Categories: categories, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, max(3, m.height-2))

	case LoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		var items []list.Item
		for _, c := range msg.Categories {
			for _, t := range c.Tracks {
				items = append(items, trackItem{category: c.Name, track: t})
			}
		}
		return m, m.list.SetItems(items)

	case StateMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.state = msg.State
		return m, nil

	case tea.KeyMsg:
		if m.port == nil || m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				return m, m.command(func(ctx context.Context) (ambientdto.StateOutput, error) {
					return m.port.Play(ctx, ambientdto.PlayInput{Category: item.category, Track: item.track})
				})
			}
		case " ":
			if m.state.Status == "playing" {
				return m, m.command(m.port.Pause)
			}
			return m, m.command(m.port.Resume)
		case "x":
			return m, m.command(m.port.Stop)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.port == nil {
		return theme.Muted.Render("ambient audio is not configured")
	}
	if m.loaded && len(m.list.Items()) == 0 && m.errText == "" {
		return theme.Muted.Render("no sound files found under the assets directory")
	}
	status := theme.Muted.Render("stopped")
	if m.state.Status != "stopped" {
		status = theme.Hot.Render(fmt.Sprintf("%s %s / %s", m.state.Status, m.state.Category, m.state.Track))
	}
	if m.errText != "" {
		status = lipgloss.NewStyle().Foreground(theme.Red).Render(m.errText)
	}
	hint := theme.Muted.Render("enter: play  space: pause/resume  x: stop")
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), status+"  "+hint)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// State is the last known player state.
func (m Model) State() ambientdto.StateOutput { return m.state }

func (m Model) command(call func(context.Context) (ambientdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := call(context.Background())
		return StateMsg{State: state, Err: err}
	}
}
