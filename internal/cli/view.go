package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/babylog/internal/chart"
	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// viewerChrome is the number of lines used by the tab bar and help footer.
const viewerChrome = 4

type viewerKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k viewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Quit}
}

func (k viewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultViewerKeys() viewerKeyMap {
	return viewerKeyMap{
		Next: key.NewBinding(key.WithKeys("right", "l", "tab", "n"), key.WithHelp("→/tab", "next chart")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab", "p"), key.WithHelp("←", "prev chart")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "scroll down")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// chartViewer pages through rendered plots, one tab per chart.
type chartViewer struct {
	plots    []chart.Plot
	active   int
	vp       viewport.Model
	help     help.Model
	keys     viewerKeyMap
	width    int
	ready    bool
	quitting bool
}

func newChartViewer(plots []chart.Plot) *chartViewer {
	return &chartViewer{
		plots: plots,
		vp:    viewport.New(0, 0),
		help:  help.New(),
		keys:  defaultViewerKeys(),
	}
}

func (v *chartViewer) Init() tea.Cmd { return nil }

func (v *chartViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
		v.vp.Width = msg.Width
		v.vp.Height = max(1, msg.Height-viewerChrome)
		v.ready = true
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			v.quitting = true
			return v, tea.Quit
		case key.Matches(msg, v.keys.Next):
			v.show(v.active + 1)
			return v, nil
		case key.Matches(msg, v.keys.Prev):
			v.show(v.active - 1)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// show switches to plot i, wrapping around at either end.
func (v *chartViewer) show(i int) {
	if len(v.plots) == 0 {
		return
	}
	n := len(v.plots)
	v.active = ((i % n) + n) % n
	v.refresh()
}

func (v *chartViewer) refresh() {
	if len(v.plots) == 0 {
		v.vp.SetContent(formatter.Dim("No charts to show."))
		return
	}
	p := v.plots[v.active]
	content := p.Text
	if p.Image != "" {
		content += "\n" + formatter.Dim("saved to "+p.Image) + "\n"
	}
	v.vp.SetContent(content)
	v.vp.GotoTop()
}

func (v *chartViewer) View() string {
	if v.quitting {
		return ""
	}
	if !v.ready {
		return formatter.Dim("loading…")
	}
	var b strings.Builder
	b.WriteString(v.tabs())
	b.WriteString("\n\n")
	b.WriteString(v.vp.View())
	b.WriteString("\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

func (v *chartViewer) tabs() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	parts := make([]string, len(v.plots))
	for i, p := range v.plots {
		label := p.Metric.Name
		if p.Empty() {
			label += " (empty)"
		}
		if i == v.active {
			parts[i] = active.Render(label)
		} else {
			parts[i] = formatter.Dim(label)
		}
	}
	pos := formatter.Dim(fmt.Sprintf("%d/%d", v.active+1, len(v.plots)))
	return strings.Join(parts, formatter.Dim(" │ ")) + "  " + pos
}

// teaShower runs the chart viewer on the alternate screen.
type teaShower struct{}

func (teaShower) Show(plots []chart.Plot) error {
	_, err := tea.NewProgram(newChartViewer(plots), tea.WithAltScreen()).Run()
	return err
}
