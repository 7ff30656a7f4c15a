// cli/cli.go
package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/report"
	"github.com/mwiater/benchit/workloads"
)

// Options configures the interactive measurement UI.
type Options struct {
	// Settings are applied to every measurement started from the UI.
	Settings benchmark.Settings
	// Params tune the workload instances.
	Params workloads.Params
	// Logger receives the per-sample diagnostics of the engine. Nil discards them.
	Logger *slog.Logger
}

// viewState represents the current state of the application's view.
type viewState int

const (
	// viewWorkloadSelector is the state where the user picks a workload.
	viewWorkloadSelector viewState = iota
	// viewMeasuring is the state while a measurement runs.
	viewMeasuring
	// viewResult shows the latest result and the results collected so far.
	viewResult
)

// model is the Bubble Tea model of the measurement UI.
type model struct {
	opts  Options
	state viewState
	// Indicates if a measurement is in progress.
	isLoading bool
	err       error

	workloadList list.Model
	spinner      spinner.Model

	selected workloads.Workload
	// Results of this session, most recent last.
	entries []report.Entry

	width, height int
	// Timestamp when the running measurement started.
	requestStartTime time.Time

	// measure runs one measurement. Replaced in tests.
	measure func(workloads.Workload) tea.Cmd
}

// initialModel sets up the spinner and the workload list.
func initialModel(opts Options) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	all := workloads.All()
	items := make([]list.Item, len(all))
	for i, w := range all {
		items[i] = item{title: w.Name, desc: w.Description}
	}
	workloadList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	workloadList.Title = "Select a Workload"

	m := &model{
		opts:         opts,
		state:        viewWorkloadSelector,
		spinner:      s,
		workloadList: workloadList,
	}
	m.measure = func(w workloads.Workload) tea.Cmd { return measureCmd(w, m.opts) }
	return m
}

// item is a selectable workload.
type item struct {
	title string
	desc  string
	// Indicates that the workload has been measured in this session.
	measured bool
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the workload description, or a marker once the
// workload has been measured.
func (i item) Description() string {
	if i.measured {
		return "Measured"
	}
	return i.desc
}

// FilterValue returns the title of the item, used for filtering in the list.
func (i item) FilterValue() string { return i.title }

// measuredMsg is sent when a measurement has completed.
type measuredMsg struct{ entry report.Entry }

// measureErr is sent when the action, its init or its check failed.
type measureErr error

// tickMsg refreshes the elapsed timer while measuring.
type tickMsg time.Time

// measureCmd measures w with the settings and parameters of opts.
func measureCmd(w workloads.Workload, opts Options) tea.Cmd {
	return func() tea.Msg {
		logger := opts.Logger
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		inst := w.Instantiate(opts.Params)
		b := benchmark.New(opts.Settings, benchmark.WithLogger(logger.With("workload", w.Name)))

		res, err := b.Measure(inst.Action, inst.Init)
		if err != nil {
			return measureErr(fmt.Errorf("%s: %w", w.Name, err))
		}
		if err := inst.Check(); err != nil {
			return measureErr(err)
		}
		logger.Debug("measured", "workload", w.Name, "replications", res.NbReplications, "spikes", res.NbSpikes)
		return measuredMsg{entry: report.Entry{Name: w.Name, Settings: b.Settings(), Results: res}}
	}
}

// tickCmd returns a Bubble Tea command that sends a tickMsg at a regular interval.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init returns a command to start the spinner animation.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the application's state accordingly.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "esc":
			if m.state == viewResult {
				m.state = viewWorkloadSelector
				m.err = nil
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.workloadList.SetSize(msg.Width-2, msg.Height-4)

	case measuredMsg:
		m.isLoading = false
		m.entries = append(m.entries, msg.entry)
		m.markMeasured(msg.entry.Name)
		m.state = viewResult
		return m, nil

	case measureErr:
		m.isLoading = false
		m.err = msg
		m.state = viewResult
		return m, nil

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil
	}

	if m.state == viewWorkloadSelector {
		m.workloadList, cmd = m.workloadList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selected, ok := m.workloadList.SelectedItem().(item); ok {
				w, err := workloads.Lookup(selected.title)
				if err != nil {
					m.err = err
					return m, nil
				}
				m.selected = w
				m.state = viewMeasuring
				m.isLoading = true
				m.requestStartTime = time.Now()
				m.err = nil
				cmds = append(cmds, m.spinner.Tick, m.measure(w), tickCmd())
			}
		}
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) markMeasured(name string) {
	items := m.workloadList.Items()
	for i, li := range items {
		if it, ok := li.(item); ok && it.title == name {
			it.measured = true
			m.workloadList.SetItem(i, it)
		}
	}
}

// View renders the application's UI based on its current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewWorkloadSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.workloadList.View())

	case viewMeasuring:
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		return fmt.Sprintf("\n  %s Measuring %s... %ss\n", m.spinner.View(), m.selected.Name, timer)

	case viewResult:
		return m.resultView()

	default:
		return "Unknown state"
	}
}

// resultView renders the latest result followed by every result of the session.
func (m *model) resultView() string {
	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	help := lipgloss.NewStyle().Faint(true).Render(" (tab to choose another workload, q to quit)")
	builder.WriteString(headerStyle.Render(fmt.Sprintf("Workload: %s", m.selected.Name)) + help + "\n\n")

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		builder.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
		return builder.String()
	}

	if n := len(m.entries); n > 0 {
		builder.WriteString(report.Summary(m.entries[n-1].Results) + "\n\n")
		if err := report.Generate(&builder, m.entries); err != nil {
			builder.WriteString(err.Error())
		}
	}
	return builder.String()
}

// StartGUI runs the interactive measurement UI and blocks until it exits.
// Diagnostics, including the engine's per-sample log, go to debug.log.
func StartGUI(opts Options) error {
	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer f.Close()

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m := initialModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
