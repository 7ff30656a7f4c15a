// cli/cli_test.go
package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/report"
	"github.com/mwiater/benchit/workloads"
)

func quickOptions() Options {
	s := benchmark.DefaultSettings()
	s.MinExecutionTime = 0
	s.WarmUpRuns = 0
	s.SpikeDetection = false
	return Options{
		Settings: s,
		Params:   workloads.Params{Pause: time.Microsecond, Size: 100},
	}
}

func TestUpdate(t *testing.T) {
	m := initialModel(quickOptions())

	// Test case 1: Initial state
	if m.state != viewWorkloadSelector {
		t.Errorf("Expected initial state to be viewWorkloadSelector, got %v", m.state)
	}

	// Test case 2: Quit message
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	// Test case 3: Ctrl+c
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	// Test case 4: Window size message
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 100})
	m = newModel.(*model)
	if m.width != 100 || m.height != 100 {
		t.Errorf("Expected width and height to be 100, got %d and %d", m.width, m.height)
	}
}

func TestView(t *testing.T) {
	m := initialModel(quickOptions())

	// Test case 1: Initializing view
	view := m.View()
	if view != "Initializing..." {
		t.Errorf("Expected view to be 'Initializing...', got '%s'", view)
	}

	// Test case 2: Workload selector view, sized like a real terminal
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(*model)
	view = m.View()
	if !strings.Contains(view, "Select a Workload") {
		t.Errorf("Expected view to contain 'Select a Workload', got '%s'", view)
	}

	// Test case 3: Error view
	m.state = viewResult
	m.err = measureErr(errors.New("test error"))
	view = m.View()
	if !strings.Contains(view, "Error: test error") {
		t.Errorf("Expected view to contain the error, got '%s'", view)
	}
}

func TestMeasureCmd(t *testing.T) {
	w, err := workloads.Lookup("sqrt")
	if err != nil {
		t.Fatal(err)
	}
	msg := measureCmd(w, quickOptions())()
	done, ok := msg.(measuredMsg)
	if !ok {
		t.Fatalf("expected measuredMsg, got %T: %v", msg, msg)
	}
	if done.entry.Name != "sqrt" {
		t.Errorf("entry name = %q, want sqrt", done.entry.Name)
	}
	if done.entry.Results.NbReplications != 3 {
		t.Errorf("replications = %d, want 3", done.entry.Results.NbReplications)
	}
}

func TestMeasureCmd_Error(t *testing.T) {
	w, err := workloads.Lookup("sequence")
	if err != nil {
		t.Fatal(err)
	}
	opts := quickOptions()
	opts.Params.Script = []time.Duration{time.Microsecond}
	msg := measureCmd(w, opts)()
	merr, ok := msg.(measureErr)
	if !ok {
		t.Fatalf("expected measureErr, got %T", msg)
	}
	if !errors.Is(merr, workloads.ErrScriptExhausted) {
		t.Errorf("expected ErrScriptExhausted, got %v", merr)
	}
	if !strings.HasPrefix(merr.Error(), "sequence: ") {
		t.Errorf("expected workload name prefix, got %q", merr.Error())
	}
}

func TestResultView(t *testing.T) {
	m := initialModel(quickOptions())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	entry := report.Entry{
		Name:     "sort",
		Settings: benchmark.DefaultSettings(),
		Results: benchmark.Results{
			AverageTime:    100 * time.Millisecond,
			ShortestTime:   90 * time.Millisecond,
			LongestTime:    110 * time.Millisecond,
			NbReplications: 3,
		},
	}
	m2, _ := m.Update(measuredMsg{entry: entry})
	m = m2.(*model)

	if m.state != viewResult || m.isLoading {
		t.Fatalf("expected result view; got loading=%v state=%v", m.isLoading, m.state)
	}
	if len(m.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m.entries))
	}
	view := m.View()
	for _, want := range []string{"Average: 00:00:00.100000000", "Replications", "sort"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
	if it := m.workloadList.Items()[0].(item); it.title != "sort" || !it.measured {
		t.Errorf("expected sort to be marked measured, got %+v", it)
	}
}
