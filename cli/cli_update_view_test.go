package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/benchit/workloads"
)

func TestStateTransitions_And_View(t *testing.T) {
	m := initialModel(quickOptions())
	var started []string
	m.measure = func(w workloads.Workload) tea.Cmd {
		started = append(started, w.Name)
		return nil
	}

	// Set a window size so View() renders
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	// From the workload selector: press enter to start measuring the first item
	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = m2.(*model)
	if !m.isLoading || m.state != viewMeasuring {
		t.Fatalf("expected measuring; got loading=%v state=%v", m.isLoading, m.state)
	}
	if len(started) != 1 || started[0] != workloads.Names()[0] {
		t.Fatalf("expected one measurement of %s, got %v", workloads.Names()[0], started)
	}
	if v := m.View(); !strings.Contains(v, "Measuring "+workloads.Names()[0]) {
		t.Fatalf("expected measuring view, got %q", v)
	}

	// Keys other than quit do not start another measurement
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(started) != 1 {
		t.Fatalf("expected no new measurement while measuring, got %v", started)
	}

	// Ticks keep coming while loading
	_, cmd := m.Update(tickMsg{})
	if cmd == nil {
		t.Fatal("expected another tick while measuring")
	}

	// A failure ends in the result view with the error
	m2, _ = m.Update(measureErr(errTest("boom")))
	m = m2.(*model)
	if m.isLoading || m.state != viewResult || m.err == nil {
		t.Fatalf("expected error result; got loading=%v state=%v err=%v", m.isLoading, m.state, m.err)
	}

	// No more ticks once done
	_, cmd = m.Update(tickMsg{})
	if cmd != nil {
		t.Fatal("expected no tick after the measurement")
	}

	// Tab returns to the selector and clears the error
	m2, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = m2.(*model)
	if m.state != viewWorkloadSelector || m.err != nil {
		t.Fatalf("expected selector without error; got state=%v err=%v", m.state, m.err)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
