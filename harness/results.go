// harness/results.go
// Package: harness
package harness

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/benchit/timefmt"
)

// summarize builds per-workload summaries from TrialResult rows, in the order
// the workloads were first seen.
func summarize(trials []TrialResult) []WorkloadSummary {
	var order []string
	byWorkload := map[string][]TrialResult{}
	for _, t := range trials {
		if _, ok := byWorkload[t.Workload]; !ok {
			order = append(order, t.Workload)
		}
		byWorkload[t.Workload] = append(byWorkload[t.Workload], t)
	}

	out := make([]WorkloadSummary, 0, len(order))
	for _, w := range order {
		rows := byWorkload[w]
		averages := make([]time.Duration, 0, len(rows))
		spikes := 0
		for _, r := range rows {
			averages = append(averages, r.Results.AverageTime)
			spikes += r.Results.NbSpikes
		}

		mean, std := meanStd(averages)
		out = append(out, WorkloadSummary{
			Workload:    w,
			Trials:      len(rows),
			AverageP50:  timefmt.Duration(quantile(averages, 0.50)),
			AverageP95:  timefmt.Duration(quantile(averages, 0.95)),
			AverageMean: timefmt.Duration(mean),
			AverageStd:  timefmt.Duration(std),
			Spikes:      spikes,
		})
	}
	return out
}

// buildSuiteResult packs everything with a timestamp.
func buildSuiteResult(cfg SuiteConfig, trials []TrialResult) SuiteResult {
	return SuiteResult{
		Config:          cfg,
		Trials:          trials,
		WorkloadReports: summarize(trials),
		GeneratedAt:     time.Now(),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// WriteSummary prints one row per workload with the p50/p95 and mean±std of
// the trial averages.
func WriteSummary(w io.Writer, res SuiteResult) error {
	rows := make([][]string, 0, len(res.WorkloadReports))
	for _, s := range res.WorkloadReports {
		rows = append(rows, []string{
			s.Workload,
			strconv.Itoa(s.Trials),
			s.AverageP50.String(),
			s.AverageP95.String(),
			fmt.Sprintf("%s ± %s", s.AverageMean, s.AverageStd),
			strconv.Itoa(s.Spikes),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Workload", "Trials", "Average p50", "Average p95", "Average mean ± std", "Spikes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
