// Package report formats measurement results as terminal tables or JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/timefmt"
)

// Entry pairs a workload name with the outcome of measuring it.
type Entry struct {
	Name     string
	Settings benchmark.Settings
	Results  benchmark.Results
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	spikeStyle  = cellStyle.Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Columns of the table rendered by Generate.
var Columns = []string{"Workload", "Average", "Shortest", "Longest", "Replications", "Spikes", "Spread"}

const spikesColumn = 5

// Generate writes a table with one row per entry to w.
func Generate(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("no results to report")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		r := e.Results
		rows = append(rows, []string{
			e.Name,
			timefmt.Format(r.AverageTime),
			timefmt.Format(r.ShortestTime),
			timefmt.Format(r.LongestTime),
			strconv.Itoa(r.NbReplications),
			strconv.Itoa(r.NbSpikes),
			formatSpread(r),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == spikesColumn && rows[row][col] != "0":
				return spikeStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

type jsonEntry struct {
	Name           string           `json:"name"`
	AverageTime    timefmt.Duration `json:"average_time"`
	ShortestTime   timefmt.Duration `json:"shortest_time"`
	LongestTime    timefmt.Duration `json:"longest_time"`
	NbReplications int              `json:"nb_replications"`
	NbSpikes       int              `json:"nb_spikes"`
	Settings       jsonSettings     `json:"settings"`
}

type jsonSettings struct {
	MinReplications      int              `json:"min_replications"`
	MaxReplications      int              `json:"max_replications"`
	MinExecutionTime     timefmt.Duration `json:"min_execution_time"`
	SpikeDetection       bool             `json:"spike_detection"`
	SpikeDetectionFactor float64          `json:"spike_detection_factor"`
	WarmUpRuns           int              `json:"warm_up_runs"`
}

// GenerateJSON writes entries as indented JSON with clock-text durations.
func GenerateJSON(w io.Writer, entries []Entry) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		s := e.Settings
		out = append(out, jsonEntry{
			Name:           e.Name,
			AverageTime:    timefmt.Duration(e.Results.AverageTime),
			ShortestTime:   timefmt.Duration(e.Results.ShortestTime),
			LongestTime:    timefmt.Duration(e.Results.LongestTime),
			NbReplications: e.Results.NbReplications,
			NbSpikes:       e.Results.NbSpikes,
			Settings: jsonSettings{
				MinReplications:      s.MinReplications,
				MaxReplications:      s.MaxReplications,
				MinExecutionTime:     timefmt.Duration(s.MinExecutionTime),
				SpikeDetection:       s.SpikeDetection,
				SpikeDetectionFactor: s.SpikeDetectionFactor,
				WarmUpRuns:           s.WarmUpRuns,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Summary renders r on a single line.
func Summary(r benchmark.Results) string {
	return faintStyle.Render(fmt.Sprintf(
		">>> [Average: %s] [Shortest: %s | Longest: %s] [Replications: %d | Spikes: %d]",
		timefmt.Format(r.AverageTime),
		timefmt.Format(r.ShortestTime),
		timefmt.Format(r.LongestTime),
		r.NbReplications,
		r.NbSpikes,
	))
}

// Spread is the distance between the slowest and the fastest retained sample
// relative to the fastest one, in percent.
func Spread(r benchmark.Results) float64 {
	if r.ShortestTime <= 0 {
		return 0
	}
	return float64(r.LongestTime-r.ShortestTime) / float64(r.ShortestTime) * 100
}

func formatSpread(r benchmark.Results) string {
	if r.ShortestTime <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", Spread(r))
}
