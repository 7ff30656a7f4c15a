package benchmark

import "time"

// Results is the outcome of one Measure call.
type Results struct {
	// AverageTime is the retained total divided by NbReplications.
	AverageTime time.Duration `json:"average_time"`
	// ShortestTime is the fastest retained sample.
	ShortestTime time.Duration `json:"shortest_time"`
	// LongestTime is the slowest retained sample.
	LongestTime time.Duration `json:"longest_time"`
	// NbReplications is the number of retained samples. Warm-up runs and
	// replaced spikes are not counted.
	NbReplications int `json:"nb_replications"`
	// NbSpikes is the number of reruns triggered by spike detection.
	NbSpikes int `json:"nb_spikes"`
}
