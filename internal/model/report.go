package model

// ItemStats aggregates every response for one produce item.
type ItemStats struct {
	WouldThrowCount           int     `json:"would_throw_count"`
	WouldNotThrowCount        int     `json:"would_not_throw_count"`
	AverageExpectedRancidness float64 `json:"average_expected_rancidness"`
	AverageDesiredRancidness  float64 `json:"average_desired_rancidness"`
}

// Report maps each tracked item to its aggregate statistics. The counts
// always sum to the number of ingested rows; the averages cover only rows
// where the rating parsed, and stay 0 when no row had one.
type Report map[string]ItemStats
