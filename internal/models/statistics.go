package models

// Statistics holds the aggregate numbers shown on the statistics screen.
// They are derived from trackers and completion records on demand and
// never persisted.
type Statistics struct {
	BestStreak       int `json:"best_streak"`
	PerfectDays      int `json:"perfect_days"`
	TotalCompletions int `json:"total_completions"`
	AveragePerDay    int `json:"average_per_day"`
}

// IsZero reports whether every aggregate is zero, i.e. there is nothing
// to show yet.
func (s Statistics) IsZero() bool {
	return s.BestStreak == 0 && s.PerfectDays == 0 && s.TotalCompletions == 0 && s.AveragePerDay == 0
}
