package models

import "time"

// Tracker represents a recurring habit with a weekly schedule
type Tracker struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Color     string    `json:"color"` // hex RGB, e.g. "#FD4C49"
	Emoji     string    `json:"emoji"`
	Schedule  Schedule  `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
}

// Category is a named grouping of trackers. Titles are unique.
type Category struct {
	Title string `json:"title"`
}

// CompletionRecord is the fact that a tracker was completed on a calendar
// day. Day is in YYYY-MM-DD format; at most one record exists per
// (tracker, day) pair.
type CompletionRecord struct {
	TrackerID string `json:"tracker_id"`
	Day       string `json:"day"`
}
