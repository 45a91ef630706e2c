package storage

import "github.com/CaptainSharky/Tracker/internal/models"

type Settings struct {
	FirstDayOfWeek  string `json:"first_day_of_week"`
	DefaultCategory string `json:"default_category"`
}

// TrackerRow is a tracker together with the title of the category that
// owns it, as returned by FindTrackers.
type TrackerRow struct {
	Tracker  models.Tracker
	Category string
}

// TrackerQuery is the predicate set the store evaluates when filtering
// trackers. Zero-valued fields are inactive; active fields combine with
// logical AND. Results are ordered by category title, then tracker title.
type TrackerQuery struct {
	// ScheduleMask filters to trackers whose schedule intersects the
	// mask. Zero means no weekday filter.
	ScheduleMask uint16
	// TitleContains is a case-insensitive substring match on the title.
	TitleContains string
	// CompletedOn keeps only trackers with a completion record on the
	// given day; NotCompletedOn keeps only those without one.
	CompletedOn    string
	NotCompletedOn string
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Trackers
	AddTracker(t models.Tracker, category string) error
	GetTracker(id string) (models.Tracker, error)
	GetTrackerByTitle(title string) (models.Tracker, error)
	GetAllTrackers() ([]models.Tracker, error)
	// UpdateTracker rewrites the tracker's attributes. A non-empty
	// category reassigns it, creating the category if needed.
	UpdateTracker(t models.Tracker, category string) error
	// DeleteTracker removes the tracker and all its completion records.
	DeleteTracker(id string) error
	FindTrackers(q TrackerQuery) ([]TrackerRow, error)

	// Categories
	CreateCategory(title string) error
	GetCategoryTitles() ([]string, error)
	RenameCategory(oldTitle, newTitle string) error
	// DeleteCategory removes the category, reassigning its trackers to
	// the fallback category. With an empty fallback the delete is
	// rejected while trackers still reference the category.
	DeleteCategory(title, fallback string) error

	// Completion records
	HasRecord(trackerID, day string) (bool, error)
	AddRecord(rec models.CompletionRecord) error
	DeleteRecord(trackerID, day string) error
	CountRecords(trackerID string) (int, error)
	CountAllRecords() (int, error)
	RecordsForDay(day string) ([]models.CompletionRecord, error)
	// RecordDaysForTracker returns the tracker's completion days in
	// ascending order.
	RecordDaysForTracker(trackerID string) ([]string, error)
	// RecordCountsByDay returns, for every day with at least one record,
	// the number of records on that day.
	RecordCountsByDay() (map[string]int, error)

	// OnChange registers a callback fired after every successful
	// mutation. Multiple subscribers are supported; each fires once per
	// mutation.
	OnChange(fn func())

	// Utils
	GetConfigPath() string
}
