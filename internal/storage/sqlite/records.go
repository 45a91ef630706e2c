package sqlite

import (
	"time"

	"github.com/CaptainSharky/Tracker/internal/models"
)

func (s *Store) HasRecord(trackerID, day string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM records WHERE tracker_id = ? AND day = ?",
		trackerID, day).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) AddRecord(rec models.CompletionRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO records (tracker_id, day, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(tracker_id, day) DO NOTHING`,
		rec.TrackerID, rec.Day, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) DeleteRecord(trackerID, day string) error {
	_, err := s.db.Exec("DELETE FROM records WHERE tracker_id = ? AND day = ?", trackerID, day)
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) CountRecords(trackerID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records WHERE tracker_id = ?", trackerID).Scan(&count)
	return count, err
}

func (s *Store) CountAllRecords() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

func (s *Store) RecordsForDay(day string) ([]models.CompletionRecord, error) {
	rows, err := s.db.Query("SELECT tracker_id, day FROM records WHERE day = ?", day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var rec models.CompletionRecord
		if err := rows.Scan(&rec.TrackerID, &rec.Day); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *Store) RecordDaysForTracker(trackerID string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT day FROM records WHERE tracker_id = ? ORDER BY day", trackerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

func (s *Store) RecordCountsByDay() (map[string]int, error) {
	rows, err := s.db.Query("SELECT day, COUNT(*) FROM records GROUP BY day")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day] = count
	}

	return counts, rows.Err()
}
