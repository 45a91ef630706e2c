package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/storage"
)

const trackerColumns = "id, title, color, emoji, schedule, created_at"

func scanTracker(row interface{ Scan(...any) error }) (models.Tracker, error) {
	var t models.Tracker
	var mask int64
	var createdAt string

	if err := row.Scan(&t.ID, &t.Title, &t.Color, &t.Emoji, &mask, &createdAt); err != nil {
		return models.Tracker{}, err
	}

	t.Schedule = models.ScheduleFromMask(uint16(mask))

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Tracker{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	t.CreatedAt = parsed

	return t, nil
}

func (s *Store) AddTracker(t models.Tracker, category string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fetchOrInsertCategory(tx, category); err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO trackers (id, title, color, emoji, schedule, category_title, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Color, t.Emoji, int64(t.Schedule.Mask()), category,
		t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) GetTracker(id string) (models.Tracker, error) {
	row := s.db.QueryRow("SELECT "+trackerColumns+" FROM trackers WHERE id = ?", id)
	t, err := scanTracker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tracker{}, fmt.Errorf("tracker %s: %w", id, storage.ErrNotFound)
	}
	return t, err
}

func (s *Store) GetTrackerByTitle(title string) (models.Tracker, error) {
	row := s.db.QueryRow("SELECT "+trackerColumns+" FROM trackers WHERE title = ? LIMIT 1", title)
	t, err := scanTracker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tracker{}, fmt.Errorf("tracker %q: %w", title, storage.ErrNotFound)
	}
	return t, err
}

func (s *Store) GetAllTrackers() ([]models.Tracker, error) {
	rows, err := s.db.Query("SELECT " + trackerColumns + " FROM trackers ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trackers []models.Tracker
	for rows.Next() {
		t, err := scanTracker(rows)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, t)
	}

	return trackers, rows.Err()
}

func (s *Store) UpdateTracker(t models.Tracker, category string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var result sql.Result
	if category != "" {
		if err := fetchOrInsertCategory(tx, category); err != nil {
			return err
		}
		result, err = tx.Exec(`
			UPDATE trackers SET title = ?, color = ?, emoji = ?, schedule = ?, category_title = ?
			WHERE id = ?`,
			t.Title, t.Color, t.Emoji, int64(t.Schedule.Mask()), category, t.ID)
	} else {
		result, err = tx.Exec(`
			UPDATE trackers SET title = ?, color = ?, emoji = ?, schedule = ?
			WHERE id = ?`,
			t.Title, t.Color, t.Emoji, int64(t.Schedule.Mask()), t.ID)
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("tracker %s: %w", t.ID, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) DeleteTracker(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Completion records go with the tracker
	if _, err := tx.Exec("DELETE FROM records WHERE tracker_id = ?", id); err != nil {
		return err
	}

	result, err := tx.Exec("DELETE FROM trackers WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("tracker %s: %w", id, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) FindTrackers(q storage.TrackerQuery) ([]storage.TrackerRow, error) {
	query := `
		SELECT t.id, t.title, t.color, t.emoji, t.schedule, t.created_at, t.category_title
		FROM trackers t
		WHERE 1=1`
	var args []any

	if q.ScheduleMask != 0 {
		query += " AND (t.schedule & ?) != 0"
		args = append(args, int64(q.ScheduleMask))
	}
	if q.CompletedOn != "" {
		query += " AND EXISTS (SELECT 1 FROM records r WHERE r.tracker_id = t.id AND r.day = ?)"
		args = append(args, q.CompletedOn)
	}
	if q.NotCompletedOn != "" {
		query += " AND NOT EXISTS (SELECT 1 FROM records r WHERE r.tracker_id = t.id AND r.day = ?)"
		args = append(args, q.NotCompletedOn)
	}

	query += " ORDER BY t.category_title, t.title"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// The title match is done here rather than in SQL: sqlite's lower()
	// folds ASCII only, so non-ASCII titles need Go's Unicode casing.
	needle := strings.ToLower(q.TitleContains)

	var result []storage.TrackerRow
	for rows.Next() {
		var t models.Tracker
		var mask int64
		var createdAt, category string

		if err := rows.Scan(&t.ID, &t.Title, &t.Color, &t.Emoji, &mask, &createdAt, &category); err != nil {
			return nil, err
		}

		if needle != "" && !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}

		t.Schedule = models.ScheduleFromMask(uint16(mask))
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for tracker %s: %w", t.ID, err)
		}

		result = append(result, storage.TrackerRow{Tracker: t, Category: category})
	}

	return result, rows.Err()
}
