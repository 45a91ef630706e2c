package sqlite

import (
	"fmt"

	"github.com/CaptainSharky/Tracker/internal/storage"
)

func (s *Store) GetSettings() (storage.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return storage.Settings{}, err
	}
	defer rows.Close()

	settings := storage.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return storage.Settings{}, err
		}
		switch key {
		case "first_day_of_week":
			settings.FirstDayOfWeek = value
		case "default_category":
			settings.DefaultCategory = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return storage.Settings{}, err
	}

	if count == 0 {
		return storage.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings storage.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("first_day_of_week", settings.FirstDayOfWeek); err != nil {
		return err
	}
	if _, err := stmt.Exec("default_category", settings.DefaultCategory); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notify()
	return nil
}
