package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/CaptainSharky/Tracker/internal/storage"
)

func fetchOrInsertCategory(tx *sql.Tx, title string) error {
	_, err := tx.Exec("INSERT OR IGNORE INTO categories (title) VALUES (?)", title)
	return err
}

func (s *Store) CreateCategory(title string) error {
	var existing string
	err := s.db.QueryRow("SELECT title FROM categories WHERE title = ?", title).Scan(&existing)
	if err == nil {
		return fmt.Errorf("category %q: %w", title, storage.ErrDuplicate)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if _, err := s.db.Exec("INSERT INTO categories (title) VALUES (?)", title); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) GetCategoryTitles() ([]string, error) {
	rows, err := s.db.Query("SELECT title FROM categories ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}

	return titles, rows.Err()
}

func (s *Store) RenameCategory(oldTitle, newTitle string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRow("SELECT title FROM categories WHERE title = ?", newTitle).Scan(&existing)
	if err == nil {
		return fmt.Errorf("category %q: %w", newTitle, storage.ErrDuplicate)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	result, err := tx.Exec("UPDATE categories SET title = ? WHERE title = ?", newTitle, oldTitle)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("category %q: %w", oldTitle, storage.ErrNotFound)
	}

	if _, err := tx.Exec("UPDATE trackers SET category_title = ? WHERE category_title = ?", newTitle, oldTitle); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) DeleteCategory(title, fallback string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRow("SELECT title FROM categories WHERE title = ?", title).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("category %q: %w", title, storage.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var trackerCount int
	if err := tx.QueryRow("SELECT COUNT(*) FROM trackers WHERE category_title = ?", title).Scan(&trackerCount); err != nil {
		return err
	}

	if trackerCount > 0 {
		if fallback == "" {
			return fmt.Errorf("category %q still has %d tracker(s) and no fallback was given: %w", title, trackerCount, storage.ErrInvalidModel)
		}
		if err := fetchOrInsertCategory(tx, fallback); err != nil {
			return err
		}
		if _, err := tx.Exec("UPDATE trackers SET category_title = ? WHERE category_title = ?", fallback, title); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM categories WHERE title = ?", title); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notify()
	return nil
}
