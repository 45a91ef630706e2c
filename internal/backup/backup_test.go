package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB creates a small sqlite database in a temp dir and returns
// its path.
func newTestDB(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tracker.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE trackers (id TEXT PRIMARY KEY, title TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO trackers VALUES ('t1', 'Morning run')"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file not created: %v", err)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, BackupFilePrefix) || !strings.HasSuffix(base, BackupFileSuffix) {
		t.Errorf("backup name %q does not match %s*%s", base, BackupFilePrefix, BackupFileSuffix)
	}

	// Backup must itself be a usable database with the data intact.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open backup: %v", err)
	}
	defer db.Close()
	var title string
	if err := db.QueryRow("SELECT title FROM trackers WHERE id = 't1'").Scan(&title); err != nil {
		t.Fatalf("query backup: %v", err)
	}
	if title != "Morning run" {
		t.Errorf("backup title = %q, want Morning run", title)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.Create(); err == nil {
		t.Error("Create() with missing database should fail")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	first, err := m.Create()
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	second, err := m.Create()
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if first == second {
		t.Errorf("two backups share the same path: %s", first)
	}
}

func TestListBackups(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	// Empty before any backup exists.
	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("List() = %d backups before Create, want 0", len(backups))
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// An unrelated file in the backup dir is ignored.
	junk := filepath.Join(m.BackupDir(), "notes.txt")
	if err := os.WriteFile(junk, []byte("hi"), 0600); err != nil {
		t.Fatalf("write junk file: %v", err)
	}

	backups, err = m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("List() = %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup size is zero")
	}
}

func TestRotation(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Seed MaxBackups fake backups with old, distinct timestamps.
	for i := 0; i < MaxBackups; i++ {
		stamp := "20240101-1200" + string(rune('0'+i/10)) + string(rune('0'+i%10))
		name := BackupFilePrefix + stamp + BackupFileSuffix
		if err := copyFile(dbPath, filepath.Join(m.BackupDir(), name)); err != nil {
			t.Fatalf("seed backup: %v", err)
		}
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("List() = %d backups after rotation, want %d", len(backups), MaxBackups)
	}
	// The oldest seeded backup is the one rotated out.
	for _, b := range backups {
		if strings.Contains(b.Path, "20240101-120000") {
			t.Errorf("oldest backup %s survived rotation", b.Path)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Change the live database after the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec("UPDATE trackers SET title = 'Evening run' WHERE id = 't1'"); err != nil {
		t.Fatalf("update: %v", err)
	}
	db.Close()

	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db.Close()
	var title string
	if err := db.QueryRow("SELECT title FROM trackers WHERE id = 't1'").Scan(&title); err != nil {
		t.Fatalf("query restored db: %v", err)
	}
	if title != "Morning run" {
		t.Errorf("restored title = %q, want Morning run", title)
	}
}

func TestRestoreInvalidBackup(t *testing.T) {
	dbPath := newTestDB(t)
	m := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database at all"), 0600); err != nil {
		t.Fatalf("write bogus file: %v", err)
	}

	if err := m.Restore(bogus); err == nil {
		t.Error("Restore() of a non-sqlite file should fail")
	}
	if err := m.Restore(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("Restore() of a missing file should fail")
	}
}
