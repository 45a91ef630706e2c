package backup

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// TestBackupRestoreWorkflow walks the full backup, mutate, restore
// cycle and checks that restoring also preserves the pre-restore state
// as a new backup.
func TestBackupRestoreWorkflow(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Mutate the live database after taking the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec("INSERT INTO trackers VALUES ('t2', 'Journal')"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	// The restored database holds only the original row.
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM trackers").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("trackers after restore = %d, want 1", count)
	}

	// Restore saved the pre-restore state, so at least two backups
	// exist now.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("List() = %d backups after restore, want at least 2", len(backups))
	}
}
