package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLogPathDefaultsUnderBase(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if got, want := mgr.LogPath(), filepath.Join(tmp, DefaultLogName); got != want {
		t.Fatalf("LogPath() = %q, want %q", got, want)
	}
	if got, want := mgr.BackupDir(), filepath.Join(tmp, DefaultBackupDirName); got != want {
		t.Fatalf("BackupDir() = %q, want %q", got, want)
	}
}

func TestLogPathOverride(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "elsewhere", "hours.txt")

	mgr, err := NewManager(tmp, WithLogFile(custom))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if mgr.LogPath() != custom {
		t.Fatalf("LogPath() = %q, want %q", mgr.LogPath(), custom)
	}
}

func TestEnsureLogFileCreatesEmptyFile(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(filepath.Join(tmp, "nested"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	path, err := mgr.EnsureLogFile()
	if err != nil {
		t.Fatalf("EnsureLogFile: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(contents) != 0 {
		t.Fatalf("log file contents = %q, want empty", contents)
	}

	if err := os.WriteFile(path, []byte("keep\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// Second ensure must not truncate.
	if _, err := mgr.EnsureLogFile(); err != nil {
		t.Fatalf("EnsureLogFile second call: %v", err)
	}
	contentsAgain, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile second: %v", err)
	}
	if string(contentsAgain) != "keep\n" {
		t.Fatalf("log file contents after second ensure = %q, want %q", contentsAgain, "keep\n")
	}
}

func TestBackupCopiesLog(t *testing.T) {
	tmp := t.TempDir()
	stamp := time.UnixMilli(1700000000123)

	mgr, err := NewManager(tmp, WithClock(func() time.Time { return stamp }))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	path, err := mgr.EnsureLogFile()
	if err != nil {
		t.Fatalf("EnsureLogFile: %v", err)
	}
	if err := os.WriteFile(path, []byte("2025-11-02 09:00; WORK; START\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	backup, err := mgr.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	want := filepath.Join(tmp, DefaultBackupDirName, "1700000000123_"+DefaultLogName)
	if backup != want {
		t.Fatalf("Backup() = %q, want %q", backup, want)
	}
	copied, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("ReadFile backup: %v", err)
	}
	if string(copied) != "2025-11-02 09:00; WORK; START\n" {
		t.Fatalf("backup contents = %q", copied)
	}
}

func TestBackupFailsWithoutLog(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, err := mgr.Backup(); err == nil {
		t.Fatalf("Backup expected error for missing log file")
	}
}
