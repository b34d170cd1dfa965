package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// DefaultLogName is the log file created under the base directory.
	DefaultLogName = "stint.log"
	// DefaultBackupDirName holds copies taken before every mutation.
	DefaultBackupDirName = "backups"
)

// Manager centralizes where the log and its backups live on disk.
type Manager struct {
	basePath  string
	logPath   string
	backupDir string
	now       func() time.Time
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogFile points the manager at an explicit log file instead of
// <base>/stint.log.
func WithLogFile(path string) Option {
	return func(m *Manager) {
		m.logPath = path
	}
}

// WithBackupDir overrides the backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.backupDir = dir
	}
}

// WithClock replaces the clock used to name backup files.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.stint (or another location determined by
// ResolveBasePath).
func NewManager(basePath string, opts ...Option) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	m := &Manager{basePath: abs, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	if m.logPath == "" {
		m.logPath = filepath.Join(abs, DefaultLogName)
	}
	if m.logPath, err = absolute(m.logPath); err != nil {
		return nil, err
	}
	if m.backupDir == "" {
		m.backupDir = filepath.Join(abs, DefaultBackupDirName)
	}
	if m.backupDir, err = absolute(m.backupDir); err != nil {
		return nil, err
	}

	return m, nil
}

func absolute(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// BasePath returns the root directory stint stores data in.
func (m *Manager) BasePath() string {
	return m.basePath
}

// LogPath returns the absolute path of the log file. The file may not exist yet.
func (m *Manager) LogPath() string {
	return m.logPath
}

// BackupDir returns the directory receiving backup copies.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// EnsureLogFile guarantees the directory tree and the log file exist.
// It returns the absolute path to the file.
func (m *Manager) EnsureLogFile() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	if err := os.MkdirAll(filepath.Dir(m.logPath), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(m.logPath, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close log file: %w", err)
	}

	return m.logPath, nil
}

// Backup copies the current log into the backup directory as
// <unix-millis>_<log name> and returns the path of the copy.
func (m *Manager) Backup() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	src, err := os.Open(m.logPath)
	if err != nil {
		return "", fmt.Errorf("open log for backup: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(m.backupDir, dirPermissions); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", m.now().UnixMilli(), filepath.Base(m.logPath))
	target := filepath.Join(m.backupDir, name)
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("copy backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close backup: %w", err)
	}

	return target, nil
}
