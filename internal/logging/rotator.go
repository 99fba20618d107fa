package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFileName      = "lightbox.log"
	logFilePerm      = 0o600
	defaultMaxSizeMB = 10
	bytesPerMegabyte = 1024 * 1024
	backupTimeLayout = "2006-01-02-15-04-05"
	hoursPerDay      = 24
)

// LogRotator is an io.Writer that rotates its file once it exceeds maxSize.
// Rotated files are renamed with a timestamp suffix and pruned by age and count.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64 // bytes
	maxAge      time.Duration
	maxBackups  int
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) the log file in baseDir.
func NewLogRotator(baseDir string, maxSizeMB, maxBackups, maxAgeDays int) (*LogRotator, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}
	r := &LogRotator{
		baseDir:    baseDir,
		baseName:   logFileName,
		maxSize:    int64(maxSizeMB) * bytesPerMegabyte,
		maxAge:     time.Duration(maxAgeDays) * hoursPerDay * time.Hour,
		maxBackups: maxBackups,
	}

	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) openCurrentFile() error {
	logPath := filepath.Join(r.baseDir, r.baseName)

	r.currentSize = 0
	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if r.currentFile != nil {
		_ = r.currentFile.Close()
		r.currentFile = nil
	}

	backupName := fmt.Sprintf("%s.%s", r.baseName, time.Now().Format(backupTimeLayout))
	currentPath := filepath.Join(r.baseDir, r.baseName)
	if err := os.Rename(currentPath, filepath.Join(r.baseDir, backupName)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	r.prune()
	return r.openCurrentFile()
}

// prune removes backups older than maxAge, then the oldest beyond maxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.baseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.baseDir, info.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.baseDir, info.Name()))
	}
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
