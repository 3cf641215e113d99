// Package logsession implements the per-session append-only rotating log
// writer (§4.4): a current file at "<dir>/session-<session_id>.log" plus
// up to N rotated siblings, with size-triggered rotation and optional
// gzip compression on roll. Grounded on the reference implementation's
// SessionLogger/ThreadSafeSessionLogger (logging/session.rs), rendered in
// Go as a single mutex-guarded type rather than an inner/wrapper pair
// since Go has no ownership-transfer equivalent to into_thread_safe().
package logsession

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/ids"
)

// Config governs rotation behavior for one Logger.
type Config struct {
	MaxFileSizeBytes   int64
	MaxFilesPerSession int
	CompressOnRoll     bool
}

// DefaultConfig mirrors the compiled-in defaults from internal/constants.
func DefaultConfig() Config {
	return Config{
		MaxFileSizeBytes:   constants.MaxLogFileSize,
		MaxFilesPerSession: constants.MaxFilesPerSession,
		CompressOnRoll:     constants.DefaultCompressOnRoll,
	}
}

// Logger is the thread-safe handle; write calls are globally ordered by
// mu (§5: "any two concurrent writers observe a serialization consistent
// with program order on each thread").
type Logger struct {
	mu          sync.Mutex
	sessionID   ids.SessionID
	dir         string
	file        *os.File
	path        string
	currentSize int64
	config      Config
}

// Open creates or appends to the session's current log file, creating dir
// if necessary (§4.4 contract: open(session_id, directory, config) ->
// Logger).
func Open(sessionID ids.SessionID, dir string, config Config) (*Logger, *errs.Error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.IOError(fmt.Sprintf("failed to create log directory: %v", err))
	}

	path := filepath.Join(dir, fmt.Sprintf("%s%s%s", constants.SessionLogPrefix, sessionID, constants.SessionLogExt))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errs.IOError(fmt.Sprintf("failed to open log file: %v", err))
	}

	info, err := f.Stat()
	var size int64
	if err == nil {
		size = info.Size()
	}

	return &Logger{
		sessionID:   sessionID,
		dir:         dir,
		file:        f,
		path:        path,
		currentSize: size,
		config:      config,
	}, nil
}

// SessionID returns the session this logger serves.
func (l *Logger) SessionID() ids.SessionID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessionID
}

// Write appends line + "\n" atomically with respect to rotation: if the
// pending append would push the file past the size threshold, rotate
// first, then append to the new current file (§4.4).
func (l *Logger) Write(line string) *errs.Error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := []byte(line + "\n")

	if l.currentSize+int64(len(entry)) > l.config.MaxFileSizeBytes {
		if err := l.rotate(); err != nil {
			return err
		}
	}

	if _, err := l.file.Write(entry); err != nil {
		return errs.IOError(fmt.Sprintf("failed to write to log file: %v", err))
	}
	if err := l.file.Sync(); err != nil {
		return errs.IOError(fmt.Sprintf("failed to flush log file: %v", err))
	}

	l.currentSize += int64(len(entry))
	return nil
}

// rotate implements the rotation algorithm from §4.4: sync current file,
// shift the ring of rotated siblings, roll the current file into position
// 1 (compressing it first if configured), then open a fresh current file.
// Must be called with mu held.
func (l *Logger) rotate() *errs.Error {
	_ = l.file.Sync()

	// Shift the ring: position i moves to i+1, for i from N-1 down to 1.
	// The reference implementation's loop also special-cases i ==
	// MaxFilesPerSession for removal instead of rename, but its own range
	// (1..max).rev() never reaches that index — dead code, omitted here
	// per the documented open question.
	for i := l.config.MaxFilesPerSession - 1; i >= 1; i-- {
		oldPath := l.rotatedPath(i)
		newPath := l.rotatedPath(i + 1)
		if _, err := os.Stat(oldPath); err == nil {
			_ = os.Rename(oldPath, newPath)
		}
	}

	if l.config.CompressOnRoll {
		uncompressed := l.uncompressedRotatedPath(1)
		_ = os.Rename(l.path, uncompressed)
		_ = l.compressFile(uncompressed)
	} else {
		rotated := l.rotatedPath(1)
		_ = os.Rename(l.path, rotated)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.IOError(fmt.Sprintf("failed to create new log file after rotation: %v", err))
	}
	l.file = f
	l.currentSize = 0
	return nil
}

// rotatedPath returns "<base>.log.<index>[.gz]" per the configured
// compression flag.
func (l *Logger) rotatedPath(index int) string {
	if l.config.CompressOnRoll {
		return fmt.Sprintf("%s.%d.gz", l.path, index)
	}
	return fmt.Sprintf("%s.%d", l.path, index)
}

// uncompressedRotatedPath is the plaintext staging path used before
// compress-in-place produces the ".gz" sibling.
func (l *Logger) uncompressedRotatedPath(index int) string {
	return fmt.Sprintf("%s.%d", l.path, index)
}

// compressFile gzips path in place, producing "<path>.gz" and removing
// the plaintext — no plaintext rotated file remains on disk when
// compression is enabled (§4.4 invariant (iii)).
func (l *Logger) compressFile(path string) *errs.Error {
	input, err := os.ReadFile(path)
	if err != nil {
		return errs.IOError(fmt.Sprintf("failed to read file for compression: %v", err))
	}

	compressedPath := path + ".gz"
	output, err := os.Create(compressedPath)
	if err != nil {
		return errs.IOError(fmt.Sprintf("failed to create compressed file: %v", err))
	}
	defer output.Close()

	encoder := gzip.NewWriter(output)
	if _, err := encoder.Write(input); err != nil {
		return errs.IOError(fmt.Sprintf("failed to compress file: %v", err))
	}
	if err := encoder.Close(); err != nil {
		return errs.IOError(fmt.Sprintf("failed to finish compression: %v", err))
	}

	_ = os.Remove(path)
	return nil
}

// Close closes the current file (every Write has already synced it).
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
