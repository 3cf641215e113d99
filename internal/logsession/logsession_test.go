package logsession

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/maos-project/maos/internal/ids"
)

func TestWriteAndReadBack(t *testing.T) {
	dir := t.TempDir()
	sessionID := ids.GenerateSessionID()
	logger, err := Open(sessionID, dir, DefaultConfig())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer logger.Close()

	if werr := logger.Write("hello"); werr != nil {
		t.Fatalf("Write: %v", werr)
	}
	if werr := logger.Write("world"); werr != nil {
		t.Fatalf("Write: %v", werr)
	}

	data, readErr := os.ReadFile(logger.path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != "hello\nworld\n" {
		t.Fatalf("got %q", data)
	}
}

func TestRotationWithoutCompression(t *testing.T) {
	dir := t.TempDir()
	sessionID := ids.GenerateSessionID()
	cfg := Config{MaxFileSizeBytes: 10, MaxFilesPerSession: 3, CompressOnRoll: false}
	logger, err := Open(sessionID, dir, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer logger.Close()

	for i := 0; i < 5; i++ {
		if werr := logger.Write("0123456789"); werr != nil {
			t.Fatalf("Write #%d: %v", i, werr)
		}
	}

	if _, statErr := os.Stat(logger.path + ".1"); statErr != nil {
		t.Fatalf("expected rotated sibling .1 to exist: %v", statErr)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) > cfg.MaxFilesPerSession+1 {
		t.Fatalf("too many files on disk: %d", len(entries))
	}
}

func TestRotationWithCompressionLeavesNoPlaintext(t *testing.T) {
	dir := t.TempDir()
	sessionID := ids.GenerateSessionID()
	cfg := Config{MaxFileSizeBytes: 10, MaxFilesPerSession: 3, CompressOnRoll: true}
	logger, err := Open(sessionID, dir, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer logger.Close()

	for i := 0; i < 3; i++ {
		if werr := logger.Write("0123456789"); werr != nil {
			t.Fatalf("Write #%d: %v", i, werr)
		}
	}

	gzPath := logger.path + ".1.gz"
	plainPath := logger.path + ".1"
	if _, statErr := os.Stat(gzPath); statErr != nil {
		t.Fatalf("expected compressed sibling: %v", statErr)
	}
	if _, statErr := os.Stat(plainPath); statErr == nil {
		t.Fatal("plaintext rotated file should not remain when compression is enabled")
	}

	gz, err := os.Open(gzPath)
	if err != nil {
		t.Fatal(err)
	}
	defer gz.Close()
	reader, err := gzip.NewReader(gz)
	if err != nil {
		t.Fatalf("invalid gzip framing: %v", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		t.Fatalf("failed to decompress: %v", err)
	}
	if !strings.Contains(buf.String(), "0123456789") {
		t.Fatalf("decompressed content missing expected data: %q", buf.String())
	}
}

func TestConcurrentWritersProduceWellFormedLines(t *testing.T) {
	dir := t.TempDir()
	sessionID := ids.GenerateSessionID()
	cfg := Config{MaxFileSizeBytes: 100_000, MaxFilesPerSession: 3, CompressOnRoll: true}
	logger, err := Open(sessionID, dir, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer logger.Close()

	const writers = 2
	// 50 KB per writer; together they exceed the 100_000-byte cap.
	const writeSize = 50 * 1024
	line := strings.Repeat("a", 99) // 100 bytes with newline

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for written := 0; written < writeSize; written += len(line) + 1 {
				_ = logger.Write(line)
			}
		}()
	}
	wg.Wait()

	entries, _ := os.ReadDir(dir)
	rotatedGz := 0
	plaintextRotated := false
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".gz") {
			rotatedGz++
		}
		if strings.Contains(name, ".log.") && !strings.HasSuffix(name, ".gz") {
			plaintextRotated = true
		}
	}
	if rotatedGz == 0 {
		t.Fatal("expected at least one compressed rotated sibling")
	}
	if rotatedGz > cfg.MaxFilesPerSession {
		t.Fatalf("too many rotated siblings: %d", rotatedGz)
	}
	if plaintextRotated {
		t.Fatal("no plaintext rotated file should remain when compression is enabled")
	}

	data, readErr := os.ReadFile(filepath.Join(dir, filepath.Base(logger.path)))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		t.Fatal("current file does not end on a complete line")
	}
}

func BenchmarkWrite(b *testing.B) {
	dir := b.TempDir()
	sessionID := ids.GenerateSessionID()
	logger, err := Open(sessionID, dir, DefaultConfig())
	if err != nil {
		b.Fatalf("Open: %v", err)
	}
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logger.Write("benchmark log line")
	}
}
