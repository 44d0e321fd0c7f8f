package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	outputLockTimeout  = 5 * time.Second
	outputLockInterval = 100 * time.Millisecond
)

// Output is one key/value pair reported to the CI environment.
type Output struct {
	Key   string
	Value string
}

// OutputWriter appends workflow outputs to the runner's output file. Other
// steps append to the same file, so writes happen under a file lock. When no
// output file is configured the pairs go to stdout as key=value lines.
type OutputWriter struct {
	fs   afero.Fs
	path string
	log  *zap.Logger
}

// NewOutputWriter creates an OutputWriter for the given output file path.
// An empty path selects stdout.
func NewOutputWriter(fs afero.Fs, path string, log *zap.Logger) *OutputWriter {
	return &OutputWriter{fs: fs, path: path, log: log}
}

// Write appends all pairs in order. Multi-line values use the runner's
// heredoc record format with a random delimiter.
func (w *OutputWriter) Write(ctx context.Context, outputs []Output) error {
	if w.path == "" {
		for _, out := range outputs {
			fmt.Printf("%s=%s\n", out.Key, out.Value)
		}
		return nil
	}
	// flock only guards real files; an in-memory fs has no cross-process readers.
	if _, ok := w.fs.(*afero.OsFs); ok {
		lock := flock.New(w.path + ".lock")
		lockCtx, cancel := context.WithTimeout(ctx, outputLockTimeout)
		defer cancel()
		locked, err := lock.TryLockContext(lockCtx, outputLockInterval)
		if err != nil {
			return fmt.Errorf("failed to acquire output file lock: %w", err)
		}
		if !locked {
			return fmt.Errorf("could not acquire output file lock within %s", outputLockTimeout)
		}
		defer func() {
			if unlockErr := lock.Unlock(); unlockErr != nil {
				w.log.Warn("failed to unlock output file", zap.Error(unlockErr))
			}
		}()
	}
	var b strings.Builder
	for _, out := range outputs {
		if strings.Contains(out.Value, "\n") {
			delimiter := "ghadelimiter_" + uuid.New().String()
			fmt.Fprintf(&b, "%s<<%s\n%s\n%s\n", out.Key, delimiter, out.Value, delimiter)
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", out.Key, out.Value)
	}
	f, err := w.fs.OpenFile(w.path, appendFlags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", w.path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write outputs: %w", err)
	}
	return nil
}
