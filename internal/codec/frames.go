package codec

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FrameName returns the file name used for the frame of the given tick.
func FrameName(tick int) string {
	return fmt.Sprintf("output_%d.png", tick)
}

// FrameWriter encodes frames to a directory on a bounded pool of goroutines.
// Frames handed to Write must not be modified afterwards. A run either
// leaves every frame on disk or none of them: when any frame fails, Wait
// removes the frames already written.
type FrameWriter struct {
	dir string
	log *slog.Logger

	ctx context.Context
	g   *errgroup.Group

	mu      sync.Mutex
	written []string
}

// NewFrameWriter creates dir if needed and returns a writer using at most
// workers concurrent encoders (at least one).
func NewFrameWriter(ctx context.Context, dir string, workers int, log *slog.Logger) (*FrameWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(ErrEncode, "create output dir %s: %v", dir, err)
	}
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	return &FrameWriter{dir: dir, log: log, ctx: gctx, g: g}, nil
}

// Path returns the output path for the frame of the given tick.
func (w *FrameWriter) Path(tick int) string {
	return filepath.Join(w.dir, FrameName(tick))
}

// Write schedules frame to be written as the given tick. It blocks while all
// workers are busy.
func (w *FrameWriter) Write(tick int, frame image.Image) {
	path := w.Path(tick)
	w.g.Go(func() error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if err := EncodeFile(path, frame); err != nil {
			return err
		}
		w.mu.Lock()
		w.written = append(w.written, path)
		w.mu.Unlock()
		w.log.Debug("frame written", "tick", tick, "path", path)
		return nil
	})
}

// Wait blocks until every scheduled frame is written and returns the first
// error encountered. On error the frames written so far are removed.
func (w *FrameWriter) Wait() error {
	if err := w.g.Wait(); err != nil {
		w.discard()
		return err
	}
	return nil
}

// Discard waits for pending frames and removes every frame written so far.
func (w *FrameWriter) Discard() {
	_ = w.g.Wait()
	w.discard()
}

func (w *FrameWriter) discard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, path := range w.written {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			w.log.Warn("remove frame", "path", path, "error", err)
		}
	}
	if len(w.written) > 0 {
		w.log.Debug("discarded frames", "count", len(w.written))
	}
	w.written = nil
}
