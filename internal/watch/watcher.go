// Package watch recomputes the total of an operand file whenever it changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/bigadd/internal/calc"
	"github.com/bft-labs/bigadd/internal/metrics"
	"github.com/bft-labs/bigadd/pkg/log"
)

// DefaultDebounceDelay coalesces the burst of events editors emit on save.
const DefaultDebounceDelay = 100 * time.Millisecond

// Config holds watcher options.
type Config struct {
	// Path is the operand file, one operand per line.
	Path string

	// DebounceDelay is the quiet period after a change before recomputing.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// OnResult is called after every computation, including the initial one.
	// Calls are serialized.
	OnResult func(calc.Result, error)
}

// Watcher recomputes an operand file's total on change.
type Watcher struct {
	path          string
	debounceDelay time.Duration
	onResult      func(calc.Result, error)
	calc          *calc.Calculator
	logger        log.Logger

	mu       sync.Mutex
	debounce *time.Timer
	wg       sync.WaitGroup

	// computeMu serializes OnResult.
	computeMu sync.Mutex
}

// New creates a watcher. c must not be nil.
func New(cfg Config, c *calc.Calculator, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.OnResult == nil {
		cfg.OnResult = func(calc.Result, error) {}
	}
	return &Watcher{
		path:          filepath.Clean(cfg.Path),
		debounceDelay: cfg.DebounceDelay,
		onResult:      cfg.OnResult,
		calc:          c,
		logger:        log.OrNoop(logger),
	}
}

// Run computes the total once, then again after every write to the file,
// until ctx is canceled. The file's directory is watched so that editors
// replacing the file by rename are still observed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info("watching operand file", log.String("path", w.path))
	w.compute(ctx)

	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil && w.debounce.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		defer w.wg.Done()
		w.compute(ctx)
	})
}

// stop cancels a pending recompute and waits for a running one.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.debounce != nil && w.debounce.Stop() {
		w.wg.Done()
	}
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Watcher) compute(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	w.computeMu.Lock()
	defer w.computeMu.Unlock()

	res, err := w.total(ctx)
	metrics.IncWatchRecompute(err)
	if err != nil {
		w.logger.Warn("recompute failed", log.String("path", w.path), log.Err(err))
	} else {
		w.logger.Info("recomputed total",
			log.String("path", w.path),
			log.Int("operands", res.Operands),
			log.Int("digits", res.Digits),
		)
	}
	w.onResult(res, err)
}

func (w *Watcher) total(ctx context.Context) (calc.Result, error) {
	operands, err := calc.ReadOperandsFile(w.path)
	if err != nil {
		return calc.Result{}, err
	}
	return w.calc.Sum(ctx, operands)
}
