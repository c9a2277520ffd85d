package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

const (
	wordsExtension = ".words"
	settleDelay    = 100 * time.Millisecond
)

// WatchDir adds a directory tree to re-run on change. It takes effect on the
// next StartWatching.
func (e *Engine) WatchDir(dir string) {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()
	e.watchDirs = append(e.watchDirs, dir)
}

// SetReporter replaces the default reporter, which logs results.
func (e *Engine) SetReporter(report func(filename string, results []tt.Result, err error)) {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()
	e.reporter = report
}

// StartWatching re-runs word files under the watched directories whenever
// they are written.
func (e *Engine) StartWatching() error {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()

	if e.isWatching.Load() {
		return errors.New("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watcher = watcher
	e.watchDone = make(chan struct{})
	e.isWatching.Store(true)
	go e.watchLoop(watcher, e.watchDone)
	return nil
}

// StopWatching closes the watcher and waits for the watch loop to exit.
func (e *Engine) StopWatching() error {
	e.watchMu.Lock()
	if !e.isWatching.Load() {
		e.watchMu.Unlock()
		e.logger.Warn("not watching")
		return nil
	}
	e.isWatching.Store(false)
	watcher, done := e.watcher, e.watchDone
	e.watchMu.Unlock()

	// the loop may be reporting, which takes watchMu
	err := watcher.Close()
	<-done
	return err
}

func (e *Engine) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if filepath.Ext(event.Name) != wordsExtension {
		return
	}

	// editors write in several steps; let them finish
	time.Sleep(settleDelay)
	results, err := e.RunFile(event.Name)
	e.report(event.Name, results, err)
}

func (e *Engine) report(filename string, results []tt.Result, err error) {
	e.watchMu.Lock()
	reporter := e.reporter
	e.watchMu.Unlock()

	if reporter != nil {
		reporter(filename, results, err)
		return
	}

	if err != nil {
		e.logger.Error("error running word file", zap.String("file", filename), zap.Error(err))
		return
	}

	matched := 0
	for _, r := range results {
		if r.Match.Matched() {
			matched++
			e.logger.Info("match",
				zap.String("file", filename),
				zap.Int("line", r.Line),
				zap.String("rule", r.Rule),
				zap.String("word", r.Text),
				zap.Stringer("segments", r.Match),
			)
		}
	}
	e.logger.Info("checked word file", zap.String("file", filename), zap.Int("matches", matched))
}
