// Package quick provides a package-level surface over a shared Logger for
// applications that want the zero-setup, process-wide form. Unlike the core
// instance API, quick.Severe terminates the process after persisting the
// transcript; programs that own their shutdown should use a Logger directly.
package quick

import (
	"sync"

	"github.com/theskidster/logger"
)

var (
	mu     sync.Mutex
	shared *logger.Logger
)

// Configure replaces the shared Logger with one built from cfg. Calling it
// after other quick functions discards the transcript accumulated so far.
func Configure(cfg *logger.Config) {
	mu.Lock()
	defer mu.Unlock()
	shared = logger.New(cfg)
}

// get lazily creates the shared Logger with default configuration.
func get() *logger.Logger {
	mu.Lock()
	defer mu.Unlock()
	if shared == nil {
		shared = logger.New()
	}
	return shared
}
