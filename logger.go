package appicon

import (
	"log/slog"
	"sync/atomic"
)

// discard drops every record; its handler reports every level disabled, so
// log calls cost no formatting.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger routes the records of appicon and logo to l. Passing nil makes
// both silent again, which is also the initial state. Safe for concurrent
// use.
//
// Debug records cover context creation, every fill and stroke and every
// logo shape; Info records report written icon files.
//
//	appicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
