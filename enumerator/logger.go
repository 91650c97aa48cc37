package enumerator

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the logger of the enumerator package, a no-op logger unless
// SetLogger was called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the logger of the enumerator package. It can be called
// at any time; enumerators pick up the new logger on their next event. A nil
// logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
