package bridge

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the bridge package's logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the bridge package's logger. A nil logger restores the no-op
// default. It is safe to call concurrently with Logger.
// Bridges created before the call keep the previous logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
