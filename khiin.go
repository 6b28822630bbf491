package khiin

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/khiin-bridge/bridge"
	"github.com/wippyai/khiin-bridge/engine"
	"github.com/wippyai/khiin-bridge/engine/dict"
	"github.com/wippyai/khiin-bridge/engine/wasmengine"
	"github.com/wippyai/khiin-bridge/handle"
	"github.com/wippyai/khiin-bridge/server"
)

// InvalidHandle is returned by Load when no engine could be created.
const InvalidHandle = uint64(handle.Invalid)

var (
	defaultBridge *bridge.Bridge
	defaultOnce   sync.Once
)

// Default returns the process-wide bridge, creating it on first use.
func Default() *bridge.Bridge {
	defaultOnce.Do(func() {
		defaultBridge = bridge.New(engine.Open)
	})
	return defaultBridge
}

// Load creates an engine from config and returns its handle, or
// InvalidHandle.
func Load(config string) uint64 {
	return uint64(Default().Load(context.Background(), config))
}

// Submit sends an encoded Request to the engine behind h and returns the
// encoded Response.
func Submit(h uint64, req []byte) []byte {
	return Default().Submit(handle.Handle(h), req)
}

// Shutdown destroys the engine behind h.
func Shutdown(h uint64) error {
	return Default().Shutdown(handle.Handle(h))
}

// SetLogger installs l in every package of the module. Call it before
// Default or any engine is created.
func SetLogger(l *zap.Logger) {
	bridge.SetLogger(l)
	dict.SetLogger(l)
	wasmengine.SetLogger(l)
	server.SetLogger(l)
}
