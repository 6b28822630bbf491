// Package engine selects an input method engine implementation from a
// configuration string.
package engine

import (
	"context"
	"strings"

	"github.com/wippyai/khiin-bridge/bridge"
	"github.com/wippyai/khiin-bridge/engine/dict"
	"github.com/wippyai/khiin-bridge/engine/wasmengine"
)

// WasmSuffix marks configuration strings that name a WebAssembly engine.
const WasmSuffix = ".wasm"

// Open builds the engine named by config. Paths ending in WasmSuffix load a
// WebAssembly engine; anything else is treated as a dictionary file.
func Open(ctx context.Context, config string) (bridge.Engine, error) {
	if strings.HasSuffix(strings.ToLower(config), WasmSuffix) {
		e, err := wasmengine.Open(ctx, config)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	e, err := dict.Open(ctx, config)
	if err != nil {
		return nil, err
	}
	return e, nil
}

var _ bridge.Loader = Open
