package wasmengine

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/protocol"
)

// Guest export names.
const (
	ExportMemory      = "memory"
	ExportAlloc       = "khiin_alloc"
	ExportFree        = "khiin_free"
	ExportInit        = "khiin_init"
	ExportSendCommand = "khiin_send_command"
)

// Config holds configuration for engine creation.
type Config struct {
	// MemoryLimitPages caps guest memory in 64KiB pages. 0 keeps the
	// runtime default.
	MemoryLimitPages uint32

	// InitArg is passed to khiin_init when the guest exports it.
	InitArg string
}

// Engine runs an input method compiled to a WebAssembly core module.
type Engine struct {
	runtime wazero.Runtime
	module  api.Module
	memory  api.Memory
	alloc   api.Function
	free    api.Function
	send    api.Function
	log     *zap.Logger
}

// Open reads the module at path and instantiates it. The path is handed to
// khiin_init.
func Open(ctx context.Context, path string) (*Engine, error) {
	wasm, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Initialization(path, err)
	}
	e, err := New(ctx, wasm, &Config{InitArg: path})
	if err != nil {
		return nil, errors.Initialization(path, err)
	}
	return e, nil
}

// New instantiates wasm in a fresh runtime.
func New(ctx context.Context, wasm []byte, cfg *Config) (*Engine, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	mod, err := rt.Instantiate(ctx, wasm)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("instantiate module: %w", err)
	}

	e := &Engine{
		runtime: rt,
		module:  mod,
		memory:  mod.ExportedMemory(ExportMemory),
		alloc:   mod.ExportedFunction(ExportAlloc),
		free:    mod.ExportedFunction(ExportFree),
		send:    mod.ExportedFunction(ExportSendCommand),
		log:     Logger(),
	}
	switch {
	case e.memory == nil:
		err = errors.NotFound(errors.PhaseLoad, "export", ExportMemory)
	case e.alloc == nil:
		err = errors.NotFound(errors.PhaseLoad, "export", ExportAlloc)
	case e.send == nil:
		err = errors.NotFound(errors.PhaseLoad, "export", ExportSendCommand)
	}
	if err != nil {
		_ = rt.Close(ctx)
		return nil, err
	}

	if initFn := mod.ExportedFunction(ExportInit); initFn != nil {
		var arg string
		if cfg != nil {
			arg = cfg.InitArg
		}
		if err := e.init(ctx, initFn, arg); err != nil {
			_ = rt.Close(ctx)
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) init(ctx context.Context, fn api.Function, arg string) error {
	ptr, err := e.write(ctx, []byte(arg))
	if err != nil {
		return err
	}
	defer e.release(ctx, ptr, uint32(len(arg)))

	res, err := fn.Call(ctx, uint64(ptr), uint64(len(arg)))
	if err != nil {
		return errors.Trap(ExportInit, err)
	}
	if len(res) > 0 && int32(res[0]) != 0 {
		return fmt.Errorf("%s returned %d", ExportInit, int32(res[0]))
	}
	return nil
}

// SendCommand encodes the request into guest memory, calls the guest and
// copies the guest's response into cmd.Response. Guest faults and
// undecodable output yield ErrEngine.
func (e *Engine) SendCommand(cmd *protocol.Command) {
	resp, err := e.call(context.Background(), cmd.Request)
	if err != nil {
		e.log.Error("guest command failed", zap.Error(err))
		resp = &protocol.Response{Error: protocol.ErrEngine}
	}
	if cmd.Response == nil {
		cmd.Response = resp
		return
	}
	*cmd.Response = *resp
}

func (e *Engine) call(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	in := protocol.EncodeCommand(&protocol.Command{Request: req})
	ptr, err := e.write(ctx, in)
	if err != nil {
		return nil, err
	}
	defer e.release(ctx, ptr, uint32(len(in)))

	res, err := e.send.Call(ctx, uint64(ptr), uint64(len(in)))
	if err != nil {
		return nil, errors.Trap(ExportSendCommand, err)
	}
	if len(res) != 1 {
		return nil, errors.InvalidData(errors.PhaseEngine, []string{ExportSendCommand}, "expected one i64 result")
	}

	outPtr, outLen := uint32(res[0]>>32), uint32(res[0])
	view, ok := e.memory.Read(outPtr, outLen)
	if !ok {
		return nil, errors.New(errors.PhaseEngine, errors.KindInvalidData).
			Path(ExportSendCommand).
			Detail("result out of bounds: ptr=%d len=%d", outPtr, outLen).
			Build()
	}
	// view aliases guest memory
	out := make([]byte, len(view))
	copy(out, view)
	e.release(ctx, outPtr, outLen)

	c, err := protocol.DecodeCommand(out)
	if err != nil {
		return nil, err
	}
	if c.Response == nil {
		return &protocol.Response{}, nil
	}
	return c.Response, nil
}

func (e *Engine) write(ctx context.Context, data []byte) (uint32, error) {
	res, err := e.alloc.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, errors.Trap(ExportAlloc, err)
	}
	if len(res) != 1 {
		return 0, errors.InvalidData(errors.PhaseEngine, []string{ExportAlloc}, "expected one i32 result")
	}
	ptr := uint32(res[0])
	if !e.memory.Write(ptr, data) {
		return 0, errors.New(errors.PhaseEngine, errors.KindInvalidData).
			Path(ExportAlloc).
			Detail("allocation out of bounds: ptr=%d len=%d", ptr, len(data)).
			Build()
	}
	return ptr, nil
}

func (e *Engine) release(ctx context.Context, ptr, size uint32) {
	if e.free == nil || ptr == 0 {
		return
	}
	if _, err := e.free.Call(ctx, uint64(ptr), uint64(size)); err != nil {
		e.log.Warn("release guest buffer",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size),
			zap.Error(err))
	}
}

// Close tears down the module and its runtime.
func (e *Engine) Close() error {
	if e.runtime == nil {
		return nil
	}
	err := e.runtime.Close(context.Background())
	e.runtime = nil
	e.module = nil
	e.memory = nil
	return err
}
