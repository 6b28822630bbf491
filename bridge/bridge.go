package bridge

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/handle"
	"github.com/wippyai/khiin-bridge/protocol"
)

// Engine is the input method core behind a handle. SendCommand reads
// cmd.Request and fills cmd.Response, which the bridge pre-allocates.
// Processing failures belong in cmd.Response.Error.
//
// The bridge never calls SendCommand concurrently on the same Engine.
type Engine interface {
	SendCommand(cmd *protocol.Command)
	Close() error
}

// Loader constructs an engine from a configuration string, usually the path
// of the engine's data file.
type Loader func(ctx context.Context, config string) (Engine, error)

var errNilEngine = stderrors.New("loader returned no engine")

// Bridge owns engine instances and exposes them through opaque handles.
type Bridge struct {
	loader Loader
	table  *handle.Table[*instance]
	log    *zap.Logger
	strict bool
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithStrictDecode makes Submit answer malformed request bytes with
// ErrInvalidRequest instead of forwarding a default request to the engine.
func WithStrictDecode() Option {
	return func(b *Bridge) { b.strict = true }
}

// WithLogger sets the logger used by the bridge.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

type instance struct {
	engine   Engine
	closeErr error
	config   string
	mu       sync.Mutex
}

// Drop closes the engine when its handle is removed. A panicking Close is
// recorded as closeErr.
func (in *instance) Drop() {
	in.mu.Lock()
	defer in.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			in.closeErr = fmt.Errorf("engine close panic: %v", r)
		}
	}()
	in.closeErr = in.engine.Close()
}

// New creates a bridge that builds engines with loader.
func New(loader Loader, opts ...Option) *Bridge {
	b := &Bridge{
		loader: loader,
		table:  handle.NewTable[*instance](),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = Logger()
	}
	b.table.Subscribe(&lifecycleLogger{log: b.log})
	return b
}

// Create builds an engine from config and registers it. On failure it
// returns handle.Invalid and an *errors.Error with PhaseLoad; no engine is
// left registered.
func (b *Bridge) Create(ctx context.Context, config string) (handle.Handle, error) {
	eng, err := b.construct(ctx, config)
	if err != nil {
		return handle.Invalid, err
	}

	h := b.table.Insert(&instance{engine: eng, config: config})
	if h == handle.Invalid {
		if cerr := eng.Close(); cerr != nil {
			b.log.Warn("close engine after rejected insert", zap.Error(cerr))
		}
		return handle.Invalid, errors.New(errors.PhaseLoad, errors.KindClosed).
			Detail("bridge is closed").
			Build()
	}
	return h, nil
}

func (b *Bridge) construct(ctx context.Context, config string) (eng Engine, err error) {
	defer func() {
		if r := recover(); r != nil {
			eng = nil
			err = errors.Initialization(config, fmt.Errorf("loader panic: %v", r))
		}
	}()

	eng, err = b.loader(ctx, config)
	if err != nil {
		var kerr *errors.Error
		if stderrors.As(err, &kerr) && kerr.Phase == errors.PhaseLoad {
			return nil, err
		}
		return nil, errors.Initialization(config, err)
	}
	if eng == nil {
		return nil, errors.Initialization(config, errNilEngine)
	}
	return eng, nil
}

// Load is Create for callers across the boundary: failures are logged and
// reported only as handle.Invalid.
func (b *Bridge) Load(ctx context.Context, config string) handle.Handle {
	h, err := b.Create(ctx, config)
	if err != nil {
		b.log.Warn("engine load failed",
			zap.String("config", config),
			zap.Error(err))
		return handle.Invalid
	}
	b.log.Debug("engine loaded",
		zap.String("config", config),
		zap.Uint64("handle", uint64(h)))
	return h
}

// Submit decodes req as a bare Request, hands it to the engine behind h
// and returns the encoded Response. It never panics and always returns a
// decodable buffer.
//
// Malformed request bytes are replaced by a default request unless the
// bridge was built WithStrictDecode. An unknown or destroyed handle yields a
// response with ErrInvalidHandle.
func (b *Bridge) Submit(h handle.Handle, req []byte) []byte {
	return protocol.EncodeResponse(b.submit(h, req, protocol.DecodeRequest))
}

// SubmitCommand is Submit for Command envelopes, as used on stream
// transports. The reply is a Command carrying only the response.
func (b *Bridge) SubmitCommand(h handle.Handle, payload []byte) []byte {
	resp := b.submit(h, payload, func(p []byte) (*protocol.Request, error) {
		cmd, err := protocol.DecodeCommand(p)
		if err != nil {
			return nil, err
		}
		return cmd.Request, nil
	})
	return protocol.EncodeCommand(&protocol.Command{Response: resp})
}

func (b *Bridge) submit(h handle.Handle, payload []byte, decode func([]byte) (*protocol.Request, error)) *protocol.Response {
	req, err := decode(payload)
	if err != nil {
		if b.strict {
			b.log.Debug("rejecting malformed request",
				zap.Uint64("handle", uint64(h)),
				zap.Int("len", len(payload)),
				zap.Error(err))
			return &protocol.Response{Error: protocol.ErrInvalidRequest}
		}
		b.log.Debug("malformed request, using default",
			zap.Uint64("handle", uint64(h)),
			zap.Int("len", len(payload)),
			zap.Error(err))
		req = nil
	}

	resp, err := b.dispatch(h, req)
	if err != nil {
		b.log.Error("submit to invalid handle",
			zap.Uint64("handle", uint64(h)),
			zap.Error(err))
		return &protocol.Response{Error: protocol.ErrInvalidHandle}
	}
	return resp
}

// Send is the in-process form of Submit. It skips the codec and reports
// handle problems as errors.
func (b *Bridge) Send(h handle.Handle, req *protocol.Request) (*protocol.Response, error) {
	return b.dispatch(h, req)
}

func (b *Bridge) dispatch(h handle.Handle, req *protocol.Request) (*protocol.Response, error) {
	in, release, err := b.table.Acquire(h)
	if err != nil {
		return nil, handleError(errors.PhaseSubmit, h, err)
	}
	defer release()

	if req == nil {
		req = &protocol.Request{}
	}
	cmd := &protocol.Command{
		Request:  req,
		Response: &protocol.Response{},
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	b.run(h, in.engine, cmd)

	if cmd.Response == nil {
		cmd.Response = &protocol.Response{}
	}
	return cmd.Response, nil
}

func (b *Bridge) run(h handle.Handle, eng Engine, cmd *protocol.Command) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("engine panic",
				zap.Uint64("handle", uint64(h)),
				zap.Stringer("command", cmd.Request.Type),
				zap.Any("panic", r))
			cmd.Response = &protocol.Response{Error: protocol.ErrEngine}
		}
	}()
	eng.SendCommand(cmd)
}

// Shutdown destroys the engine behind h. The handle never resolves again;
// a second Shutdown reports a stale handle instead of touching freed state.
// Shutdown fails while a Submit on h is in flight.
func (b *Bridge) Shutdown(h handle.Handle) error {
	in, err := b.table.Remove(h)
	if err != nil {
		return handleError(errors.PhaseShutdown, h, err)
	}
	if in.closeErr != nil {
		return errors.Wrap(errors.PhaseShutdown, errors.KindInvalidData, in.closeErr, "close engine")
	}
	return nil
}

// Len returns the number of live engines.
func (b *Bridge) Len() int {
	return b.table.Len()
}

// Close destroys every live engine and rejects further loads.
func (b *Bridge) Close() error {
	return b.table.Close()
}

func handleError(phase errors.Phase, h handle.Handle, err error) error {
	switch {
	case stderrors.Is(err, handle.ErrStaleHandle):
		return errors.StaleHandle(phase, uint64(h))
	case stderrors.Is(err, handle.ErrUnknownHandle):
		return errors.UnknownHandle(phase, uint64(h))
	case stderrors.Is(err, handle.ErrOutstandingBorrow):
		return errors.Wrap(phase, errors.KindInvalidInput, err, "engine has a command in flight")
	case stderrors.Is(err, handle.ErrClosed):
		return errors.Wrap(phase, errors.KindClosed, err, "bridge is closed")
	default:
		return errors.Wrap(phase, errors.KindInvalidInput, err, "resolve handle")
	}
}

type lifecycleLogger struct {
	log *zap.Logger
}

func (l *lifecycleLogger) OnHandleEvent(e handle.Event) {
	cfg := ""
	if in, ok := e.Value.(*instance); ok {
		cfg = in.config
	}
	l.log.Debug("engine "+e.Type.String(),
		zap.Uint64("handle", uint64(e.Handle)),
		zap.String("config", cfg))
}
