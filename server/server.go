package server

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/wippyai/khiin-bridge/bridge"
	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/handle"
	"github.com/wippyai/khiin-bridge/protocol"
	"github.com/wippyai/khiin-bridge/settings"
)

const (
	DefaultMaxConnections = 1
	DefaultIdleTimeout    = 300 * time.Second
)

// ErrShutdownRequested is returned by ServeConn when the peer sent
// CMD_SHUTDOWN.
var ErrShutdownRequested = stderrors.New("shutdown requested")

var errEngineUnavailable = stderrors.New("engine failed to load")

// Config holds server configuration.
type Config struct {
	// Engine is the configuration string handed to the bridge loader.
	Engine string

	// Settings, when set, are sent to the engine as CMD_SET_CONFIG after it
	// loads.
	Settings *settings.Settings

	// MaxConnections limits concurrently served connections. Further
	// connections wait. 0 means DefaultMaxConnections.
	MaxConnections int64

	// IdleTimeout stops the server after this long without a connection.
	// 0 means DefaultIdleTimeout; negative disables it.
	IdleTimeout time.Duration

	// MaxFrame bounds request frames. 0 means protocol.DefaultMaxFrame.
	MaxFrame int
}

// Server serves one engine over a stream listener. Every frame is an encoded
// Command; replies are written as frames in request order.
type Server struct {
	bridge *bridge.Bridge
	cfg    Config
	log    *zap.Logger
	sem    *semaphore.Weighted

	mu     sync.Mutex
	handle handle.Handle
}

// New creates a server that loads its engine through b.
func New(b *bridge.Bridge, cfg Config) *Server {
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = DefaultMaxConnections
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.MaxFrame <= 0 {
		cfg.MaxFrame = protocol.DefaultMaxFrame
	}
	return &Server{
		bridge: b,
		cfg:    cfg,
		log:    Logger(),
		sem:    semaphore.NewWeighted(cfg.MaxConnections),
	}
}

// Open loads the engine if it is not loaded yet.
func (s *Server) Open(ctx context.Context) (handle.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != handle.Invalid {
		return s.handle, nil
	}
	h := s.bridge.Load(ctx, s.cfg.Engine)
	if h == handle.Invalid {
		return handle.Invalid, errors.Initialization(s.cfg.Engine, errEngineUnavailable)
	}
	if s.cfg.Settings != nil {
		resp, err := s.bridge.Send(h, &protocol.Request{
			Type:   protocol.CmdSetConfig,
			Config: s.cfg.Settings.ToAppConfig(),
		})
		if err != nil {
			_ = s.bridge.Shutdown(h)
			return handle.Invalid, err
		}
		s.log.Debug("applied settings", zap.Any("config", resp.Config))
	}
	s.handle = h
	return h, nil
}

// Close shuts down the engine if it is loaded.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == handle.Invalid {
		return nil
	}
	h := s.handle
	s.handle = handle.Invalid
	return s.bridge.Shutdown(h)
}

// Serve accepts connections on ln until ctx is done, a peer sends
// CMD_SHUTDOWN or the server stays idle for IdleTimeout. It loads the engine
// first and shuts it down before returning. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if _, err := s.Open(ctx); err != nil {
		_ = ln.Close()
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			s.log.Warn("engine shutdown failed", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	idle := s.newIdleTimer(cancel)
	defer idle.stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return ln.Close()
	})
	g.Go(func() error {
		defer cancel()
		for {
			conn, err := ln.Accept()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return errors.Wrap(errors.PhaseTransport, errors.KindClosed, err, "accept")
			}
			if err := s.sem.Acquire(gctx, 1); err != nil {
				_ = conn.Close()
				return nil
			}
			idle.enter()
			g.Go(func() error {
				defer s.sem.Release(1)
				defer idle.leave()
				if err := s.ServeConn(gctx, conn); stderrors.Is(err, ErrShutdownRequested) {
					s.log.Info("shutdown requested")
					cancel()
				}
				return nil
			})
		}
	})

	err := g.Wait()
	if stderrors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// ServeConn serves frames from conn until EOF, a transport error or
// CMD_SHUTDOWN, then closes conn. A shutdown request gets no reply; it is
// reported as ErrShutdownRequested.
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) error {
	defer conn.Close()

	h, err := s.Open(ctx)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	log := s.log.With(zap.String("conn", id))
	log.Debug("connection opened", zap.String("remote", addrString(conn.RemoteAddr())))
	defer log.Debug("connection closed")

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	for {
		payload, err := protocol.ReadFrame(conn, s.cfg.MaxFrame)
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return nil
			}
			log.Warn("read frame", zap.Error(err))
			return err
		}

		if isShutdown(payload) {
			log.Info("shutdown requested")
			return ErrShutdownRequested
		}

		if err := protocol.WriteFrame(conn, s.bridge.SubmitCommand(h, payload)); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("write frame", zap.Error(err))
			return err
		}
	}
}

func isShutdown(payload []byte) bool {
	cmd, err := protocol.DecodeCommand(payload)
	return err == nil && cmd.Request != nil && cmd.Request.Type == protocol.CmdShutdown
}

func addrString(a net.Addr) string {
	if a == nil {
		return ""
	}
	return a.String()
}

// idleTimer fires when no connection has been active for the timeout.
type idleTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	timeout time.Duration
	active  int
}

func (s *Server) newIdleTimer(fire func()) *idleTimer {
	t := &idleTimer{timeout: s.cfg.IdleTimeout}
	if t.timeout > 0 {
		t.timer = time.AfterFunc(t.timeout, func() {
			s.log.Info("idle timeout", zap.Duration("timeout", t.timeout))
			fire()
		})
	}
	return t
}

func (t *idleTimer) enter() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active++
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *idleTimer) leave() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active--
	if t.active == 0 && t.timer != nil {
		t.timer.Reset(t.timeout)
	}
}

func (t *idleTimer) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
}
