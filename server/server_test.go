package server

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/wippyai/khiin-bridge/bridge"
	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/protocol"
	"github.com/wippyai/khiin-bridge/settings"
)

type stubEngine struct {
	mu      sync.Mutex
	seen    []protocol.CommandType
	configs []*protocol.AppConfig
	closed  atomic.Int32
}

func (e *stubEngine) SendCommand(cmd *protocol.Command) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seen = append(e.seen, cmd.Request.Type)
	switch cmd.Request.Type {
	case protocol.CmdSendKey:
		cmd.Response.Consumed = true
		cmd.Response.EditState = protocol.ESComposing
	case protocol.CmdSetConfig:
		e.configs = append(e.configs, cmd.Request.Config)
		cmd.Response.Config = cmd.Request.Config
	}
}

func (e *stubEngine) Close() error {
	e.closed.Add(1)
	return nil
}

func (e *stubEngine) commands() []protocol.CommandType {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]protocol.CommandType(nil), e.seen...)
}

func newTestServer(t *testing.T, cfg Config) (*Server, *stubEngine) {
	t.Helper()
	eng := &stubEngine{}
	b := bridge.New(func(_ context.Context, config string) (bridge.Engine, error) {
		if config == "broken" {
			return nil, stderrors.New("cannot load")
		}
		return eng, nil
	}, bridge.WithLogger(zaptest.NewLogger(t)))
	t.Cleanup(func() { b.Close() })

	s := New(b, cfg)
	s.log = zaptest.NewLogger(t)
	return s, eng
}

func keyRequest(code rune) *protocol.Command {
	return &protocol.Command{Request: &protocol.Request{
		Type:     protocol.CmdSendKey,
		KeyEvent: &protocol.KeyEvent{KeyCode: int32(code)},
	}}
}

var shutdownRequest = &protocol.Command{Request: &protocol.Request{Type: protocol.CmdShutdown}}

func roundTrip(t *testing.T, conn net.Conn, cmd *protocol.Command) *protocol.Response {
	t.Helper()
	if err := protocol.WriteCommand(conn, cmd); err != nil {
		t.Fatalf("write: %v", err)
	}
	reply, err := protocol.ReadCommand(conn, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if reply.Response == nil {
		t.Fatal("reply carries no response")
	}
	return reply.Response
}

// requestShutdown sends CMD_SHUTDOWN and expects the connection to close
// without a reply.
func requestShutdown(t *testing.T, conn net.Conn) {
	t.Helper()
	if err := protocol.WriteCommand(conn, shutdownRequest); err != nil {
		t.Fatalf("write: %v", err)
	}
	if payload, err := protocol.ReadFrame(conn, 0); err != io.EOF {
		t.Fatalf("read after shutdown = % x, %v; want EOF", payload, err)
	}
}

func TestServeConn_Pipe(t *testing.T) {
	s, eng := newTestServer(t, Config{Engine: "khiin.db"})
	client, conn := net.Pipe()
	defer client.Close()

	done := make(chan error, 1)
	go func() { done <- s.ServeConn(context.Background(), conn) }()

	resp := roundTrip(t, client, keyRequest('a'))
	if !resp.Consumed || resp.EditState != protocol.ESComposing {
		t.Fatalf("response = %+v", resp)
	}

	// Undecodable frames still get an answer
	if err := protocol.WriteFrame(client, []byte{0xff, 0xff}); err != nil {
		t.Fatal(err)
	}
	if _, err := protocol.ReadCommand(client, 0); err != nil {
		t.Fatalf("malformed frame reply: %v", err)
	}

	requestShutdown(t, client)
	if err := <-done; !stderrors.Is(err, ErrShutdownRequested) {
		t.Fatalf("ServeConn = %v, want ErrShutdownRequested", err)
	}

	got := eng.commands()
	if len(got) != 2 || got[0] != protocol.CmdSendKey || got[1] != protocol.CmdUnspecified {
		t.Fatalf("engine saw %v; shutdown must not reach the engine", got)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if eng.closed.Load() != 1 {
		t.Fatal("Close should shut the engine down")
	}
}

func TestServeConn_EOF(t *testing.T) {
	s, _ := newTestServer(t, Config{Engine: "khiin.db"})
	defer s.Close()
	client, conn := net.Pipe()

	done := make(chan error, 1)
	go func() { done <- s.ServeConn(context.Background(), conn) }()

	roundTrip(t, client, keyRequest('b'))
	client.Close()
	if err := <-done; err != nil {
		t.Fatalf("ServeConn after EOF = %v", err)
	}
}

func TestServeConn_OversizedFrame(t *testing.T) {
	s, _ := newTestServer(t, Config{Engine: "khiin.db", MaxFrame: 16})
	defer s.Close()
	client, conn := net.Pipe()
	defer client.Close()

	done := make(chan error, 1)
	go func() { done <- s.ServeConn(context.Background(), conn) }()

	go protocol.WriteFrame(client, make([]byte, 1000))

	err := <-done
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseTransport, Kind: errors.KindTooLarge}) {
		t.Fatalf("ServeConn = %v, want too large", err)
	}
}

func TestServeConn_ContextCancel(t *testing.T) {
	s, _ := newTestServer(t, Config{Engine: "khiin.db"})
	defer s.Close()
	client, conn := net.Pipe()
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeConn(ctx, conn) }()

	roundTrip(t, client, keyRequest('c'))
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ServeConn = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ServeConn did not stop on cancel")
	}
}

func socketPath(t *testing.T) string {
	t.Helper()
	// Unix socket paths are short; t.TempDir can exceed the limit.
	dir, err := os.MkdirTemp("", "khiin")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "s.sock")
}

func TestServe_UnixSocket(t *testing.T) {
	s, eng := newTestServer(t, Config{
		Engine:   "khiin.db",
		Settings: &settings.Settings{InputMode: "basic"},
	})
	path := socketPath(t)
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background(), ln) }()

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if resp := roundTrip(t, conn, keyRequest('k')); !resp.Consumed {
		t.Fatalf("response = %+v", resp)
	}
	requestShutdown(t, conn)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop after CMD_SHUTDOWN")
	}
	if eng.closed.Load() != 1 {
		t.Fatal("engine should be shut down when Serve returns")
	}

	eng.mu.Lock()
	defer eng.mu.Unlock()
	if len(eng.configs) != 1 || eng.configs[0].InputMode != protocol.ModeBasic {
		t.Fatalf("settings not applied: %+v", eng.configs)
	}
}

func TestServe_IdleTimeout(t *testing.T) {
	s, eng := newTestServer(t, Config{Engine: "khiin.db", IdleTimeout: 50 * time.Millisecond})
	ln, err := net.Listen("unix", socketPath(t))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background(), ln) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("idle server did not stop")
	}
	if eng.closed.Load() != 1 {
		t.Fatal("engine should be shut down after idle timeout")
	}
}

func TestServe_LoadFailure(t *testing.T) {
	s, _ := newTestServer(t, Config{Engine: "broken"})
	ln, err := net.Listen("unix", socketPath(t))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	err = s.Serve(context.Background(), ln)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInitialization}) {
		t.Fatalf("Serve = %v, want initialization error", err)
	}
	if _, err := ln.Accept(); err == nil {
		t.Fatal("listener should be closed")
	}
}

func TestServe_ContextCancel(t *testing.T) {
	s, eng := newTestServer(t, Config{Engine: "khiin.db", IdleTimeout: -1})
	ln, err := net.Listen("unix", socketPath(t))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop on cancel")
	}
	if eng.closed.Load() != 1 {
		t.Fatal("engine should be shut down on cancel")
	}
}
