package wasmengine

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/protocol"
)

func section(id byte, body ...byte) []byte {
	return append([]byte{id, byte(len(body))}, body...)
}

func export(name string, kind, index byte) []byte {
	b := append([]byte{byte(len(name))}, name...)
	return append(b, kind, index)
}

// guestModule assembles a core module exporting memory, khiin_alloc (always
// 2048) and khiin_send_command with the given body. A data segment at 1024
// holds result.
func guestModule(sendBody, result []byte) []byte {
	b := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	// (i32) -> i32, (i32, i32) -> i64
	b = append(b, section(0x01, 0x02, 0x60, 0x01, 0x7f, 0x01, 0x7f, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7e)...)
	b = append(b, section(0x03, 0x02, 0x00, 0x01)...)
	b = append(b, section(0x05, 0x01, 0x00, 0x01)...)

	exports := []byte{0x03}
	exports = append(exports, export(ExportMemory, 0x02, 0)...)
	exports = append(exports, export(ExportAlloc, 0x00, 0)...)
	exports = append(exports, export(ExportSendCommand, 0x00, 1)...)
	b = append(b, section(0x07, exports...)...)

	allocBody := []byte{0x00, 0x41, 0x80, 0x10, 0x0b} // i32.const 2048
	code := []byte{0x02, byte(len(allocBody))}
	code = append(code, allocBody...)
	code = append(code, byte(len(sendBody)))
	code = append(code, sendBody...)
	b = append(b, section(0x0a, code...)...)

	data := []byte{0x01, 0x00, 0x41, 0x80, 0x08, 0x0b, byte(len(result))} // offset 1024
	data = append(data, result...)
	return append(b, section(0x0b, data...)...)
}

// returnFixed returns (1024 << 32) | n.
func returnFixed(n byte) []byte {
	return []byte{0x00, 0x42, 0x80, 0x08, 0x42, 0x20, 0x86, 0x42, n, 0x84, 0x0b}
}

var trapBody = []byte{0x00, 0x00, 0x0b} // unreachable

func TestEngine_RoundTrip(t *testing.T) {
	result := protocol.EncodeCommand(&protocol.Command{Response: &protocol.Response{Committed: true}})
	if !bytes.Equal(result, []byte{0x12, 0x02, 0x20, 0x01}) {
		t.Fatalf("unexpected fixture encoding % x", result)
	}

	ctx := context.Background()
	e, err := New(ctx, guestModule(returnFixed(byte(len(result))), result), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	cmd := &protocol.Command{
		Request:  &protocol.Request{Type: protocol.CmdCommit},
		Response: &protocol.Response{},
	}
	e.SendCommand(cmd)
	if !cmd.Response.Committed || cmd.Response.Error != protocol.ErrNone {
		t.Fatalf("response = %+v", cmd.Response)
	}

	// Request bytes land where khiin_alloc said
	view, ok := e.memory.Read(2048, 4)
	if !ok {
		t.Fatal("read guest memory")
	}
	want := protocol.EncodeCommand(&protocol.Command{Request: &protocol.Request{Type: protocol.CmdCommit}})
	if !bytes.Equal(view, want) {
		t.Fatalf("guest saw % x, want % x", view, want)
	}
}

func TestEngine_Trap(t *testing.T) {
	e, err := New(context.Background(), guestModule(trapBody, []byte{0x00}), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	cmd := &protocol.Command{Request: &protocol.Request{Type: protocol.CmdSendKey}}
	e.SendCommand(cmd)
	if cmd.Response == nil || cmd.Response.Error != protocol.ErrEngine {
		t.Fatalf("trap should produce ERROR_ENGINE, got %+v", cmd.Response)
	}

	_, err = e.call(context.Background(), &protocol.Request{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEngine, Kind: errors.KindTrap}) {
		t.Fatalf("call error = %v, want trap", err)
	}
}

func TestEngine_MalformedOutput(t *testing.T) {
	garbage := []byte{0x0a, 0x05, 0x08} // truncated
	e, err := New(context.Background(), guestModule(returnFixed(byte(len(garbage))), garbage), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer e.Close()

	cmd := &protocol.Command{Request: &protocol.Request{}, Response: &protocol.Response{Consumed: true}}
	e.SendCommand(cmd)
	if cmd.Response.Error != protocol.ErrEngine || cmd.Response.Consumed {
		t.Fatalf("response = %+v, want only ERROR_ENGINE", cmd.Response)
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name string
		wasm []byte
	}{
		{"garbage", []byte("not a wasm module")},
		{"empty module", []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(context.Background(), tt.wasm, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, filepath.Join(t.TempDir(), "missing.wasm"))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInitialization}) {
		t.Fatalf("Open(missing) = %v, want initialization error", err)
	}

	result := protocol.EncodeCommand(&protocol.Command{Response: &protocol.Response{Committed: true}})
	path := filepath.Join(t.TempDir(), "engine.wasm")
	if err := os.WriteFile(path, guestModule(returnFixed(byte(len(result))), result), 0o600); err != nil {
		t.Fatal(err)
	}
	e, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatal("second Close should be a no-op")
	}
}
