package khiin

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/wippyai/khiin-bridge/protocol"
)

func writeDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "khiin.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE conversions (input TEXT, output TEXT, weight INTEGER, annotation TEXT);
		INSERT INTO conversions VALUES ('li', '你', 2, NULL), ('li', '汝', 1, NULL);`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return path
}

func TestLoadSubmitShutdown(t *testing.T) {
	h := Load(writeDict(t))
	if h == InvalidHandle {
		t.Fatal("Load returned the sentinel")
	}

	var resp *protocol.Response
	for _, r := range "li" {
		out := Submit(h, protocol.EncodeRequest(&protocol.Request{
			Type:     protocol.CmdSendKey,
			KeyEvent: &protocol.KeyEvent{KeyCode: int32(r)},
		}))
		var err error
		if resp, err = protocol.DecodeResponse(out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	if resp.CandidateList == nil || len(resp.CandidateList.Candidates) != 2 {
		t.Fatalf("candidates = %+v", resp.CandidateList)
	}
	if resp.CandidateList.Candidates[0].Value != "你" {
		t.Fatalf("best candidate = %q", resp.CandidateList.Candidates[0].Value)
	}

	if err := Shutdown(h); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := Shutdown(h); err == nil {
		t.Fatal("second Shutdown should report a stale handle")
	}

	resp, err := protocol.DecodeResponse(Submit(h, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Error != protocol.ErrInvalidHandle {
		t.Fatalf("Error = %v, want ERROR_INVALID_HANDLE", resp.Error)
	}
}

func TestSubmit_BareRequestBytes(t *testing.T) {
	h := Load(writeDict(t))
	if h == InvalidHandle {
		t.Fatal("Load returned the sentinel")
	}
	defer Shutdown(h)

	req := []byte{
		0x08, 0x01, // type = CMD_SEND_KEY
		0x12, 0x02, // key_event
		0x08, 0x6c, // key_code = 'l'
	}
	resp, err := protocol.DecodeResponse(Submit(h, req))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Consumed || resp.Preedit.Text() != "l" {
		t.Fatalf("consumed=%v preedit=%q", resp.Consumed, resp.Preedit.Text())
	}
}

func TestLoad_Failure(t *testing.T) {
	if h := Load(filepath.Join(t.TempDir(), "missing.db")); h != InvalidHandle {
		t.Fatalf("Load = %#x, want sentinel", h)
	}
	if h := Load(""); h != InvalidHandle {
		t.Fatal("empty config should fail")
	}
}
