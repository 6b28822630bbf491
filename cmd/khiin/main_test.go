package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"

	"github.com/wippyai/khiin-bridge/bridge"
	"github.com/wippyai/khiin-bridge/engine"
	"github.com/wippyai/khiin-bridge/protocol"
	"github.com/wippyai/khiin-bridge/settings"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		script  string
		want    []*protocol.KeyEvent
		wantErr bool
	}{
		{script: "", want: nil},
		{script: "ka", want: []*protocol.KeyEvent{{KeyCode: 'k'}, {KeyCode: 'a'}}},
		{script: "â", want: []*protocol.KeyEvent{{KeyCode: 'â'}}},
		{script: "a{space}{ENTER}", want: []*protocol.KeyEvent{
			{KeyCode: 'a'},
			{SpecialKey: protocol.SKSpace},
			{SpecialKey: protocol.SKEnter},
		}},
		{script: "{{", want: []*protocol.KeyEvent{{KeyCode: '{'}}},
		{script: "{bogus}", wantErr: true},
		{script: "a{space", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got, err := parseKeys(tt.script)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseKeys failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeyEvent(t *testing.T) {
	ev, ok := keyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}, Alt: true})
	if !ok || ev.KeyCode != 'k' || len(ev.Modifiers) != 1 || ev.Modifiers[0] != protocol.ModAlt {
		t.Fatalf("keyEvent = %+v, %v", ev, ok)
	}
	ev, ok = keyEvent(tea.KeyMsg{Type: tea.KeyBackspace})
	if !ok || ev.SpecialKey != protocol.SKBackspace {
		t.Fatalf("backspace = %+v, %v", ev, ok)
	}
	if _, ok := keyEvent(tea.KeyMsg{Type: tea.KeyCtrlA}); ok {
		t.Fatal("ctrl+a should not map to a key event")
	}
}

func seedDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "khiin.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE conversions (input TEXT, output TEXT, weight INTEGER, annotation TEXT)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO conversions VALUES ('ho', '好', 3, NULL), ('ho', '號', 2, 'hō')`); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	b := bridge.New(engine.Open)
	defer b.Close()

	var out bytes.Buffer
	if err := run(context.Background(), &out, b, seedDict(t), settings.Default(), "ho{space}{space}"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"State: ES_SELECTING", "  1. 好", "> 2. 號 (hō)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if b.Len() != 0 {
		t.Fatal("run should shut its engine down")
	}

	out.Reset()
	if err := run(context.Background(), &out, b, seedDict(t), settings.Default(), "ho{enter}"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Committed: ho\n") {
		t.Fatalf("raw commit output:\n%s", out.String())
	}

	if err := run(context.Background(), &out, b, filepath.Join(t.TempDir(), "none.db"), settings.Default(), "a"); err == nil {
		t.Fatal("expected load error")
	}
}

func TestInteractiveModel(t *testing.T) {
	ctx := context.Background()
	b := bridge.New(engine.Open)
	defer b.Close()

	h, cfg, err := load(ctx, b, seedDict(t), settings.Default())
	if err != nil {
		t.Fatal(err)
	}
	m := newInteractiveModel(b, h, "khiin.db", cfg)

	for _, r := range "ho" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.resp.CandidateList == nil || len(m.resp.CandidateList.Candidates) != 2 {
		t.Fatalf("candidates = %+v", m.resp.CandidateList)
	}
	if !strings.Contains(m.View(), "好") {
		t.Fatal("view should list candidates")
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.committed.String() != "好" {
		t.Fatalf("committed = %q", m.committed.String())
	}

	// Unconsumed keys go straight to the output
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})
	if m.committed.String() != "好!" {
		t.Fatalf("committed = %q", m.committed.String())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.config.InputMode != protocol.ModeBasic {
		t.Fatalf("mode = %v after ctrl+t", m.config.InputMode)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}
