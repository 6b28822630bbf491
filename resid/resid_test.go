package resid

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want ID
	}{
		{"IDM_MANIFEST", 1},
		{"IDS_TEXT_SERVICE_DISPLAY_NAME", 101},
		{"IDI_MODE_BASIC_W", 110},
		{"IDR_POPUP_MENU", 113},
		{"IDS_OPEN_SETTINGS", 2004},
		{"RT_MANIFEST", 24},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %d, %v, want %d", tt.name, got, ok, tt.want)
		}
	}

	if _, ok := Lookup("IDI_UNKNOWN"); ok {
		t.Error("unknown symbol should not resolve")
	}
}

func TestName(t *testing.T) {
	if name, ok := Name(IDSManualMode); !ok || name != "IDS_MANUAL_MODE" {
		t.Fatalf("Name(IDSManualMode) = %q, %v", name, ok)
	}
	if _, ok := Name(9999); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestIDsUnique(t *testing.T) {
	seen := map[ID]string{}
	for _, name := range Names() {
		if name == "RT_MANIFEST" {
			continue
		}
		id, _ := Lookup(name)
		if prev, dup := seen[id]; dup {
			t.Errorf("%s and %s share id %d", prev, name, id)
		}
		seen[id] = name
	}
	if len(seen) != len(Names())-1 {
		t.Fatalf("expected %d item ids, got %d", len(Names())-1, len(seen))
	}
}
