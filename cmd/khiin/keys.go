package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/khiin-bridge/protocol"
)

var namedKeys = map[string]protocol.SpecialKey{
	"space": protocol.SKSpace,
	"enter": protocol.SKEnter,
	"esc":   protocol.SKEsc,
	"bs":    protocol.SKBackspace,
	"tab":   protocol.SKTab,
	"left":  protocol.SKLeft,
	"up":    protocol.SKUp,
	"right": protocol.SKRight,
	"down":  protocol.SKDown,
	"pgup":  protocol.SKPgUp,
	"pgdn":  protocol.SKPgDn,
	"home":  protocol.SKHome,
	"end":   protocol.SKEnd,
	"del":   protocol.SKDel,
}

var teaKeys = map[tea.KeyType]protocol.SpecialKey{
	tea.KeySpace:     protocol.SKSpace,
	tea.KeyEnter:     protocol.SKEnter,
	tea.KeyEsc:       protocol.SKEsc,
	tea.KeyBackspace: protocol.SKBackspace,
	tea.KeyTab:       protocol.SKTab,
	tea.KeyLeft:      protocol.SKLeft,
	tea.KeyUp:        protocol.SKUp,
	tea.KeyRight:     protocol.SKRight,
	tea.KeyDown:      protocol.SKDown,
	tea.KeyPgUp:      protocol.SKPgUp,
	tea.KeyPgDown:    protocol.SKPgDn,
	tea.KeyHome:      protocol.SKHome,
	tea.KeyEnd:       protocol.SKEnd,
	tea.KeyDelete:    protocol.SKDel,
}

// parseKeys turns a key script into key events. Plain characters are typed
// as is; {name} sends a special key, e.g. "khiin{space}{enter}". A literal
// brace is written {{.
func parseKeys(script string) ([]*protocol.KeyEvent, error) {
	var events []*protocol.KeyEvent
	for i := 0; i < len(script); {
		if script[i] != '{' {
			r, size := utf8.DecodeRuneInString(script[i:])
			events = append(events, &protocol.KeyEvent{KeyCode: int32(r)})
			i += size
			continue
		}
		if strings.HasPrefix(script[i:], "{{") {
			events = append(events, &protocol.KeyEvent{KeyCode: '{'})
			i += 2
			continue
		}
		end := strings.IndexByte(script[i:], '}')
		if end < 0 {
			return nil, fmt.Errorf("unterminated key name at offset %d", i)
		}
		name := strings.ToLower(script[i+1 : i+end])
		sk, ok := namedKeys[name]
		if !ok {
			return nil, fmt.Errorf("unknown key {%s}", name)
		}
		events = append(events, &protocol.KeyEvent{SpecialKey: sk})
		i += end + 1
	}
	return events, nil
}

// keyEvent maps a terminal key press to a key event. ok is false for keys the
// engine has no use for.
func keyEvent(msg tea.KeyMsg) (ev *protocol.KeyEvent, ok bool) {
	if sk, found := teaKeys[msg.Type]; found {
		ev = &protocol.KeyEvent{SpecialKey: sk}
	} else if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		ev = &protocol.KeyEvent{KeyCode: msg.Runes[0]}
	} else {
		return nil, false
	}
	if msg.Alt {
		ev.Modifiers = append(ev.Modifiers, protocol.ModAlt)
	}
	return ev, true
}
