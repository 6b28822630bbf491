package dict

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/khiin-bridge/protocol"
)

// Engine converts romanized input to candidates from a dictionary Store.
//
// Engine is not safe for concurrent use; the bridge serializes commands per
// handle.
type Engine struct {
	store *Store
	log   *zap.Logger

	buffer     string
	candidates []protocol.Candidate
	focused    int

	mode         protocol.InputMode
	imeEnabled   bool
	telexEnabled bool
}

// Open loads the dictionary at path and returns an engine in continuous mode
// with the IME enabled.
func Open(ctx context.Context, path string) (*Engine, error) {
	store, err := OpenStore(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(store), nil
}

// New returns an engine over an open store. The engine owns the store.
func New(store *Store) *Engine {
	return &Engine{
		store:      store,
		log:        Logger(),
		focused:    -1,
		mode:       protocol.ModeContinuous,
		imeEnabled: true,
	}
}

// Close releases the dictionary.
func (e *Engine) Close() error {
	return e.store.Close()
}

// SendCommand handles cmd.Request and fills cmd.Response.
//
// CMD_SELECT_CANDIDATE and CMD_FOCUS_CANDIDATE take the candidate ID from
// Request.ID.
func (e *Engine) SendCommand(cmd *protocol.Command) {
	req := cmd.Request
	if req == nil {
		req = &protocol.Request{}
	}
	if cmd.Response == nil {
		cmd.Response = &protocol.Response{}
	}
	resp := cmd.Response

	switch req.Type {
	case protocol.CmdSendKey:
		e.sendKey(req.KeyEvent, resp)
	case protocol.CmdTestSendKey:
		// Report whether the key would be consumed without keeping its effect
		saved := *e
		trial := &protocol.Response{}
		e.sendKey(req.KeyEvent, trial)
		*e = saved
		resp.Consumed = trial.Consumed
		return
	case protocol.CmdCommit:
		e.commit(resp, e.selection())
	case protocol.CmdReset:
		e.clear()
	case protocol.CmdRevert:
		if e.focused >= 0 {
			e.focused = -1
			resp.Consumed = true
		} else if e.buffer != "" {
			e.clear()
			resp.Consumed = true
		}
	case protocol.CmdSelectCandidate:
		if i := e.candidateIndex(req.ID); i >= 0 {
			e.commit(resp, e.candidates[i].Value)
			return
		}
	case protocol.CmdFocusCandidate:
		if i := e.candidateIndex(req.ID); i >= 0 {
			e.focused = i
		}
	case protocol.CmdSetConfig:
		e.applyConfig(req.Config)
		resp.Config = e.config()
	case protocol.CmdSwitchInputMode:
		e.switchMode(req.Config)
		resp.Config = e.config()
	case protocol.CmdDisable:
		e.imeEnabled = false
		e.clear()
		resp.Config = e.config()
	case protocol.CmdEnable:
		e.imeEnabled = true
		resp.Config = e.config()
	default:
		// Unspecified and host-level commands produce an empty response
		return
	}
	e.fill(resp)
}

func (e *Engine) sendKey(ev *protocol.KeyEvent, resp *protocol.Response) {
	if ev == nil || !e.imeEnabled || e.mode == protocol.ModeDirect {
		return
	}
	if ev.SpecialKey != protocol.SKNone {
		e.specialKey(ev.SpecialKey, resp)
		return
	}

	r := rune(ev.KeyCode)
	if e.focused >= 0 && r >= '1' && r <= '9' {
		if i := int(r - '1'); i < len(e.candidates) {
			e.commit(resp, e.candidates[i].Value)
			resp.Consumed = true
			return
		}
	}
	if !isInputRune(r) || (e.telexEnabled && isDigit(r)) {
		return
	}
	e.buffer += string(r)
	e.focused = -1
	e.refresh(resp)
	resp.Consumed = true
}

func (e *Engine) specialKey(key protocol.SpecialKey, resp *protocol.Response) {
	if e.buffer == "" {
		return
	}
	switch key {
	case protocol.SKBackspace:
		if e.focused >= 0 {
			e.focused = -1
		} else {
			_, size := utf8.DecodeLastRuneInString(e.buffer)
			e.buffer = e.buffer[:len(e.buffer)-size]
			e.refresh(resp)
		}
	case protocol.SKSpace, protocol.SKDown, protocol.SKTab:
		if n := len(e.candidates); n > 0 {
			e.focused = (e.focused + 1) % n
		}
	case protocol.SKUp:
		if n := len(e.candidates); n > 0 {
			if e.focused <= 0 {
				e.focused = n - 1
			} else {
				e.focused--
			}
		}
	case protocol.SKEnter:
		e.commit(resp, e.selection())
	case protocol.SKEsc:
		e.clear()
	default:
		return
	}
	resp.Consumed = true
}

// refresh reloads candidates for the buffer. Lookup failures leave the
// buffer in place and mark the response.
func (e *Engine) refresh(resp *protocol.Response) {
	e.candidates = nil
	e.focused = -1
	if e.buffer == "" || e.mode == protocol.ModeManual {
		return
	}

	entries, err := e.store.Lookup(context.Background(), e.buffer)
	if err != nil {
		e.log.Error("dictionary lookup failed",
			zap.String("input", e.buffer),
			zap.Error(err))
		resp.Error = protocol.ErrEngine
		return
	}
	for i, ent := range entries {
		e.candidates = append(e.candidates, protocol.Candidate{
			ID:         int32(i + 1),
			Value:      ent.Output,
			Key:        e.buffer,
			Annotation: ent.Annotation,
		})
	}
}

func (e *Engine) selection() string {
	if e.focused >= 0 && e.focused < len(e.candidates) {
		return e.candidates[e.focused].Value
	}
	return e.buffer
}

// commit reports text as committed and clears the composition. The committed
// text travels in the preedit.
func (e *Engine) commit(resp *protocol.Response, text string) {
	e.clear()
	if text == "" {
		return
	}
	resp.Committed = true
	resp.Preedit = &protocol.Preedit{
		Segments: []protocol.Segment{{Value: text, Status: protocol.SSUnmarked}},
		Caret:    int32(utf8.RuneCountInString(text)),
	}
}

func (e *Engine) clear() {
	e.buffer = ""
	e.candidates = nil
	e.focused = -1
}

// fill writes the composition state into resp unless it already carries a
// commit.
func (e *Engine) fill(resp *protocol.Response) {
	if resp.Committed {
		resp.EditState = protocol.ESEmpty
		return
	}
	if e.buffer == "" {
		resp.EditState = protocol.ESEmpty
		return
	}

	if e.focused >= 0 {
		text := e.candidates[e.focused].Value
		resp.EditState = protocol.ESSelecting
		resp.Preedit = &protocol.Preedit{
			Segments:     []protocol.Segment{{Value: text, Status: protocol.SSFocused}},
			Caret:        int32(utf8.RuneCountInString(text)),
			FocusedCaret: 0,
		}
	} else {
		resp.EditState = protocol.ESComposing
		resp.Preedit = &protocol.Preedit{
			Segments: []protocol.Segment{{Value: e.buffer, Status: protocol.SSComposing}},
			Caret:    int32(utf8.RuneCountInString(e.buffer)),
		}
	}

	if len(e.candidates) > 0 {
		resp.CandidateList = &protocol.CandidateList{
			Candidates: append([]protocol.Candidate(nil), e.candidates...),
			Focused:    int32(e.focused),
		}
	}
}

func (e *Engine) applyConfig(cfg *protocol.AppConfig) {
	if cfg == nil {
		return
	}
	if cfg.IMEEnabled != nil {
		e.imeEnabled = *cfg.IMEEnabled
	}
	if cfg.TelexEnabled != nil {
		e.telexEnabled = *cfg.TelexEnabled
	}
	if cfg.InputMode != protocol.ModeUnspecified {
		e.setMode(cfg.InputMode)
	}
	if !e.imeEnabled {
		e.clear()
	}
}

func (e *Engine) switchMode(cfg *protocol.AppConfig) {
	if cfg != nil && cfg.InputMode != protocol.ModeUnspecified {
		e.setMode(cfg.InputMode)
		return
	}
	e.setMode(nextMode(e.mode))
}

func (e *Engine) setMode(m protocol.InputMode) {
	if m == e.mode {
		return
	}
	e.mode = m
	e.clear()
}

func (e *Engine) config() *protocol.AppConfig {
	return &protocol.AppConfig{
		IMEEnabled:   protocol.Bool(e.imeEnabled),
		TelexEnabled: protocol.Bool(e.telexEnabled),
		InputMode:    e.mode,
	}
}

func (e *Engine) candidateIndex(id uint32) int {
	for i, c := range e.candidates {
		if uint32(c.ID) == id {
			return i
		}
	}
	return -1
}

func nextMode(m protocol.InputMode) protocol.InputMode {
	switch m {
	case protocol.ModeContinuous:
		return protocol.ModeBasic
	case protocol.ModeBasic:
		return protocol.ModeManual
	case protocol.ModeManual:
		return protocol.ModeDirect
	default:
		return protocol.ModeContinuous
	}
}

func isInputRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		isDigit(r) ||
		r == '-'
}

// Telex spells tones with letters, so digits are not part of the input.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
