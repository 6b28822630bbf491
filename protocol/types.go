package protocol

// CommandType selects what the engine should do with a Request.
type CommandType int32

const (
	CmdUnspecified     CommandType = 0
	CmdSendKey         CommandType = 1
	CmdRevert          CommandType = 2
	CmdReset           CommandType = 3
	CmdCommit          CommandType = 4
	CmdSelectCandidate CommandType = 5
	CmdFocusCandidate  CommandType = 6
	CmdSwitchInputMode CommandType = 7
	CmdPlaceCursor     CommandType = 8
	CmdDisable         CommandType = 9
	CmdEnable          CommandType = 10
	CmdSetConfig       CommandType = 11
	CmdTestSendKey     CommandType = 12
	CmdListEmojis      CommandType = 13
	CmdResetUserData   CommandType = 14
	CmdShutdown        CommandType = 15
)

var commandTypeNames = map[CommandType]string{
	CmdUnspecified:     "CMD_UNSPECIFIED",
	CmdSendKey:         "CMD_SEND_KEY",
	CmdRevert:          "CMD_REVERT",
	CmdReset:           "CMD_RESET",
	CmdCommit:          "CMD_COMMIT",
	CmdSelectCandidate: "CMD_SELECT_CANDIDATE",
	CmdFocusCandidate:  "CMD_FOCUS_CANDIDATE",
	CmdSwitchInputMode: "CMD_SWITCH_INPUT_MODE",
	CmdPlaceCursor:     "CMD_PLACE_CURSOR",
	CmdDisable:         "CMD_DISABLE",
	CmdEnable:          "CMD_ENABLE",
	CmdSetConfig:       "CMD_SET_CONFIG",
	CmdTestSendKey:     "CMD_TEST_SEND_KEY",
	CmdListEmojis:      "CMD_LIST_EMOJIS",
	CmdResetUserData:   "CMD_RESET_USER_DATA",
	CmdShutdown:        "CMD_SHUTDOWN",
}

func (c CommandType) String() string {
	if s, ok := commandTypeNames[c]; ok {
		return s
	}
	return "CMD_UNKNOWN"
}

// SpecialKey names non-character keys.
type SpecialKey int32

const (
	SKNone SpecialKey = iota
	SKSpace
	SKEnter
	SKEsc
	SKBackspace
	SKTab
	SKLeft
	SKUp
	SKRight
	SKDown
	SKPgUp
	SKPgDn
	SKHome
	SKEnd
	SKDel
)

// ModifierKey names a held modifier.
type ModifierKey int32

const (
	ModNone ModifierKey = iota
	ModShift
	ModCtrl
	ModAlt
	ModCapsLock
)

// EditState describes the composition state after a command.
type EditState int32

const (
	ESEmpty EditState = iota
	ESComposing
	ESConverted
	ESSelecting
)

func (s EditState) String() string {
	switch s {
	case ESEmpty:
		return "ES_EMPTY"
	case ESComposing:
		return "ES_COMPOSING"
	case ESConverted:
		return "ES_CONVERTED"
	case ESSelecting:
		return "ES_SELECTING"
	default:
		return "ES_UNKNOWN"
	}
}

// SegmentStatus describes how one preedit segment is displayed.
type SegmentStatus int32

const (
	SSUnmarked SegmentStatus = iota
	SSComposing
	SSConverted
	SSFocused
)

// InputMode selects how the engine converts keystrokes.
type InputMode int32

const (
	ModeUnspecified InputMode = iota
	ModeContinuous
	ModeBasic
	ModeManual
	ModeDirect
)

var inputModeNames = map[InputMode]string{
	ModeUnspecified: "unspecified",
	ModeContinuous:  "continuous",
	ModeBasic:       "basic",
	ModeManual:      "manual",
	ModeDirect:      "direct",
}

func (m InputMode) String() string {
	if s, ok := inputModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseInputMode maps a lower-case mode name back to its value.
func ParseInputMode(s string) (InputMode, bool) {
	for m, name := range inputModeNames {
		if name == s {
			return m, true
		}
	}
	return ModeUnspecified, false
}

// ErrorCode is set by the bridge or the engine when a command could not be
// carried out. Zero means success.
type ErrorCode int32

const (
	ErrNone ErrorCode = iota
	ErrInvalidRequest
	ErrInvalidHandle
	ErrEngine
)

func (e ErrorCode) String() string {
	switch e {
	case ErrNone:
		return "ERROR_NONE"
	case ErrInvalidRequest:
		return "ERROR_INVALID_REQUEST"
	case ErrInvalidHandle:
		return "ERROR_INVALID_HANDLE"
	case ErrEngine:
		return "ERROR_ENGINE"
	default:
		return "ERROR_UNKNOWN"
	}
}

// Command is the envelope exchanged across the bridge. Callers fill Request;
// engines fill Response.
type Command struct {
	Request  *Request
	Response *Response
}

// Request is the caller side of a Command.
type Request struct {
	KeyEvent *KeyEvent
	Config   *AppConfig
	Type     CommandType
	ID       uint32
}

// KeyEvent is one keystroke.
type KeyEvent struct {
	Modifiers  []ModifierKey
	KeyCode    int32
	SpecialKey SpecialKey
}

// Response is the engine side of a Command.
type Response struct {
	Preedit       *Preedit
	CandidateList *CandidateList
	Config        *AppConfig
	EditState     EditState
	Error         ErrorCode
	Committed     bool
	Consumed      bool
}

// Preedit is the uncommitted text shown at the caret.
type Preedit struct {
	Segments     []Segment
	Caret        int32
	FocusedCaret int32
}

// Text concatenates all segment values.
func (p *Preedit) Text() string {
	if p == nil {
		return ""
	}
	var n int
	for _, s := range p.Segments {
		n += len(s.Value)
	}
	b := make([]byte, 0, n)
	for _, s := range p.Segments {
		b = append(b, s.Value...)
	}
	return string(b)
}

// Segment is a run of preedit text with one display status.
type Segment struct {
	Value  string
	Status SegmentStatus
}

// CandidateList holds conversion candidates. Focused is -1 when no candidate
// has focus.
type CandidateList struct {
	Candidates []Candidate
	Focused    int32
}

// Candidate is one conversion option.
type Candidate struct {
	Value      string
	Key        string
	Annotation string
	ID         int32
}

// AppConfig carries user-facing settings. Nil booleans are unset, which is
// distinct from false.
type AppConfig struct {
	IMEEnabled   *bool
	TelexEnabled *bool
	InputMode    InputMode
}

// Bool returns a pointer to v, for AppConfig fields.
func Bool(v bool) *bool {
	return &v
}
