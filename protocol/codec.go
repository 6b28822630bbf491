package protocol

import (
	"strings"

	"google.golang.org/protobuf/proto"

	"github.com/wippyai/khiin-bridge/errors"
	"github.com/wippyai/khiin-bridge/protocol/khiinpb"
)

var marshalOptions = proto.MarshalOptions{Deterministic: true}

func marshal(m proto.Message) []byte {
	b, err := marshalOptions.Marshal(m)
	if err != nil || b == nil {
		return []byte{}
	}
	return b
}

func unmarshal(what string, b []byte, m proto.Message) error {
	if err := proto.Unmarshal(b, m); err != nil {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(what).
			Cause(err).
			Build()
	}
	return nil
}

// EncodeCommand serializes c. It never fails; a nil command encodes to an
// empty buffer.
func EncodeCommand(c *Command) []byte {
	if c == nil {
		return []byte{}
	}
	return marshal(commandToPB(c))
}

// EncodeRequest serializes a bare Request message.
func EncodeRequest(r *Request) []byte {
	if r == nil {
		return []byte{}
	}
	return marshal(requestToPB(r))
}

// EncodeResponse serializes a bare Response message.
func EncodeResponse(r *Response) []byte {
	if r == nil {
		return []byte{}
	}
	return marshal(responseToPB(r))
}

// DecodeCommand parses a Command envelope. Malformed input yields a
// *errors.Error with PhaseDecode; it never panics.
func DecodeCommand(b []byte) (*Command, error) {
	var m khiinpb.Command
	if err := unmarshal("command", b, &m); err != nil {
		return nil, err
	}
	return commandFromPB(&m), nil
}

// DecodeRequest parses a bare Request message. Empty input is a default
// Request.
func DecodeRequest(b []byte) (*Request, error) {
	var m khiinpb.Request
	if err := unmarshal("request", b, &m); err != nil {
		return nil, err
	}
	return requestFromPB(&m), nil
}

// DecodeResponse parses a bare Response message.
func DecodeResponse(b []byte) (*Response, error) {
	var m khiinpb.Response
	if err := unmarshal("response", b, &m); err != nil {
		return nil, err
	}
	return responseFromPB(&m), nil
}

// Codec adapts the package functions to a value that can be swapped in
// tests or by alternative transports.
type Codec interface {
	Decode(b []byte) (*Command, error)
	Encode(c *Command) []byte
}

// Wire is the protobuf binary Codec.
type Wire struct{}

func (Wire) Decode(b []byte) (*Command, error) { return DecodeCommand(b) }

func (Wire) Encode(c *Command) []byte { return EncodeCommand(c) }

// proto3 strings must be UTF-8 for Marshal to succeed.
func validString(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func commandToPB(c *Command) *khiinpb.Command {
	m := &khiinpb.Command{}
	if c.Request != nil {
		m.Request = requestToPB(c.Request)
	}
	if c.Response != nil {
		m.Response = responseToPB(c.Response)
	}
	return m
}

func commandFromPB(m *khiinpb.Command) *Command {
	c := &Command{}
	if m.Request != nil {
		c.Request = requestFromPB(m.Request)
	}
	if m.Response != nil {
		c.Response = responseFromPB(m.Response)
	}
	return c
}

func requestToPB(r *Request) *khiinpb.Request {
	m := &khiinpb.Request{
		Type: khiinpb.CommandType(r.Type),
		Id:   r.ID,
	}
	if r.KeyEvent != nil {
		m.KeyEvent = &khiinpb.KeyEvent{
			KeyCode:    r.KeyEvent.KeyCode,
			SpecialKey: khiinpb.SpecialKey(r.KeyEvent.SpecialKey),
		}
		for _, mod := range r.KeyEvent.Modifiers {
			m.KeyEvent.ModifierKeys = append(m.KeyEvent.ModifierKeys, khiinpb.ModifierKey(mod))
		}
	}
	if r.Config != nil {
		m.Config = configToPB(r.Config)
	}
	return m
}

func requestFromPB(m *khiinpb.Request) *Request {
	r := &Request{
		Type: CommandType(m.Type),
		ID:   m.Id,
	}
	if ke := m.KeyEvent; ke != nil {
		r.KeyEvent = &KeyEvent{
			KeyCode:    ke.KeyCode,
			SpecialKey: SpecialKey(ke.SpecialKey),
		}
		for _, mod := range ke.ModifierKeys {
			r.KeyEvent.Modifiers = append(r.KeyEvent.Modifiers, ModifierKey(mod))
		}
	}
	if m.Config != nil {
		r.Config = configFromPB(m.Config)
	}
	return r
}

func responseToPB(r *Response) *khiinpb.Response {
	m := &khiinpb.Response{
		EditState: khiinpb.EditState(r.EditState),
		Committed: r.Committed,
		Consumed:  r.Consumed,
		Error:     khiinpb.ErrorCode(r.Error),
	}
	if p := r.Preedit; p != nil {
		m.Preedit = &khiinpb.Preedit{Caret: p.Caret, FocusedCaret: p.FocusedCaret}
		for _, s := range p.Segments {
			m.Preedit.Segments = append(m.Preedit.Segments, &khiinpb.Segment{
				Status: khiinpb.SegmentStatus(s.Status),
				Value:  validString(s.Value),
			})
		}
	}
	if cl := r.CandidateList; cl != nil {
		m.CandidateList = &khiinpb.CandidateList{Focused: cl.Focused}
		for _, c := range cl.Candidates {
			m.CandidateList.Candidates = append(m.CandidateList.Candidates, &khiinpb.Candidate{
				Id:         c.ID,
				Value:      validString(c.Value),
				Key:        validString(c.Key),
				Annotation: validString(c.Annotation),
			})
		}
	}
	if r.Config != nil {
		m.Config = configToPB(r.Config)
	}
	return m
}

func responseFromPB(m *khiinpb.Response) *Response {
	r := &Response{
		EditState: EditState(m.EditState),
		Committed: m.Committed,
		Consumed:  m.Consumed,
		Error:     ErrorCode(m.Error),
	}
	if p := m.Preedit; p != nil {
		r.Preedit = &Preedit{Caret: p.Caret, FocusedCaret: p.FocusedCaret}
		for _, s := range p.Segments {
			r.Preedit.Segments = append(r.Preedit.Segments, Segment{
				Value:  s.GetValue(),
				Status: SegmentStatus(s.GetStatus()),
			})
		}
	}
	if cl := m.CandidateList; cl != nil {
		r.CandidateList = &CandidateList{Focused: cl.Focused}
		for _, c := range cl.Candidates {
			r.CandidateList.Candidates = append(r.CandidateList.Candidates, Candidate{
				ID:         c.GetId(),
				Value:      c.GetValue(),
				Key:        c.GetKey(),
				Annotation: c.GetAnnotation(),
			})
		}
	}
	if m.Config != nil {
		r.Config = configFromPB(m.Config)
	}
	return r
}

func configToPB(c *AppConfig) *khiinpb.AppConfig {
	m := &khiinpb.AppConfig{InputMode: khiinpb.AppInputMode(c.InputMode)}
	if c.IMEEnabled != nil {
		m.ImeEnabled = &khiinpb.BoolValue{Value: *c.IMEEnabled}
	}
	if c.TelexEnabled != nil {
		m.TelexEnabled = &khiinpb.BoolValue{Value: *c.TelexEnabled}
	}
	return m
}

func configFromPB(m *khiinpb.AppConfig) *AppConfig {
	c := &AppConfig{InputMode: InputMode(m.InputMode)}
	if m.ImeEnabled != nil {
		c.IMEEnabled = Bool(m.ImeEnabled.Value)
	}
	if m.TelexEnabled != nil {
		c.TelexEnabled = Bool(m.TelexEnabled.Value)
	}
	return c
}
