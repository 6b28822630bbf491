// Package protocol defines the messages exchanged with an input method
// engine and their binary encoding.
//
// A Command carries a Request (filled by the caller) and a Response (filled
// by the engine). The schema is khiinpb/command.proto; this package maps the
// generated khiinpb types onto plain Go values.
//
// The embedding API speaks bare messages: callers encode a Request and get
// back an encoded Response.
//
//	req := protocol.EncodeRequest(&protocol.Request{
//		Type:     protocol.CmdSendKey,
//		KeyEvent: &protocol.KeyEvent{KeyCode: 'k'},
//	})
//	resp, err := protocol.DecodeResponse(bridge.Submit(h, req))
//
// Stream transports and wasm guests exchange the Command envelope instead
// (EncodeCommand/DecodeCommand).
//
// Encoding never fails and is deterministic, so
// Encode(Decode(Encode(x))) == Encode(x). Strings that are not valid UTF-8
// are encoded with U+FFFD replacements. Decoding reports malformed input as
// *errors.Error values with PhaseDecode. Unknown fields are skipped.
//
// # Framing
//
// Stream transports prefix every encoded Command with its length as a
// little-endian uint32. WriteFrame/ReadFrame implement that framing and
// WriteCommand/ReadCommand combine it with the codec.
package protocol
