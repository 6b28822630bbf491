// Package bridge connects a host runtime to input method engines through
// opaque handles and serialized Requests and Responses.
//
// The boundary has three operations:
//
//	h := b.Load(ctx, "/path/to/khiin.db") // handle.Invalid on failure
//	out := b.Submit(h, requestBytes)      // encoded Response
//	err := b.Shutdown(h)                  // h is dead afterwards
//
// Submit takes a bare Request and returns a bare Response. Stream
// transports that frame Command envelopes use SubmitCommand.
//
// # Failure model
//
// Load never returns an error across the boundary: loader failures are
// logged and collapse to handle.Invalid. Callers compare against the sentinel
// before using the handle. Go callers that want the cause use Create.
//
// Submit never fails outwardly. Request bytes that do not decode are
// replaced by a default request, so the engine still answers. Build the
// bridge WithStrictDecode to answer them with ErrInvalidRequest instead.
// Engine panics are recovered and reported as ErrEngine. A panic in an
// engine's Close is reported by Shutdown as a close error.
//
// Handles carry a generation, so Submit on a destroyed handle answers with
// ErrInvalidHandle and a second Shutdown returns a stale-handle error. Neither
// reaches the freed engine.
//
// # Concurrency
//
// Submit calls on one handle are serialized; calls on different handles run
// in parallel. Shutdown refuses to destroy an engine while a Submit on it is
// in flight. There is no cancellation: a Submit blocked inside an engine
// blocks its caller.
package bridge
