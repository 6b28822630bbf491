// Package khiin exposes Khiin input method engines to a host runtime through
// integer handles and serialized Requests and Responses.
//
// The library is organized into several packages with distinct responsibilities:
//
//	khiin/               Process-wide bridge: Load, Submit, Shutdown
//	├── bridge/          Handle registry plus command dispatch
//	├── handle/          Generation-counted handle table
//	├── protocol/        Command types, protobuf wire codec and framing
//	├── engine/          Engine selection by configuration string
//	│   ├── dict/        SQLite dictionary engine
//	│   └── wasmengine/  Engine compiled to WebAssembly, run with wazero
//	├── server/          Local socket server speaking framed Commands
//	├── settings/        User settings file and KHIIN_* environment
//	├── resid/           Windows resource identifiers
//	├── errors/          Structured error types
//	└── cmd/             khiin CLI and the libkhiin C library
//
// # Quick Start
//
//	h := khiin.Load("/usr/share/khiin/khiin.db")
//	if h == 0 {
//	    log.Fatal("engine failed to load")
//	}
//	defer khiin.Shutdown(h)
//
//	req := protocol.EncodeRequest(&protocol.Request{
//	    Type:     protocol.CmdSendKey,
//	    KeyEvent: &protocol.KeyEvent{KeyCode: 'k'},
//	})
//	resp, _ := protocol.DecodeResponse(khiin.Submit(h, req))
//
// Load returns 0 on failure and never an error. Submit takes a bare encoded
// Request and always returns a bare encoded Response; problems are reported
// in Response.Error.
package khiin
