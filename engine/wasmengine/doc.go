// Package wasmengine hosts an input method engine compiled to a WebAssembly
// core module, using wazero.
//
// The guest exports:
//
//	memory                                   linear memory
//	khiin_alloc(len i32) i32                 buffer for len bytes
//	khiin_send_command(ptr i32, len i32) i64 encoded Command in, (ptr<<32 | len) out
//	khiin_init(ptr i32, len i32) i32         optional, 0 on success
//	khiin_free(ptr i32, len i32)             optional
//
// The host writes the encoded request Command into a buffer from
// khiin_alloc, calls khiin_send_command and decodes the Command it returns.
// Only the response side of the returned Command is used. khiin_init
// receives the configuration string, normally the module path.
package wasmengine
