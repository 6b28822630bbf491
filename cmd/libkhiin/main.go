// Command libkhiin builds the engine bridge as a C shared library:
//
//	go build -buildmode=c-shared -o libkhiin.so ./cmd/libkhiin
//
// Exported functions:
//
//	uint64_t khiin_load(const char *config);
//	uint8_t *khiin_send_command(uint64_t handle, const uint8_t *req, size_t req_len, size_t *out_len);
//	void     khiin_free(uint8_t *buf);
//	int      khiin_shutdown(uint64_t handle);
//
// khiin_load returns 0 when the engine cannot be created. Buffers returned by
// khiin_send_command belong to the caller and must be released with
// khiin_free. khiin_shutdown returns 0 on success and -1 when the handle was
// not live.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"math"
	"os"
	"unsafe"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	khiin "github.com/wippyai/khiin-bridge"
	"github.com/wippyai/khiin-bridge/settings"
)

var logger = zap.NewNop()

func init() {
	env, err := settings.ParseEnv()
	if err != nil {
		return
	}
	lvl, err := zapcore.ParseLevel(env.LogLevel)
	if err != nil || lvl > zapcore.WarnLevel {
		lvl = zapcore.WarnLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	if log, err := cfg.Build(); err == nil {
		logger = log.With(zap.Int("pid", os.Getpid()))
		khiin.SetLogger(logger)
	}
}

//export khiin_load
func khiin_load(config *C.char) C.uint64_t {
	if config == nil {
		return C.uint64_t(khiin.InvalidHandle)
	}
	return C.uint64_t(khiin.Load(C.GoString(config)))
}

//export khiin_send_command
func khiin_send_command(h C.uint64_t, req *C.uint8_t, reqLen C.size_t, outLen *C.size_t) *C.uint8_t {
	buf, n := send(uint64(h), unsafe.Pointer(req), uint64(reqLen))
	if outLen != nil {
		*outLen = C.size_t(n)
	}
	return (*C.uint8_t)(buf)
}

//export khiin_free
func khiin_free(buf *C.uint8_t) {
	release(unsafe.Pointer(buf))
}

func send(h uint64, req unsafe.Pointer, reqLen uint64) (unsafe.Pointer, int) {
	return copyOut(khiin.Submit(h, requestBytes(req, reqLen)))
}

// requestBytes copies the caller's request. Requests over MaxInt32 bytes are
// dropped and submitted as empty input.
func requestBytes(p unsafe.Pointer, n uint64) []byte {
	if p == nil || n == 0 {
		return nil
	}
	if n > math.MaxInt32 {
		logger.Warn("request too large, submitting empty input",
			zap.Uint64("len", n),
			zap.Int("limit", math.MaxInt32))
		return nil
	}
	in := make([]byte, n)
	copy(in, unsafe.Slice((*byte)(p), n))
	return in
}

// copyOut moves out into C memory. The buffer is never nil, even for an
// empty response.
func copyOut(out []byte) (unsafe.Pointer, int) {
	size := len(out)
	if size == 0 {
		size = 1
	}
	buf := C.malloc(C.size_t(size))
	copy(unsafe.Slice((*byte)(buf), size), out)
	return buf, len(out)
}

func release(p unsafe.Pointer) {
	C.free(p)
}

//export khiin_shutdown
func khiin_shutdown(h C.uint64_t) C.int {
	if err := khiin.Shutdown(uint64(h)); err != nil {
		return -1
	}
	return 0
}

func main() {}
