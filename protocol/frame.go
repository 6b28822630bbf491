package protocol

import (
	"encoding/binary"
	"io"

	"github.com/wippyai/khiin-bridge/errors"
)

// DefaultMaxFrame bounds the payload size ReadFrame accepts when no limit is given.
const DefaultMaxFrame = 1 << 20

const frameHeaderSize = 4

// WriteFrame writes payload prefixed with its length as a little-endian u32.
func WriteFrame(w io.Writer, payload []byte) error {
	buf := make([]byte, frameHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(buf, uint32(len(payload)))
	copy(buf[frameHeaderSize:], payload)
	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(errors.PhaseTransport, errors.KindInvalidData, err, "write frame")
	}
	return nil
}

// ReadFrame reads one length-prefixed payload. It returns io.EOF when r ends
// cleanly before a frame starts. limit <= 0 selects DefaultMaxFrame.
func ReadFrame(r io.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxFrame
	}

	var hdr [frameHeaderSize]byte
	n, err := io.ReadFull(r, hdr[:])
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, errors.Truncated(errors.PhaseTransport, []string{"header"}, frameHeaderSize, n)
	case err != nil:
		return nil, errors.Wrap(errors.PhaseTransport, errors.KindInvalidData, err, "read frame header")
	}

	size := binary.LittleEndian.Uint32(hdr[:])
	if uint64(size) > uint64(limit) {
		return nil, errors.TooLarge(errors.PhaseTransport, int(size), limit)
	}

	payload := make([]byte, size)
	n, err = io.ReadFull(r, payload)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Truncated(errors.PhaseTransport, []string{"payload"}, int(size), n)
		}
		return nil, errors.Wrap(errors.PhaseTransport, errors.KindInvalidData, err, "read frame payload")
	}
	return payload, nil
}

// WriteCommand encodes c and writes it as one frame.
func WriteCommand(w io.Writer, c *Command) error {
	return WriteFrame(w, EncodeCommand(c))
}

// ReadCommand reads one frame and decodes it as a Command.
func ReadCommand(r io.Reader, limit int) (*Command, error) {
	payload, err := ReadFrame(r, limit)
	if err != nil {
		return nil, err
	}
	return DecodeCommand(payload)
}
