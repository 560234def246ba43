package packet

import (
	"encoding/binary"
	"unicode/utf8"
)

// EncodeVarInt encodes a variable byte integer into buf and returns the
// number of bytes written. Returns 0 if the value exceeds MaxRemainingLength
// or the buffer is too small.
// MQTT 3.1.1 Section 2.2.3
func EncodeVarInt(buf []byte, value uint32) int {
	if value > MaxRemainingLength {
		return 0
	}

	i := 0
	for {
		if i >= len(buf) {
			return 0
		}
		encodedByte := byte(value & 0x7F)
		value >>= 7
		if value > 0 {
			encodedByte |= 0x80
		}
		buf[i] = encodedByte
		i++
		if value == 0 {
			break
		}
	}
	return i
}

// DecodeVarInt decodes a variable byte integer from buf.
// Returns the value and the number of bytes consumed. A consumed count of 0
// with a nil error means the buffer ran out before a terminating byte was
// seen; more bytes may arrive later. A non-nil error (ErrInvalidHeader)
// means a fifth continuation byte was required, which the encoding forbids.
// MQTT 3.1.1 Section 2.2.3
func DecodeVarInt(buf []byte) (value uint32, n int, err error) {
	var multiplier uint32 = 1

	for i := 0; i < len(buf); i++ {
		if i == 4 {
			return 0, 0, ErrInvalidHeader
		}
		encodedByte := buf[i]
		value += uint32(encodedByte&0x7F) * multiplier

		if encodedByte&0x80 == 0 {
			return value, i + 1, nil
		}
		multiplier *= 128
	}

	if len(buf) >= 4 {
		// Four continuation bytes in a row, a fifth byte is never legal.
		return 0, 0, ErrInvalidHeader
	}
	return 0, 0, nil // incomplete
}

// VarIntSize returns the number of bytes needed to encode a value as a
// variable byte integer.
func VarIntSize(value uint32) int {
	switch {
	case value < 128:
		return 1
	case value < 16384:
		return 2
	case value < 2097152:
		return 3
	default:
		return 4
	}
}

// writeUint16 encodes a 16-bit unsigned integer in big-endian order.
func writeUint16(buf []byte, value uint16) int {
	binary.BigEndian.PutUint16(buf, value)
	return 2
}

// readUint16 decodes a 16-bit unsigned integer from big-endian bytes.
func readUint16(buf []byte) (value uint16, n int, err error) {
	if len(buf) < 2 {
		return 0, 0, ErrInvalidLength
	}
	return binary.BigEndian.Uint16(buf), 2, nil
}

// readPid decodes a 16-bit packet identifier, rejecting zero.
func readPid(buf []byte) (Pid, int, error) {
	v, n, err := readUint16(buf)
	if err != nil {
		return 0, 0, err
	}
	pid, err := NewPid(v)
	if err != nil {
		return 0, 0, err
	}
	return pid, n, nil
}

// readBytes decodes a length-prefixed byte field. The returned slice
// references the original buffer (zero-copy); the caller must copy it if
// needed beyond the buffer's lifetime.
func readBytes(buf []byte) (b []byte, n int, err error) {
	if len(buf) < 2 {
		return nil, 0, ErrInvalidLength
	}
	blen := int(binary.BigEndian.Uint16(buf))
	if len(buf) < 2+blen {
		return nil, 0, ErrInvalidLength
	}
	return buf[2 : 2+blen], 2 + blen, nil
}

// readString decodes a length-prefixed UTF-8 string.
func readString(buf []byte) (s string, n int, err error) {
	b, n, err := readBytes(buf)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(b) {
		return "", 0, ErrInvalidString
	}
	return string(b), n, nil
}

// writeBytes encodes binary data with a 2-byte length prefix. The caller
// guarantees capacity and a data length within 65535.
func writeBytes(buf []byte, data []byte) int {
	binary.BigEndian.PutUint16(buf, uint16(len(data)))
	copy(buf[2:], data)
	return 2 + len(data)
}

// writeString encodes a UTF-8 string with a 2-byte length prefix.
func writeString(buf []byte, s string) int {
	binary.BigEndian.PutUint16(buf, uint16(len(s)))
	copy(buf[2:], s)
	return 2 + len(s)
}

// fixedHeaderSize is the size of the fixed header for a given remaining
// length.
func fixedHeaderSize(remainingLength int) int {
	return 1 + VarIntSize(uint32(remainingLength))
}

// encodeFixedHeader writes the first header byte and the remaining length.
// The caller guarantees capacity.
func encodeFixedHeader(buf []byte, packetType Type, flags byte, remainingLength int) int {
	buf[0] = byte(packetType)<<4 | (flags & 0x0F)
	return 1 + EncodeVarInt(buf[1:], uint32(remainingLength))
}
