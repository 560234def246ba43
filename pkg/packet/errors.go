package packet

import (
	"errors"
	"fmt"
)

// Sentinel errors for packet decoding and encoding. The parameterized kinds
// (QoS, return code, protocol) are produced by wrapping helpers so that the
// offending value appears in the message while errors.Is still classifies
// against the sentinel.
var (
	// ErrWriteZero indicates the encode destination has insufficient
	// remaining capacity. Passing a big enough buffer is the caller's
	// responsibility.
	ErrWriteZero = errors.New("write buffer too small")

	// ErrInvalidPid indicates a zero packet identifier was decoded or
	// constructed.
	ErrInvalidPid = errors.New("invalid packet identifier")

	// ErrInvalidQoS indicates a QoS bit pattern other than 0, 1 or 2.
	ErrInvalidQoS = errors.New("invalid QoS level")

	// ErrInvalidConnectReturnCode indicates a CONNACK return code outside 0-5.
	ErrInvalidConnectReturnCode = errors.New("invalid connect return code")

	// ErrInvalidProtocol indicates an unrecognized protocol name/level pair
	// in a CONNECT packet.
	ErrInvalidProtocol = errors.New("invalid protocol")

	// ErrInvalidHeader indicates an illegal packet type, illegal flag bits
	// for that type, or a remaining length that never terminates within
	// 4 bytes.
	ErrInvalidHeader = errors.New("invalid fixed header")

	// ErrInvalidLength indicates an inner length-prefixed field declaring a
	// length beyond the available bytes, or a body whose consumed length
	// does not match the declared remaining length. Unlike ErrWriteZero it
	// signals corrupt data, not a caller-sized buffer.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidString indicates string bytes that are not valid UTF-8.
	ErrInvalidString = errors.New("invalid UTF-8 string")
)

func invalidQoS(n byte) error {
	return fmt.Errorf("%w: %d", ErrInvalidQoS, n)
}

func invalidConnectReturnCode(n byte) error {
	return fmt.Errorf("%w: %d", ErrInvalidConnectReturnCode, n)
}

func invalidProtocol(name string, level byte) error {
	return fmt.Errorf("%w: %q level %d", ErrInvalidProtocol, name, level)
}
