package packet

// header is the decoded first byte of the fixed header. It only steers body
// parsing and is never returned to callers.
type header struct {
	typ    Type
	dup    bool
	qos    QoS
	retain bool
}

// parseHeader validates the first header byte. The packet type nibble must
// be 1-14 and the flag nibble must match the pattern the type requires;
// only PUBLISH uses the flags to carry dup/QoS/retain. A PUBLISH QoS bit
// pattern of 3 surfaces as ErrInvalidQoS rather than ErrInvalidHeader.
// MQTT 3.1.1 Section 2.2
func parseHeader(b byte) (header, error) {
	typ := Type(b >> 4)
	flags := b & 0x0F

	var flagsOK bool
	switch typ {
	case TypePublish:
		flagsOK = true
	case TypePubrel, TypeSubscribe, TypeUnsubscribe:
		flagsOK = flags == reservedFlags
	case TypeConnect, TypeConnack, TypePuback, TypePubrec, TypePubcomp,
		TypeSuback, TypeUnsuback, TypePingreq, TypePingresp, TypeDisconnect:
		flagsOK = flags == 0
	default:
		return header{}, ErrInvalidHeader
	}
	if !flagsOK {
		return header{}, ErrInvalidHeader
	}

	qos, err := qosFromByte((flags >> 1) & 0x03)
	if err != nil {
		return header{}, err
	}

	return header{
		typ:    typ,
		dup:    flags&publishFlagDup != 0,
		qos:    qos,
		retain: flags&publishFlagRetain != 0,
	}, nil
}

// readHeader parses and validates the fixed header (first byte plus the
// remaining length) at the start of buf. Returns n == 0 with a nil error
// when buf does not yet hold a complete fixed header.
func readHeader(buf []byte) (h header, remainingLength int, n int, err error) {
	if len(buf) < 1 {
		return header{}, 0, 0, nil
	}
	h, err = parseHeader(buf[0])
	if err != nil {
		return header{}, 0, 0, err
	}
	rl, vn, err := DecodeVarInt(buf[1:])
	if err != nil {
		return header{}, 0, 0, err
	}
	if vn == 0 {
		return header{}, 0, 0, nil // incomplete remaining length
	}
	return h, int(rl), 1 + vn, nil
}
