package packet

// Decode attempts to parse exactly one packet starting at the beginning of
// buf. It returns the packet and the number of bytes it occupied, or
// (nil, 0, nil) when buf does not yet contain enough bytes to hold a whole
// packet — a normal condition when reading from a stream incrementally, not
// an error. In that case buf is left untouched so the caller can append
// more bytes and retry from the same starting point.
//
// Decoded payload fields are views into buf; see the package documentation
// for the lifetime contract.
func Decode(buf []byte) (Packet, int, error) {
	h, remainingLength, n, err := readHeader(buf)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, nil // incomplete fixed header
	}
	total := n + remainingLength
	if len(buf) < total {
		return nil, 0, nil // incomplete body
	}

	p, err := decodeBody(h, buf[n:total])
	if err != nil {
		return nil, 0, err
	}
	return p, total, nil
}

// decodeBody dispatches to the per-type body decoder over exactly the
// declared remaining-length span. A body parse that consumes fewer bytes
// than declared is corrupt input, not padding.
func decodeBody(h header, body []byte) (Packet, error) {
	var (
		p        Packet
		consumed int
		err      error
	)

	switch h.typ {
	case TypeConnect:
		p, consumed, err = decodeConnect(body)
	case TypeConnack:
		p, consumed, err = decodeConnack(body)
	case TypePublish:
		p, consumed, err = decodePublish(h, body)
	case TypePuback:
		var pid Pid
		pid, consumed, err = readPid(body)
		p = &Puback{Pid: pid}
	case TypePubrec:
		var pid Pid
		pid, consumed, err = readPid(body)
		p = &Pubrec{Pid: pid}
	case TypePubrel:
		var pid Pid
		pid, consumed, err = readPid(body)
		p = &Pubrel{Pid: pid}
	case TypePubcomp:
		var pid Pid
		pid, consumed, err = readPid(body)
		p = &Pubcomp{Pid: pid}
	case TypeSubscribe:
		p, consumed, err = decodeSubscribe(body)
	case TypeSuback:
		p, consumed, err = decodeSuback(body)
	case TypeUnsubscribe:
		p, consumed, err = decodeUnsubscribe(body)
	case TypeUnsuback:
		var pid Pid
		pid, consumed, err = readPid(body)
		p = &Unsuback{Pid: pid}
	case TypePingreq:
		p = &Pingreq{}
	case TypePingresp:
		p = &Pingresp{}
	case TypeDisconnect:
		p = &Disconnect{}
	default:
		// parseHeader already rejected reserved types.
		return nil, ErrInvalidHeader
	}
	if err != nil {
		return nil, err
	}
	if consumed != len(body) {
		return nil, ErrInvalidLength
	}
	return p, nil
}

// Extract copies one whole framed packet from src into dst without paying
// the cost of a structural decode, for buffering layers that move packets
// between buffers. It returns the frame length, 0 when src does not yet
// hold a whole packet, or an error when the fixed header is invalid or dst
// is too small.
func Extract(src, dst []byte) (int, error) {
	_, remainingLength, n, err := readHeader(src)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	total := n + remainingLength
	if len(src) < total {
		return 0, nil
	}
	if len(dst) < total {
		return 0, ErrWriteZero
	}
	copy(dst, src[:total])
	return total, nil
}
