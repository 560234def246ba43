package packet

// Unsubscribe represents an MQTT UNSUBSCRIBE packet: a packet identifier
// followed by topic filter strings until the declared remaining length is
// consumed.
// MQTT 3.1.1 Section 3.10
type Unsubscribe struct {
	Pid    Pid
	Topics []string
}

// Type returns TypeUnsubscribe.
func (u *Unsubscribe) Type() Type {
	return TypeUnsubscribe
}

func (u *Unsubscribe) flags() byte {
	return reservedFlags
}

func (u *Unsubscribe) remainingLength() int {
	length := 2 // packet identifier
	for _, t := range u.Topics {
		length += 2 + len(t)
	}
	return length
}

// EncodedSize returns the total size of the encoded UNSUBSCRIBE packet.
func (u *Unsubscribe) EncodedSize() int {
	rl := u.remainingLength()
	return fixedHeaderSize(rl) + rl
}

func (u *Unsubscribe) encodeBody(buf []byte) int {
	pos := writeUint16(buf, uint16(u.Pid))
	for _, t := range u.Topics {
		pos += writeString(buf[pos:], t)
	}
	return pos
}

// decodeUnsubscribe decodes an UNSUBSCRIBE body, reading topic filters
// until the slice is exhausted.
func decodeUnsubscribe(buf []byte) (*Unsubscribe, int, error) {
	pid, pos, err := readPid(buf)
	if err != nil {
		return nil, 0, err
	}

	u := &Unsubscribe{Pid: pid}
	for pos < len(buf) {
		topic, n, err := readString(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		u.Topics = append(u.Topics, topic)
	}
	return u, pos, nil
}
