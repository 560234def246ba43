package packet

// Publish represents an MQTT PUBLISH packet.
//
// When decoded, Payload is a view into the input buffer: the only field in
// the protocol without an explicit length prefix, it spans whatever the
// remaining length leaves after the topic and packet identifier. Copy it out
// before reusing the buffer.
// MQTT 3.1.1 Section 3.3
type Publish struct {
	Dup     bool
	QosPid  QosPid
	Retain  bool
	Topic   string
	Payload []byte
}

// NewPublish creates a PUBLISH packet.
func NewPublish(topic string, payload []byte, qospid QosPid, retain bool) *Publish {
	return &Publish{
		Topic:   topic,
		Payload: payload,
		QosPid:  qospid,
		Retain:  retain,
	}
}

// Type returns TypePublish.
func (p *Publish) Type() Type {
	return TypePublish
}

func (p *Publish) flags() byte {
	var flags byte
	if p.Retain {
		flags |= publishFlagRetain
	}
	flags |= byte(p.QosPid.QoS()) << 1
	if p.Dup {
		flags |= publishFlagDup
	}
	return flags
}

func (p *Publish) remainingLength() int {
	length := 2 + len(p.Topic)
	if _, ok := p.QosPid.Pid(); ok {
		length += 2
	}
	return length + len(p.Payload)
}

// EncodedSize returns the total size of the encoded PUBLISH packet.
func (p *Publish) EncodedSize() int {
	rl := p.remainingLength()
	return fixedHeaderSize(rl) + rl
}

func (p *Publish) encodeBody(buf []byte) int {
	pos := writeString(buf, p.Topic)
	if pid, ok := p.QosPid.Pid(); ok {
		pos += writeUint16(buf[pos:], uint16(pid))
	}
	copy(buf[pos:], p.Payload)
	return pos + len(p.Payload)
}

// decodePublish decodes a PUBLISH body. The header carries dup/QoS/retain;
// a packet identifier is present exactly when QoS > 0. The rest of the body
// is the payload, so the whole slice is always consumed.
func decodePublish(h header, buf []byte) (*Publish, int, error) {
	topic, pos, err := readString(buf)
	if err != nil {
		return nil, 0, err
	}

	qospid := AtMostOnce()
	if h.qos != QoS0 {
		pid, n, err := readPid(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		if h.qos == QoS1 {
			qospid = AtLeastOnce(pid)
		} else {
			qospid = ExactlyOnce(pid)
		}
	}

	return &Publish{
		Dup:     h.dup,
		QosPid:  qospid,
		Retain:  h.retain,
		Topic:   topic,
		Payload: buf[pos:],
	}, len(buf), nil
}
