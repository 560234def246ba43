package packet

// SubscribeTopic is a single topic filter and its requested QoS inside a
// SUBSCRIBE packet.
type SubscribeTopic struct {
	TopicFilter string
	QoS         QoS
}

// Subscribe represents an MQTT SUBSCRIBE packet.
//
// The entry count is implicit: parsing continues until exactly the declared
// remaining length is consumed.
// MQTT 3.1.1 Section 3.8
type Subscribe struct {
	Pid    Pid
	Topics []SubscribeTopic
}

// Type returns TypeSubscribe.
func (s *Subscribe) Type() Type {
	return TypeSubscribe
}

func (s *Subscribe) flags() byte {
	return reservedFlags
}

func (s *Subscribe) remainingLength() int {
	length := 2 // packet identifier
	for _, t := range s.Topics {
		length += 2 + len(t.TopicFilter) + 1 // length + filter + QoS byte
	}
	return length
}

// EncodedSize returns the total size of the encoded SUBSCRIBE packet.
func (s *Subscribe) EncodedSize() int {
	rl := s.remainingLength()
	return fixedHeaderSize(rl) + rl
}

func (s *Subscribe) encodeBody(buf []byte) int {
	pos := writeUint16(buf, uint16(s.Pid))
	for _, t := range s.Topics {
		pos += writeString(buf[pos:], t.TopicFilter)
		buf[pos] = byte(t.QoS)
		pos++
	}
	return pos
}

// decodeSubscribe decodes a SUBSCRIBE body, reading topic/QoS pairs until
// the slice is exhausted.
func decodeSubscribe(buf []byte) (*Subscribe, int, error) {
	pid, pos, err := readPid(buf)
	if err != nil {
		return nil, 0, err
	}

	s := &Subscribe{Pid: pid}
	for pos < len(buf) {
		filter, n, err := readString(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		if pos >= len(buf) {
			return nil, 0, ErrInvalidLength
		}
		qos, err := qosFromByte(buf[pos])
		if err != nil {
			return nil, 0, err
		}
		pos++
		s.Topics = append(s.Topics, SubscribeTopic{TopicFilter: filter, QoS: qos})
	}
	return s, pos, nil
}

// SubackFailure is the return code a server sends in a SUBACK entry when the
// corresponding subscription was refused.
const SubackFailure = 0x80

// SubscribeReturnCode is one SUBACK payload entry: either the granted QoS
// for the corresponding subscription or a failure marker.
type SubscribeReturnCode struct {
	// Failure is true when the server refused the subscription (0x80).
	Failure bool
	// QoS is the granted level. Meaningless when Failure is set.
	QoS QoS
}

// GrantedQoS returns the return code granting the given QoS.
func GrantedQoS(q QoS) SubscribeReturnCode {
	return SubscribeReturnCode{QoS: q}
}

func (c SubscribeReturnCode) toByte() byte {
	if c.Failure {
		return SubackFailure
	}
	return byte(c.QoS)
}

func subscribeReturnCodeFromByte(b byte) (SubscribeReturnCode, error) {
	if b == SubackFailure {
		return SubscribeReturnCode{Failure: true}, nil
	}
	qos, err := qosFromByte(b)
	if err != nil {
		return SubscribeReturnCode{}, err
	}
	return SubscribeReturnCode{QoS: qos}, nil
}

// Suback represents an MQTT SUBACK packet.
// MQTT 3.1.1 Section 3.9
type Suback struct {
	Pid         Pid
	ReturnCodes []SubscribeReturnCode
}

// Type returns TypeSuback.
func (s *Suback) Type() Type {
	return TypeSuback
}

func (s *Suback) flags() byte {
	return 0
}

func (s *Suback) remainingLength() int {
	return 2 + len(s.ReturnCodes)
}

// EncodedSize returns the total size of the encoded SUBACK packet.
func (s *Suback) EncodedSize() int {
	rl := s.remainingLength()
	return fixedHeaderSize(rl) + rl
}

func (s *Suback) encodeBody(buf []byte) int {
	pos := writeUint16(buf, uint16(s.Pid))
	for _, c := range s.ReturnCodes {
		buf[pos] = c.toByte()
		pos++
	}
	return pos
}

// decodeSuback decodes a SUBACK body, reading return-code bytes until the
// slice is exhausted.
func decodeSuback(buf []byte) (*Suback, int, error) {
	pid, pos, err := readPid(buf)
	if err != nil {
		return nil, 0, err
	}

	s := &Suback{Pid: pid}
	for pos < len(buf) {
		code, err := subscribeReturnCodeFromByte(buf[pos])
		if err != nil {
			return nil, 0, err
		}
		pos++
		s.ReturnCodes = append(s.ReturnCodes, code)
	}
	return s, pos, nil
}
