// Package packet implements encoding and decoding of MQTT 3.1.1 control
// packets. It is designed for zero-copy operation: decoding works directly on
// a caller-supplied byte slice, and decoded payload fields ([Publish.Payload],
// [Connect.Password], [LastWill.Message]) are subslices of that input. Such a
// packet is only valid while the underlying region of the input buffer is
// kept alive and unmodified; callers that reuse or compact their read buffer
// must copy those fields out first.
//
// The package holds no state between calls. Decode and Encode are pure
// functions over caller-supplied memory and are safe for concurrent use as
// long as each call operates on its own buffer.
package packet

// Type represents an MQTT control packet type.
type Type byte

// MQTT Control Packet types as defined in MQTT 3.1.1 Section 2.2.1.
const (
	TypeReserved0   Type = 0  // Reserved
	TypeConnect     Type = 1  // Client request to connect to Server
	TypeConnack     Type = 2  // Connect acknowledgment
	TypePublish     Type = 3  // Publish message
	TypePuback      Type = 4  // Publish acknowledgment (QoS 1)
	TypePubrec      Type = 5  // Publish received (QoS 2 part 1)
	TypePubrel      Type = 6  // Publish release (QoS 2 part 2)
	TypePubcomp     Type = 7  // Publish complete (QoS 2 part 3)
	TypeSubscribe   Type = 8  // Subscribe request
	TypeSuback      Type = 9  // Subscribe acknowledgment
	TypeUnsubscribe Type = 10 // Unsubscribe request
	TypeUnsuback    Type = 11 // Unsubscribe acknowledgment
	TypePingreq     Type = 12 // PING request
	TypePingresp    Type = 13 // PING response
	TypeDisconnect  Type = 14 // Disconnect notification
	TypeReserved15  Type = 15 // Reserved
)

// String returns the string representation of the packet type.
func (t Type) String() string {
	switch t {
	case TypeConnect:
		return "CONNECT"
	case TypeConnack:
		return "CONNACK"
	case TypePublish:
		return "PUBLISH"
	case TypePuback:
		return "PUBACK"
	case TypePubrec:
		return "PUBREC"
	case TypePubrel:
		return "PUBREL"
	case TypePubcomp:
		return "PUBCOMP"
	case TypeSubscribe:
		return "SUBSCRIBE"
	case TypeSuback:
		return "SUBACK"
	case TypeUnsubscribe:
		return "UNSUBSCRIBE"
	case TypeUnsuback:
		return "UNSUBACK"
	case TypePingreq:
		return "PINGREQ"
	case TypePingresp:
		return "PINGRESP"
	case TypeDisconnect:
		return "DISCONNECT"
	default:
		return "RESERVED"
	}
}

// Valid returns true if the packet type is a legal 3.1.1 type.
func (t Type) Valid() bool {
	return t >= TypeConnect && t <= TypeDisconnect
}

// QoS represents MQTT Quality of Service level.
type QoS byte

const (
	QoS0 QoS = 0 // At most once delivery
	QoS1 QoS = 1 // At least once delivery
	QoS2 QoS = 2 // Exactly once delivery
)

// Valid returns true if the QoS level is valid. The bit pattern 3 is
// reserved and always illegal.
func (q QoS) Valid() bool {
	return q <= QoS2
}

// String returns the string representation of the QoS level.
func (q QoS) String() string {
	switch q {
	case QoS0:
		return "QoS0"
	case QoS1:
		return "QoS1"
	case QoS2:
		return "QoS2"
	default:
		return "invalid"
	}
}

// qosFromByte converts a raw byte to a QoS level, rejecting values above 2.
func qosFromByte(b byte) (QoS, error) {
	q := QoS(b)
	if !q.Valid() {
		return 0, invalidQoS(b)
	}
	return q, nil
}

// Pid is an MQTT packet identifier, used by the QoS 1/2 acknowledgement
// flows to correlate acknowledgements with the packets they answer.
// Zero is not a legal value (MQTT-2.3.1-1); NewPid and the decoders enforce
// this, and Add/Sub skip it when wrapping.
type Pid uint16

// NewPid converts a raw uint16 to a Pid. It fails for the value 0.
func NewPid(v uint16) (Pid, error) {
	if v == 0 {
		return 0, ErrInvalidPid
	}
	return Pid(v), nil
}

// Add returns the Pid advanced by n, wrapping from 65535 back around and
// skipping 0. Session layers use this to generate successive identifiers.
func (p Pid) Add(n uint16) Pid {
	sum := uint32(p) + uint32(n)
	if sum > 0xFFFF {
		return Pid(sum + 1) // skip 0 on wrap
	}
	return Pid(sum)
}

// Sub returns the Pid moved back by n, wrapping from 1 to 65535 and
// skipping 0.
func (p Pid) Sub(n uint16) Pid {
	r := uint16(p) - n
	switch {
	case r == 0:
		return Pid(0xFFFF)
	case n > uint16(p):
		return Pid(r - 1) // skip 0 on wrap
	default:
		return Pid(r)
	}
}

// QosPid couples a delivery level with the packet identifier that QoS 1/2
// delivery requires. The constructors are the only way to build one, so a
// QoS 0 QosPid can never carry a Pid and a QoS 1/2 QosPid always does.
// Used by PUBLISH packets.
type QosPid struct {
	qos QoS
	pid Pid
}

// AtMostOnce returns the QoS 0 QosPid. No acknowledgement, no Pid.
func AtMostOnce() QosPid {
	return QosPid{qos: QoS0}
}

// AtLeastOnce returns a QoS 1 QosPid carrying pid.
func AtLeastOnce(pid Pid) QosPid {
	return QosPid{qos: QoS1, pid: pid}
}

// ExactlyOnce returns a QoS 2 QosPid carrying pid.
func ExactlyOnce(pid Pid) QosPid {
	return QosPid{qos: QoS2, pid: pid}
}

// QoS returns the delivery level.
func (qp QosPid) QoS() QoS {
	return qp.qos
}

// Pid returns the packet identifier, if the delivery level carries one.
func (qp QosPid) Pid() (Pid, bool) {
	if qp.qos == QoS0 {
		return 0, false
	}
	return qp.pid, true
}

// Fixed header flag bits for PUBLISH packets (bits 3-0 of the first byte).
const (
	publishFlagRetain = 1 << 0 // Bit 0: RETAIN flag
	publishFlagDup    = 1 << 3 // Bit 3: DUP flag
)

// Reserved flag nibble that MUST be set for PUBREL, SUBSCRIBE and
// UNSUBSCRIBE packets.
const reservedFlags = 0x02

// MaxRemainingLength is the maximum remaining length value (256MB - 1).
const MaxRemainingLength = 268435455

// MaxPacketSize is the maximum total packet size including fixed header.
const MaxPacketSize = MaxRemainingLength + 5 // 5 bytes max for fixed header
