package packet

// Protocol identifies the protocol name/level pair sent in a CONNECT packet.
// Only the two identifiers below are recognized; anything else fails with
// ErrInvalidProtocol.
type Protocol byte

const (
	// ProtocolMQTT311 is standard MQTT 3.1.1: name "MQTT", level 4.
	ProtocolMQTT311 Protocol = 4
	// ProtocolMQIsdp is the pre-standardisation MQTT 3.1 identifier:
	// name "MQIsdp", level 3. Handled like 3.1.1 otherwise.
	ProtocolMQIsdp Protocol = 3
)

// String returns the protocol name as it appears on the wire.
func (p Protocol) String() string {
	switch p {
	case ProtocolMQTT311:
		return "MQTT"
	case ProtocolMQIsdp:
		return "MQIsdp"
	default:
		return "unknown"
	}
}

// Level returns the protocol level byte.
func (p Protocol) Level() byte {
	return byte(p)
}

func protocolFromWire(name string, level byte) (Protocol, error) {
	switch {
	case name == "MQTT" && level == 4:
		return ProtocolMQTT311, nil
	case name == "MQIsdp" && level == 3:
		return ProtocolMQIsdp, nil
	default:
		return 0, invalidProtocol(name, level)
	}
}

// encodedSize is the wire size of the length-prefixed name plus the level
// byte.
func (p Protocol) encodedSize() int {
	return 2 + len(p.String()) + 1
}

func (p Protocol) encode(buf []byte) int {
	n := writeString(buf, p.String())
	buf[n] = p.Level()
	return n + 1
}

// LastWill is the message the server publishes on the client's behalf when
// the client disconnects without a clean session close.
// MQTT 3.1.1 Section 3.1.3.3
type LastWill struct {
	Topic   string
	Message []byte // view into the input buffer when decoded
	QoS     QoS
	Retain  bool
}

// Connect represents an MQTT CONNECT packet.
//
// The optional fields (LastWill, Username, Password) govern the connect
// flags byte directly: encoding derives the flag bits from field presence
// and decoding derives field presence from the flag bits, so the two can
// never disagree. A nil Username/Password means the field is absent on the
// wire; a non-nil empty value is present with length 0.
// MQTT 3.1.1 Section 3.1
type Connect struct {
	Protocol     Protocol
	KeepAlive    uint16 // seconds
	ClientID     string
	CleanSession bool
	LastWill     *LastWill
	Username     *string
	Password     []byte // view into the input buffer when decoded
}

// connectFlag bit positions in the connect flags byte.
// MQTT 3.1.1 Section 3.1.2.3
const (
	connectFlagCleanSession = 1 << 1
	connectFlagWill         = 1 << 2
	connectFlagWillQoSShift = 3
	connectFlagWillRetain   = 1 << 5
	connectFlagPassword     = 1 << 6
	connectFlagUsername     = 1 << 7
)

// Type returns TypeConnect.
func (c *Connect) Type() Type {
	return TypeConnect
}

func (c *Connect) flags() byte {
	return 0
}

func (c *Connect) remainingLength() int {
	// Variable header: protocol block + connect flags (1) + keep alive (2)
	length := c.Protocol.encodedSize() + 1 + 2
	length += 2 + len(c.ClientID)
	if c.LastWill != nil {
		length += 2 + len(c.LastWill.Topic)
		length += 2 + len(c.LastWill.Message)
	}
	if c.Username != nil {
		length += 2 + len(*c.Username)
	}
	if c.Password != nil {
		length += 2 + len(c.Password)
	}
	return length
}

// EncodedSize returns the total size of the encoded CONNECT packet.
func (c *Connect) EncodedSize() int {
	rl := c.remainingLength()
	return fixedHeaderSize(rl) + rl
}

// connectFlags derives the flags byte from field presence.
func (c *Connect) connectFlags() byte {
	var flags byte
	if c.CleanSession {
		flags |= connectFlagCleanSession
	}
	if c.LastWill != nil {
		flags |= connectFlagWill
		flags |= byte(c.LastWill.QoS) << connectFlagWillQoSShift
		if c.LastWill.Retain {
			flags |= connectFlagWillRetain
		}
	}
	if c.Password != nil {
		flags |= connectFlagPassword
	}
	if c.Username != nil {
		flags |= connectFlagUsername
	}
	return flags
}

func (c *Connect) encodeBody(buf []byte) int {
	pos := c.Protocol.encode(buf)

	buf[pos] = c.connectFlags()
	pos++

	pos += writeUint16(buf[pos:], c.KeepAlive)
	pos += writeString(buf[pos:], c.ClientID)

	if c.LastWill != nil {
		pos += writeString(buf[pos:], c.LastWill.Topic)
		pos += writeBytes(buf[pos:], c.LastWill.Message)
	}
	if c.Username != nil {
		pos += writeString(buf[pos:], *c.Username)
	}
	if c.Password != nil {
		pos += writeBytes(buf[pos:], c.Password)
	}
	return pos
}

// decodeConnect decodes a CONNECT body and returns the bytes consumed.
func decodeConnect(buf []byte) (*Connect, int, error) {
	name, pos, err := readString(buf)
	if err != nil {
		return nil, 0, err
	}
	if pos >= len(buf) {
		return nil, 0, ErrInvalidLength
	}
	level := buf[pos]
	pos++

	protocol, err := protocolFromWire(name, level)
	if err != nil {
		return nil, 0, err
	}

	if pos+3 > len(buf) {
		return nil, 0, ErrInvalidLength
	}
	connectFlags := buf[pos]
	pos++
	keepAlive, n, err := readUint16(buf[pos:])
	if err != nil {
		return nil, 0, err
	}
	pos += n

	clientID, n, err := readString(buf[pos:])
	if err != nil {
		return nil, 0, err
	}
	pos += n

	c := &Connect{
		Protocol:     protocol,
		KeepAlive:    keepAlive,
		ClientID:     clientID,
		CleanSession: connectFlags&connectFlagCleanSession != 0,
	}

	if connectFlags&connectFlagWill != 0 {
		topic, n, err := readString(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		message, n, err := readBytes(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		qos, err := qosFromByte((connectFlags >> connectFlagWillQoSShift) & 0x03)
		if err != nil {
			return nil, 0, err
		}
		c.LastWill = &LastWill{
			Topic:   topic,
			Message: message,
			QoS:     qos,
			Retain:  connectFlags&connectFlagWillRetain != 0,
		}
	}

	if connectFlags&connectFlagUsername != 0 {
		username, n, err := readString(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		c.Username = &username
	}

	if connectFlags&connectFlagPassword != 0 {
		password, n, err := readBytes(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		c.Password = password
	}

	return c, pos, nil
}

// ConnectReturnCode is the success value of a CONNACK packet.
// MQTT 3.1.1 Section 3.2.2.3
type ConnectReturnCode byte

const (
	CodeAccepted               ConnectReturnCode = 0
	CodeRefusedProtocolVersion ConnectReturnCode = 1
	CodeIdentifierRejected     ConnectReturnCode = 2
	CodeServerUnavailable      ConnectReturnCode = 3
	CodeBadUsernamePassword    ConnectReturnCode = 4
	CodeNotAuthorized          ConnectReturnCode = 5
)

// Valid returns true for the return codes 0-5.
func (c ConnectReturnCode) Valid() bool {
	return c <= CodeNotAuthorized
}

// String returns a short description of the return code.
func (c ConnectReturnCode) String() string {
	switch c {
	case CodeAccepted:
		return "connection accepted"
	case CodeRefusedProtocolVersion:
		return "unacceptable protocol version"
	case CodeIdentifierRejected:
		return "identifier rejected"
	case CodeServerUnavailable:
		return "server unavailable"
	case CodeBadUsernamePassword:
		return "bad user name or password"
	case CodeNotAuthorized:
		return "not authorized"
	default:
		return "unknown"
	}
}

// Connack represents an MQTT CONNACK packet.
// MQTT 3.1.1 Section 3.2
type Connack struct {
	SessionPresent bool
	Code           ConnectReturnCode
}

// Type returns TypeConnack.
func (c *Connack) Type() Type {
	return TypeConnack
}

func (c *Connack) flags() byte {
	return 0
}

func (c *Connack) remainingLength() int {
	return 2 // acknowledge flags (1) + return code (1)
}

// EncodedSize returns the total size of the encoded CONNACK packet.
func (c *Connack) EncodedSize() int {
	return fixedHeaderSize(2) + 2
}

func (c *Connack) encodeBody(buf []byte) int {
	var ackFlags byte
	if c.SessionPresent {
		ackFlags |= 0x01
	}
	buf[0] = ackFlags
	buf[1] = byte(c.Code)
	return 2
}

// decodeConnack decodes a CONNACK body and returns the bytes consumed.
func decodeConnack(buf []byte) (*Connack, int, error) {
	if len(buf) < 2 {
		return nil, 0, ErrInvalidLength
	}
	code := ConnectReturnCode(buf[1])
	if !code.Valid() {
		return nil, 0, invalidConnectReturnCode(buf[1])
	}
	return &Connack{
		SessionPresent: buf[0]&0x01 != 0,
		Code:           code,
	}, 2, nil
}
