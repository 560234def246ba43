package packet

// The five acknowledgement packets carry nothing but a packet identifier:
// PUBACK (3.4), PUBREC (3.5), PUBREL (3.6), PUBCOMP (3.7), UNSUBACK (3.11).
// Their bodies are the same two bytes; only the fixed header differs.

// Puback represents an MQTT PUBACK packet (QoS 1 acknowledgment).
type Puback struct {
	Pid Pid
}

// Pubrec represents an MQTT PUBREC packet (QoS 2 delivery part 1).
type Pubrec struct {
	Pid Pid
}

// Pubrel represents an MQTT PUBREL packet (QoS 2 delivery part 2).
type Pubrel struct {
	Pid Pid
}

// Pubcomp represents an MQTT PUBCOMP packet (QoS 2 delivery part 3).
type Pubcomp struct {
	Pid Pid
}

// Unsuback represents an MQTT UNSUBACK packet.
type Unsuback struct {
	Pid Pid
}

// Type returns TypePuback.
func (p *Puback) Type() Type { return TypePuback }

// Type returns TypePubrec.
func (p *Pubrec) Type() Type { return TypePubrec }

// Type returns TypePubrel.
func (p *Pubrel) Type() Type { return TypePubrel }

// Type returns TypePubcomp.
func (p *Pubcomp) Type() Type { return TypePubcomp }

// Type returns TypeUnsuback.
func (p *Unsuback) Type() Type { return TypeUnsuback }

func (p *Puback) flags() byte   { return 0 }
func (p *Pubrec) flags() byte   { return 0 }
func (p *Pubrel) flags() byte   { return reservedFlags }
func (p *Pubcomp) flags() byte  { return 0 }
func (p *Unsuback) flags() byte { return 0 }

func (p *Puback) remainingLength() int   { return 2 }
func (p *Pubrec) remainingLength() int   { return 2 }
func (p *Pubrel) remainingLength() int   { return 2 }
func (p *Pubcomp) remainingLength() int  { return 2 }
func (p *Unsuback) remainingLength() int { return 2 }

// EncodedSize returns the total size of the encoded packet.
func (p *Puback) EncodedSize() int { return 4 }

// EncodedSize returns the total size of the encoded packet.
func (p *Pubrec) EncodedSize() int { return 4 }

// EncodedSize returns the total size of the encoded packet.
func (p *Pubrel) EncodedSize() int { return 4 }

// EncodedSize returns the total size of the encoded packet.
func (p *Pubcomp) EncodedSize() int { return 4 }

// EncodedSize returns the total size of the encoded packet.
func (p *Unsuback) EncodedSize() int { return 4 }

func (p *Puback) encodeBody(buf []byte) int   { return writeUint16(buf, uint16(p.Pid)) }
func (p *Pubrec) encodeBody(buf []byte) int   { return writeUint16(buf, uint16(p.Pid)) }
func (p *Pubrel) encodeBody(buf []byte) int   { return writeUint16(buf, uint16(p.Pid)) }
func (p *Pubcomp) encodeBody(buf []byte) int  { return writeUint16(buf, uint16(p.Pid)) }
func (p *Unsuback) encodeBody(buf []byte) int { return writeUint16(buf, uint16(p.Pid)) }
