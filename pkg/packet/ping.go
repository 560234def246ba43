package packet

// PINGREQ, PINGRESP and DISCONNECT have no variable header and no payload;
// their remaining length must be 0.
// MQTT 3.1.1 Sections 3.12, 3.13, 3.14

// Pingreq represents an MQTT PINGREQ packet.
type Pingreq struct{}

// Pingresp represents an MQTT PINGRESP packet.
type Pingresp struct{}

// Disconnect represents an MQTT DISCONNECT packet.
type Disconnect struct{}

// Type returns TypePingreq.
func (p *Pingreq) Type() Type { return TypePingreq }

// Type returns TypePingresp.
func (p *Pingresp) Type() Type { return TypePingresp }

// Type returns TypeDisconnect.
func (d *Disconnect) Type() Type { return TypeDisconnect }

func (p *Pingreq) flags() byte    { return 0 }
func (p *Pingresp) flags() byte   { return 0 }
func (d *Disconnect) flags() byte { return 0 }

func (p *Pingreq) remainingLength() int    { return 0 }
func (p *Pingresp) remainingLength() int   { return 0 }
func (d *Disconnect) remainingLength() int { return 0 }

// EncodedSize returns the total size of the encoded packet.
func (p *Pingreq) EncodedSize() int { return 2 }

// EncodedSize returns the total size of the encoded packet.
func (p *Pingresp) EncodedSize() int { return 2 }

// EncodedSize returns the total size of the encoded packet.
func (d *Disconnect) EncodedSize() int { return 2 }

func (p *Pingreq) encodeBody(buf []byte) int    { return 0 }
func (p *Pingresp) encodeBody(buf []byte) int   { return 0 }
func (d *Disconnect) encodeBody(buf []byte) int { return 0 }
