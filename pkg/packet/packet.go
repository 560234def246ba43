package packet

// Packet is the interface implemented by all MQTT control packets. It is a
// closed set: the fourteen types in this package are the only
// implementations, so a type switch over them is exhaustive.
type Packet interface {
	// Type returns the packet type.
	Type() Type

	// EncodedSize returns the total wire size of the encoded packet,
	// including the fixed header.
	EncodedSize() int

	// flags returns the flag nibble for the first header byte.
	flags() byte

	// remainingLength returns the encoded body length declared in the
	// fixed header.
	remainingLength() int

	// encodeBody writes the variable header and payload into buf, which
	// the dispatcher has already sized to remainingLength().
	encodeBody(buf []byte) int
}
