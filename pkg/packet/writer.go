package packet

import (
	"io"
	"sync"
)

// bufferPool provides reusable scratch buffers for packet encoding.
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 4096)
		return &buf
	},
}

// GetBuffer returns a scratch buffer from the pool.
func GetBuffer() []byte {
	return *bufferPool.Get().(*[]byte)
}

// PutBuffer returns a scratch buffer to the pool.
func PutBuffer(buf []byte) {
	// Only keep buffers of reasonable size.
	if cap(buf) <= 65536 {
		buf = buf[:cap(buf)]
		bufferPool.Put(&buf)
	}
}

// Writer writes MQTT packets to an io.Writer, encoding each packet through
// a pooled scratch buffer and writing the frame whole.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new packet writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WritePacket encodes p and writes its complete frame to the underlying
// writer.
func (w *Writer) WritePacket(p Packet) error {
	buf := GetBuffer()
	defer PutBuffer(buf)

	if size := p.EncodedSize(); size > len(buf) {
		buf = make([]byte, size)
	}

	n, err := Encode(p, buf)
	if err != nil {
		return err
	}
	_, err = w.w.Write(buf[:n])
	return err
}
