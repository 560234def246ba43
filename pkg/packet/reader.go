package packet

import "io"

// Reader reads MQTT packets from an io.Reader, managing the sliding window
// buffer that Decode's incremental contract leaves to the caller.
type Reader struct {
	r   io.Reader
	buf []byte
	pos int
	end int
}

// NewReader creates a new packet reader with the given initial buffer size.
// The buffer grows as needed to hold the largest packet seen.
func NewReader(r io.Reader, bufSize int) *Reader {
	if bufSize < 1024 {
		bufSize = 1024
	}
	return &Reader{
		r:   r,
		buf: make([]byte, bufSize),
	}
}

// fill compacts consumed bytes out of the window, grows it when full, and
// reads more data.
func (r *Reader) fill() error {
	if r.pos > 0 {
		copy(r.buf, r.buf[r.pos:r.end])
		r.end -= r.pos
		r.pos = 0
	}

	if r.end == len(r.buf) {
		newBuf := make([]byte, len(r.buf)*2)
		copy(newBuf, r.buf)
		r.buf = newBuf
	}

	n, err := r.r.Read(r.buf[r.end:])
	if n > 0 {
		r.end += n
		// Let the bytes be consumed first; the error resurfaces on the
		// next read.
		return nil
	}
	return err
}

// available returns the number of unread bytes in the buffer.
func (r *Reader) available() int {
	return r.end - r.pos
}

// ReadPacket reads the next packet from the stream.
//
// The returned packet's zero-copy fields view the reader's internal buffer
// and remain valid only until the next ReadPacket call; copy them out if
// they must outlive it. An io.EOF in the middle of a packet is reported as
// io.ErrUnexpectedEOF.
func (r *Reader) ReadPacket() (Packet, error) {
	for {
		p, n, err := Decode(r.buf[r.pos:r.end])
		if err != nil {
			return nil, err
		}
		if p != nil {
			r.pos += n
			return p, nil
		}
		if err := r.fill(); err != nil {
			if err == io.EOF && r.available() > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
	}
}
