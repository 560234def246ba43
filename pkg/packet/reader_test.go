package packet

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// oneByteReader yields a single byte per Read call to exercise the
// incremental path.
type oneByteReader struct {
	r io.Reader
}

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}

func TestWriterReaderRoundTrip(t *testing.T) {
	var stream bytes.Buffer
	w := NewWriter(&stream)

	packets := roundTripPackets()
	for _, p := range packets {
		require.NoError(t, w.WritePacket(p))
	}

	r := NewReader(&stream, 0)
	for _, want := range packets {
		got, err := r.ReadPacket()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := r.ReadPacket()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderByteAtATime(t *testing.T) {
	var stream bytes.Buffer
	w := NewWriter(&stream)
	want := NewPublish("a/b", []byte("hello"), AtLeastOnce(Pid(3)), false)
	require.NoError(t, w.WritePacket(want))

	r := NewReader(oneByteReader{&stream}, 0)
	got, err := r.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReaderTruncatedStream(t *testing.T) {
	frame := []byte{0x30, 10, 0x00, 0x03, 'a', '/', 'b', 'h', 'e'}
	r := NewReader(bytes.NewReader(frame), 0)
	_, err := r.ReadPacket()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReaderMalformedStream(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00}), 0)
	_, err := r.ReadPacket()
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestReaderGrowsBeyondInitialBuffer(t *testing.T) {
	payload := bytes.Repeat([]byte{'x'}, 8192)
	want := NewPublish("big", payload, AtMostOnce(), false)

	var stream bytes.Buffer
	require.NoError(t, NewWriter(&stream).WritePacket(want))

	r := NewReader(&stream, 1024)
	got, err := r.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
