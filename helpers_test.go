package wavpcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

type testChunk struct {
	id   string
	data []byte
	// size overrides the declared chunk size when non-zero.
	size uint32
}

func (c testChunk) declaredSize() uint32 {
	if c.size != 0 {
		return c.size
	}

	return uint32(len(c.data))
}

// buildWav assembles a RIFF/WAVE container with a correct RIFF size.
func buildWav(chunks ...testChunk) []byte {
	var body bytes.Buffer
	for _, c := range chunks {
		body.WriteString(c.id)
		binary.Write(&body, binary.LittleEndian, c.declaredSize())
		body.Write(c.data)
	}

	return buildWavWithSize(uint32(4+body.Len()), body.Bytes())
}

func buildWavWithSize(riffSize uint32, body []byte) []byte {
	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, riffSize)
	out.WriteString("WAVE")
	out.Write(body)

	return out.Bytes()
}

func fmtBody(format, numChans uint16, sampleRate uint32, bitDepth uint16) []byte {
	blockAlign := numChans * (bitDepth / 8)

	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:2], format)
	binary.LittleEndian.PutUint16(b[2:4], numChans)
	binary.LittleEndian.PutUint32(b[4:8], sampleRate)
	binary.LittleEndian.PutUint32(b[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(b[12:14], blockAlign)
	binary.LittleEndian.PutUint16(b[14:16], bitDepth)

	return b
}

func fmtChunkOf(numChans uint16, sampleRate uint32, bitDepth uint16) testChunk {
	return testChunk{id: "fmt ", data: fmtBody(uint16(FormatPCM), numChans, sampleRate, bitDepth)}
}

func dataChunkOf(data []byte) testChunk {
	return testChunk{id: "data", data: data}
}

func int16LE(values ...int16) []byte {
	b := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}

	return b
}

func int32LE(values ...int32) []byte {
	b := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(v))
	}

	return b
}

func decodeBytes(b []byte) (*Audio, error) {
	return Decode(bytes.NewReader(b))
}

var errReadPastEnd = errors.New("read past the end of the test stream")

// strictReader fails any read past the wrapped data, proving the decoder
// stopped before touching it.
type strictReader struct {
	r io.Reader
}

func (s *strictReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if errors.Is(err, io.EOF) {
		return n, errReadPastEnd
	}

	return n, err
}

// memWriteSeeker is an in-memory io.WriteSeeker.
type memWriteSeeker struct {
	buf []byte
	pos int
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.buf) {
		m.buf = append(m.buf, make([]byte, end-len(m.buf))...)
	}

	copy(m.buf[m.pos:], p)
	m.pos = end

	return len(p), nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var base int64

	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(m.pos)
	case io.SeekEnd:
		base = int64(len(m.buf))
	default:
		return 0, errors.New("invalid whence")
	}

	pos := base + offset
	if pos < 0 {
		return 0, errors.New("negative position")
	}

	m.pos = int(pos)

	return pos, nil
}

func (m *memWriteSeeker) Bytes() []byte {
	return m.buf
}
