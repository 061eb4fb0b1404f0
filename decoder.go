package wavpcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/sirupsen/logrus"
)

// wavTagSize is the part of the RIFF size field taken by the WAVE tag.
const wavTagSize = 4

// Decoder parses a RIFF/WAVE stream into an Audio value.
//
// A Decoder reads its stream exactly once and is not safe for concurrent use.
type Decoder struct {
	r      io.Reader
	parser *riff.Parser
	chunks *ChunkRegistry
	log    logrus.FieldLogger

	fmtChunk *FmtChunk
	pcm      []byte
	pcmSeen  bool
	skipped  []SkippedChunk

	audio *Audio
	err   error
}

// NewDecoder creates a decoder for the passed wav reader.
// The reader must be positioned at the start of the RIFF header. It is never
// rewound or closed.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:      r,
		parser: riff.New(r),
		chunks: newDefaultChunkRegistry(),
		log:    logrus.StandardLogger(),
	}
}

// Decode is a shortcut for NewDecoder(r).Decode().
func Decode(r io.Reader) (*Audio, error) {
	return NewDecoder(r).Decode()
}

// SetLogger replaces the logger used for debug output. A nil logger restores
// the logrus standard logger.
func (d *Decoder) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}

	d.log = l
}

// RegisterChunkHandler adds a handler for chunks other than fmt and data.
// Handled chunks are not reported by Audio.SkippedChunks.
func (d *Decoder) RegisterChunkHandler(h ChunkHandler) {
	d.chunks.Register(h)
}

// Decode reads the container until both the fmt and data chunks are known
// and returns the decoded audio. Calling it again returns the same result.
func (d *Decoder) Decode() (*Audio, error) {
	if d.audio == nil && d.err == nil {
		d.audio, d.err = d.decode()
	}

	return d.audio, d.err
}

func (d *Decoder) decode() (*Audio, error) {
	err := d.readHeaders()
	if err != nil {
		return nil, err
	}

	// the WAVE tag is counted in the RIFF size
	offset := uint64(wavTagSize)
	for offset < uint64(d.parser.Size) {
		chunk, err := d.NextChunk()
		if err != nil {
			return nil, err
		}

		offset += 8 + uint64(chunk.Size)

		handled, err := d.chunks.Decode(d, chunk)
		if err != nil {
			return nil, err
		}

		if d.fmtChunk != nil && d.pcmSeen {
			d.log.WithFields(logrus.Fields{
				"chunk":  string(chunk.ID[:]),
				"offset": offset,
				"size":   d.parser.Size,
			}).Debug("fmt and data found, stopping")

			return newAudio(*d.fmtChunk, d.pcm, d.skipped), nil
		}

		if !handled {
			d.log.WithFields(logrus.Fields{
				"chunk": string(chunk.ID[:]),
				"size":  chunk.Size,
			}).Debug("skipping chunk")

			d.skipped = append(d.skipped, SkippedChunk{
				ID:         chunk.ID,
				Size:       uint32(chunk.Size),
				BeforeData: !d.pcmSeen,
			})
		}

		chunk.Drain()
	}

	switch {
	case d.fmtChunk == nil && !d.pcmSeen:
		return nil, fmt.Errorf("%w: missing fmt and data chunks", ErrIncompleteContainer)
	case d.fmtChunk == nil:
		return nil, fmt.Errorf("%w: missing fmt chunk", ErrIncompleteContainer)
	default:
		return nil, fmt.Errorf("%w: missing data chunk", ErrIncompleteContainer)
	}
}

// NextChunk reads the next chunk header and returns the chunk with a reader
// limited to its declared size. Odd sizes are not padded.
func (d *Decoder) NextChunk() (*riff.Chunk, error) {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return nil, streamError("chunk header", err)
	}

	return &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(d.r, int64(size)),
	}, nil
}

func (d *Decoder) readHeaders() error {
	err := binary.Read(d.r, binary.BigEndian, &d.parser.ID)
	if err != nil {
		return streamError("RIFF id", err)
	}

	if d.parser.ID != riff.RiffID {
		return fmt.Errorf("%w: %q is not a RIFF header", ErrInvalidContainer, d.parser.ID[:])
	}

	err = binary.Read(d.r, binary.LittleEndian, &d.parser.Size)
	if err != nil {
		return streamError("RIFF size", err)
	}

	err = binary.Read(d.r, binary.BigEndian, &d.parser.Format)
	if err != nil {
		return streamError("RIFF format", err)
	}

	if d.parser.Format != riff.WavFormatID {
		return fmt.Errorf("%w: RIFF type %q is not WAVE", ErrInvalidContainer, d.parser.Format[:])
	}

	return nil
}
