package wavpcm

import (
	"fmt"

	"github.com/go-audio/riff"
)

// fmtChunkSize is the number of fmt bytes the decoder consumes. Anything the
// chunk declares past that (cbSize, extensible fields) is skipped.
const fmtChunkSize = 16

// FmtChunk stores the parsed WAV fmt chunk.
type FmtChunk struct {
	FormatTag     AudioFormat
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16
	// AvgBytesPerSec and BlockAlign are kept as read but never used, the
	// decoder derives everything from the fields above.
	AvgBytesPerSec uint32
	BlockAlign     uint16
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

func (f *FmtChunk) validate() error {
	if err := checkFormat(f.FormatTag); err != nil {
		return err
	}

	if err := checkChannels(f.NumChannels); err != nil {
		return err
	}

	return checkBitDepth(f.BitsPerSample)
}

func checkFormat(tag AudioFormat) error {
	if tag != FormatPCM {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, tag)
	}

	return nil
}

func checkChannels(numChans uint16) error {
	if numChans != 1 && numChans != 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedChannelLayout, numChans)
	}

	return nil
}

func checkBitDepth(bitDepth uint16) error {
	switch bitDepth {
	case 8, 16, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBitDepth, bitDepth)
	}
}

// decodeFmtChunk reads the 16 fmt bytes, rejecting a field as soon as it is
// read so the first offending field decides the error.
func decodeFmtChunk(chunk *riff.Chunk) (*FmtChunk, error) {
	if chunk.Size < fmtChunkSize {
		return nil, fmt.Errorf("%w: fmt chunk is %d bytes, want at least %d", ErrInvalidContainer, chunk.Size, fmtChunkSize)
	}

	var (
		fmtChunk  FmtChunk
		formatTag uint16
	)

	err := chunk.ReadLE(&formatTag)
	if err != nil {
		return nil, streamError("wav format", err)
	}

	fmtChunk.FormatTag = AudioFormat(formatTag)
	if err := checkFormat(fmtChunk.FormatTag); err != nil {
		return nil, err
	}

	err = chunk.ReadLE(&fmtChunk.NumChannels)
	if err != nil {
		return nil, streamError("channels", err)
	}

	if err := checkChannels(fmtChunk.NumChannels); err != nil {
		return nil, err
	}

	err = chunk.ReadLE(&fmtChunk.SampleRate)
	if err != nil {
		return nil, streamError("sample rate", err)
	}

	err = chunk.ReadLE(&fmtChunk.AvgBytesPerSec)
	if err != nil {
		return nil, streamError("avg bytes/sec", err)
	}

	err = chunk.ReadLE(&fmtChunk.BlockAlign)
	if err != nil {
		return nil, streamError("block align", err)
	}

	err = chunk.ReadLE(&fmtChunk.BitsPerSample)
	if err != nil {
		return nil, streamError("bit depth", err)
	}

	if err := checkBitDepth(fmtChunk.BitsPerSample); err != nil {
		return nil, err
	}

	return &fmtChunk, nil
}
