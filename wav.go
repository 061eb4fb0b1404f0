package wavpcm

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidContainer indicates a missing or wrong RIFF/WAVE tag, or a
	// structurally broken chunk.
	ErrInvalidContainer = errors.New("invalid RIFF/WAVE container")
	// ErrUnsupportedFormat is returned for any codec other than PCM.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrUnsupportedChannelLayout is returned when the channel count isn't 1 or 2.
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
	// ErrUnsupportedBitDepth is returned when bits per sample isn't 8, 16 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrIncompleteContainer indicates the container ended before both the
	// fmt and data chunks were found.
	ErrIncompleteContainer = errors.New("fmt or data chunk not found in audio file")
	// ErrOutOfRange is returned by sample accessors called past the sample count.
	ErrOutOfRange = errors.New("sample index out of range")
	// ErrStreamRead wraps I/O failures of the underlying reader.
	ErrStreamRead = errors.New("failed to read stream")
)

// streamError wraps err so that both ErrStreamRead and the cause
// match with errors.Is.
func streamError(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStreamRead, what, err)
}

func durationFromSamples(samples int, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}
