package wavpcm

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

const (
	scalePCM8  = 256.0
	scalePCM16 = 65536.0
	scalePCM32 = 4294967296.0
	biasPCM16  = 32768.0
	biasPCM32  = 2147483648.0
)

// Audio is a decoded PCM WAV stream. It is immutable and safe for
// concurrent use.
type Audio struct {
	hdr     FmtChunk
	samples int
	data    []byte
	skipped []SkippedChunk
}

func newAudio(fmtChunk FmtChunk, data []byte, skipped []SkippedChunk) *Audio {
	a := &Audio{
		hdr:     fmtChunk,
		data:    data,
		skipped: cloneSkippedChunks(skipped),
	}
	a.samples = len(data) / bytesPerSample(int(fmtChunk.BitsPerSample)) / int(fmtChunk.NumChannels)

	return a
}

// AudioFormat returns the codec tag. Always FormatPCM for decoded audio.
func (a *Audio) AudioFormat() AudioFormat {
	if a == nil {
		return FormatUnknown
	}

	return a.hdr.FormatTag
}

// NumChans returns the number of interleaved channels, 1 or 2.
func (a *Audio) NumChans() uint16 {
	if a == nil {
		return 0
	}

	return a.hdr.NumChannels
}

// SampleRate returns the sample frequency in Hz as stored in the file.
func (a *Audio) SampleRate() uint32 {
	if a == nil {
		return 0
	}

	return a.hdr.SampleRate
}

// BitDepth returns the bits per sample, 8, 16 or 32.
func (a *Audio) BitDepth() uint16 {
	if a == nil {
		return 0
	}

	return a.hdr.BitsPerSample
}

// NumSamples returns the number of sample frames.
func (a *Audio) NumSamples() int {
	if a == nil {
		return 0
	}

	return a.samples
}

// PCMLen returns the total number of bytes in the PCM data chunk.
func (a *Audio) PCMLen() int {
	if a == nil {
		return 0
	}

	return len(a.data)
}

func (a *Audio) IsMono() bool {
	return a.NumChans() == 1
}

// Duration returns the playing time of the decoded samples.
func (a *Audio) Duration() time.Duration {
	return durationFromSamples(a.NumSamples(), a.SampleRate())
}

// Format returns the audio format of the decoded content.
func (a *Audio) Format() *audio.Format {
	if a == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(a.hdr.NumChannels),
		SampleRate:  int(a.hdr.SampleRate),
	}
}

// FmtChunk returns a copy of the parsed fmt chunk.
func (a *Audio) FmtChunk() *FmtChunk {
	if a == nil {
		return nil
	}

	return a.hdr.Clone()
}

// SkippedChunks returns the chunks passed over before decoding stopped.
func (a *Audio) SkippedChunks() []SkippedChunk {
	if a == nil {
		return nil
	}

	return cloneSkippedChunks(a.skipped)
}

// Normalized returns the channel-sample at index i (frames interleaved) as
// an unsigned fraction in [0, 1).
func (a *Audio) Normalized(i int) (float64, error) {
	if err := a.checkIndex(i, a.NumSamples()*int(a.NumChans())); err != nil {
		return 0, err
	}

	return a.normalize(i), nil
}

// Mono returns frame i mixed down to a single channel.
func (a *Audio) Mono(i int) (float64, error) {
	if err := a.checkIndex(i, a.NumSamples()); err != nil {
		return 0, err
	}

	return a.mono(i), nil
}

// Left returns the left channel of frame i. Mono audio returns its only
// channel.
func (a *Audio) Left(i int) (float64, error) {
	if err := a.checkIndex(i, a.NumSamples()); err != nil {
		return 0, err
	}

	return a.left(i), nil
}

// Right returns the right channel of frame i. Mono audio returns its only
// channel.
func (a *Audio) Right(i int) (float64, error) {
	if err := a.checkIndex(i, a.NumSamples()); err != nil {
		return 0, err
	}

	return a.right(i), nil
}

func (a *Audio) checkIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, limit)
	}

	return nil
}

// The accessors below trust their index; callers bound it by NumSamples.

func (a *Audio) read8(i int) uint8 {
	return a.data[i]
}

func (a *Audio) read16(i int) int16 {
	return int16(binary.LittleEndian.Uint16(a.data[i*2:]))
}

func (a *Audio) read32(i int) int32 {
	return int32(binary.LittleEndian.Uint32(a.data[i*4:]))
}

// normalize maps 16 and 32-bit signed samples to the unsigned range. 8-bit
// samples are already unsigned and are only scaled.
func (a *Audio) normalize(i int) float64 {
	switch a.hdr.BitsPerSample {
	case 32:
		return (float64(a.read32(i)) + biasPCM32) / scalePCM32
	case 16:
		return (float64(a.read16(i)) + biasPCM16) / scalePCM16
	default:
		return float64(a.read8(i)) / scalePCM8
	}
}

func (a *Audio) mono(i int) float64 {
	if a.hdr.NumChannels == 1 {
		return a.normalize(i)
	}

	return 0.5 * (a.normalize(i*2) + a.normalize(i*2+1))
}

func (a *Audio) left(i int) float64 {
	if a.hdr.NumChannels == 1 {
		return a.normalize(i)
	}

	return a.normalize(i * 2)
}

func (a *Audio) right(i int) float64 {
	if a.hdr.NumChannels == 1 {
		return a.normalize(i)
	}

	return a.normalize(i*2 + 1)
}

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}
