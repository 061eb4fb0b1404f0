package wavpcm

import "github.com/go-audio/audio"

// Narrowing back to integers truncates toward zero. Normalized values stay
// below 1.0, so neither conversion can overflow.

func toPCM8(v float64) byte {
	return byte(v * scalePCM8)
}

func toPCM16(v float64) int16 {
	return int16(v*scalePCM16 - biasPCM16)
}

// Export8Bit returns unsigned 8-bit PCM. With stereo set the result holds
// interleaved left/right pairs, otherwise each frame is mixed down to mono.
func (a *Audio) Export8Bit(stereo bool) []byte {
	n := a.NumSamples()
	if !stereo {
		out := make([]byte, n)
		for i := range n {
			out[i] = toPCM8(a.mono(i))
		}

		return out
	}

	out := make([]byte, n*2)
	for i := range n {
		out[i*2] = toPCM8(a.left(i))
		out[i*2+1] = toPCM8(a.right(i))
	}

	return out
}

// Export16Bit returns signed 16-bit PCM in the same layouts as Export8Bit.
func (a *Audio) Export16Bit(stereo bool) []int16 {
	n := a.NumSamples()
	if !stereo {
		out := make([]int16, n)
		for i := range n {
			out[i] = toPCM16(a.mono(i))
		}

		return out
	}

	out := make([]int16, n*2)
	for i := range n {
		out[i*2] = toPCM16(a.left(i))
		out[i*2+1] = toPCM16(a.right(i))
	}

	return out
}

// IntBuffer returns Export16Bit wrapped in a go-audio buffer.
func (a *Audio) IntBuffer(stereo bool) *audio.IntBuffer {
	pcm := a.Export16Bit(stereo)

	numChans := 1
	if stereo {
		numChans = 2
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  int(a.SampleRate()),
		},
		Data:           make([]int, len(pcm)),
		SourceBitDepth: 16,
	}
	for i, v := range pcm {
		buf.Data[i] = int(v)
	}

	return buf
}

// Float32Buffer returns every channel-sample, interleaved, as normalized
// unsigned fractions in the source channel layout.
func (a *Audio) Float32Buffer() *audio.Float32Buffer {
	n := a.NumSamples() * int(a.NumChans())

	buf := &audio.Float32Buffer{
		Format:         a.Format(),
		Data:           make([]float32, n),
		SourceBitDepth: int(a.BitDepth()),
	}
	for i := range n {
		buf.Data[i] = float32(a.normalize(i))
	}

	return buf
}
