// Package wavpcm decodes uncompressed PCM WAV (RIFF/WAVE) files and converts
// their samples between bit depths and channel layouts.
//
// Decoding reads the whole container into memory and returns an immutable
// *Audio. The parser stops as soon as both the fmt and data chunks have been
// seen, in either order, so trailing metadata chunks are never read.
//
// Samples are normalized on demand to an unsigned fraction in [0, 1):
//
//   - 8-bit:  v / 256 (bytes are unsigned)
//   - 16-bit: (v + 2^15) / 2^16
//   - 32-bit: (v + 2^31) / 2^32
//
// and can be exported as 8-bit or 16-bit buffers in mono or stereo layout:
//
//	a, err := wavpcm.Decode(f)
//	if err != nil {
//		return err
//	}
//	pcm := a.Export16Bit(true)
//
// Only 8, 16 and 32-bit PCM with one or two channels is accepted. Compressed
// codecs are rejected with ErrUnsupportedFormat.
package wavpcm
