package wavpcm

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		bitDepth uint16
		data     []byte
		want     float64
	}{
		{"8bit zero", 8, []byte{0}, 0},
		{"8bit center", 8, []byte{128}, 0.5},
		{"8bit max", 8, []byte{255}, 255.0 / 256},
		{"16bit min", 16, int16LE(math.MinInt16), 0},
		{"16bit zero", 16, int16LE(0), 0.5},
		{"16bit minus one", 16, int16LE(-1), 32767.0 / 65536},
		{"16bit max", 16, int16LE(math.MaxInt16), 65535.0 / 65536},
		{"32bit min", 32, int32LE(math.MinInt32), 0},
		{"32bit zero", 32, int32LE(0), 0.5},
		{"32bit max", 32, int32LE(math.MaxInt32), 4294967295.0 / 4294967296},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := decodeBytes(buildWav(fmtChunkOf(1, 8000, tc.bitDepth), dataChunkOf(tc.data)))
			require.NoError(t, err)

			got, err := a.Normalized(0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Less(t, got, 1.0)
		})
	}
}

func TestMonoSourceChannelsAgree(t *testing.T) {
	for _, bitDepth := range []uint16{8, 16, 32} {
		data := make([]byte, 64)
		for i := range data {
			data[i] = byte(i * 37)
		}

		a, err := decodeBytes(buildWav(fmtChunkOf(1, 8000, bitDepth), dataChunkOf(data)))
		require.NoError(t, err)

		for i := range a.NumSamples() {
			mono, err := a.Mono(i)
			require.NoError(t, err)

			left, err := a.Left(i)
			require.NoError(t, err)

			right, err := a.Right(i)
			require.NoError(t, err)

			assert.Equal(t, mono, left, "bit depth %d frame %d", bitDepth, i)
			assert.Equal(t, mono, right, "bit depth %d frame %d", bitDepth, i)
		}
	}
}

func TestStereoSourceMixesDown(t *testing.T) {
	for _, bitDepth := range []uint16{8, 16, 32} {
		data := make([]byte, 64)
		for i := range data {
			data[i] = byte(255 - i*11)
		}

		a, err := decodeBytes(buildWav(fmtChunkOf(2, 8000, bitDepth), dataChunkOf(data)))
		require.NoError(t, err)

		for i := range a.NumSamples() {
			mono, err := a.Mono(i)
			require.NoError(t, err)

			left, err := a.Left(i)
			require.NoError(t, err)

			right, err := a.Right(i)
			require.NoError(t, err)

			assert.Equal(t, (left+right)/2, mono, "bit depth %d frame %d", bitDepth, i)

			wantLeft, err := a.Normalized(i * 2)
			require.NoError(t, err)
			assert.Equal(t, wantLeft, left)

			wantRight, err := a.Normalized(i*2 + 1)
			require.NoError(t, err)
			assert.Equal(t, wantRight, right)
		}
	}
}

func TestAccessorsOutOfRange(t *testing.T) {
	// 16-bit stereo, two frames plus a dangling half frame
	a, err := decodeBytes(buildWav(fmtChunkOf(2, 8000, 16), dataChunkOf(int16LE(1, 2, 3, 4, 5))))
	require.NoError(t, err)
	require.Equal(t, 2, a.NumSamples())

	accessors := map[string]func(int) (float64, error){
		"Mono":  a.Mono,
		"Left":  a.Left,
		"Right": a.Right,
	}

	for name, fn := range accessors {
		t.Run(name, func(t *testing.T) {
			_, err := fn(-1)
			require.ErrorIs(t, err, ErrOutOfRange)

			_, err = fn(2)
			require.ErrorIs(t, err, ErrOutOfRange)

			_, err = fn(1)
			require.NoError(t, err)
		})
	}

	_, err = a.Normalized(3)
	require.NoError(t, err)

	// the fifth value belongs to an incomplete frame
	_, err = a.Normalized(4)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNilAudio(t *testing.T) {
	var a *Audio

	assert.Equal(t, 0, a.NumSamples())
	assert.Equal(t, uint16(0), a.NumChans())
	assert.Equal(t, uint16(0), a.BitDepth())
	assert.Equal(t, uint32(0), a.SampleRate())
	assert.Equal(t, 0, a.PCMLen())
	assert.Equal(t, FormatUnknown, a.AudioFormat())
	assert.Equal(t, time.Duration(0), a.Duration())
	assert.Nil(t, a.Format())
	assert.Nil(t, a.FmtChunk())
	assert.Nil(t, a.SkippedChunks())
	assert.Empty(t, a.Export8Bit(true))
	assert.Empty(t, a.Export16Bit(false))

	_, err := a.Mono(0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestRoundTripWithinOneStep(t *testing.T) {
	values := []float64{0, 0.001, 0.1, 0.25, 0.333333, 0.5, 0.6180339, 0.75, 0.9, 0.999, 0.9999999}

	for _, bitDepth := range []int{8, 16, 32} {
		out := &memWriteSeeker{}
		enc := NewEncoder(out, 8000, bitDepth, 1)

		for _, v := range values {
			require.NoError(t, enc.WriteFrame(v))
		}

		require.NoError(t, enc.Close())

		a, err := Decode(bytes.NewReader(out.Bytes()))
		require.NoError(t, err)
		require.Equal(t, len(values), a.NumSamples())

		step := 1 / math.Pow(2, float64(bitDepth))
		for i, want := range values {
			got, err := a.Normalized(i)
			require.NoError(t, err)
			assert.InDelta(t, want, got, step, "bit depth %d value %d", bitDepth, i)
		}
	}
}

func TestMetadataAccessors(t *testing.T) {
	a, err := decodeBytes(buildWav(fmtChunkOf(2, 48000, 32), dataChunkOf(make([]byte, 48000*8))))
	require.NoError(t, err)

	assert.False(t, a.IsMono())
	assert.Equal(t, time.Second, a.Duration())

	format := a.Format()
	require.NotNil(t, format)
	assert.Equal(t, 2, format.NumChannels)
	assert.Equal(t, 48000, format.SampleRate)

	fc := a.FmtChunk()
	fc.SampleRate = 1
	assert.Equal(t, uint32(48000), a.SampleRate(), "FmtChunk must return a copy")
}
