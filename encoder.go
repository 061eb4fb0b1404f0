package wavpcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

var (
	errNilBuffer  = errors.New("can't add a nil buffer")
	errNilEncoder = errors.New("can't write a nil encoder")
	errNilWriter  = errors.New("can't write to a nil writer")
	errClosed     = errors.New("encoder already closed")
)

// Encoder writes PCM samples into a canonical wav container: a RIFF header,
// a 16 byte fmt chunk and a single data chunk. Sizes are patched on Close.
type Encoder struct {
	w   io.WriteSeeker
	buf *bytes.Buffer

	SampleRate int
	BitDepth   int
	NumChans   int

	WrittenBytes    int
	pcmBytes        int
	pcmChunkStarted bool
	pcmChunkSizePos int
	wroteHeader     bool
	closed          bool
}

// NewEncoder creates a new encoder to create a new wav file. Supported
// layouts are the ones Decode accepts: 8, 16 or 32-bit PCM, mono or stereo.
func NewEncoder(w io.WriteSeeker, sampleRate, bitDepth, numChans int) *Encoder {
	return &Encoder{
		w:          w,
		buf:        &bytes.Buffer{},
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		NumChans:   numChans,
	}
}

// EncodeAudio writes a decoded Audio back out unchanged.
func EncodeAudio(w io.WriteSeeker, a *Audio) error {
	if a == nil {
		return errNilBuffer
	}

	e := NewEncoder(w, int(a.SampleRate()), int(a.BitDepth()), int(a.NumChans()))

	err := e.startPCMChunk()
	if err != nil {
		return err
	}

	n, err := e.w.Write(a.data)
	e.WrittenBytes += n
	e.pcmBytes += n

	if err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	return e.Close()
}

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// AddBE serializes and adds the passed value using big endian.
func (e *Encoder) AddBE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.BigEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write big endian: %w", err)
	}

	return nil
}

func (e *Encoder) fmtChunk() *FmtChunk {
	blockAlign := e.NumChans * bytesPerSample(e.BitDepth)

	return &FmtChunk{
		FormatTag:      FormatPCM,
		NumChannels:    uint16(e.NumChans),
		SampleRate:     uint32(e.SampleRate),
		AvgBytesPerSec: uint32(e.SampleRate * blockAlign),
		BlockAlign:     uint16(blockAlign),
		BitsPerSample:  uint16(e.BitDepth),
	}
}

func (e *Encoder) writeHeader() error {
	if e == nil {
		return errNilEncoder
	}

	if e.w == nil {
		return errNilWriter
	}

	chunk := e.fmtChunk()

	err := chunk.validate()
	if err != nil {
		return err
	}

	e.wroteHeader = true

	err = e.AddBE(riff.RiffID)
	if err != nil {
		return err
	}
	// file size uint32, to update later on.
	err = e.AddLE(uint32(math.MaxUint32))
	if err != nil {
		return err
	}

	err = e.AddBE(riff.WavFormatID)
	if err != nil {
		return err
	}

	err = e.AddBE(riff.FmtID)
	if err != nil {
		return err
	}

	err = e.AddLE(uint32(fmtChunkSize))
	if err != nil {
		return err
	}

	err = e.AddLE(uint16(chunk.FormatTag))
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.NumChannels)
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = e.AddLE(chunk.SampleRate)
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = e.AddLE(chunk.AvgBytesPerSec)
	if err != nil {
		return fmt.Errorf("error encoding the avg bytes per sec - %w", err)
	}

	err = e.AddLE(chunk.BlockAlign)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.BitsPerSample)
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	return nil
}

func (e *Encoder) startPCMChunk() error {
	if e == nil {
		return errNilEncoder
	}

	if e.closed {
		return errClosed
	}

	if !e.wroteHeader {
		err := e.writeHeader()
		if err != nil {
			return err
		}
	}

	if e.pcmChunkStarted {
		return nil
	}

	err := e.AddBE(riff.DataFormatID)
	if err != nil {
		return fmt.Errorf("error encoding sound header %w", err)
	}

	e.pcmChunkStarted = true

	// write a temporary chunksize
	e.pcmChunkSizePos = e.WrittenBytes

	err = e.AddLE(uint32(math.MaxUint32))
	if err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	return nil
}

// Write encodes raw PCM integers at the encoder's bit depth. 8-bit values are
// unsigned, wider ones signed; out of range values are clamped.
func (e *Encoder) Write(buf *audio.IntBuffer) error {
	if buf == nil {
		return errNilBuffer
	}

	err := e.startPCMChunk()
	if err != nil {
		return err
	}

	for _, v := range buf.Data {
		e.appendInt(v)
	}

	return e.flush()
}

// WriteFrame encodes a single channel-sample given as a normalized unsigned
// fraction, the inverse of Audio.Normalized.
func (e *Encoder) WriteFrame(value float64) error {
	err := e.startPCMChunk()
	if err != nil {
		return err
	}

	e.appendInt(fromNormalized(value, e.BitDepth))

	return e.flush()
}

func (e *Encoder) appendInt(v int) {
	switch e.BitDepth {
	case 8:
		e.buf.WriteByte(uint8(clampInt(v, 0, math.MaxUint8)))
	case 16:
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(int16(clampInt(v, math.MinInt16, math.MaxInt16))))
		e.buf.Write(b[:])
	default:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(int32(clampInt(v, math.MinInt32, math.MaxInt32))))
		e.buf.Write(b[:])
	}
}

func (e *Encoder) flush() error {
	n, err := e.w.Write(e.buf.Bytes())
	e.WrittenBytes += n
	e.pcmBytes += n
	e.buf.Reset()

	if err != nil {
		return fmt.Errorf("failed to write buffer: %w", err)
	}

	return nil
}

// Close flushes the content to disk, make sure the headers are up to date
// Note that the underlying writer is NOT being closed.
func (e *Encoder) Close() error {
	if e == nil || e.w == nil {
		return nil
	}

	if e.closed {
		return nil
	}

	// an empty file still gets its fmt and data chunks
	err := e.startPCMChunk()
	if err != nil {
		return err
	}

	e.closed = true

	// go back and write total size in header
	if _, err := e.w.Seek(4, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to file size position: %w", err)
	}

	err = e.AddLE(uint32(e.WrittenBytes) - 8)
	if err != nil {
		return fmt.Errorf("%w when writing the total written bytes", err)
	}

	// rewrite the audio chunk length header
	if _, err := e.w.Seek(int64(e.pcmChunkSizePos), io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to PCM chunk size position: %w", err)
	}

	err = e.AddLE(uint32(e.pcmBytes))
	if err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	// jump back to the end of the file.
	if _, err := e.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end of file: %w", err)
	}

	if f, ok := e.w.(*os.File); ok {
		return f.Sync()
	}

	return nil
}

// fromNormalized quantizes an unsigned fraction to a PCM integer, truncating
// like the exporters do. Values outside [0, 1) are clamped.
func fromNormalized(v float64, bitDepth int) int {
	v = clampFloat64(v, 0, 1)

	switch bitDepth {
	case 8:
		return clampInt(int(v*scalePCM8), 0, math.MaxUint8)
	case 16:
		return clampInt(int(v*scalePCM16-biasPCM16), math.MinInt16, math.MaxInt16)
	default:
		return clampInt(int(v*scalePCM32-biasPCM32), math.MinInt32, math.MaxInt32)
	}
}

func clampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
