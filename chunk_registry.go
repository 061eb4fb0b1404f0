package wavpcm

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ChunkHandler is a typed handler for RIFF/WAV chunks.
// Decode must read the chunk body through ch so the decoder can skip
// whatever the handler leaves unread.
type ChunkHandler interface {
	CanHandle(chunkID [4]byte) bool
	Decode(d *Decoder, ch *riff.Chunk) error
}

// ChunkRegistry resolves chunks to handlers.
type ChunkRegistry struct {
	handlers []ChunkHandler
}

func newDefaultChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{
		handlers: []ChunkHandler{
			&fmtChunkHandler{},
			&dataChunkHandler{},
		},
	}
}

// Register appends a handler to the registry. The fmt and data handlers
// always take precedence.
func (r *ChunkRegistry) Register(handler ChunkHandler) {
	if r == nil || handler == nil {
		return
	}

	r.handlers = append(r.handlers, handler)
}

// Decode dispatches a chunk to the first matching handler.
func (r *ChunkRegistry) Decode(dec *Decoder, chnk *riff.Chunk) (bool, error) {
	if r == nil || chnk == nil {
		return false, nil
	}

	for _, handler := range r.handlers {
		if handler.CanHandle(chnk.ID) {
			err := handler.Decode(dec, chnk)
			if err != nil {
				return true, fmt.Errorf("%s chunk: %w", chnk.ID[:], err)
			}

			return true, nil
		}
	}

	return false, nil
}

type fmtChunkHandler struct{}

func (h *fmtChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.FmtID
}

func (h *fmtChunkHandler) Decode(d *Decoder, ch *riff.Chunk) error {
	fmtChunk, err := decodeFmtChunk(ch)
	if err != nil {
		return err
	}

	d.fmtChunk = fmtChunk

	return nil
}

type dataChunkHandler struct{}

func (h *dataChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.DataFormatID
}

func (h *dataChunkHandler) Decode(d *Decoder, ch *riff.Chunk) error {
	data, err := io.ReadAll(ch)
	if err != nil {
		return streamError("PCM data", err)
	}

	if len(data) < ch.Size {
		return streamError("PCM data", fmt.Errorf("got %d of %d bytes: %w", len(data), ch.Size, io.ErrUnexpectedEOF))
	}

	d.pcm = data
	d.pcmSeen = true

	return nil
}
