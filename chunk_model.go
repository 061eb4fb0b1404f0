package wavpcm

// SkippedChunk records a chunk the decoder passed over without interpreting
// it, in the order it was encountered.
type SkippedChunk struct {
	ID [4]byte
	// Size is the declared chunk size, not the number of bytes actually read.
	Size uint32
	// BeforeData indicates if this chunk appeared before the data chunk.
	BeforeData bool
}

func cloneSkippedChunks(chunks []SkippedChunk) []SkippedChunk {
	if len(chunks) == 0 {
		return nil
	}

	return append([]SkippedChunk(nil), chunks...)
}
