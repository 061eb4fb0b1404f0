package wavpcm

// FormatChunk returns a copy of the parsed fmt chunk, if one was seen.
func (d *Decoder) FormatChunk() *FmtChunk {
	if d == nil || d.fmtChunk == nil {
		return nil
	}

	return d.fmtChunk.Clone()
}

// SkippedChunks returns the chunks passed over so far.
func (d *Decoder) SkippedChunks() []SkippedChunk {
	if d == nil {
		return nil
	}

	return cloneSkippedChunks(d.skipped)
}

// Err returns the error Decode failed with, if any.
func (d *Decoder) Err() error {
	if d == nil {
		return nil
	}

	return d.err
}

// FormatChunk returns a copy of the fmt chunk the encoder writes.
func (e *Encoder) FormatChunk() *FmtChunk {
	if e == nil {
		return nil
	}

	return e.fmtChunk()
}
