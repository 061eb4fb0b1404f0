package wavpcm

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// ErrUnknownExtension is returned when no decoder is registered for a file
// extension.
var ErrUnknownExtension = errors.New("no decoder registered for extension")

// DecodeFunc constructs decoded audio from a stream.
type DecodeFunc func(r io.Reader) (*Audio, error)

// Registry maps file extensions (e.g. "wav") to decoders. It is safe for
// concurrent use.
type Registry struct {
	decoders map[string]DecodeFunc

	mtx sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]DecodeFunc),
	}
}

// DefaultRegistry returns a new registry with the wav decoder registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", Decode)

	return r
}

// Register binds ext to fn, replacing any previous binding. The extension is
// matched case-insensitively and may carry a leading dot.
func (r *Registry) Register(ext string, fn DecodeFunc) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[normalizeExt(ext)] = fn
}

// Lookup returns the decoder registered for the extension of path.
func (r *Registry) Lookup(path string) (DecodeFunc, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	fn, ok := r.decoders[normalizeExt(filepath.Ext(path))]

	return fn, ok
}

// Decode decodes r with the decoder registered for the extension of path.
func (r *Registry) Decode(path string, rd io.Reader) (*Audio, error) {
	fn, ok := r.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, filepath.Ext(path))
	}

	return fn(rd)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
