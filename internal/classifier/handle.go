package classifier

import (
	"errors"
	"sync/atomic"
)

// Handle holds the pipeline loaded at startup for the life of the process.
// Reload swaps it only after the new artifact loads cleanly.
type Handle struct {
	path    string
	current atomic.Pointer[Pipeline]
}

// Open loads the artifact at path into a new Handle.
func Open(path string) (*Handle, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewHandle(path, p), nil
}

// NewHandle wraps an already loaded pipeline.
func NewHandle(path string, p *Pipeline) *Handle {
	h := &Handle{path: path}
	h.current.Store(p)
	return h
}

// Current returns the active pipeline, or nil when none is loaded.
func (h *Handle) Current() *Pipeline {
	if h == nil {
		return nil
	}
	return h.current.Load()
}

// Path is the artifact location the handle reads from.
func (h *Handle) Path() string { return h.path }

// Reload re-reads the artifact and swaps it in.
func (h *Handle) Reload() (*Pipeline, error) {
	if h == nil || h.path == "" {
		return nil, errors.New("classifier: no artifact path to reload from")
	}
	p, err := Load(h.path)
	if err != nil {
		return nil, err
	}
	h.current.Store(p)
	return p, nil
}
