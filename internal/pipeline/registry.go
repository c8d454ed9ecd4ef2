package pipeline

import (
	"fmt"
	"strings"
	"sync"
)

// Result is one converted file ready to be written.
type Result struct {
	OutputName string
	Content    []byte
}

// Converter turns one content file into its opposite representation.
type Converter interface {
	Convert(path string, content []byte) (*Result, error)
	SupportedExtensions() []string
}

// Registry maps file extensions to converters.
type Registry interface {
	Register(c Converter)
	ConverterFor(path string) (Converter, error)
}

// DefaultRegistry is a thread-safe converter registry. Extensions are
// matched longest-first so ".adf.json" wins over ".json".
type DefaultRegistry struct {
	mu         sync.RWMutex
	converters map[string]Converter
	extensions []string
}

// NewRegistry creates a new DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{converters: make(map[string]Converter)}
}

// Register adds a converter for each of its supported extensions.
func (r *DefaultRegistry) Register(c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range c.SupportedExtensions() {
		if _, seen := r.converters[ext]; !seen {
			r.extensions = append(r.extensions, ext)
		}
		r.converters[ext] = c
	}
	// Longest extension first so multi-dot suffixes take precedence.
	for i := 1; i < len(r.extensions); i++ {
		for j := i; j > 0 && len(r.extensions[j]) > len(r.extensions[j-1]); j-- {
			r.extensions[j], r.extensions[j-1] = r.extensions[j-1], r.extensions[j]
		}
	}
}

// ConverterFor returns the converter registered for the file's extension.
func (r *DefaultRegistry) ConverterFor(path string) (Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ext := range r.extensions {
		if strings.HasSuffix(path, ext) {
			return r.converters[ext], nil
		}
	}
	return nil, fmt.Errorf("no converter registered for %q", path)
}
