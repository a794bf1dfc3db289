// internal/platform/registry/converter_registry.go
package registry

import (
	"fmt"
	"sync"

	"tomlq/internal/core/domain"
	"tomlq/internal/core/ports"
)

// ConverterRegistry maps input formats to their converters. Converter
// packages register themselves from init().
type ConverterRegistry struct {
	mu         sync.RWMutex
	converters map[domain.TargetFormat]ports.Converter
}

var globalRegistry *ConverterRegistry
var once sync.Once

// Global returns the process-wide registry.
func Global() *ConverterRegistry {
	once.Do(func() {
		globalRegistry = NewConverterRegistry()
	})
	return globalRegistry
}

// NewConverterRegistry creates an empty registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: make(map[domain.TargetFormat]ports.Converter),
	}
}

// Register adds c under the format it reports.
func (r *ConverterRegistry) Register(c ports.Converter) error {
	if c == nil {
		return fmt.Errorf("converter cannot be nil")
	}

	f := c.Format()
	if !f.IsValid() {
		return fmt.Errorf("unknown format %q", f)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.converters[f]; exists {
		return fmt.Errorf("converter for %s is already registered", f)
	}
	r.converters[f] = c
	return nil
}

// MustRegister is Register for init functions.
func (r *ConverterRegistry) MustRegister(c ports.Converter) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Lookup returns the converter for f.
func (r *ConverterRegistry) Lookup(f domain.TargetFormat) (ports.Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[f]
	if !ok {
		return nil, fmt.Errorf("no converter for format %q", f)
	}
	return c, nil
}
