// Package provider selects version-specific implementations.
//
// Statement builders and output buffers differ between framework releases.
// Each implementation is registered with the lowest framework version it
// supports; Select returns the one registered for the highest version not
// above the negotiated framework version.
package provider

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/utplsql/utplsql-go/pkg/version"
)

var (
	// ErrNoProvider is returned when no registered implementation supports
	// the version.
	ErrNoProvider = errors.New("no provider for framework version")

	// ErrInvalidVersion is returned when a minimum version has no major
	// component.
	ErrInvalidVersion = errors.New("invalid minimum version")

	// ErrDuplicateProvider is returned when two implementations claim the
	// same minimum version.
	ErrDuplicateProvider = errors.New("duplicate provider")
)

type entry[T any] struct {
	min   version.Version
	value T
}

// Registry maps minimum framework versions to implementations.
// It is safe for concurrent use.
type Registry[T any] struct {
	name    string
	mu      sync.RWMutex
	entries []entry[T]
}

// NewRegistry creates an empty registry. name is used in error messages.
func NewRegistry[T any](name string) *Registry[T] {
	return &Registry[T]{name: name}
}

// Register adds an implementation for framework versions from min upward.
func (r *Registry[T]) Register(min string, value T) error {
	v := version.Parse(min)
	if !v.IsValid() {
		return fmt.Errorf("%w: %s: %q", ErrInvalidVersion, r.name, min)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if c, _ := e.min.Compare(v); c == 0 {
			return fmt.Errorf("%w: %s: %s and %s", ErrDuplicateProvider, r.name, e.min, v)
		}
	}
	r.entries = append(r.entries, entry[T]{min: v, value: value})
	sort.Slice(r.entries, func(i, j int) bool {
		c, _ := r.entries[i].min.Compare(r.entries[j].min)
		return c > 0
	})
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry[T]) MustRegister(min string, value T) {
	if err := r.Register(min, value); err != nil {
		panic(err)
	}
}

// Select returns the implementation for the framework version v.
func (r *Registry[T]) Select(v version.Version) (T, error) {
	var zero T
	if !v.IsValid() {
		return zero, fmt.Errorf("%s: %w", r.name, version.ErrUnsetMajor)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		ok, err := v.AtLeast(e.min)
		if err != nil {
			return zero, fmt.Errorf("%s: %w", r.name, err)
		}
		if ok {
			return e.value, nil
		}
	}
	return zero, fmt.Errorf("%w: %s for %s", ErrNoProvider, r.name, v)
}

// Versions lists the registered minimum versions, highest first.
func (r *Registry[T]) Versions() []version.Version {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]version.Version, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.min
	}
	return out
}
