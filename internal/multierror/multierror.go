package multierror

import (
	"fmt"
	"strings"
	"sync"
)

type entry[K comparable] struct {
	key K
	err error
}

// Error combines errors that happened for different keys into one.
// Errors are reported in the order they were added; adding an error for
// a key that is already present replaces it.
type Error[K comparable] struct {
	mu      sync.Mutex
	entries []entry[K]
}

// New creates a new Error.
func New[K comparable]() *Error[K] {
	return &Error[K]{}
}

// Error returns a string representation of the error.
func (m *Error[K]) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		parts = append(parts, fmt.Sprintf("%v: %s", e.key, e.err))
	}

	return strings.Join(parts, "; ")
}

// Unwrap returns a slice of errors.
func (m *Error[K]) Unwrap() []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := make([]error, 0, len(m.entries))
	for _, e := range m.entries {
		errs = append(errs, e.err)
	}

	return errs
}

// Len returns the number of errors.
func (m *Error[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Add adds an error for the given key. Nil errors are ignored.
func (m *Error[K]) Add(key K, err error) {
	if err == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i].err = err
			return
		}
	}

	m.entries = append(m.entries, entry[K]{key: key, err: err})
}

// Get returns an error by key.
func (m *Error[K]) Get(key K) (error, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries {
		if e.key == key {
			return e.err, true
		}
	}

	return nil, false
}

// Combined returns the Error if it contains any errors, nil otherwise.
func (m *Error[K]) Combined() error {
	if m.Len() == 0 {
		return nil
	}

	return m
}
