// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/mandelbrot"
)

// HostFactory creates a new Host with the given options.
// Implementations should validate options and return descriptive errors.
type HostFactory func(opts Options) (Host, error)

// RegistryEntry represents a registered host backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native window (gpuwindow)
	//   - 50: terminal
	//   - 10: headless image
	Priority int

	// Factory creates host instances.
	Factory HostFactory

	// Available reports if the backend is usable in this process
	// (display present, stdout is a terminal, ...).
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered host backends.
//
// Backends outside this package register themselves from init:
//
//	func init() {
//	    surface.Register("window", 100, newWindowHost, hasDisplay)
//	}
//
// Example usage:
//
//	h, err := surface.NewHostByName("terminal", surface.Options{MaxFPS: 30})
//	// or auto-select best available:
//	h, err := surface.NewHost(surface.Options{})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewHost.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory HostFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewHost creates a host using the best available backend.
func NewHost(opts Options) (Host, error) {
	return globalRegistry.NewHost(opts)
}

// NewHostByName creates a host using a specific named backend.
// The name "auto" or "" selects the best available backend.
func NewHostByName(name string, opts Options) (Host, error) {
	if name == "" || name == "auto" {
		return globalRegistry.NewHost(opts)
	}
	return globalRegistry.NewHostByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory HostFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewHost creates a host using the best available backend, falling back
// to the next one when a factory fails.
func (r *Registry) NewHost(opts Options) (Host, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range available {
		h, err := r.NewHostByName(name, opts)
		if err == nil {
			mandelbrot.Logger().Info("surface selected", "backend", name)
			return h, nil
		}
		mandelbrot.Logger().Warn("surface backend failed, trying next", "backend", name, "err", err)
		errs = append(errs, err)
	}

	return nil, errors.Join(errs...)
}

// NewHostByName creates a host using a specific backend.
func (r *Registry) NewHostByName(name string, opts Options) (Host, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	h, err := entry.Factory(opts.withDefaults())
	if err != nil {
		return nil, fmt.Errorf("surface: create %s: %w", name, err)
	}
	return h, nil
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name.
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no host backends are registered
	// or available in the current process.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in backends.
func init() {
	Register("image", 10, func(opts Options) (Host, error) {
		return NewImage(opts)
	}, nil)
	Register("terminal", 50, func(opts Options) (Host, error) {
		return NewTerminal(opts)
	}, stdoutIsTerminal)
}
