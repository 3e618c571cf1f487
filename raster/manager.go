package raster

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/samber/lo"
)

// Manager selects a rasterizer backend among those available on the system.
// It implements Rasterizer by delegating to the selected backend.
type Manager struct {
	backends  []Rasterizer
	preferred string
	mu        sync.RWMutex
}

var _ Rasterizer = (*Manager)(nil)

// NewManager creates a manager over the given backends, or over every known
// backend that is available when none are given.
func NewManager(backends ...Rasterizer) *Manager {
	manager := &Manager{}
	if len(backends) > 0 {
		manager.backends = backends
	} else {
		manager.autoDetect()
	}
	return manager
}

// DefaultBackends returns the known backends in order of preference
func DefaultBackends() []Rasterizer {
	return []Rasterizer{
		NewOKSVG(),
		NewRSVG(),
		NewInkscape(),
		NewPlaywright(),
	}
}

func (m *Manager) autoDetect() {
	m.backends = lo.Filter(DefaultBackends(), func(backend Rasterizer, _ int) bool {
		return backend.IsAvailable()
	})
}

// SetPreferred sets the preferred backend by name
func (m *Manager) SetPreferred(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.find(name); !ok {
		return fmt.Errorf("rasterizer '%s' not available", name)
	}
	m.preferred = name
	return nil
}

// Preferred returns the preferred backend name
func (m *Manager) Preferred() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.preferred
}

// Available returns the names of the available backends
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.backends, func(backend Rasterizer, _ int) string {
		return backend.Name()
	})
}

// Get returns a backend by name
func (m *Manager) Get(name string) (Rasterizer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if backend, ok := m.find(name); ok {
		return backend, nil
	}
	return nil, fmt.Errorf("rasterizer '%s' not found", name)
}

// Best returns the preferred backend, or the first available one
func (m *Manager) Best() (Rasterizer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.backends) == 0 {
		return nil, fmt.Errorf("no SVG rasterizers available")
	}

	if m.preferred != "" {
		if backend, ok := m.find(m.preferred); ok {
			return backend, nil
		}
	}
	return m.backends[0], nil
}

func (m *Manager) find(name string) (Rasterizer, bool) {
	return lo.Find(m.backends, func(backend Rasterizer) bool {
		return backend.Name() == name
	})
}

// Name returns the name of the backend that would be used
func (m *Manager) Name() string {
	backend, err := m.Best()
	if err != nil {
		return ""
	}
	return backend.Name()
}

func (m *Manager) IsAvailable() bool {
	_, err := m.Best()
	return err == nil
}

// Rasterize renders with the best backend
func (m *Manager) Rasterize(ctx context.Context, svg []byte, size image.Point) (image.Image, error) {
	backend, err := m.Best()
	if err != nil {
		return nil, err
	}
	return backend.Rasterize(ctx, svg, size)
}

// Refresh re-detects available backends
func (m *Manager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.autoDetect()

	// Reset preferred if it's no longer available
	if _, ok := m.find(m.preferred); !ok {
		m.preferred = ""
	}
}

// Close closes any backends that hold resources (like Playwright)
func (m *Manager) Close() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, backend := range m.backends {
		if closer, ok := backend.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}
