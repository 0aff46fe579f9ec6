package models

import "sync"

// Variant is the color palette in use
type Variant int

const (
	Light Variant = iota
	Dark
)

func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// ThemeState holds the palette choice and notifies observers when it
// changes, so widgets re-render without the controller walking them.
type ThemeState struct {
	mu        sync.RWMutex
	variant   Variant
	observers []func(Variant)
}

func NewThemeState(initial Variant) *ThemeState {
	return &ThemeState{variant: initial}
}

func (s *ThemeState) Variant() Variant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.variant
}

// OnChange registers a callback run after every change
func (s *ThemeState) OnChange(callback func(Variant)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, callback)
}

// Set switches to variant and notifies observers when it differs
func (s *ThemeState) Set(variant Variant) {
	s.mu.Lock()
	if s.variant == variant {
		s.mu.Unlock()
		return
	}
	s.variant = variant
	observers := append([]func(Variant){}, s.observers...)
	s.mu.Unlock()

	for _, callback := range observers {
		callback(variant)
	}
}

// Toggle flips between light and dark and returns the new variant
func (s *ThemeState) Toggle() Variant {
	next := Dark
	if s.Variant() == Dark {
		next = Light
	}
	s.Set(next)
	return next
}
