package models

import "sync"

// HistoryRepository keeps the most recent conversions of this session.
// Entries live in memory only.
type HistoryRepository struct {
	mu       sync.RWMutex
	entries  []ConversionResult
	capacity int
}

// NewHistoryRepository creates a repository holding at most capacity entries
func NewHistoryRepository(capacity int) *HistoryRepository {
	if capacity < 1 {
		capacity = 1
	}
	return &HistoryRepository{
		entries:  make([]ConversionResult, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a result, evicting the oldest when full
func (r *HistoryRepository) Add(result ConversionResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == r.capacity {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}
	r.entries = append(r.entries, result)
}

// Recent returns up to n entries, newest first
func (r *HistoryRepository) Recent(n int) []ConversionResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 || n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]ConversionResult, 0, n)
	for i := len(r.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.entries[i])
	}
	return out
}

// Latest returns the newest entry
func (r *HistoryRepository) Latest() (ConversionResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return ConversionResult{}, false
	}
	return r.entries[len(r.entries)-1], true
}

func (r *HistoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear drops every entry
func (r *HistoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
}

// Shutdown releases the session history when the application exits
func (r *HistoryRepository) Shutdown() {
	r.Clear()
}
