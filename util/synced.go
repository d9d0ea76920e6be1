package util

import "sync/atomic"

// SafeFlag is a boolean shared between the UI goroutine and background work.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeBool creates a cleared flag.
func NewSafeBool() *SafeFlag {
	return &SafeFlag{}
}

// Set stores newValue and returns it.
func (sb *SafeFlag) Set(newValue bool) bool {
	sb.value.Store(newValue)
	return newValue
}

// Value returns the current value.
func (sb *SafeFlag) Value() bool {
	return sb.value.Load()
}

// Toggle flips the flag and returns the new value.
func (sb *SafeFlag) Toggle() bool {
	for {
		old := sb.value.Load()
		if sb.value.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// TryAcquire sets the flag if it was clear and reports whether it did.
// It guards work that must not run twice at once.
func (sb *SafeFlag) TryAcquire() bool {
	return sb.value.CompareAndSwap(false, true)
}
