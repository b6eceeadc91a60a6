package hashing

import "sync"

// ThreadSafeDuplicateDetector is a DuplicateDetector shared by several
// goroutines, such as the workers checking one batch of FEN lines. Which
// of two racing callers sees a position first is unspecified.
type ThreadSafeDuplicateDetector struct {
	mu sync.Mutex
	d  *DuplicateDetector
}

// NewThreadSafeDuplicateDetector returns an empty detector holding at most
// maxCapacity signatures, or any number when maxCapacity is 0.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{d: NewDuplicateDetector(maxCapacity)}
}

// CheckAndAdd reports whether sig was seen before and records it if not,
// as one step.
func (t *ThreadSafeDuplicateDetector) CheckAndAdd(sig PositionSignature) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.CheckAndAdd(sig)
}

// Contains reports whether sig is stored.
func (t *ThreadSafeDuplicateDetector) Contains(sig PositionSignature) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.Contains(sig)
}

// Stats returns a consistent snapshot of all counters.
func (t *ThreadSafeDuplicateDetector) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.Stats()
}

// Reset forgets every stored signature.
func (t *ThreadSafeDuplicateDetector) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.d.Reset()
}
