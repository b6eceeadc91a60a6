// Package hashing provides Zobrist keys and duplicate detection for
// variant positions.
package hashing

import "hash/fnv"

// DuplicateDetector tracks seen positions for duplicate FEN detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist key
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// uniqueCount is the number of stored signatures
	uniqueCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a hash of the placement text for a second opinion
	WeakHash uint32
}

// NewSignature builds a signature from a key and the board field of a FEN.
func NewSignature(key uint64, placement string) PositionSignature {
	return PositionSignature{Hash: key, WeakHash: WeakHash(placement)}
}

// WeakHash returns a fast 32-bit hash of text.
func WeakHash(text string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	return h.Sum32()
}

// NewDuplicateDetector creates a new duplicate detector. maxCapacity of 0
// means unlimited capacity; once full, new positions are no longer stored.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(sig PositionSignature) bool {
	if d.Contains(sig) {
		d.duplicateCount++
		return true
	}
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// Contains reports whether sig is stored, without recording anything.
func (d *DuplicateDetector) Contains(sig PositionSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			return true
		}
	}
	return false
}

// Stats is a snapshot of a detector's counters.
type Stats struct {
	Unique     int
	Duplicates int
	Full       bool
}

// Stats returns the current counters.
func (d *DuplicateDetector) Stats() Stats {
	return Stats{Unique: d.uniqueCount, Duplicates: d.duplicateCount, Full: d.IsFull()}
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}
