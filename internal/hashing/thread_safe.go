package hashing

import (
	"sync"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// ThreadSafeDuplicateDetector is a DuplicateDetector shared by parallel
// self-play workers.
type ThreadSafeDuplicateDetector struct {
	mu sync.Mutex
	d  *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a shared detector. A maxCapacity
// of 0 means no limit.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{d: NewDuplicateDetector(exactMatch, maxCapacity)}
}

// CheckAndAdd checks and records a final position in one step.
func (t *ThreadSafeDuplicateDetector) CheckAndAdd(board *checkers.Board, toMove checkers.Player, plies int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.CheckAndAdd(board, toMove, plies)
}

// Counts returns the unique and duplicate totals from the same moment.
func (t *ThreadSafeDuplicateDetector) Counts() (unique, duplicates int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.UniqueCount(), t.d.DuplicateCount()
}

func (t *ThreadSafeDuplicateDetector) DuplicateCount() int {
	_, n := t.Counts()
	return n
}

func (t *ThreadSafeDuplicateDetector) UniqueCount() int {
	n, _ := t.Counts()
	return n
}

func (t *ThreadSafeDuplicateDetector) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.IsFull()
}
