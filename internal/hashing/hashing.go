// Package hashing provides Zobrist hashing of checkers positions, repetition
// tracking within a game and duplicate detection across games.
package hashing

import "github.com/lgbarn/checkers-go/internal/checkers"

// positionKey is a final position, identified by its Zobrist hash and
// its piece-count fingerprint.
type positionKey struct {
	zobrist uint64
	weak    uint32
}

// DuplicateDetector remembers the final positions of finished games and
// reports games that end where an earlier one did. With exact matching
// the game lengths must agree as well.
type DuplicateDetector struct {
	seen       map[positionKey][]int // plies of each stored game
	exact      bool
	capacity   int // 0 means unlimited
	stored     int
	duplicates int
}

// NewDuplicateDetector returns an empty detector. Once capacity games are
// stored, later games are still checked but no longer remembered.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		seen:     make(map[positionKey][]int),
		exact:    exactMatch,
		capacity: maxCapacity,
	}
}

// CheckAndAdd reports whether a game ending on board, with toMove to play
// after plies, repeats an earlier one. A new game is remembered.
func (d *DuplicateDetector) CheckAndAdd(board *checkers.Board, toMove checkers.Player, plies int) bool {
	if board == nil {
		return false
	}
	key := positionKey{zobrist: GenerateZobristHash(board, toMove), weak: WeakHash(board)}

	for _, p := range d.seen[key] {
		if !d.exact || p == plies {
			d.duplicates++
			return true
		}
	}
	if !d.IsFull() {
		d.seen[key] = append(d.seen[key], plies)
		d.stored++
	}
	return false
}

func (d *DuplicateDetector) DuplicateCount() int { return d.duplicates }

func (d *DuplicateDetector) UniqueCount() int { return d.stored }

func (d *DuplicateDetector) IsFull() bool {
	return d.capacity > 0 && d.stored >= d.capacity
}

// Reset forgets every game and zeroes the counts.
func (d *DuplicateDetector) Reset() {
	clear(d.seen)
	d.stored, d.duplicates = 0, 0
}
