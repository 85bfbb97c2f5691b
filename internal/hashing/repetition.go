package hashing

import "github.com/lgbarn/checkers-go/internal/checkers"

// RepetitionDetector counts how often each position occurs in one game.
type RepetitionDetector struct {
	counts map[uint64]int
}

// NewRepetitionDetector returns an empty detector.
func NewRepetitionDetector() *RepetitionDetector {
	return &RepetitionDetector{counts: make(map[uint64]int)}
}

// Record notes one occurrence of board with toMove to play and returns how
// many times the position has now occurred.
func (r *RepetitionDetector) Record(board *checkers.Board, toMove checkers.Player) int {
	h := GenerateZobristHash(board, toMove)
	r.counts[h]++
	return r.counts[h]
}

// Count returns how many times the position has been recorded.
func (r *RepetitionDetector) Count(board *checkers.Board, toMove checkers.Player) int {
	return r.counts[GenerateZobristHash(board, toMove)]
}

// Reset forgets every position.
func (r *RepetitionDetector) Reset() {
	r.counts = make(map[uint64]int)
}
