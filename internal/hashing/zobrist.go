package hashing

import "github.com/lgbarn/checkers-go/internal/checkers"

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x636865636b657273

var (
	pieceKeys   [checkers.BoardSize][checkers.BoardSize][4]uint64
	blackToMove uint64
)

func init() {
	state := uint64(zobristSeed)
	for y := range pieceKeys {
		for x := range pieceKeys[y] {
			for k := range pieceKeys[y][x] {
				pieceKeys[y][x][k] = splitmix64(&state)
			}
		}
	}
	blackToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random key.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// pieceIndex maps a piece to its slot in the key table.
func pieceIndex(p checkers.Piece) int {
	idx := 0
	if p.Player == checkers.Black {
		idx |= 1
	}
	if p.Rank == checkers.Queen {
		idx |= 2
	}
	return idx
}

// GenerateZobristHash returns the Zobrist hash of board with toMove to play.
func GenerateZobristHash(board *checkers.Board, toMove checkers.Player) uint64 {
	var h uint64
	for y := 0; y < checkers.BoardSize; y++ {
		for x := 0; x < checkers.BoardSize; x++ {
			if p, ok := board[y][x].Piece(); ok {
				h ^= pieceKeys[y][x][pieceIndex(p)]
			}
		}
	}
	if toMove == checkers.Black {
		h ^= blackToMove
	}
	return h
}

// WeakHash packs the piece counts of board into a cheap secondary check.
func WeakHash(board *checkers.Board) uint32 {
	c := board.Count()
	return uint32(c.WhiteMen) | uint32(c.WhiteQueens)<<5 | uint32(c.BlackMen)<<10 | uint32(c.BlackQueens)<<15
}
