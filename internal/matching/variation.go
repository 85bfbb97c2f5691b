package matching

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
)

// VariationMatcher matches games against move sequences and sequences of
// positions.
type VariationMatcher struct {
	moveSequences     [][]string
	positionSequences [][]PositionEntry
	anywhere          bool
}

// NewVariationMatcher creates a variation matcher. Move sequences match
// from the first ply unless anywhere is set.
func NewVariationMatcher(anywhere bool) *VariationMatcher {
	return &VariationMatcher{anywhere: anywhere}
}

// LoadFromFile loads move sequences, one per line, such as
// "1. 22-18 11-15 2. 25-22".
func (vm *VariationMatcher) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()
	return vm.LoadFromReader(file)
}

// LoadFromReader loads move sequences from r.
func (vm *VariationMatcher) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if moves := parseMoveSequence(line); len(moves) > 0 {
			vm.moveSequences = append(vm.moveSequences, moves)
		}
	}
	return scanner.Err()
}

// LoadPositionalFromReader loads position sequences: one FEN per line,
// sequences separated by blank lines.
func (vm *VariationMatcher) LoadPositionalFromReader(r io.Reader) error {
	var current []PositionEntry
	flush := func() {
		if len(current) > 0 {
			vm.positionSequences = append(vm.positionSequences, current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		board, toMove, err := engine.ParseFEN(line)
		if err != nil {
			return err
		}
		current = append(current, PositionEntry{FEN: line, Board: board, ToMove: toMove})
	}
	flush()
	return scanner.Err()
}

// LoadPositionalFromFile loads position sequences from a file.
func (vm *VariationMatcher) LoadPositionalFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()
	return vm.LoadPositionalFromReader(file)
}

// AddMoveSequence adds a move sequence to match.
func (vm *VariationMatcher) AddMoveSequence(moves []string) {
	vm.moveSequences = append(vm.moveSequences, moves)
}

// Match implements GameMatcher: g contains any of the sequences. A matcher
// without sequences matches every game.
func (vm *VariationMatcher) Match(g *game.Game) bool {
	if !vm.HasCriteria() {
		return true
	}

	played := g.MoveTexts()
	for i := range played {
		played[i] = normalizeMove(played[i])
	}
	for _, seq := range vm.moveSequences {
		if vm.matchMoveSequence(played, seq) {
			return true
		}
	}

	for _, seq := range vm.positionSequences {
		if matchPositionSequence(g, seq) {
			return true
		}
	}
	return false
}

// matchMoveSequence reports whether seq occurs contiguously in played: at
// the start, or anywhere when the matcher allows it.
func (vm *VariationMatcher) matchMoveSequence(played, seq []string) bool {
	last := 0
	if vm.anywhere {
		last = len(played) - len(seq)
	}
	for start := 0; start <= last && start+len(seq) <= len(played); start++ {
		match := true
		for i, m := range seq {
			if played[start+i] != normalizeMove(m) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// matchPositionSequence reports whether g passes through the positions of
// seq in order.
func matchPositionSequence(g *game.Game, seq []PositionEntry) bool {
	idx := 0
	toMove := g.StartToMove
	for _, board := range g.Positions() {
		if want := seq[idx]; want.Board == board && want.ToMove == toMove {
			idx++
			if idx == len(seq) {
				return true
			}
		}
		toMove = toMove.Opponent()
	}
	return false
}

// parseMoveSequence splits a line into move texts, skipping move numbers.
func parseMoveSequence(line string) []string {
	var moves []string
	for _, part := range strings.Fields(line) {
		if strings.HasSuffix(part, ".") {
			continue
		}
		moves = append(moves, part)
	}
	return moves
}

// normalizeMove strips annotations and reduces a capture to its end
// squares, so "25x18x11!" and "25x11" compare equal.
func normalizeMove(text string) string {
	text = strings.ToLower(strings.TrimRight(strings.TrimSpace(text), "!?"))
	if !strings.Contains(text, "x") {
		return text
	}
	squares := strings.Split(text, "x")
	return squares[0] + "x" + squares[len(squares)-1]
}

// HasCriteria reports whether any sequence was added.
func (vm *VariationMatcher) HasCriteria() bool {
	return len(vm.moveSequences) > 0 || len(vm.positionSequences) > 0
}

// Name implements GameMatcher.
func (vm *VariationMatcher) Name() string {
	return "VariationMatcher"
}
