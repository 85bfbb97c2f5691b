// Package engine provides the draughts move rules, move generation,
// position evaluation and text notations.
package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// Direction is a diagonal step.
type Direction struct {
	DX, DY int
}

// The four diagonals. "Up" moves towards row 0, White's forward direction.
var (
	UpLeft    = Direction{DX: -1, DY: -1}
	UpRight   = Direction{DX: 1, DY: -1}
	DownLeft  = Direction{DX: -1, DY: 1}
	DownRight = Direction{DX: 1, DY: 1}
)

// Rule computes the candidate move of piece standing on from, if it applies.
// A rule never modifies board.
type Rule func(board *checkers.Board, from checkers.Position, piece checkers.Piece) (checkers.Move, bool)

// IfPlayer applies r only when the piece on from belongs to player.
func (r Rule) IfPlayer(player checkers.Player) Rule {
	return func(board *checkers.Board, from checkers.Position, piece checkers.Piece) (checkers.Move, bool) {
		owner, ok := board.CellAt(from).Piece()
		if !ok || owner.Player != player {
			return checkers.Move{}, false
		}
		return r(board, from, piece)
	}
}

// IfRank applies r only to pieces of the given rank.
func (r Rule) IfRank(rank checkers.Rank) Rule {
	return func(board *checkers.Board, from checkers.Position, piece checkers.Piece) (checkers.Move, bool) {
		if piece.Rank != rank {
			return checkers.Move{}, false
		}
		return r(board, from, piece)
	}
}

// Within applies r only when the origin leaves room for reach steps along dir,
// so that r never computes an off-board coordinate.
func (r Rule) Within(dir Direction, reach int) Rule {
	return func(board *checkers.Board, from checkers.Position, piece checkers.Piece) (checkers.Move, bool) {
		if !from.Offset(dir.DX, dir.DY, reach).InBounds() {
			return checkers.Move{}, false
		}
		return r(board, from, piece)
	}
}

// SimpleRule moves one step along dir onto an empty square.
func SimpleRule(dir Direction) Rule {
	return func(board *checkers.Board, from checkers.Position, _ checkers.Piece) (checkers.Move, bool) {
		to := from.Offset(dir.DX, dir.DY, 1)
		if board.IsOccupied(to) {
			return checkers.Move{}, false
		}
		next := *board
		next.MoveCell(from, to)
		return checkers.Move{From: from, To: to, Board: next}, true
	}
}

// CaptureRule jumps an enemy piece one step along dir onto the empty square
// behind it, removing the jumped piece.
func CaptureRule(dir Direction) Rule {
	return func(board *checkers.Board, from checkers.Position, piece checkers.Piece) (checkers.Move, bool) {
		over := from.Offset(dir.DX, dir.DY, 1)
		to := from.Offset(dir.DX, dir.DY, 2)
		if !board.CellAt(over).IsEnemyTo(piece.Player) || board.IsOccupied(to) {
			return checkers.Move{}, false
		}
		next := *board
		next.MoveCell(from, to)
		next.Remove(over)
		return checkers.Move{From: from, To: to, Board: next, Path: []checkers.Position{to}}, true
	}
}

// RuleSet is an ordered list of rules; every applicable rule yields one move.
type RuleSet []Rule

// Moves collects the moves of every applicable rule, in rule order.
func (rs RuleSet) Moves(board *checkers.Board, from checkers.Position, piece checkers.Piece) []checkers.Move {
	var out []checkers.Move
	for _, rule := range rs {
		if mv, ok := rule(board, from, piece); ok {
			out = append(out, mv)
		}
	}
	return out
}

// Any reports whether at least one rule applies.
func (rs RuleSet) Any(board *checkers.Board, from checkers.Position, piece checkers.Piece) bool {
	for _, rule := range rs {
		if _, ok := rule(board, from, piece); ok {
			return true
		}
	}
	return false
}

// newRuleSet wires step into all four diagonals. Each player's forward
// diagonals apply to both ranks; the backward ones sit behind a Queen filter.
func newRuleSet(step func(Direction) Rule, reach int) RuleSet {
	directed := func(dir Direction) Rule {
		return step(dir).Within(dir, reach)
	}
	return RuleSet{
		directed(UpLeft).IfPlayer(checkers.White),
		directed(UpRight).IfPlayer(checkers.White),
		directed(DownLeft).IfPlayer(checkers.Black),
		directed(DownRight).IfPlayer(checkers.Black),
		directed(DownLeft).IfPlayer(checkers.White).IfRank(checkers.Queen),
		directed(DownRight).IfPlayer(checkers.White).IfRank(checkers.Queen),
		directed(UpLeft).IfPlayer(checkers.Black).IfRank(checkers.Queen),
		directed(UpRight).IfPlayer(checkers.Black).IfRank(checkers.Queen),
	}
}

var (
	simpleRules  = newRuleSet(SimpleRule, 1)
	captureRules = newRuleSet(CaptureRule, 2)
)
