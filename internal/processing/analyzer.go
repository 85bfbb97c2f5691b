// Package processing provides game analysis, validation, and processing logic.
package processing

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/parser"
)

// GameAnalysis holds what a walk through a played game found.
type GameAnalysis struct {
	Positions []uint64 // Zobrist hashes, the start first

	MaxRepetitions int  // most occurrences of one position
	HasRepetition  bool // some position occurred three times

	Captures       int // plies that captured
	PiecesTaken    int
	LongestCapture int // most pieces taken in one ply
	Crownings      int

	// HasMaterialOdds is set when the sides started with unequal material.
	HasMaterialOdds bool

	FinalCounts checkers.PieceCounts
}

// MultiJump reports whether some ply took more than one piece.
func (ga *GameAnalysis) MultiJump() bool {
	return ga.LongestCapture > 1
}

// AnalyzeGame walks the history of g.
func AnalyzeGame(g *game.Game) *GameAnalysis {
	analysis := &GameAnalysis{}

	start := g.Start
	c := start.Count()
	analysis.HasMaterialOdds = c.WhiteMen+c.WhiteQueens != c.BlackMen+c.BlackQueens

	positionCount := make(map[uint64]int)
	record := func(board *checkers.Board, toMove checkers.Player) {
		h := hashing.GenerateZobristHash(board, toMove)
		analysis.Positions = append(analysis.Positions, h)
		positionCount[h]++
		if n := positionCount[h]; n > analysis.MaxRepetitions {
			analysis.MaxRepetitions = n
		}
	}
	record(&start, g.StartToMove)

	for _, ply := range g.History() {
		if jumps := ply.Move.Jumps(); ply.Move.IsCapture() {
			analysis.Captures++
			analysis.PiecesTaken += jumps
			if jumps > analysis.LongestCapture {
				analysis.LongestCapture = jumps
			}
		}
		if ply.Promoted {
			analysis.Crownings++
		}
		board := ply.Move.Board
		record(&board, ply.Player.Opponent())
	}

	analysis.HasRepetition = analysis.MaxRepetitions >= 3
	final := g.Board()
	analysis.FinalCounts = final.Count()
	return analysis
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid       bool
	ErrorPly    int
	ErrorMsg    string
	ParseErrors []string
}

// sevenTagRoster is the PDN header every complete game carries.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// ValidateGame checks the header of pg and replays its moves as game number
// gameNum. The replayed game is returned when every move was legal.
func ValidateGame(pg *parser.Game, cfg *config.GameConfig, gameNum int) (*ValidationResult, *game.Game) {
	result := &ValidationResult{Valid: true}

	for _, tag := range sevenTagRoster {
		if pg.GetTag(tag) == "" {
			result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("missing required tag: %s", tag))
		}
	}
	if r := pg.GetTag("Result"); r != "" && !isValidResult(r) {
		result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("invalid result: %s", r))
	}

	g, err := parser.Replay(pg, cfg, gameNum)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		if g != nil {
			result.ErrorPly = g.Plies() + 1
		}
		return result, nil
	}
	return result, g
}

// Strict reports whether the game is valid with a complete header.
func (v *ValidationResult) Strict() bool {
	return v.Valid && len(v.ParseErrors) == 0
}

// HasComments reports whether any main-line move of pg carries a comment.
func HasComments(pg *parser.Game) bool {
	if len(pg.PrefixComment) > 0 {
		return true
	}
	for _, m := range pg.Moves {
		if len(m.Comments) > 0 {
			return true
		}
	}
	return false
}

// isValidResult checks if a result string is a valid PDN result.
func isValidResult(result string) bool {
	switch result {
	case parser.ResultWhiteWins, parser.ResultBlackWins, parser.ResultDraw, parser.ResultUnknown:
		return true
	default:
		return false
	}
}
