// analysis.go - Single position analysis
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/codec"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/search"
)

// squareReport lists the moves of the piece on one square.
type squareReport struct {
	Square   int            `json:"square"`
	Position codec.Position `json:"position"`
	HasPiece bool           `json:"hasPiece"`
	Moves    []codec.Move   `json:"moves"`
}

// analysisReport is everything the CLI reports about a position.
type analysisReport struct {
	FEN        string           `json:"fen"`
	ToMove     string           `json:"toMove"`
	Board      codec.Board      `json:"board"`
	Evaluation int              `json:"evaluation"`
	Moves      []codec.Move     `json:"moves"`
	Captures   []codec.Position `json:"captures"`
	Algorithm  string           `json:"algorithm"`
	Depth      int              `json:"depth"`
	Solution   codec.Solution   `json:"solution"`
	Score      int              `json:"score"`
	Nodes      int64            `json:"nodes"`
	Leaves     int64            `json:"leaves"`
	Cutoffs    int64            `json:"cutoffs"`
	Square     *squareReport    `json:"square,omitempty"`

	moves    []checkers.Move
	captures []checkers.Position
	solution search.Solution
}

// analyse runs every query on board. square is a square number, 0 for none.
func analyse(cfg *config.Config, board *checkers.Board, toMove checkers.Player, square int) (*analysisReport, error) {
	sol, stats, err := search.Best(board, toMove, cfg.Search)
	if err != nil {
		return nil, err
	}

	moves := engine.AvailableMoves(board, toMove)
	captures := engine.CanCapture(board, toMove)
	rep := &analysisReport{
		FEN:        engine.BoardToFEN(board, toMove),
		ToMove:     toMove.String(),
		Board:      codec.EncodeBoard(board),
		Evaluation: engine.Evaluate(board),
		Moves:      codec.EncodeMoves(moves),
		Captures:   codec.EncodePositions(captures),
		Algorithm:  cfg.Search.Algorithm.String(),
		Depth:      cfg.Search.Depth,
		Solution:   codec.EncodeSolution(sol),
		Score:      sol.ScoreOr(board),
		Nodes:      stats.Nodes,
		Leaves:     stats.Leaves,
		Cutoffs:    stats.Cutoffs,
		moves:      moves,
		captures:   captures,
		solution:   sol,
	}

	if square != 0 {
		pos, err := checkers.SquarePosition(square)
		if err != nil {
			return nil, err
		}
		sq := &squareReport{Square: square, Position: codec.EncodePosition(pos)}
		if pieceMoves, ok := engine.MovesFor(board, pos); ok {
			sq.HasPiece = true
			sq.Moves = codec.EncodeMoves(pieceMoves)
		}
		rep.Square = sq
	}
	return rep, nil
}

// analysePosition writes the analysis of board to cfg.OutputFile.
func analysePosition(cfg *config.Config, board *checkers.Board, toMove checkers.Player, square int) error {
	rep, err := analyse(cfg, board, toMove, square)
	if err != nil {
		return err
	}
	cfg.Logf(1, "searched %d nodes\n", rep.Nodes)

	if cfg.Output.JSONFormat {
		return codec.WriteJSON(cfg.OutputFile, rep)
	}
	return writeAnalysisText(cfg.OutputFile, cfg, board, rep)
}

func writeAnalysisText(w io.Writer, cfg *config.Config, board *checkers.Board, rep *analysisReport) error {
	var sb strings.Builder

	sb.WriteString(rep.FEN + "\n")
	if cfg.Output.ShowBoard {
		sb.WriteString(checkers.FormatDiagram(board))
	}
	fmt.Fprintf(&sb, "%s to move\n", rep.ToMove)
	fmt.Fprintf(&sb, "evaluation: %d\n", rep.Evaluation)

	texts := make([]string, 0, len(rep.moves))
	for _, m := range rep.moves {
		texts = append(texts, engine.MoveText(m))
	}
	fmt.Fprintf(&sb, "legal moves (%d): %s\n", len(texts), strings.Join(texts, " "))

	if len(rep.captures) > 0 {
		squares := make([]string, 0, len(rep.captures))
		for _, p := range rep.captures {
			squares = append(squares, fmt.Sprint(checkers.SquareNumber(p)))
		}
		fmt.Fprintf(&sb, "must capture from: %s\n", strings.Join(squares, " "))
	}

	if rep.Square != nil {
		if !rep.Square.HasPiece {
			fmt.Fprintf(&sb, "square %d: empty\n", rep.Square.Square)
		} else {
			pieceMoves := make([]string, 0, len(rep.Square.Moves))
			for _, m := range rep.Square.Moves {
				pieceMoves = append(pieceMoves, m.Text)
			}
			fmt.Fprintf(&sb, "square %d: %s\n", rep.Square.Square, strings.Join(pieceMoves, " "))
		}
	}

	fmt.Fprintf(&sb, "best (%s depth %d): %s\n", rep.Algorithm, rep.Depth, rep.solution)
	fmt.Fprintf(&sb, "nodes %d, leaves %d, cutoffs %d\n", rep.Nodes, rep.Leaves, rep.Cutoffs)

	_, err := io.WriteString(w, sb.String())
	return err
}
