package processing

import "github.com/lgbarn/checkers-go/internal/parser"

// SplitVariations returns the main line of pg followed by one game per
// variation, nested ones included. A variation replaces the move it is
// attached to, so its game is the main line up to that move followed by
// the variation's moves. Every game keeps the header of pg; the games
// carry no variations, and variation games have an unknown result.
func SplitVariations(pg *parser.Game) []*parser.Game {
	main := copyGameHeaders(pg)
	main.Moves = copyMoves(pg.Moves)
	main.Result = pg.Result
	games := []*parser.Game{main}

	extractVariations(pg, pg.Moves, nil, &games)
	return games
}

// extractVariations appends a game for each variation in moves. prefix is
// the line leading to moves.
func extractVariations(original *parser.Game, moves []*parser.Move, prefix []*parser.Move, games *[]*parser.Game) {
	for i, m := range moves {
		before := append(append([]*parser.Move{}, prefix...), moves[:i]...)
		for _, v := range m.Variations {
			if len(v.Moves) == 0 {
				continue
			}
			g := copyGameHeaders(original)
			g.Moves = append(copyMoves(before), copyMoves(v.Moves)...)
			g.Result = parser.ResultUnknown
			g.SetTag("Result", parser.ResultUnknown)
			*games = append(*games, g)

			extractVariations(original, v.Moves, before, games)
		}
	}
}

// copyGameHeaders creates a game with the tags of original.
func copyGameHeaders(original *parser.Game) *parser.Game {
	g := parser.NewGame()
	for _, name := range original.TagOrder {
		g.SetTag(name, original.Tags[name])
	}
	g.StartLine = original.StartLine
	g.EndLine = original.EndLine
	return g
}

// copyMoves copies moves without their variations.
func copyMoves(moves []*parser.Move) []*parser.Move {
	out := make([]*parser.Move, len(moves))
	for i, m := range moves {
		out[i] = &parser.Move{
			Text:     m.Text,
			NAGs:     append([]string(nil), m.NAGs...),
			Comments: append([]string(nil), m.Comments...),
		}
	}
	return out
}
