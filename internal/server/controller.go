package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/codec"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// analysisRequest is the body shared by the analysis endpoints; each
// endpoint reads the fields it needs.
type analysisRequest struct {
	Board     codec.Board     `json:"board"`
	Player    string          `json:"player"`
	Position  *codec.Position `json:"position"`
	Depth     *int            `json:"depth"`
	Algorithm string          `json:"algorithm"`
}

func (r *analysisRequest) board() (checkers.Board, error) {
	return codec.DecodeBoard(r.Board)
}

func (r *analysisRequest) player() (checkers.Player, error) {
	return codec.DecodePlayer(r.Player)
}

func (r *analysisRequest) position() (checkers.Position, error) {
	if r.Position == nil {
		return checkers.Position{}, errors.Wrap(errors.ErrOutOfBounds, "position missing")
	}
	return codec.DecodePosition(*r.Position)
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrGameNotFound), errors.Is(err, errors.ErrUnknownSample):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrGameOver), errors.Is(err, errors.ErrNotYourTurn):
		return fiber.StatusConflict
	case errors.Is(err, errors.ErrInvalidBoard),
		errors.Is(err, errors.ErrInvalidCell),
		errors.Is(err, errors.ErrOutOfBounds),
		errors.Is(err, errors.ErrInvalidPlayer),
		errors.Is(err, errors.ErrInvalidDepth),
		errors.Is(err, errors.ErrUnknownAlgorithm),
		errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrInvalidFEN):
		return fiber.StatusBadRequest
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func parseBody(c *fiber.Ctx) (*analysisRequest, error) {
	req := new(analysisRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return req, nil
}

type AnalysisController struct {
	analysis *AnalysisService
}

func NewAnalysisController(analysis *AnalysisService) *AnalysisController {
	return &AnalysisController{analysis: analysis}
}

func (ac *AnalysisController) InitialBoard(c *fiber.Ctx) error {
	board := checkers.InitialBoard()
	return c.JSON(fiber.Map{
		"board": codec.EncodeBoard(&board),
		"fen":   engine.BoardToFEN(&board, checkers.White),
	})
}

func (ac *AnalysisController) SampleBoard(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Params("n"))
	if err != nil {
		return fail(c, errors.Wrapf(errors.ErrUnknownSample, "sample %q", c.Params("n")))
	}
	board, err := checkers.SampleBoard(n)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"board": codec.EncodeBoard(&board),
		"fen":   engine.BoardToFEN(&board, checkers.White),
	})
}

// MovesFor answers "moves" for a board and position. moves is null when the
// square holds no piece.
func (ac *AnalysisController) MovesFor(c *fiber.Ctx) error {
	req, err := parseBody(c)
	if err != nil {
		return fail(c, err)
	}
	board, err := req.board()
	if err != nil {
		return fail(c, err)
	}
	pos, err := req.position()
	if err != nil {
		return fail(c, err)
	}

	moves, ok := ac.analysis.MovesFor(&board, pos)
	if !ok {
		return c.JSON(fiber.Map{"hasPiece": false, "moves": nil})
	}
	return c.JSON(fiber.Map{
		"hasPiece": true,
		"moves":    codec.EncodeMoves(moves),
	})
}

func (ac *AnalysisController) CanCapture(c *fiber.Ctx) error {
	req, err := parseBody(c)
	if err != nil {
		return fail(c, err)
	}
	board, err := req.board()
	if err != nil {
		return fail(c, err)
	}
	player, err := req.player()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"positions": codec.EncodePositions(ac.analysis.CanCapture(&board, player)),
	})
}

func (ac *AnalysisController) AvailableMoves(c *fiber.Ctx) error {
	req, err := parseBody(c)
	if err != nil {
		return fail(c, err)
	}
	board, err := req.board()
	if err != nil {
		return fail(c, err)
	}
	player, err := req.player()
	if err != nil {
		return fail(c, err)
	}
	moves := ac.analysis.AvailableMoves(&board, player)
	return c.JSON(fiber.Map{
		"hasMoves": len(moves) > 0,
		"moves":    codec.EncodeMoves(moves),
	})
}

func (ac *AnalysisController) Evaluate(c *fiber.Ctx) error {
	req, err := parseBody(c)
	if err != nil {
		return fail(c, err)
	}
	board, err := req.board()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"score": ac.analysis.Evaluate(&board),
	})
}

// Search runs the engine. The response carries the raw solution and a
// score that substitutes evaluate(board) when the player has no moves.
func (ac *AnalysisController) Search(c *fiber.Ctx) error {
	req, err := parseBody(c)
	if err != nil {
		return fail(c, err)
	}
	board, err := req.board()
	if err != nil {
		return fail(c, err)
	}
	player, err := req.player()
	if err != nil {
		return fail(c, err)
	}

	res, err := ac.analysis.Search(&board, player, req.Depth, req.Algorithm)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"id":        res.ID,
		"algorithm": res.Algorithm.String(),
		"depth":     res.Depth,
		"solution":  codec.EncodeSolution(res.Solution),
		"score":     res.Solution.ScoreOr(&board),
		"nodes":     res.Stats.Nodes,
		"cutoffs":   res.Stats.Cutoffs,
	})
}

// gameRequest creates a game or plays a move in one.
type gameRequest struct {
	Board  codec.Board `json:"board"`
	FEN    string      `json:"fen"`
	ToMove string      `json:"toMove"`
	Player string      `json:"player"`
	Move   string      `json:"move"`
}

type GameController struct {
	games *GameManager
}

func NewGameController(games *GameManager) *GameController {
	return &GameController{games: games}
}

// CreateGame starts a game from the initial position, a FEN or a board.
// An empty body starts the standard game.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	req := new(gameRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return fail(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error()))
		}
	}

	board, toMove := checkers.InitialBoard(), checkers.White
	switch {
	case req.FEN != "":
		var err error
		if board, toMove, err = engine.ParseFEN(req.FEN); err != nil {
			return fail(c, err)
		}
	case req.Board != nil:
		var err error
		if board, err = codec.DecodeBoard(req.Board); err != nil {
			return fail(c, err)
		}
		if req.ToMove != "" {
			if toMove, err = codec.DecodePlayer(req.ToMove); err != nil {
				return fail(c, err)
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(gc.games.CreateGame(board, toMove))
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.games.GetGameState(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	req := new(gameRequest)
	if err := c.BodyParser(req); err != nil {
		return fail(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error()))
	}
	state, err := gc.games.MakeMove(c.Params("gameId"), req.Player, req.Move)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) EngineMove(c *fiber.Ctx) error {
	state, err := gc.games.EngineMove(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.games.DeleteGame(c.Params("gameId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
