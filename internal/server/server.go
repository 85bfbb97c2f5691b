// Package server exposes the engine over HTTP: stateless analysis
// endpoints under /api and in-memory games under /api/games.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/checkers-go/internal/config"
)

// New builds the application with its middleware and routes.
// Access logs go to cfg.LogFile when Verbosity is at least 1.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "checkers-go",
		DisableStartupMessage: cfg.Verbosity < 1,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fail(c, err)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if cfg.Verbosity >= 1 && cfg.LogFile != nil {
		app.Use(logger.New(logger.Config{
			Output: cfg.LogFile,
		}))
	}

	analysisController := NewAnalysisController(NewAnalysisService(cfg))
	gameController := NewGameController(NewGameManager(cfg))

	api := app.Group("/api")

	api.Get("/board/initial", analysisController.InitialBoard)
	api.Get("/board/sample/:n", analysisController.SampleBoard)
	api.Post("/moves", analysisController.MovesFor)
	api.Post("/captures", analysisController.CanCapture)
	api.Post("/available", analysisController.AvailableMoves)
	api.Post("/evaluate", analysisController.Evaluate)
	api.Post("/search", analysisController.Search)

	api.Post("/games", gameController.CreateGame)
	gameRoutes := api.Group("/games")
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)
	gameRoutes.Post("/:gameId/moves", gameController.MakeMove)
	gameRoutes.Post("/:gameId/engine", gameController.EngineMove)

	return app
}

// Run serves until the listener fails.
func Run(cfg *config.Config) error {
	cfg.Logf(1, "checkers server listening on %s (max depth %d)\n", cfg.Server.Addr, cfg.Server.MaxDepth)
	return New(cfg).Listen(cfg.Server.Addr)
}
