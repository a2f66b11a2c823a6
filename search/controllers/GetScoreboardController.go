package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetScoreboardController returns the running win tally for both backends.
func (c *SearchController) GetScoreboardController(ctx *fiber.Ctx) error {
	board, err := c.scoreboard.Scoreboard(ctx.UserContext())
	if err != nil {
		c.logger.Error("failed to load scoreboard", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load scoreboard",
		})
	}

	return ctx.JSON(board)
}
