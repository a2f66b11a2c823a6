package controllers

import (
	"search-battle-backend/search/services"

	"go.uber.org/zap"
)

type SearchController struct {
	coordinator *services.SearchCoordinator
	scoreboard  *services.ScoreboardService
	logger      *zap.Logger
}

func NewSearchController(
	coordinator *services.SearchCoordinator,
	scoreboard *services.ScoreboardService,
	logger *zap.Logger,
) *SearchController {
	return &SearchController{
		coordinator: coordinator,
		scoreboard:  scoreboard,
		logger:      logger,
	}
}
