package routes

import (
	"search-battle-backend/search/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(app *fiber.App, controller *controllers.SearchController) {
	api := app.Group("/search")

	api.Get("/", controller.SearchBattleController)
	api.Get("/scoreboard", controller.GetScoreboardController)
}
