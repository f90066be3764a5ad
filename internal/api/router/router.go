package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/ccandelora/randomment/internal/api/handlers/schedule"
	"github.com/ccandelora/randomment/internal/api/handlers/token"
	"github.com/ccandelora/randomment/internal/middlewares"
)

func New(scheduleHandler *schedule.Handler, tokenHandler *token.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/moments")
	{
		api.POST("/schedule", scheduleHandler.Ensure)
		api.DELETE("/schedule/:user_id", scheduleHandler.Cancel)
		api.GET("/schedule/:id/status", scheduleHandler.GetStatus)
		api.GET("/schedules/:user_id", scheduleHandler.ListByUser)

		api.POST("/tokens", tokenHandler.Register)
		api.DELETE("/tokens", tokenHandler.Deactivate)
	}

	return e
}
