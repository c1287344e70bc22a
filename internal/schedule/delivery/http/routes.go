package http

import (
	"github.com/gin-gonic/gin"

	"taskplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/runs", mw.RequestLogger(), h.Run)
	rg.GET("/slots", mw.RequestLogger(), h.ListSlots)
	rg.GET("/statistics", mw.RequestLogger(), h.Statistics)
	rg.GET("/days/:date/tasks", mw.RequestLogger(), h.TasksForDay)
}
