package http

import (
	"github.com/gin-gonic/gin"

	"taskplanner/internal/schedule"
	"taskplanner/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Run(c *gin.Context)
	ListSlots(c *gin.Context)
	Statistics(c *gin.Context)
	TasksForDay(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
