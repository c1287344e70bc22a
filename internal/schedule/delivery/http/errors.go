package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskplanner/internal/schedule"
	"taskplanner/pkg/response"
)

var errBadRequest = errors.New("invalid request")

// respondError translates domain errors into HTTP responses. Validation
// errors surface their message; everything else is an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidHorizon),
		errors.Is(err, errBadRequest):
		response.Error(c, err, nil)
	case errors.Is(err, schedule.ErrTaskCollect):
		response.InternalError(c, err)
	default:
		response.InternalError(c, err)
	}
}
