package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// processRunReq binds and validates the run request body. An empty body is
// valid: defaults come from config.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	if req.StartDate != "" {
		d, err := time.Parse(dateFormat, req.StartDate)
		if err != nil {
			return req, fmt.Errorf("%w: start_date %q", errBadRequest, req.StartDate)
		}
		req.startDate = d
	}
	return req, nil
}

// processSlotsReq binds and validates the slot grid query parameters.
func (h *handler) processSlotsReq(c *gin.Context) (slotsReq, error) {
	var req slotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Days < 0 {
		return req, fmt.Errorf("%w: days must not be negative", errBadRequest)
	}
	if req.StartDate != "" {
		d, err := time.Parse(dateFormat, req.StartDate)
		if err != nil {
			return req, fmt.Errorf("%w: start_date %q", errBadRequest, req.StartDate)
		}
		req.startDate = d
	}
	return req, nil
}

// processDayReq parses the date path parameter.
func (h *handler) processDayReq(c *gin.Context) (time.Time, error) {
	raw := c.Param("date")
	day, err := time.Parse(dateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", errBadRequest, raw)
	}
	return day, nil
}
