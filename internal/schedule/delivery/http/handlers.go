package http

import (
	"github.com/gin-gonic/gin"

	"taskplanner/pkg/response"
)

// Run godoc
// @Summary     Execute a scheduling run
// @Description Ranks all open tasks and places them into free time slots over the horizon, persisting each scheduled time back to the task store.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body runReq true "Run parameters (all optional)"
// @Success     200  {object} runResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/runs [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRunResp(output))
}

// ListSlots godoc
// @Summary     List time slots
// @Description Returns the generated slot grid for display, without placing any tasks.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       start_date query string false "Grid start date (YYYY-MM-DD, default: today)"
// @Param       days       query int    false "Horizon in days (default: display horizon)"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/slots [GET]
func (h *handler) ListSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	slots := h.uc.TimeSlots(ctx, req.startDate, req.Days)
	response.OK(c, newSlotsResp(slots))
}

// Statistics godoc
// @Summary     Schedule statistics
// @Description Returns derived counters over the task collection: totals, scheduled, scheduled-but-overdue, completed, upcoming deadlines and overdue tasks.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} statisticsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/statistics [GET]
func (h *handler) Statistics(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Statistics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Statistics: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newStatisticsResp(stats))
}

// TasksForDay godoc
// @Summary     Tasks scheduled on a day
// @Description Returns tasks whose scheduled time falls on the given calendar day.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       date path string true "Calendar day (YYYY-MM-DD)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/days/{date}/tasks [GET]
func (h *handler) TasksForDay(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.TasksForDay(ctx, day)
	if err != nil {
		h.l.Errorf(ctx, "uc.TasksForDay: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDayResp(day, tasks))
}
