package http

import (
	"time"

	"taskplanner/internal/model"
	"taskplanner/internal/schedule"
)

const dateFormat = "2006-01-02"

// --- Request DTOs ---

type runReq struct {
	StartDate string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Days      int    `json:"days"       binding:"omitempty,min=1,max=90"`

	startDate time.Time `json:"-"`
}

func (r runReq) toInput() schedule.RunInput {
	return schedule.RunInput{
		StartDate: r.startDate,
		Days:      r.Days,
	}
}

type slotsReq struct {
	StartDate string `form:"start_date"`
	Days      int    `form:"days"`

	startDate time.Time `form:"-"`
}

// --- Response DTOs ---

type taskResp struct {
	ID            string     `json:"id"`
	Description   string     `json:"description"`
	Priority      int        `json:"priority"`
	TimeEstimate  int        `json:"time_estimate_minutes"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        string     `json:"status"`
	Completed     bool       `json:"completed"`
	MemoURL       string     `json:"memo_url,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Description:   t.Description,
		Priority:      t.Priority,
		TimeEstimate:  t.TimeEstimate,
		Deadline:      t.Deadline,
		ScheduledTime: t.ScheduledTime,
		Status:        string(t.Status()),
		Completed:     t.Completed,
		MemoURL:       t.MemoURL,
	}
}

type statisticsResp struct {
	TotalTasks        int `json:"total_tasks"`
	ScheduledTasks    int `json:"scheduled_tasks"`
	ScheduledOverdue  int `json:"scheduled_overdue"`
	CompletedTasks    int `json:"completed_tasks"`
	UpcomingDeadlines int `json:"upcoming_deadlines"`
	OverdueTasks      int `json:"overdue_tasks"`
}

func newStatisticsResp(s schedule.Statistics) statisticsResp {
	return statisticsResp{
		TotalTasks:        s.TotalTasks,
		ScheduledTasks:    s.ScheduledTasks,
		ScheduledOverdue:  s.ScheduledOverdue,
		CompletedTasks:    s.CompletedTasks,
		UpcomingDeadlines: s.UpcomingDeadlines,
		OverdueTasks:      s.OverdueTasks,
	}
}

type runResp struct {
	RunID string         `json:"run_id"`
	Tasks []taskResp     `json:"tasks"`
	Stats statisticsResp `json:"statistics"`
}

func (h *handler) newRunResp(out schedule.RunOutput) runResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return runResp{
		RunID: out.RunID,
		Tasks: tasks,
		Stats: newStatisticsResp(out.Stats),
	}
}

type slotResp struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Free      bool      `json:"free"`
	TaskID    string    `json:"task_id,omitempty"`
}

type slotsResp struct {
	Slots []slotResp `json:"slots"`
	Count int        `json:"count"`
}

func newSlotsResp(slots []model.TimeSlot) slotsResp {
	out := make([]slotResp, len(slots))
	for i, s := range slots {
		out[i] = slotResp{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Free:      s.Free(),
		}
		if s.Task != nil {
			out[i].TaskID = s.Task.ID
		}
	}
	return slotsResp{Slots: out, Count: len(out)}
}

type dayResp struct {
	Date  string     `json:"date"`
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func newDayResp(day time.Time, tasks []model.Task) dayResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return dayResp{
		Date:  day.Format(dateFormat),
		Tasks: out,
		Count: len(out),
	}
}
