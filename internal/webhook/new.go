package webhook

import (
	"taskplanner/internal/schedule"
	pkgLog "taskplanner/pkg/log"
)

type Handler struct {
	scheduleUC  schedule.UseCase
	security    *SecurityValidator
	refreshDays int // short display horizon used for webhook-triggered runs
	l           pkgLog.Logger
}

func NewHandler(
	scheduleUC schedule.UseCase,
	securityConfig SecurityConfig,
	refreshDays int,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		scheduleUC:  scheduleUC,
		security:    NewSecurityValidator(securityConfig),
		refreshDays: refreshDays,
		l:           l,
	}
}
