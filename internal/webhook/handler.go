package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskplanner/internal/schedule"
	pkgResponse "taskplanner/pkg/response"
)

const refreshTimeout = 30 * time.Second

// HandleTaskStoreWebhook processes change notifications from the task store
// and kicks off a display-horizon refresh run in the background.
func (h *Handler) HandleTaskStoreWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify signature
	signature := c.GetHeader("X-Planner-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	// Check IP whitelist
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	var event TaskStoreEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.l.Errorf(ctx, "Failed to parse task store event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Refresh in background
	go h.refreshAsync(event)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// refreshAsync runs a display-horizon scheduling refresh. The run serializes
// against any concurrent run inside the use case.
func (h *Handler) refreshAsync(event TaskStoreEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	h.l.Infof(ctx, "Task store changed (%s), refreshing schedule", event.ActivityType)

	out, err := h.scheduleUC.Run(ctx, schedule.RunInput{Days: h.refreshDays})
	if err != nil {
		h.l.Errorf(ctx, "Webhook-triggered refresh failed: %v", err)
		return
	}
	h.l.Infof(ctx, "Webhook refresh %s: %d of %d tasks scheduled",
		out.RunID, out.Stats.ScheduledTasks, out.Stats.TotalTasks)
}
