package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// TaskStoreEvent is the change notification sent by the task store.
type TaskStoreEvent struct {
	ActivityType string `json:"activityType"` // e.g. "memos.memo.created"
	Creator      string `json:"creator"`
}
