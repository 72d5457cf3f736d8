package values

const (
	HeaderRequestID = "X-Request-Id"
)

type ContextKey string

const (
	ContextTracingKey = ContextKey("tracing-context")
	ContextTokenKey   = ContextKey("session-token")
)

// Report status values as the backend spells them.
const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)

// Analytics overview periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)
