package tracing

import "fmt"

// Context carries per-request identifiers from the tracing middleware
// down to handlers and log lines.
type Context struct {
	RequestID string
	Route     string
}

func (c Context) String() string {
	return fmt.Sprintf("request_id=%s route=%s", c.RequestID, c.Route)
}
