package domain

import "time"

// ToolCallStatus labels the outcome of a dispatched tool call.
type ToolCallStatus string

const (
	ToolCallSuccess ToolCallStatus = "success"
	ToolCallError   ToolCallStatus = "error"
)

// Metrics receives dispatch observations. A nil Metrics is valid and means
// no recording.
type Metrics interface {
	ObserveToolCall(tool string, status ToolCallStatus, duration time.Duration)
	ObserveResourceRead(found bool)
}
