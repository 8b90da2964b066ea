package domain

// Severity classifies a transient notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient user-facing message. At most one is visible
// at a time; a new notification replaces the prior one and restarts the
// auto-dismiss timer.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
