package services

import "log"

// Severity levels used by confirmation and notification dialogs.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
	SeveritySuccess = "success"
)

// Dialog is the confirmation/notification collaborator. State-changing
// review actions must be confirmed through it before any store mutation,
// and outcomes are reported back through Notify.
type Dialog interface {
	Confirm(title, message, severity string) bool
	Notify(title, message, severity string)
}

// APIDialog is the Dialog used by the HTTP controllers. The admin already
// confirmed the action client-side before the request was sent, so Confirm
// always passes and Notify just logs; the HTTP response carries the outcome.
type APIDialog struct{}

func (APIDialog) Confirm(title, message, severity string) bool { return true }

func (APIDialog) Notify(title, message, severity string) {
	log.Printf("[%s] %s: %s", severity, title, message)
}
