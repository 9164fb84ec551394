package domain

// Severity classifies a user-facing notification.
type Severity string

// Notification severities
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier delivers human-readable messages to the UI shell (toasts in the
// original frontend). Implementations must not block.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier
func (NopNotifier) Notify(string, Severity) {}

// Confirmer asks the user to confirm a destructive operation. Destructive
// mutators proceed only on an affirmative answer; the core never renders the
// prompt itself.
type Confirmer interface {
	Confirm(action string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(action string) bool

// Confirm implements Confirmer
func (f ConfirmerFunc) Confirm(action string) bool { return f(action) }
