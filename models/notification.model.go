package models

// Notification types control the toast styling.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyInfo    = "info"
)

// Notification is the transient toast shown after an operation. At most
// one is visible at a time; a new one supersedes the current one, and
// each auto-expires four seconds after being set.
type Notification struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
