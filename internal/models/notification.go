// internal/models/notification.go
package models

import "time"

const (
	ChannelSMS = "sms"

	NotificationSent     = "sent"
	NotificationFailed   = "failed"
	NotificationDisabled = "disabled"
)

// Notification records one outbound message about a user's eligible schemes.
type Notification struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Channel   string    `json:"channel"`
	Status    string    `json:"status"`
	Language  string    `json:"language"`
	Body      string    `json:"body"`
	SchemeIDs []string  `json:"schemeIds"`
	MessageID string    `json:"messageId,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}
