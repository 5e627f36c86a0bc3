package domain

import "time"

// NotificationKind groups notifications for display.
type NotificationKind string

const (
	NotificationTransaction NotificationKind = "transaction"
	NotificationSecurity    NotificationKind = "security"
	NotificationPromotion   NotificationKind = "promotion"
	NotificationSystem      NotificationKind = "system"
	NotificationAlert       NotificationKind = "alert"
)

// Priority orders notifications by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Notification is an in-session message to the user.
type Notification struct {
	ID          string           `json:"id"`
	Kind        NotificationKind `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Timestamp   time.Time        `json:"timestamp"`
	Read        bool             `json:"read"`
	Priority    Priority         `json:"priority"`
	ActionLabel string           `json:"actionLabel,omitempty"`
}
