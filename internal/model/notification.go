package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the kinds of notifications surfaced to users.
type NotificationType string

const (
	NotificationTierUpgrade        NotificationType = "tier_upgrade"
	NotificationMilestone          NotificationType = "milestone"
	NotificationComplianceAlert    NotificationType = "compliance_alert"
	NotificationRecommendation     NotificationType = "recommendation"
	NotificationInterventionUpdate NotificationType = "intervention_update"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTierUpgrade,
		NotificationMilestone,
		NotificationComplianceAlert,
		NotificationRecommendation,
		NotificationInterventionUpdate:
		return true
	}
	return false
}

// Notification represents a durable, typed message for a single user.
//
// It is persisted on every push, so a user who was offline at delivery time
// still sees it through the history endpoints after reconnecting.
type Notification struct {
	ID        uuid.UUID        `json:"id"`                // unique identifier
	UserID    string           `json:"user_id"`           // owning user
	Type      NotificationType `json:"type"`              // one of the fixed types
	Title     string           `json:"title"`             // short headline
	Message   string           `json:"message"`           // body text
	Data      map[string]any   `json:"data,omitempty"`    // optional structured payload
	CreatedAt time.Time        `json:"created_at"`        // creation timestamp
	ReadAt    *time.Time       `json:"read_at,omitempty"` // nil until marked read
}

// Read reports whether the notification has been marked as read.
func (n Notification) Read() bool {
	return n.ReadAt != nil
}

// Stats is the derived aggregate over a user's recent notification history.
//
// It is folded from the most recent history page (capped at 100 rows), so
// totals beyond that window are approximate.
type Stats struct {
	Total      int                      `json:"total"`
	Unread     int                      `json:"unread"`
	ByType     map[NotificationType]int `json:"by_type"`
	MostRecent *time.Time               `json:"most_recent,omitempty"`
}

// Preferences holds a user's notification delivery preferences.
//
// Preference storage is a passthrough to Redis; the platform's settings UI
// owns the semantics of each flag.
type Preferences struct {
	PushEnabled    bool `json:"push_enabled"`
	EmailEnabled   bool `json:"email_enabled"`
	DigestsEnabled bool `json:"digests_enabled"`
}

// DefaultPreferences is what a user gets before they ever save preferences.
func DefaultPreferences() Preferences {
	return Preferences{PushEnabled: true, EmailEnabled: true, DigestsEnabled: false}
}
