package models

import (
	"encoding/json"
	"time"
)

// Well-known notification titles. TitleInactivityProcessed doubles as the
// scanner's daily idempotency marker: at most one such notification may exist
// per user per UTC calendar day, enforced by a partial unique index on
// (user_id, marker_date).
const (
	TitleVaultCreated        = "Vault Created"
	TitleVaultDeleted        = "Vault Deleted"
	TitleEntryAdded          = "Entry Added"
	TitleContactAdded        = "Contact Added"
	TitleRecipientAdded      = "Recipient Added"
	TitleRecipientRemoved    = "Recipient Removed"
	TitleVaultDelivered      = "Vault Delivery Completed"
	TitleInactivityProcessed = "Inactivity Processing Complete"
)

// Notification is a write-once activity ledger entry. Content is a JSON
// [NotificationEnvelope]; rows are never updated after insert.
type Notification struct {
	NotificationID string `json:"id"`
	UserID         string `json:"user_id"`

	Title string `json:"title"`

	// Content is the JSON-encoded envelope.
	Content string `json:"content"`

	// MarkerDate is set (UTC date) only for daily idempotency markers.
	MarkerDate *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}

// NotificationFilter narrows a timeline query. UserID is required; Title and
// Limit are optional (zero values mean "no filter" and "no limit").
type NotificationFilter struct {
	UserID string
	Title  string
	Limit  uint64
}

// NotificationEnvelope is the structured payload stored in a notification's
// content column and parsed back by the timeline and the scanner.
type NotificationEnvelope struct {
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Envelope decodes the notification content. Malformed content yields a
// zero envelope rather than an error: ledger rows are display data and a
// single bad row must not break the timeline.
func (n Notification) Envelope() NotificationEnvelope {
	var env NotificationEnvelope
	_ = json.Unmarshal([]byte(n.Content), &env)
	return env
}
