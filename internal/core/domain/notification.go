package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecipientKind addresses a notification to exactly one audience.
type RecipientKind string

const (
	RecipientUser  RecipientKind = "USER"
	RecipientAdmin RecipientKind = "ADMIN"
)

// Notification type tags consumed by the account and admin UIs.
const (
	NotificationOrderPaid     = "ORDER_PAID"
	NotificationDonationPaid  = "DONATION_PAID"
	NotificationAdminNewOrder = "ADMIN_NEW_PAID_ORDER"
	NotificationAdminDonation = "ADMIN_NEW_DONATION"
)

// Notification is created once and never mutated by this service; the
// read/unread toggle belongs to the recipient-side UI.
type Notification struct {
	ID            uuid.UUID     `json:"id"`
	RecipientKind RecipientKind `json:"recipient_kind"`
	RecipientID   uuid.UUID     `json:"recipient_id"`
	Type          string        `json:"type"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	Link          *string       `json:"link,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
