package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the gateway-driven payment state of a record.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusFailed PaymentStatus = "FAILED"
)

// IsTerminal returns true once a payment status can no longer change.
// A retried attempt gets a fresh trade number instead of reopening this one.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// FulfillmentStatus represents the shipping lifecycle, independent of payment.
type FulfillmentStatus string

const (
	FulfillmentPendingPayment   FulfillmentStatus = "PENDING_PAYMENT"
	FulfillmentAwaitingShipment FulfillmentStatus = "AWAITING_SHIPMENT"
	FulfillmentShipped          FulfillmentStatus = "SHIPPED"
	FulfillmentCompleted        FulfillmentStatus = "COMPLETED"
	FulfillmentCancelled        FulfillmentStatus = "CANCELLED"
)

// Order is a storefront purchase awaiting gateway confirmation.
type Order struct {
	ID                uuid.UUID         `json:"id"`
	TradeNo           string            `json:"trade_no"`
	UserID            uuid.UUID         `json:"user_id"`
	TotalAmount       int64             `json:"total_amount"` // In NTD, whole dollars
	ItemDesc          string            `json:"item_desc"`
	PaymentStatus     PaymentStatus     `json:"payment_status"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`
	PaymentMethod     *string           `json:"payment_method,omitempty"` // Set by the gateway callback
	CreatedAt         time.Time         `json:"created_at"`
	PaidAt            *time.Time        `json:"paid_at,omitempty"`
}
