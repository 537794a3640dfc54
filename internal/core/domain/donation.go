package domain

import (
	"time"

	"github.com/google/uuid"
)

// DonationMode distinguishes one-off gifts from recurring pledges.
type DonationMode string

const (
	DonationModeOneTime   DonationMode = "ONE_TIME"
	DonationModeRecurring DonationMode = "RECURRING"
)

// Donation is a supporter contribution, optionally earmarked for one animal.
type Donation struct {
	ID            uuid.UUID     `json:"id"`
	TradeNo       string        `json:"trade_no"`
	DonorUserID   *uuid.UUID    `json:"donor_user_id,omitempty"` // nil for guest donors
	DonorName     string        `json:"donor_name"`
	DonorEmail    string        `json:"donor_email"`
	Amount        int64         `json:"amount"`
	Mode          DonationMode  `json:"mode"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod *string       `json:"payment_method,omitempty"`
	RetryOf       *string       `json:"retry_of,omitempty"` // Trade number this attempt supersedes
	AnimalID      *uuid.UUID    `json:"animal_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}
