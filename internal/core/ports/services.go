package ports

import (
	"context"

	"pawmart-payments/internal/core/domain"

	"github.com/google/uuid"
)

// CheckMacService computes and verifies the gateway's keyed digest over a
// canonicalized parameter map. The algorithm must match the gateway
// bit-for-bit; both outbound signing and inbound verification go through it.
type CheckMacService interface {
	Generate(params map[string]string) string
	VerifyNotification(params map[string]string) error
}

// CheckoutService builds signed outbound checkout requests and persists the
// unpaid record before the browser redirect is returned.
type CheckoutService interface {
	CheckoutOrder(ctx context.Context, req OrderCheckoutRequest) (*CheckoutForm, error)
	CheckoutDonation(ctx context.Context, req DonationCheckoutRequest) (*CheckoutForm, error)
	RetryDonation(ctx context.Context, priorTradeNo string) (*CheckoutForm, error)
}

// OrderCheckoutRequest holds validated input for an order checkout.
type OrderCheckoutRequest struct {
	UserID        uuid.UUID
	TotalAmount   int64
	ItemDesc      string
	ChoosePayment string
}

// DonationCheckoutRequest holds validated input for a donation checkout.
type DonationCheckoutRequest struct {
	DonorUserID   *uuid.UUID // nil for guest donors
	DonorName     string
	DonorEmail    string
	Amount        int64
	Mode          domain.DonationMode
	AnimalID      *uuid.UUID
	ChoosePayment string
}

// CheckoutForm is ready to be auto-submitted as a same-origin redirect form.
// Params includes the computed CheckMacValue.
type CheckoutForm struct {
	ActionURL string            `json:"action_url"`
	Params    map[string]string `json:"params"`
	TradeNo   string            `json:"trade_no"`
}

// ReconcileService applies a verified callback to the matching domain record.
type ReconcileService interface {
	Reconcile(ctx context.Context, payload CallbackPayload) (*ReconcileResult, error)
}

// CallbackPayload is the verified subset of the gateway callback that the
// reconciler consumes. Signature checking happens before this is built.
type CallbackPayload struct {
	TradeNo     string
	Kind        string // CustomField1 from checkout
	Succeeded   bool   // RtnCode == "1"
	PaymentType string // Raw gateway payment-type string
}

// ReconcileResult is the resolved record handed to the notification layer.
// Applied is false on an idempotent replay; no side effects may follow.
type ReconcileResult struct {
	Kind     domain.TradeKind
	TradeNo  string
	Outcome  domain.PaymentStatus
	Applied  bool
	Order    *domain.Order
	Donation *domain.Donation
}

// NotificationDispatcher fans out user/admin notifications after a paid
// transition. Implementations log and swallow store failures; dispatch must
// never fail the callback acknowledgment.
type NotificationDispatcher interface {
	DispatchPaymentResult(ctx context.Context, res *ReconcileResult)
}
