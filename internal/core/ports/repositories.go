package ports

import (
	"context"
	"time"

	"pawmart-payments/internal/core/domain"
)

// OrderRepository defines persistence operations for storefront orders.
// MarkPaid and MarkFailed are single conditional writes guarded on the
// UNPAID state; the returned bool reports whether a row actually changed,
// which is the idempotency mechanism for replayed callbacks.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByTradeNo(ctx context.Context, tradeNo string) (*domain.Order, error)
	MarkPaid(ctx context.Context, tradeNo, method string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, tradeNo string) (bool, error)
}

// DonationRepository defines persistence operations for donations.
type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) error
	GetByTradeNo(ctx context.Context, tradeNo string) (*domain.Donation, error)
	MarkPaid(ctx context.Context, tradeNo, method string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, tradeNo string) (bool, error)
}

// NotificationRepository creates notification records. Notifications are
// write-only from this service's perspective.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// CallbackLogRepository records inbound gateway callbacks best-effort.
type CallbackLogRepository interface {
	Create(ctx context.Context, log *domain.CallbackLog) error
}

// ReplayCache is a best-effort fast path for duplicate callback suppression.
// The conditional database write remains the authority; cache errors are
// logged and ignored.
type ReplayCache interface {
	Seen(ctx context.Context, tradeNo string) (bool, error)
	MarkSeen(ctx context.Context, tradeNo string, ttl time.Duration) error
}
