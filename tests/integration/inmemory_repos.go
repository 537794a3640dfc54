package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pawmart-payments/internal/core/domain"
)

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order // keyed by trade_no
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *inMemoryOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.TradeNo]; ok {
		return fmt.Errorf("trade_no already exists")
	}
	cp := *o
	r.orders[o.TradeNo] = &cp
	return nil
}

func (r *inMemoryOrderRepo) GetByTradeNo(_ context.Context, tradeNo string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[tradeNo]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOrderRepo) MarkPaid(_ context.Context, tradeNo, method string, paidAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[tradeNo]
	if !ok || o.PaymentStatus != domain.PaymentStatusUnpaid {
		return false, nil
	}
	o.PaymentStatus = domain.PaymentStatusPaid
	o.FulfillmentStatus = domain.FulfillmentAwaitingShipment
	o.PaymentMethod = &method
	o.PaidAt = &paidAt
	return true, nil
}

func (r *inMemoryOrderRepo) MarkFailed(_ context.Context, tradeNo string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[tradeNo]
	if !ok || o.PaymentStatus != domain.PaymentStatusUnpaid {
		return false, nil
	}
	o.PaymentStatus = domain.PaymentStatusFailed
	return true, nil
}

// --- In-Memory Donation Repo ---

type inMemoryDonationRepo struct {
	mu        sync.RWMutex
	donations map[string]*domain.Donation
}

func newInMemoryDonationRepo() *inMemoryDonationRepo {
	return &inMemoryDonationRepo{donations: make(map[string]*domain.Donation)}
}

func (r *inMemoryDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.donations[d.TradeNo]; ok {
		return fmt.Errorf("trade_no already exists")
	}
	cp := *d
	r.donations[d.TradeNo] = &cp
	return nil
}

func (r *inMemoryDonationRepo) GetByTradeNo(_ context.Context, tradeNo string) (*domain.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.donations[tradeNo]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *inMemoryDonationRepo) MarkPaid(_ context.Context, tradeNo, method string, paidAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.donations[tradeNo]
	if !ok || d.Status != domain.PaymentStatusUnpaid {
		return false, nil
	}
	d.Status = domain.PaymentStatusPaid
	d.PaymentMethod = &method
	d.PaidAt = &paidAt
	return true, nil
}

func (r *inMemoryDonationRepo) MarkFailed(_ context.Context, tradeNo string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.donations[tradeNo]
	if !ok || d.Status != domain.PaymentStatusUnpaid {
		return false, nil
	}
	d.Status = domain.PaymentStatusFailed
	return true, nil
}

// --- In-Memory Notification Repo ---

type inMemoryNotificationRepo struct {
	mu            sync.RWMutex
	notifications []*domain.Notification
}

func newInMemoryNotificationRepo() *inMemoryNotificationRepo {
	return &inMemoryNotificationRepo{}
}

func (r *inMemoryNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *inMemoryNotificationRepo) all() []*domain.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// --- In-Memory Callback Log Repo ---

type inMemoryCallbackLogRepo struct {
	mu      sync.RWMutex
	entries []*domain.CallbackLog
}

func newInMemoryCallbackLogRepo() *inMemoryCallbackLogRepo {
	return &inMemoryCallbackLogRepo{}
}

func (r *inMemoryCallbackLogRepo) Create(_ context.Context, l *domain.CallbackLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *inMemoryCallbackLogRepo) all() []*domain.CallbackLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.CallbackLog, len(r.entries))
	copy(out, r.entries)
	return out
}
