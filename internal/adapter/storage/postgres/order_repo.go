package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawmart-payments/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, trade_no, user_id, total_amount, item_desc,
	payment_status, fulfillment_status, payment_method, created_at, paid_at`

// Create inserts a new unpaid order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, trade_no, user_id, total_amount, item_desc,
		payment_status, fulfillment_status, payment_method, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.TradeNo, o.UserID, o.TotalAmount, o.ItemDesc,
		o.PaymentStatus, o.FulfillmentStatus, o.PaymentMethod,
		o.CreatedAt, o.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByTradeNo fetches an order by its merchant trade number.
// Returns nil, nil if no row matches.
func (r *OrderRepo) GetByTradeNo(ctx context.Context, tradeNo string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE trade_no = $1`

	o := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, tradeNo).Scan(
		&o.ID, &o.TradeNo, &o.UserID, &o.TotalAmount, &o.ItemDesc,
		&o.PaymentStatus, &o.FulfillmentStatus, &o.PaymentMethod,
		&o.CreatedAt, &o.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by trade_no: %w", err)
	}
	return o, nil
}

// MarkPaid flips an UNPAID order to PAID and advances fulfillment in one
// conditional write. The returned bool is false when the row was already
// terminal, which makes replayed callbacks no-ops.
func (r *OrderRepo) MarkPaid(ctx context.Context, tradeNo, method string, paidAt time.Time) (bool, error) {
	query := `UPDATE orders
		SET payment_status = $1, fulfillment_status = $2, payment_method = $3, paid_at = $4
		WHERE trade_no = $5 AND payment_status = $6`

	tag, err := r.pool.Exec(ctx, query,
		domain.PaymentStatusPaid, domain.FulfillmentAwaitingShipment,
		method, paidAt, tradeNo, domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark order paid: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkFailed flips an UNPAID order to FAILED. Fulfillment stays where it is;
// the buyer may pay again from a fresh checkout.
func (r *OrderRepo) MarkFailed(ctx context.Context, tradeNo string) (bool, error) {
	query := `UPDATE orders SET payment_status = $1 WHERE trade_no = $2 AND payment_status = $3`

	tag, err := r.pool.Exec(ctx, query,
		domain.PaymentStatusFailed, tradeNo, domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark order failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
