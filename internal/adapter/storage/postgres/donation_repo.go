package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawmart-payments/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DonationRepo implements ports.DonationRepository.
type DonationRepo struct {
	pool Pool
}

// NewDonationRepo creates a new DonationRepo.
func NewDonationRepo(pool Pool) *DonationRepo {
	return &DonationRepo{pool: pool}
}

const donationColumns = `id, trade_no, donor_user_id, donor_name, donor_email,
	amount, mode, status, payment_method, retry_of, animal_id, created_at, paid_at`

// Create inserts a new unpaid donation.
func (r *DonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	query := `INSERT INTO donations (id, trade_no, donor_user_id, donor_name, donor_email,
		amount, mode, status, payment_method, retry_of, animal_id, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.TradeNo, d.DonorUserID, d.DonorName, d.DonorEmail,
		d.Amount, d.Mode, d.Status, d.PaymentMethod, d.RetryOf, d.AnimalID,
		d.CreatedAt, d.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// GetByTradeNo fetches a donation by its merchant trade number.
// Returns nil, nil if no row matches.
func (r *DonationRepo) GetByTradeNo(ctx context.Context, tradeNo string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE trade_no = $1`

	d := &domain.Donation{}
	err := r.pool.QueryRow(ctx, query, tradeNo).Scan(
		&d.ID, &d.TradeNo, &d.DonorUserID, &d.DonorName, &d.DonorEmail,
		&d.Amount, &d.Mode, &d.Status, &d.PaymentMethod, &d.RetryOf, &d.AnimalID,
		&d.CreatedAt, &d.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donation by trade_no: %w", err)
	}
	return d, nil
}

// MarkPaid flips an UNPAID donation to PAID in one conditional write.
func (r *DonationRepo) MarkPaid(ctx context.Context, tradeNo, method string, paidAt time.Time) (bool, error) {
	query := `UPDATE donations
		SET status = $1, payment_method = $2, paid_at = $3
		WHERE trade_no = $4 AND status = $5`

	tag, err := r.pool.Exec(ctx, query,
		domain.PaymentStatusPaid, method, paidAt, tradeNo, domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark donation paid: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkFailed flips an UNPAID donation to FAILED.
func (r *DonationRepo) MarkFailed(ctx context.Context, tradeNo string) (bool, error) {
	query := `UPDATE donations SET status = $1 WHERE trade_no = $2 AND status = $3`

	tag, err := r.pool.Exec(ctx, query,
		domain.PaymentStatusFailed, tradeNo, domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark donation failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
