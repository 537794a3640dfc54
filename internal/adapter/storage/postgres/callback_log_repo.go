package postgres

import (
	"context"
	"fmt"

	"pawmart-payments/internal/core/domain"
)

// CallbackLogRepo implements ports.CallbackLogRepository.
type CallbackLogRepo struct {
	pool Pool
}

// NewCallbackLogRepo creates a new CallbackLogRepo.
func NewCallbackLogRepo(pool Pool) *CallbackLogRepo {
	return &CallbackLogRepo{pool: pool}
}

// Create inserts a callback audit record.
func (r *CallbackLogRepo) Create(ctx context.Context, l *domain.CallbackLog) error {
	query := `INSERT INTO callback_logs (id, trade_no, kind, rtn_code, verified, applied, error_code, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.TradeNo, l.Kind, l.RtnCode, l.Verified, l.Applied, l.ErrorCode, l.ClientIP, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert callback log: %w", err)
	}
	return nil
}
