package service

import (
	"context"
	"fmt"
	"time"

	"pawmart-payments/internal/core/domain"
	"pawmart-payments/internal/core/ports"
	"pawmart-payments/pkg/apperror"

	"github.com/rs/zerolog"
)

// replaySeenTTL bounds how long a reconciled trade number stays in the
// fast-path cache. The conditional UPDATE remains authoritative after expiry.
const replaySeenTTL = 48 * time.Hour

// ReconcileServiceImpl implements ports.ReconcileService. The conditional
// status write is the sole synchronization point: of two concurrent
// callbacks for one trade number, at most one observes a changed row and
// proceeds to side effects.
type ReconcileServiceImpl struct {
	orderRepo    ports.OrderRepository
	donationRepo ports.DonationRepository
	replayCache  ports.ReplayCache
	log          zerolog.Logger
	now          func() time.Time
}

// NewReconcileService creates a new ReconcileServiceImpl. replayCache may be
// nil; the fast path is then skipped.
func NewReconcileService(
	orderRepo ports.OrderRepository,
	donationRepo ports.DonationRepository,
	replayCache ports.ReplayCache,
	log zerolog.Logger,
) *ReconcileServiceImpl {
	return &ReconcileServiceImpl{
		orderRepo:    orderRepo,
		donationRepo: donationRepo,
		replayCache:  replayCache,
		log:          log,
		now:          time.Now,
	}
}

// Reconcile applies a verified callback to its domain record.
func (s *ReconcileServiceImpl) Reconcile(ctx context.Context, p ports.CallbackPayload) (*ports.ReconcileResult, error) {
	kind, ok := domain.ParseTradeKind(p.Kind)
	if !ok {
		return nil, apperror.ErrUnknownKind(p.Kind)
	}

	outcome := domain.PaymentStatusFailed
	if p.Succeeded {
		outcome = domain.PaymentStatusPaid
	}

	// Fast path: a cached trade number was already reconciled. Best-effort;
	// any cache failure falls through to the database.
	if s.replayCache != nil {
		seen, err := s.replayCache.Seen(ctx, p.TradeNo)
		if err != nil {
			s.log.Warn().Err(err).Str("trade_no", p.TradeNo).Msg("replay cache check failed, falling through to DB")
		} else if seen {
			return &ports.ReconcileResult{Kind: kind, TradeNo: p.TradeNo, Outcome: outcome, Applied: false}, nil
		}
	}

	var res *ports.ReconcileResult
	var err error
	switch kind {
	case domain.TradeKindShop:
		res, err = s.reconcileOrder(ctx, p, outcome)
	case domain.TradeKindDonation:
		res, err = s.reconcileDonation(ctx, p, outcome)
	}
	if err != nil {
		return nil, err
	}

	if s.replayCache != nil {
		if cerr := s.replayCache.MarkSeen(ctx, p.TradeNo, replaySeenTTL); cerr != nil {
			s.log.Warn().Err(cerr).Str("trade_no", p.TradeNo).Msg("replay cache mark failed")
		}
	}

	s.log.Info().
		Str("trade_no", p.TradeNo).
		Str("kind", string(kind)).
		Str("outcome", string(res.Outcome)).
		Bool("applied", res.Applied).
		Msg("callback reconciled")

	return res, nil
}

func (s *ReconcileServiceImpl) reconcileOrder(ctx context.Context, p ports.CallbackPayload, outcome domain.PaymentStatus) (*ports.ReconcileResult, error) {
	order, err := s.orderRepo.GetByTradeNo(ctx, p.TradeNo)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrUnknownTrade(p.TradeNo)
	}

	res := &ports.ReconcileResult{
		Kind:    domain.TradeKindShop,
		TradeNo: p.TradeNo,
		Outcome: outcome,
		Order:   order,
	}

	// Already terminal: idempotent replay, answer success with no side effects.
	if order.PaymentStatus.IsTerminal() {
		res.Outcome = order.PaymentStatus
		return res, nil
	}

	changed, err := s.applyOrder(ctx, p, outcome, order)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order %s: %w", p.TradeNo, err))
	}
	res.Applied = changed
	return res, nil
}

func (s *ReconcileServiceImpl) applyOrder(ctx context.Context, p ports.CallbackPayload, outcome domain.PaymentStatus, order *domain.Order) (bool, error) {
	if outcome == domain.PaymentStatusPaid {
		method := domain.NormalizePaymentMethod(p.PaymentType)
		paidAt := s.now().UTC()
		changed, err := s.orderRepo.MarkPaid(ctx, p.TradeNo, method, paidAt)
		if err != nil || !changed {
			return changed, err
		}
		order.PaymentStatus = domain.PaymentStatusPaid
		order.FulfillmentStatus = domain.FulfillmentAwaitingShipment
		order.PaymentMethod = &method
		order.PaidAt = &paidAt
		return true, nil
	}

	changed, err := s.orderRepo.MarkFailed(ctx, p.TradeNo)
	if err != nil || !changed {
		return changed, err
	}
	order.PaymentStatus = domain.PaymentStatusFailed
	return true, nil
}

func (s *ReconcileServiceImpl) reconcileDonation(ctx context.Context, p ports.CallbackPayload, outcome domain.PaymentStatus) (*ports.ReconcileResult, error) {
	donation, err := s.donationRepo.GetByTradeNo(ctx, p.TradeNo)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load donation: %w", err))
	}
	if donation == nil {
		return nil, apperror.ErrUnknownTrade(p.TradeNo)
	}

	res := &ports.ReconcileResult{
		Kind:     domain.TradeKindDonation,
		TradeNo:  p.TradeNo,
		Outcome:  outcome,
		Donation: donation,
	}

	if donation.Status.IsTerminal() {
		res.Outcome = donation.Status
		return res, nil
	}

	changed, err := s.applyDonation(ctx, p, outcome, donation)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update donation %s: %w", p.TradeNo, err))
	}
	res.Applied = changed
	return res, nil
}

func (s *ReconcileServiceImpl) applyDonation(ctx context.Context, p ports.CallbackPayload, outcome domain.PaymentStatus, donation *domain.Donation) (bool, error) {
	if outcome == domain.PaymentStatusPaid {
		method := domain.NormalizePaymentMethod(p.PaymentType)
		paidAt := s.now().UTC()
		changed, err := s.donationRepo.MarkPaid(ctx, p.TradeNo, method, paidAt)
		if err != nil || !changed {
			return changed, err
		}
		donation.Status = domain.PaymentStatusPaid
		donation.PaymentMethod = &method
		donation.PaidAt = &paidAt
		return true, nil
	}

	changed, err := s.donationRepo.MarkFailed(ctx, p.TradeNo)
	if err != nil || !changed {
		return changed, err
	}
	donation.Status = domain.PaymentStatusFailed
	return true, nil
}
