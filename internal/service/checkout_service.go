package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pawmart-payments/config"
	"pawmart-payments/internal/core/domain"
	"pawmart-payments/internal/core/ports"
	"pawmart-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	orderRepo    ports.OrderRepository
	donationRepo ports.DonationRepository
	macSvc       ports.CheckMacService
	gateway      config.GatewayConfig
	log          zerolog.Logger
	now          func() time.Time
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	orderRepo ports.OrderRepository,
	donationRepo ports.DonationRepository,
	macSvc ports.CheckMacService,
	gateway config.GatewayConfig,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		orderRepo:    orderRepo,
		donationRepo: donationRepo,
		macSvc:       macSvc,
		gateway:      gateway,
		log:          log,
		now:          time.Now,
	}
}

// CheckoutOrder persists an unpaid order and returns the signed redirect
// form. The row exists before the form is returned, so a callback arriving
// ahead of the browser redirect still reconciles.
func (s *CheckoutServiceImpl) CheckoutOrder(ctx context.Context, req ports.OrderCheckoutRequest) (*ports.CheckoutForm, error) {
	if req.TotalAmount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if strings.TrimSpace(req.ItemDesc) == "" {
		return nil, apperror.Validation("item description is required")
	}

	now := s.now().UTC()
	order := &domain.Order{
		ID:                uuid.New(),
		TradeNo:           domain.MintTradeNo(domain.TradeKindShop),
		UserID:            req.UserID,
		TotalAmount:       req.TotalAmount,
		ItemDesc:          req.ItemDesc,
		PaymentStatus:     domain.PaymentStatusUnpaid,
		FulfillmentStatus: domain.FulfillmentPendingPayment,
		CreatedAt:         now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}

	form := s.buildForm(order.TradeNo, order.TotalAmount, req.ItemDesc, req.ChoosePayment, domain.TradeKindShop, now)

	s.log.Info().
		Str("trade_no", order.TradeNo).
		Str("user_id", req.UserID.String()).
		Int64("amount", order.TotalAmount).
		Msg("order checkout created")

	return form, nil
}

// CheckoutDonation persists an unpaid donation and returns the signed
// redirect form.
func (s *CheckoutServiceImpl) CheckoutDonation(ctx context.Context, req ports.DonationCheckoutRequest) (*ports.CheckoutForm, error) {
	donation, err := s.validateDonation(req)
	if err != nil {
		return nil, err
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create donation: %w", err))
	}

	form := s.buildForm(donation.TradeNo, donation.Amount, donationItemName(donation), req.ChoosePayment, domain.TradeKindDonation, donation.CreatedAt)

	s.log.Info().
		Str("trade_no", donation.TradeNo).
		Int64("amount", donation.Amount).
		Str("mode", string(donation.Mode)).
		Msg("donation checkout created")

	return form, nil
}

// RetryDonation mints a fresh attempt for a failed donation. The prior trade
// number is recorded on the new row; the old row stays terminal.
func (s *CheckoutServiceImpl) RetryDonation(ctx context.Context, priorTradeNo string) (*ports.CheckoutForm, error) {
	prior, err := s.donationRepo.GetByTradeNo(ctx, priorTradeNo)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load prior donation: %w", err))
	}
	if prior == nil {
		return nil, apperror.ErrNotFound("donation")
	}
	if prior.Status != domain.PaymentStatusFailed {
		return nil, apperror.ErrRetryNotAllowed(priorTradeNo)
	}

	retry := s.newDonation(ports.DonationCheckoutRequest{
		DonorUserID: prior.DonorUserID,
		DonorName:   prior.DonorName,
		DonorEmail:  prior.DonorEmail,
		Amount:      prior.Amount,
		Mode:        prior.Mode,
		AnimalID:    prior.AnimalID,
	})
	retry.RetryOf = &prior.TradeNo

	if err := s.donationRepo.Create(ctx, retry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create retry donation: %w", err))
	}

	form := s.buildForm(retry.TradeNo, retry.Amount, donationItemName(retry), "", domain.TradeKindDonation, retry.CreatedAt)

	s.log.Info().
		Str("trade_no", retry.TradeNo).
		Str("retry_of", prior.TradeNo).
		Msg("donation retry created")

	return form, nil
}

func (s *CheckoutServiceImpl) validateDonation(req ports.DonationCheckoutRequest) (*domain.Donation, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if strings.TrimSpace(req.DonorName) == "" || strings.TrimSpace(req.DonorEmail) == "" {
		return nil, apperror.ErrMissingDonorInfo()
	}
	return s.newDonation(req), nil
}

func (s *CheckoutServiceImpl) newDonation(req ports.DonationCheckoutRequest) *domain.Donation {
	mode := req.Mode
	if mode == "" {
		mode = domain.DonationModeOneTime
	}
	return &domain.Donation{
		ID:          uuid.New(),
		TradeNo:     domain.MintTradeNo(domain.TradeKindDonation),
		DonorUserID: req.DonorUserID,
		DonorName:   req.DonorName,
		DonorEmail:  req.DonorEmail,
		Amount:      req.Amount,
		Mode:        mode,
		Status:      domain.PaymentStatusUnpaid,
		AnimalID:    req.AnimalID,
		CreatedAt:   s.now().UTC(),
	}
}

// buildForm assembles the vendor-fixed parameter set and signs it.
func (s *CheckoutServiceImpl) buildForm(tradeNo string, amount int64, itemName, choosePayment string, kind domain.TradeKind, at time.Time) *ports.CheckoutForm {
	if choosePayment == "" {
		choosePayment = "ALL"
	}

	params := map[string]string{
		domain.FieldMerchantID:        s.gateway.MerchantID,
		domain.FieldMerchantTradeNo:   tradeNo,
		domain.FieldMerchantTradeDate: at.Format(domain.TradeDateLayout),
		domain.FieldPaymentType:       "aio",
		domain.FieldTotalAmount:       strconv.FormatInt(amount, 10),
		domain.FieldTradeDesc:         s.gateway.StoreName,
		domain.FieldItemName:          itemName,
		domain.FieldReturnURL:         s.gateway.NotifyURL,
		domain.FieldClientBackURL:     s.gateway.ReturnURL,
		domain.FieldChoosePayment:     choosePayment,
		domain.FieldEncryptType:       "1",
		domain.FieldCustomKind:        string(kind),
	}
	params[domain.FieldCheckMacValue] = s.macSvc.Generate(params)

	return &ports.CheckoutForm{
		ActionURL: s.gateway.ActionURL,
		Params:    params,
		TradeNo:   tradeNo,
	}
}

func donationItemName(d *domain.Donation) string {
	if d.Mode == domain.DonationModeRecurring {
		return "PawMart recurring donation"
	}
	return "PawMart donation"
}
