package service

import (
	"context"
	"fmt"
	"time"

	"pawmart-payments/internal/core/domain"
	"pawmart-payments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotifyServiceImpl implements ports.NotificationDispatcher. It runs after
// the callback has been acknowledged, so every failure here is logged and
// swallowed; a lost notification never un-pays a payment.
type NotifyServiceImpl struct {
	notifRepo   ports.NotificationRepository
	adminUserID *uuid.UUID // nil disables admin fan-out
	log         zerolog.Logger
	now         func() time.Time
}

// NewNotifyService creates a dispatcher. adminUserID is the configured admin
// recipient; an empty or invalid value disables admin notifications.
func NewNotifyService(notifRepo ports.NotificationRepository, adminUserID string, log zerolog.Logger) *NotifyServiceImpl {
	s := &NotifyServiceImpl{
		notifRepo: notifRepo,
		log:       log,
		now:       time.Now,
	}
	if adminUserID != "" {
		id, err := uuid.Parse(adminUserID)
		if err != nil {
			log.Warn().Str("admin_user_id", adminUserID).Msg("invalid admin user id, admin notifications disabled")
		} else {
			s.adminUserID = &id
		}
	}
	return s
}

// DispatchPaymentResult fans out notifications for a freshly applied paid
// transition. Callers must gate on res.Applied and a PAID outcome; the guard
// here is a backstop so a miswired caller cannot double-notify.
func (s *NotifyServiceImpl) DispatchPaymentResult(ctx context.Context, res *ports.ReconcileResult) {
	if res == nil || !res.Applied || res.Outcome != domain.PaymentStatusPaid {
		return
	}

	switch res.Kind {
	case domain.TradeKindShop:
		s.dispatchOrderPaid(ctx, res.Order)
	case domain.TradeKindDonation:
		s.dispatchDonationPaid(ctx, res.Donation)
	}
}

func (s *NotifyServiceImpl) dispatchOrderPaid(ctx context.Context, order *domain.Order) {
	if order == nil {
		return
	}

	link := "/account/orders/" + order.TradeNo
	s.create(ctx, &domain.Notification{
		RecipientKind: domain.RecipientUser,
		RecipientID:   order.UserID,
		Type:          domain.NotificationOrderPaid,
		Title:         "Payment received",
		Message:       fmt.Sprintf("We received your payment of NT$%d for order %s. It is now being prepared for shipment.", order.TotalAmount, order.TradeNo),
		Link:          &link,
	})

	if s.adminUserID != nil {
		adminLink := "/admin/orders/" + order.TradeNo
		s.create(ctx, &domain.Notification{
			RecipientKind: domain.RecipientAdmin,
			RecipientID:   *s.adminUserID,
			Type:          domain.NotificationAdminNewOrder,
			Title:         "New paid order",
			Message:       fmt.Sprintf("Order %s (NT$%d) was paid and awaits shipment.", order.TradeNo, order.TotalAmount),
			Link:          &adminLink,
		})
	}
}

func (s *NotifyServiceImpl) dispatchDonationPaid(ctx context.Context, donation *domain.Donation) {
	if donation == nil {
		return
	}

	// Guest donors have no account inbox; they only get the admin-side record.
	if donation.DonorUserID != nil {
		link := "/account/donations/" + donation.TradeNo
		s.create(ctx, &domain.Notification{
			RecipientKind: domain.RecipientUser,
			RecipientID:   *donation.DonorUserID,
			Type:          domain.NotificationDonationPaid,
			Title:         "Thank you for your donation",
			Message:       fmt.Sprintf("Your donation of NT$%d (%s) was received. Thank you for supporting the animals.", donation.Amount, donation.TradeNo),
			Link:          &link,
		})
	}

	if s.adminUserID != nil {
		adminLink := "/admin/donations/" + donation.TradeNo
		s.create(ctx, &domain.Notification{
			RecipientKind: domain.RecipientAdmin,
			RecipientID:   *s.adminUserID,
			Type:          domain.NotificationAdminDonation,
			Title:         "New donation",
			Message:       fmt.Sprintf("%s donated NT$%d (%s).", donation.DonorName, donation.Amount, donation.TradeNo),
			Link:          &adminLink,
		})
	}
}

func (s *NotifyServiceImpl) create(ctx context.Context, n *domain.Notification) {
	n.ID = uuid.New()
	n.CreatedAt = s.now().UTC()

	if err := s.notifRepo.Create(ctx, n); err != nil {
		s.log.Error().Err(err).
			Str("type", n.Type).
			Str("recipient_id", n.RecipientID.String()).
			Msg("failed to store notification")
		return
	}

	s.log.Debug().
		Str("type", n.Type).
		Str("recipient_kind", string(n.RecipientKind)).
		Msg("notification stored")
}
