package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pawmart-payments/internal/core/domain"
	"pawmart-payments/internal/core/ports"
	"pawmart-payments/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CallbackHandler handles the gateway's server-to-server payment result
// callback. The gateway retries until it reads the literal success body, so
// the handler answers in the gateway's plain-text protocol rather than the
// JSON envelope the rest of the API uses.
type CallbackHandler struct {
	macSvc       ports.CheckMacService
	reconcileSvc ports.ReconcileService
	dispatcher   ports.NotificationDispatcher
	logRepo      ports.CallbackLogRepository // nil = audit logging disabled
	log          zerolog.Logger
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(
	macSvc ports.CheckMacService,
	reconcileSvc ports.ReconcileService,
	dispatcher ports.NotificationDispatcher,
	logRepo ports.CallbackLogRepository,
	log zerolog.Logger,
) *CallbackHandler {
	return &CallbackHandler{
		macSvc:       macSvc,
		reconcileSvc: reconcileSvc,
		dispatcher:   dispatcher,
		logRepo:      logRepo,
		log:          log,
	}
}

// Notify handles POST /api/v1/payments/gateway/notify.
func (h *CallbackHandler) Notify(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.nack(c, apperror.ErrMalformedCallback("body"))
		return
	}

	params := make(map[string]string, len(c.Request.PostForm))
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	entry := &domain.CallbackLog{
		TradeNo:  params[domain.FieldMerchantTradeNo],
		Kind:     params[domain.FieldCustomKind],
		RtnCode:  params[domain.FieldRtnCode],
		ClientIP: c.ClientIP(),
	}

	if err := h.macSvc.VerifyNotification(params); err != nil {
		h.log.Warn().Err(err).
			Str("trade_no", entry.TradeNo).
			Str("client_ip", entry.ClientIP).
			Msg("callback rejected")
		h.audit(c, entry, err)
		h.nack(c, err)
		return
	}
	entry.Verified = true

	if params[domain.FieldRtnCode] == "" {
		err := apperror.ErrMalformedCallback(domain.FieldRtnCode)
		h.audit(c, entry, err)
		h.nack(c, err)
		return
	}

	res, err := h.reconcileSvc.Reconcile(c.Request.Context(), ports.CallbackPayload{
		TradeNo:     params[domain.FieldMerchantTradeNo],
		Kind:        params[domain.FieldCustomKind],
		Succeeded:   params[domain.FieldRtnCode] == domain.RtnCodeSuccess,
		PaymentType: params[domain.FieldPaymentType],
	})
	if err != nil {
		h.log.Warn().Err(err).
			Str("trade_no", entry.TradeNo).
			Msg("callback reconciliation failed")
		h.audit(c, entry, err)
		h.nack(c, err)
		return
	}
	entry.Applied = res.Applied

	// Side effects run after the ack path is decided. WithoutCancel keeps the
	// goroutines alive once the gateway's request context is done.
	if res.Applied && res.Outcome == domain.PaymentStatusPaid {
		go h.dispatcher.DispatchPaymentResult(context.WithoutCancel(c.Request.Context()), res)
	}
	h.audit(c, entry, nil)

	c.String(http.StatusOK, domain.AckSuccess)
}

// nack answers in the gateway's "0|<code>" failure format. The gateway will
// retry the callback later.
func (h *CallbackHandler) nack(c *gin.Context, err error) {
	code := "SYS_001"
	status := http.StatusInternalServerError
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
		status = appErr.HTTPStatus
	}
	c.String(status, "0|"+code)
}

// audit records the callback best-effort; a lost entry never affects the ack.
func (h *CallbackHandler) audit(c *gin.Context, entry *domain.CallbackLog, cause error) {
	if h.logRepo == nil {
		return
	}

	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().UTC()
	var appErr *apperror.AppError
	if errors.As(cause, &appErr) {
		entry.ErrorCode = appErr.Code
	}

	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		if err := h.logRepo.Create(ctx, entry); err != nil {
			h.log.Error().Err(err).Str("trade_no", entry.TradeNo).Msg("failed to store callback log")
		}
	}()
}
