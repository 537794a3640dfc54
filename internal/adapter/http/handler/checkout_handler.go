package handler

import (
	"pawmart-payments/internal/adapter/http/dto"
	"pawmart-payments/internal/adapter/http/middleware"
	"pawmart-payments/internal/core/domain"
	"pawmart-payments/internal/core/ports"
	"pawmart-payments/pkg/apperror"
	"pawmart-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles checkout and retry endpoints.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// CheckoutOrder handles POST /api/v1/payments/checkout/order.
func (h *CheckoutHandler) CheckoutOrder(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrMissingIdentity())
		return
	}

	var req dto.OrderCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	form, err := h.checkoutSvc.CheckoutOrder(c.Request.Context(), ports.OrderCheckoutRequest{
		UserID:        userID.(uuid.UUID),
		TotalAmount:   req.TotalAmount,
		ItemDesc:      req.ItemDesc,
		ChoosePayment: req.ChoosePayment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCheckoutFormResponse(form))
}

// CheckoutDonation handles POST /api/v1/payments/checkout/donation.
// Donations accept guests; the identity header is optional here.
func (h *CheckoutHandler) CheckoutDonation(c *gin.Context) {
	var req dto.DonationCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var donorUserID *uuid.UUID
	if raw := c.GetHeader(middleware.HeaderUserID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.ErrMissingIdentity())
			return
		}
		donorUserID = &id
	}

	var animalID *uuid.UUID
	if req.AnimalID != nil {
		id, err := uuid.Parse(*req.AnimalID)
		if err != nil {
			response.Error(c, apperror.Validation("animal_id must be a UUID"))
			return
		}
		animalID = &id
	}

	form, err := h.checkoutSvc.CheckoutDonation(c.Request.Context(), ports.DonationCheckoutRequest{
		DonorUserID:   donorUserID,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Amount:        req.Amount,
		Mode:          domain.DonationMode(req.Mode),
		AnimalID:      animalID,
		ChoosePayment: req.ChoosePayment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCheckoutFormResponse(form))
}

// RetryDonation handles POST /api/v1/payments/donations/:trade_no/retry.
func (h *CheckoutHandler) RetryDonation(c *gin.Context) {
	tradeNo := c.Param("trade_no")
	if tradeNo == "" {
		response.Error(c, apperror.Validation("trade_no is required"))
		return
	}

	form, err := h.checkoutSvc.RetryDonation(c.Request.Context(), tradeNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCheckoutFormResponse(form))
}

func toCheckoutFormResponse(form *ports.CheckoutForm) dto.CheckoutFormResponse {
	return dto.CheckoutFormResponse{
		ActionURL: form.ActionURL,
		Params:    form.Params,
		TradeNo:   form.TradeNo,
	}
}
