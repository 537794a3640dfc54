package dto

// OrderCheckoutRequest is the request body for starting an order payment.
type OrderCheckoutRequest struct {
	TotalAmount   int64  `json:"total_amount" binding:"required,gt=0"`
	ItemDesc      string `json:"item_desc" binding:"required,max=400"`
	ChoosePayment string `json:"choose_payment,omitempty"`
}

// DonationCheckoutRequest is the request body for starting a donation payment.
type DonationCheckoutRequest struct {
	DonorName     string  `json:"donor_name" binding:"required,min=1,max=100"`
	DonorEmail    string  `json:"donor_email" binding:"required,email"`
	Amount        int64   `json:"amount" binding:"required,gt=0"`
	Mode          string  `json:"mode,omitempty" binding:"omitempty,oneof=ONE_TIME RECURRING"`
	AnimalID      *string `json:"animal_id,omitempty"`
	ChoosePayment string  `json:"choose_payment,omitempty"`
}

// CheckoutFormResponse carries the signed form the frontend auto-submits to
// the gateway. Params already includes the CheckMacValue.
type CheckoutFormResponse struct {
	ActionURL string            `json:"action_url"`
	Params    map[string]string `json:"params"`
	TradeNo   string            `json:"trade_no"`
}
