package domain

// Gateway wire-protocol constants. Field names are vendor-fixed; changing
// any of them breaks CheckMacValue compatibility.
const (
	FieldMerchantID        = "MerchantID"
	FieldMerchantTradeNo   = "MerchantTradeNo"
	FieldMerchantTradeDate = "MerchantTradeDate"
	FieldPaymentType       = "PaymentType"
	FieldTotalAmount       = "TotalAmount"
	FieldTradeDesc         = "TradeDesc"
	FieldItemName          = "ItemName"
	FieldReturnURL         = "ReturnURL"
	FieldClientBackURL     = "ClientBackURL"
	FieldChoosePayment     = "ChoosePayment"
	FieldEncryptType       = "EncryptType"
	FieldCustomKind        = "CustomField1"
	FieldCheckMacValue     = "CheckMacValue"
	FieldRtnCode           = "RtnCode"

	// TradeDateLayout is the gateway's MerchantTradeDate format.
	TradeDateLayout = "2006/01/02 15:04:05"

	// RtnCodeSuccess is the gateway's payment-succeeded result code.
	RtnCodeSuccess = "1"

	// AckSuccess is the exact body the gateway expects; anything else makes
	// it retry the callback on its own schedule.
	AckSuccess = "1|OK"
)
