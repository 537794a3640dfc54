package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TradeKind is carried in the gateway's CustomField1 so the callback can be
// routed without a lookup.
type TradeKind string

const (
	TradeKindShop     TradeKind = "shop"
	TradeKindDonation TradeKind = "donation"
)

// ParseTradeKind validates the custom-field value from the gateway.
func ParseTradeKind(s string) (TradeKind, bool) {
	switch TradeKind(s) {
	case TradeKindShop:
		return TradeKindShop, true
	case TradeKindDonation:
		return TradeKindDonation, true
	}
	return "", false
}

// tradeNoPrefix maps a kind to the two-letter trade number prefix.
func tradeNoPrefix(kind TradeKind) string {
	if kind == TradeKindDonation {
		return "DN"
	}
	return "OD"
}

// MintTradeNo produces a gateway-safe trade number: 2-letter kind prefix,
// 12-digit UTC timestamp, 6 random hex chars. 20 chars total, the gateway's
// MerchantTradeNo limit. Retried attempts always mint a new one.
func MintTradeNo(kind TradeKind) string {
	tail := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return tradeNoPrefix(kind) + time.Now().UTC().Format("060102150405") + tail
}

// NormalizePaymentMethod reduces the gateway's payment-type string to its
// canonical method: the gateway appends a subtype after an underscore
// (e.g. "Credit_CreditCard" -> "Credit").
func NormalizePaymentMethod(gatewayType string) string {
	if i := strings.Index(gatewayType, "_"); i >= 0 {
		return gatewayType[:i]
	}
	return gatewayType
}
