package service

import (
	"testing"

	"pawmart-payments/internal/core/domain"
	"pawmart-payments/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Gateway sandbox credentials; safe to embed.
const (
	testHashKey = "5294y06JbISpM5x9"
	testHashIV  = "v77hoKGq4kWxNNIS"
)

func testCheckoutParams() map[string]string {
	return map[string]string{
		"MerchantID":        "2000132",
		"MerchantTradeNo":   "OD240101120000ABCDEF",
		"MerchantTradeDate": "2024/01/01 12:00:00",
		"PaymentType":       "aio",
		"TotalAmount":       "500",
		"TradeDesc":         "PawMart checkout",
		"ItemName":          "Donation x1",
		"ReturnURL":         "https://shop.pawmart.tw/api/v1/payments/gateway/notify",
		"ChoosePayment":     "Credit",
		"EncryptType":       "1",
		"CustomField1":      "donation",
	}
}

func TestCheckMac_Generate_KnownVector(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)

	// Recomputed independently against the gateway's reference algorithm.
	want := "174E6BC345560BB4BD05CDDBF22E9E9C427775CDA71C9684743FE88C60FC3C26"
	assert.Equal(t, want, svc.Generate(testCheckoutParams()))
}

func TestCheckMac_Generate_SmallVector(t *testing.T) {
	svc := NewCheckMacService("key", "iv")
	want := "242DF136B777ED9CCB8349533A58257A84EE9B2C02AC2DAD3B116F704D321162"
	assert.Equal(t, want, svc.Generate(map[string]string{"a": "1", "b": "2"}))
}

func TestCheckMac_Generate_OrderIndependent(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)
	base := svc.Generate(testCheckoutParams())

	// Rebuild the map in a different insertion order several times; the
	// digest must not depend on map construction or iteration order.
	for i := 0; i < 10; i++ {
		shuffled := make(map[string]string)
		shuffled["CustomField1"] = "donation"
		shuffled["MerchantID"] = "2000132"
		for k, v := range testCheckoutParams() {
			shuffled[k] = v
		}
		assert.Equal(t, base, svc.Generate(shuffled))
	}
}

func TestCheckMac_Generate_ValuePerturbationChangesDigest(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)
	base := svc.Generate(testCheckoutParams())

	for key := range testCheckoutParams() {
		mutated := testCheckoutParams()
		mutated[key] += "x"
		assert.NotEqual(t, base, svc.Generate(mutated), "mutating %s should change the digest", key)
	}
}

func TestCheckMac_Generate_IgnoresSignatureField(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)
	params := testCheckoutParams()
	base := svc.Generate(params)

	params[domain.FieldCheckMacValue] = "SHOULD-BE-IGNORED"
	assert.Equal(t, base, svc.Generate(params))
}

func TestCheckMac_Generate_SecretsMatter(t *testing.T) {
	a := NewCheckMacService(testHashKey, testHashIV)
	b := NewCheckMacService(testHashKey, "different-iv")
	assert.NotEqual(t, a.Generate(testCheckoutParams()), b.Generate(testCheckoutParams()))
}

func TestCheckMac_VerifyNotification_RoundTrip(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)

	payload := testCheckoutParams()
	payload[domain.FieldCheckMacValue] = svc.Generate(payload)

	assert.NoError(t, svc.VerifyNotification(payload))
}

func TestCheckMac_VerifyNotification_TamperedValue(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)

	payload := testCheckoutParams()
	payload[domain.FieldCheckMacValue] = svc.Generate(payload)
	payload["TotalAmount"] = "99999"

	err := svc.VerifyNotification(payload)
	assertAppError(t, err, "GW_002")
}

func TestCheckMac_VerifyNotification_MissingTradeNo(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)

	payload := map[string]string{domain.FieldCheckMacValue: "ABC"}
	err := svc.VerifyNotification(payload)
	assertAppError(t, err, "GW_001")
}

func TestCheckMac_VerifyNotification_MissingSignature(t *testing.T) {
	svc := NewCheckMacService(testHashKey, testHashIV)

	payload := map[string]string{domain.FieldMerchantTradeNo: "OD240101120000ABCDEF"}
	err := svc.VerifyNotification(payload)
	assertAppError(t, err, "GW_001")
}

// assertAppError checks err carries the expected apperror code.
func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
