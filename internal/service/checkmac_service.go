package service

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"

	"pawmart-payments/internal/core/domain"
	"pawmart-payments/pkg/apperror"
)

// CheckMacService implements ports.CheckMacService for the gateway's
// CheckMacValue scheme (SHA-256 variant).
type CheckMacService struct {
	hashKey string
	hashIV  string
}

// NewCheckMacService creates a codec bound to the merchant's shared secrets.
func NewCheckMacService(hashKey, hashIV string) *CheckMacService {
	return &CheckMacService{hashKey: hashKey, hashIV: hashIV}
}

// macEncodingFixups undoes percent-encoding for the characters the gateway's
// reference encoder leaves literal. Applied after lowercasing, so the hex
// codes are matched in lowercase. Not interchangeable with a plain
// url.QueryEscape.
var macEncodingFixups = strings.NewReplacer(
	"%2d", "-",
	"%5f", "_",
	"%2e", ".",
	"%21", "!",
	"%2a", "*",
	"%28", "(",
	"%29", ")",
)

// Generate computes the CheckMacValue over params. The CheckMacValue key
// itself is ignored if present. Pure; safe for concurrent use.
func (s *CheckMacService) Generate(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == domain.FieldCheckMacValue {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys) // bytewise, per the gateway spec

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	raw := "HashKey=" + s.hashKey + "&" + strings.Join(pairs, "&") + "&HashIV=" + s.hashIV
	encoded := macEncodingFixups.Replace(strings.ToLower(url.QueryEscape(raw)))

	sum := sha256.Sum256([]byte(encoded))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// VerifyNotification authenticates an inbound callback payload. It requires
// the trade number and signature fields, strips the signature, recomputes it
// and compares case-sensitively. A mismatch is a hard authentication
// failure; the payload must not reach the reconciler.
func (s *CheckMacService) VerifyNotification(params map[string]string) error {
	if params[domain.FieldMerchantTradeNo] == "" {
		return apperror.ErrMalformedCallback(domain.FieldMerchantTradeNo)
	}
	supplied, ok := params[domain.FieldCheckMacValue]
	if !ok || supplied == "" {
		return apperror.ErrMalformedCallback(domain.FieldCheckMacValue)
	}

	stripped := make(map[string]string, len(params)-1)
	for k, v := range params {
		if k == domain.FieldCheckMacValue {
			continue
		}
		stripped[k] = v
	}

	if s.Generate(stripped) != supplied {
		return apperror.ErrSignatureMismatch()
	}
	return nil
}
