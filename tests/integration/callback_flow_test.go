package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pawmart-payments/config"
	httpHandler "pawmart-payments/internal/adapter/http/handler"
	"pawmart-payments/internal/adapter/http/middleware"
	redisStorage "pawmart-payments/internal/adapter/storage/redis"
	"pawmart-payments/internal/core/domain"
	"pawmart-payments/internal/core/ports"
	"pawmart-payments/internal/service"
	"pawmart-payments/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHashKey = "5294y06JbISpM5x9"
	testHashIV  = "v77hoKGq4kWxNNIS"
)

// testApp wires the real HTTP layer, services, and Redis stores over
// in-memory repositories, exercising the full checkout/callback path.
type testApp struct {
	server       *httptest.Server
	redis        *miniredis.Miniredis
	macSvc       *service.CheckMacService
	orderRepo    *inMemoryOrderRepo
	donationRepo *inMemoryDonationRepo
	notifRepo    *inMemoryNotificationRepo
	callbackLog  *inMemoryCallbackLogRepo
	adminUserID  uuid.UUID
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	app := &testApp{
		redis:        mr,
		orderRepo:    newInMemoryOrderRepo(),
		donationRepo: newInMemoryDonationRepo(),
		notifRepo:    newInMemoryNotificationRepo(),
		callbackLog:  newInMemoryCallbackLogRepo(),
		adminUserID:  uuid.New(),
	}

	gw := config.GatewayConfig{
		MerchantID: "2000132",
		HashKey:    testHashKey,
		HashIV:     testHashIV,
		ActionURL:  "https://payment-stage.ecpay.com.tw/Cashier/AioCheckOut/V5",
		ReturnURL:  "https://shop.pawmart.tw/checkout/done",
		NotifyURL:  "https://shop.pawmart.tw/api/v1/payments/gateway/notify",
		StoreName:  "PawMart",
	}

	log := logger.New("debug", false)
	app.macSvc = service.NewCheckMacService(gw.HashKey, gw.HashIV)
	checkoutSvc := service.NewCheckoutService(app.orderRepo, app.donationRepo, app.macSvc, gw, log)
	reconcileSvc := service.NewReconcileService(app.orderRepo, app.donationRepo, redisStorage.NewReplayCache(rdb), log)
	notifySvc := service.NewNotifyService(app.notifRepo, app.adminUserID.String(), log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:     checkoutSvc,
		CheckMacSvc:     app.macSvc,
		ReconcileSvc:    reconcileSvc,
		Dispatcher:      notifySvc,
		CallbackLogRepo: app.callbackLog,
		Logger:          log,
	})

	app.server = httptest.NewServer(router)
	return app
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// checkoutDonation drives the donation checkout endpoint and returns the
// minted trade number.
func (a *testApp) checkoutDonation(t *testing.T, amount int64) string {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{
		"donor_name":  "Alice",
		"donor_email": "a@example.com",
		"amount":      amount,
	})
	resp, err := http.Post(a.server.URL+"/api/v1/payments/checkout/donation", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			ActionURL string            `json:"action_url"`
			Params    map[string]string `json:"params"`
			TradeNo   string            `json:"trade_no"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Data.TradeNo)
	require.NotEmpty(t, envelope.Data.Params[domain.FieldCheckMacValue])
	require.Equal(t, "donation", envelope.Data.Params[domain.FieldCustomKind])
	return envelope.Data.TradeNo
}

// gatewayCallback posts a signed payment-result callback the way the
// provider would and returns the raw ack body.
func (a *testApp) gatewayCallback(t *testing.T, tradeNo, kind, rtnCode string) (int, string) {
	t.Helper()

	params := map[string]string{
		domain.FieldMerchantID:      "2000132",
		domain.FieldMerchantTradeNo: tradeNo,
		domain.FieldCustomKind:      kind,
		domain.FieldRtnCode:         rtnCode,
		domain.FieldPaymentType:     "Credit_CreditCard",
		"TradeNo":                   "2401011200001234",
		"TradeAmt":                  "500",
	}
	params[domain.FieldCheckMacValue] = a.macSvc.Generate(params)

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	resp, err := http.Post(
		a.server.URL+"/api/v1/payments/gateway/notify",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func notificationTypes(ns []*domain.Notification) []string {
	types := make([]string, 0, len(ns))
	for _, n := range ns {
		types = append(types, n.Type)
	}
	return types
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_DonationPaidFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	tradeNo := app.checkoutDonation(t, 500)

	d, err := app.donationRepo.GetByTradeNo(context.Background(), tradeNo)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, domain.PaymentStatusUnpaid, d.Status)

	status, ack := app.gatewayCallback(t, tradeNo, "donation", "1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.AckSuccess, ack)

	d, err = app.donationRepo.GetByTradeNo(context.Background(), tradeNo)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, d.Status)
	require.NotNil(t, d.PaymentMethod)
	assert.Equal(t, "Credit", *d.PaymentMethod)
	assert.NotNil(t, d.PaidAt)

	// Notification fan-out is async; a guest donation yields admin-only.
	assert.Eventually(t, func() bool {
		return len(app.notifRepo.all()) == 1
	}, time.Second, 10*time.Millisecond)

	ns := app.notifRepo.all()
	assert.Equal(t, []string{domain.NotificationAdminDonation}, notificationTypes(ns))
	assert.Equal(t, app.adminUserID, ns[0].RecipientID)
}

func TestIntegration_DonationReplayIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	tradeNo := app.checkoutDonation(t, 500)

	status, ack := app.gatewayCallback(t, tradeNo, "donation", "1")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, domain.AckSuccess, ack)

	assert.Eventually(t, func() bool {
		return len(app.notifRepo.all()) == 1
	}, time.Second, 10*time.Millisecond)

	// Replay the exact same callback several times.
	for i := 0; i < 3; i++ {
		status, ack := app.gatewayCallback(t, tradeNo, "donation", "1")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, domain.AckSuccess, ack)
	}

	// No duplicate notifications ever appear.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, app.notifRepo.all(), 1)
}

func TestIntegration_DonationFailedThenRetry(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	tradeNo := app.checkoutDonation(t, 500)

	status, ack := app.gatewayCallback(t, tradeNo, "donation", "10200095")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, domain.AckSuccess, ack)

	d, err := app.donationRepo.GetByTradeNo(context.Background(), tradeNo)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, d.Status)

	// A failed payment produces no notifications.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, app.notifRepo.all())

	// Retry mints a fresh trade number linked to the failed one.
	resp, err := http.Post(app.server.URL+"/api/v1/payments/donations/"+tradeNo+"/retry", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			TradeNo string `json:"trade_no"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	retryTradeNo := envelope.Data.TradeNo
	require.NotEqual(t, tradeNo, retryTradeNo)

	retry, err := app.donationRepo.GetByTradeNo(context.Background(), retryTradeNo)
	require.NoError(t, err)
	require.NotNil(t, retry.RetryOf)
	assert.Equal(t, tradeNo, *retry.RetryOf)

	// Paying the retry succeeds; the original stays failed.
	status, ack = app.gatewayCallback(t, retryTradeNo, "donation", "1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.AckSuccess, ack)

	retry, _ = app.donationRepo.GetByTradeNo(context.Background(), retryTradeNo)
	assert.Equal(t, domain.PaymentStatusPaid, retry.Status)
	original, _ := app.donationRepo.GetByTradeNo(context.Background(), tradeNo)
	assert.Equal(t, domain.PaymentStatusFailed, original.Status)
}

func TestIntegration_RetryRefusedForPaidDonation(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	tradeNo := app.checkoutDonation(t, 500)
	status, _ := app.gatewayCallback(t, tradeNo, "donation", "1")
	require.Equal(t, http.StatusOK, status)

	resp, err := http.Post(app.server.URL+"/api/v1/payments/donations/"+tradeNo+"/retry", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestIntegration_OrderPaidFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	body, _ := json.Marshal(map[string]interface{}{
		"total_amount": 1500,
		"item_desc":    "Cat tree x1",
	})
	req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/payments/checkout/order", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, userID.String())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			TradeNo string            `json:"trade_no"`
			Params  map[string]string `json:"params"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	tradeNo := envelope.Data.TradeNo
	assert.Equal(t, "shop", envelope.Data.Params[domain.FieldCustomKind])

	// The returned form must verify under the same secrets.
	require.NoError(t, app.macSvc.VerifyNotification(envelope.Data.Params))

	status, ack := app.gatewayCallback(t, tradeNo, "shop", "1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.AckSuccess, ack)

	o, err := app.orderRepo.GetByTradeNo(context.Background(), tradeNo)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, o.PaymentStatus)
	assert.Equal(t, domain.FulfillmentAwaitingShipment, o.FulfillmentStatus)

	// Buyer and admin both hear about the paid order.
	assert.Eventually(t, func() bool {
		return len(app.notifRepo.all()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t,
		[]string{domain.NotificationOrderPaid, domain.NotificationAdminNewOrder},
		notificationTypes(app.notifRepo.all()))
}

func TestIntegration_OrderCheckoutRequiresIdentity(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	body, _ := json.Marshal(map[string]interface{}{
		"total_amount": 1500,
		"item_desc":    "Cat tree x1",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/payments/checkout/order", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_TamperedCallbackRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	tradeNo := app.checkoutDonation(t, 500)

	params := map[string]string{
		domain.FieldMerchantTradeNo: tradeNo,
		domain.FieldCustomKind:      "donation",
		domain.FieldRtnCode:         "1",
	}
	params[domain.FieldCheckMacValue] = app.macSvc.Generate(params)
	params[domain.FieldRtnCode] = "0" // tamper after signing

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	resp, err := http.Post(
		app.server.URL+"/api/v1/payments/gateway/notify",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "0|GW_002", string(body))

	// The donation is untouched.
	d, _ := app.donationRepo.GetByTradeNo(context.Background(), tradeNo)
	assert.Equal(t, domain.PaymentStatusUnpaid, d.Status)
}

func TestIntegration_UnknownTradeRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, ack := app.gatewayCallback(t, "DN000000000000XXXXXX", "donation", "1")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "0|GW_003", ack)
}

func TestIntegration_CallbackAuditTrail(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	tradeNo := app.checkoutDonation(t, 500)
	status, _ := app.gatewayCallback(t, tradeNo, "donation", "1")
	require.Equal(t, http.StatusOK, status)

	assert.Eventually(t, func() bool {
		entries := app.callbackLog.all()
		return len(entries) == 1 && entries[0].Verified && entries[0].Applied
	}, time.Second, 10*time.Millisecond)

	entries := app.callbackLog.all()
	assert.Equal(t, tradeNo, entries[0].TradeNo)
	assert.Equal(t, "donation", entries[0].Kind)
	assert.Equal(t, "1", entries[0].RtnCode)
}

var _ ports.CallbackLogRepository = (*inMemoryCallbackLogRepo)(nil)
var _ ports.OrderRepository = (*inMemoryOrderRepo)(nil)
var _ ports.DonationRepository = (*inMemoryDonationRepo)(nil)
var _ ports.NotificationRepository = (*inMemoryNotificationRepo)(nil)
