package handler

import (
	"pawmart-payments/internal/adapter/http/middleware"
	redisStore "pawmart-payments/internal/adapter/storage/redis"
	"pawmart-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CheckoutSvc     ports.CheckoutService
	CheckMacSvc     ports.CheckMacService
	ReconcileSvc    ports.ReconcileService
	Dispatcher      ports.NotificationDispatcher
	CallbackLogRepo ports.CallbackLogRepository // nil = callback audit disabled
	RateLimitStore  *redisStore.RateLimitStore  // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc)
	callbackHandler := NewCallbackHandler(deps.CheckMacSvc, deps.ReconcileSvc, deps.Dispatcher, deps.CallbackLogRepo, deps.Logger)

	payments := v1.Group("/payments")
	{
		// Checkout routes sit behind the platform's auth guard upstream.
		checkout := payments.Group("/checkout")
		{
			checkout.POST("/order", middleware.RequireUser(), rl("checkout_order"), checkoutHandler.CheckoutOrder)
			checkout.POST("/donation", rl("checkout_donation"), checkoutHandler.CheckoutDonation)
		}
		payments.POST("/donations/:trade_no/retry", rl("donation_retry"), checkoutHandler.RetryDonation)

		// Gateway callback: no auth guard, no rate limiting. The CheckMacValue
		// signature is the sole authentication and the provider must never be
		// throttled away from delivering a payment result.
		payments.POST("/gateway/notify", callbackHandler.Notify)
	}

	return r
}
