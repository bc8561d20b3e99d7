package handler

import (
	"net/http"

	"paysecure-gateway/internal/adapter/http/middleware"
	"paysecure-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	StepUp         ports.StepUpAuthenticator
	PaymentSvc     ports.PaymentService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	HTTPMetrics    middleware.HTTPMetrics // nil = no request metrics
	MetricsHandler http.Handler           // nil = no /metrics endpoint
	OpenAPISpec    []byte
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	docs := NewSwaggerHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(category string) gin.HandlerFunc {
		rule, ok := rules[category]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, category, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")
	jwtAuth := middleware.JWTAuth(deps.TokenSvc)

	authHandler := NewAuthHandler(deps.AuthSvc, deps.StepUp)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl(middleware.LimitLogin), authHandler.Login)
		auth.POST("/step-up/setup", jwtAuth, rl(middleware.LimitStepUp), authHandler.StepUpSetup)
		auth.POST("/step-up/enable", jwtAuth, rl(middleware.LimitStepUp), authHandler.StepUpEnable)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("/pay", rl(middleware.LimitPayment), paymentHandler.Pay)
		payments.POST("/bank/initiate", rl(middleware.LimitOTPInitiate), paymentHandler.InitiateBank)
		payments.POST("/bank/verify-otp", rl(middleware.LimitOTPVerify), paymentHandler.VerifyBankOTP)
		payments.GET("/verify-signature/:id", paymentHandler.VerifySignature)
	}

	v1.GET("/audit/verify-chain", jwtAuth, paymentHandler.VerifyAuditChain)

	return r
}
