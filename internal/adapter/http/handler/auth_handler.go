package handler

import (
	"net/http"
	"time"

	"paysecure-gateway/internal/adapter/http/dto"
	"paysecure-gateway/internal/adapter/http/middleware"
	"paysecure-gateway/internal/core/ports"
	"paysecure-gateway/pkg/apperror"
	"paysecure-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles session and step-up endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
	stepUp  ports.StepUpAuthenticator
	now     func() time.Time
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService, stepUp ports.StepUpAuthenticator) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, stepUp: stepUp, now: time.Now}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	expiresIn := int64(result.ExpiresAt.Sub(h.now()).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	response.OK(c, dto.LoginResponse{
		Token:         result.Token,
		ExpiresIn:     expiresIn,
		StepUpEnabled: result.StepUpEnabled,
	})
}

// StepUpSetup handles POST /api/v1/auth/step-up/setup.
func (h *AuthHandler) StepUpSetup(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	setup, err := h.stepUp.Setup(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StepUpSetupResponse{Secret: setup.Secret, OTPAuthURL: setup.OTPAuthURL})
}

// StepUpEnable handles POST /api/v1/auth/step-up/enable.
func (h *AuthHandler) StepUpEnable(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.StepUpEnableRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.stepUp.Enable(c.Request.Context(), userID, req.Code); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"enabled": true})
}

// bindJSON binds and sanitizes the body, answering VAL_001 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(dto.ValidationMessage(err)))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// HealthCheck handles GET /health and pings every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
