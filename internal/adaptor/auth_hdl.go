package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"organic-store/internal/dto/request"
	"organic-store/internal/dto/response"
	"organic-store/internal/usecase"
	"organic-store/pkg/middleware"
	"organic-store/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// SendOTP handles POST /api/send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if err := h.service.SendOTP(r.Context(), req.Email, req.OTP, req.Name); err != nil {
		var notifyErr *usecase.NotifyError
		if errors.As(err, &notifyErr) {
			// Challenge is issued anyway; only delivery failed
			utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{
				"error":   "Failed to send OTP",
				"details": notifyErr.Err.Error(),
			})
			return
		}
		h.log.Error("Failed to send OTP", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "OTP sent successfully")
}

// ResendOTP handles POST /api/resend-otp
func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.ResendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	if err := h.service.ResendOTP(r.Context(), req.Email); err != nil {
		var notifyErr *usecase.NotifyError
		switch {
		case errors.Is(err, usecase.ErrOTPNotFound):
			utils.ResponseBadRequest(w, "OTP expired or not found")
		case errors.As(err, &notifyErr):
			utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{
				"error":   "Failed to send OTP",
				"details": notifyErr.Err.Error(),
			})
		default:
			h.log.Error("Failed to resend OTP", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "New OTP sent successfully")
}

// VerifyOTP handles POST /api/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	session, err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		var invalidCode *usecase.InvalidCodeError
		switch {
		case errors.Is(err, usecase.ErrOTPNotFound):
			utils.ResponseBadRequest(w, "OTP expired or not found")
		case errors.Is(err, usecase.ErrOTPExpired):
			utils.ResponseBadRequest(w, "OTP expired")
		case errors.Is(err, usecase.ErrTooManyAttempts):
			utils.ResponseBadRequest(w, "Too many failed attempts")
		case errors.As(err, &invalidCode):
			utils.WriteJSON(w, http.StatusBadRequest, map[string]any{
				"error":             "Invalid OTP",
				"attemptsRemaining": invalidCode.AttemptsRemaining,
			})
		default:
			h.log.Error("Failed to verify OTP", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	setSessionCookie(w, session.Token)

	utils.WriteJSON(w, http.StatusOK, response.LoginResponse{
		Success:   true,
		SessionID: session.Token,
		User: response.AuthUser{
			Email: session.Email,
			Name:  session.Name,
			Type:  string(session.Kind),
		},
	})
}

// AdminLogin handles POST /api/admin-login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields")
		return
	}

	session, err := h.service.AdminLogin(r.Context(), req.AdminID, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.ResponseUnauthorized(w, "Invalid admin credentials")
			return
		}
		h.log.Error("Failed admin login", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	setSessionCookie(w, session.Token)

	utils.WriteJSON(w, http.StatusOK, response.LoginResponse{
		Success:   true,
		SessionID: session.Token,
		User: response.AuthUser{
			ID:   session.Email,
			Type: string(session.Kind),
		},
	})
}

// AdminCheck handles GET /api/admin/check (behind the admin gate)
func (h *AuthHandler) AdminCheck(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.CheckResponse{
		Authenticated: true,
		Email:         email,
		Type:          "admin",
	})
}

// AdminLogout handles POST /api/admin/logout. The cookie is optional;
// logging out without one is still a success.
func (h *AuthHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		h.service.Logout(r.Context(), cookie.Value)
	}

	clearSessionCookie(w)

	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ==================== COOKIE HELPERS ====================

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
