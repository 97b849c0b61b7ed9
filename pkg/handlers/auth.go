package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"projectboard/pkg/session"
	"projectboard/pkg/user"
)

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type AuthHandler struct {
	Service  user.ServiceInterface
	Sessions *session.Manager
	Logger   *slog.Logger
	Secure   bool
}

func NewAuthHandler(service user.ServiceInterface, sessions *session.Manager, logger *slog.Logger, secure bool) *AuthHandler {
	return &AuthHandler{
		Service:  service,
		Sessions: sessions,
		Logger:   logger,
		Secure:   secure,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if errs := validateLogin(req); len(errs) > 0 {
		WriteResp(w, h.Logger, map[string]any{
			"error":   "Validation error",
			"details": errs,
		}, http.StatusBadRequest)
		return
	}

	u, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		// one answer for unknown email and wrong password
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, typeError, "Invalid credentials")
			return
		}
		h.Logger.Error("login", "error", err.Error())
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	token, err := h.Sessions.Issue(u.ID, u.Email)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	session.SetCookie(w, token, h.Secure)
	if ok := WriteResp(w, h.Logger, map[string]any{"ok": true}, http.StatusOK); ok {
		h.Logger.Info("login", "user", u.ID)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// stateless sessions: nothing to revoke server-side, the cookie
	// just gets dropped and the token ages out
	session.ClearCookie(w, h.Secure)
	WriteResp(w, h.Logger, map[string]any{"ok": true}, http.StatusOK)
}

func validateLogin(req LoginForm) []FieldError {
	errs := []FieldError{}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		errs = append(errs, FieldError{
			Location: "body",
			Param:    "email",
			Value:    req.Email,
			Msg:      "must be a valid email",
		})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{
			Location: "body",
			Param:    "password",
			Msg:      "must not be empty",
		})
	}
	return errs
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}
