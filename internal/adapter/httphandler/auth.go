package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

// POST /v1/auth/login JSON {"email", "password"} (200 OK, 401 Unauthorized)
// POST /v1/auth/register JSON (200 OK, 400 Bad request)
// POST /v1/auth/logout (204 No content)
// GET /v1/auth/me (200 OK, 204 No content)

type AuthHandler struct {
	auth port.Authenticator
}

func RegisterAuth(mux *http.ServeMux, auth port.Authenticator) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /v1/auth/login", h.PostLogin)
	mux.HandleFunc("POST /v1/auth/register", h.PostRegister)
	mux.HandleFunc("POST /v1/auth/logout", h.PostLogout)
	mux.HandleFunc("GET /v1/auth/me", h.GetMe)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	user, err := h.auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to login", http.StatusServiceUnavailable)
		log.Error("failed to login", "err", err)
		return
	}

	log.Info("user logged in", "userID", user.UserID)
	writeJSON(w, http.StatusOK, toUser(user))
}

func (h AuthHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostRegister"
	log := slog.With("op", op)

	var reg Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	user, err := h.auth.Register(
		r.Context(), reg.Email, reg.Password, reg.FirstName, reg.LastName,
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRegistration) {
			http.Error(w, "invalid registration data", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to register", http.StatusServiceUnavailable)
		log.Error("failed to register", "err", err)
		return
	}

	log.Info("user registered", "userID", user.UserID)
	writeJSON(w, http.StatusOK, toUser(user))
}

func (h AuthHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := h.auth.Current()
	if user == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}
