package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/internal/service"
	"github.com/MKhiriev/go-member-gate/internal/store"
	"github.com/MKhiriev/go-member-gate/internal/utils"
	"github.com/MKhiriev/go-member-gate/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, store.ErrInvalidEmail),
			errors.Is(err, store.ErrEmptyCredential),
			errors.Is(err, store.ErrEmailAlreadyExists):
			// the consuming front end keys off 401 for every signup
			// rejection, so validation failures answer 401 as well
			log.Err(err).Msg("signup rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// the client replays the same POST body against the login endpoint
	http.Redirect(w, r, "/api/login", http.StatusTemporaryRedirect)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Authenticate(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email/password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("user successfully logged in")

	token, err := h.services.SessionService.Establish(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("session establishment failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, newSessionCookie(token))
	utils.WriteJSON(w, models.SessionUser{UserID: foundUser.UserID, Email: foundUser.Email}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.services.SessionService.Terminate(ctx, cookie.Value); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
			// logout proceeds regardless: the cookie is dropped either way
			log.Err(err).Msg("session termination failed")
		}
	}

	http.SetCookie(w, expiredSessionCookie())
	http.Redirect(w, r, "/", http.StatusFound)
}
