package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/paintchain/internal/auth"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rs/zerolog/log"
)

func sessionFrom(r *http.Request) (models.Session, bool) {
	return auth.SessionFrom(r.Context())
}

// LoginHandler godoc
// @Summary Select a role and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Role (Admin, Dealer or Buyer) and, for Admin, the password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid input")
		return
	}

	token, session, err := issuer.Login(req.Role, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, codeInvalidRole, "role must be Admin, Dealer or Buyer")
		return
	case errors.Is(err, auth.ErrInvalidPassword):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid credentials")
		return
	case err != nil:
		log.Error().Err(err).Msg("could not generate token")
		writeError(w, http.StatusInternalServerError, codeInternalError, "could not generate token")
		return
	}

	log.Info().Str("user", session.ID).Msg("login")
	respond(w, r, http.StatusOK, LoginResult{Token: token, User: session})
}

// MeHandler godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Session
// @Failure 401 {object} errorResponse
// @Router /api/me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "no session")
		return
	}
	respond(w, r, http.StatusOK, s)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
