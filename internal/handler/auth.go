package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tellis/tellis-go/internal/middleware"
	"github.com/tellis/tellis-go/internal/model"
	"github.com/tellis/tellis-go/internal/service"
	"github.com/tellis/tellis-go/internal/session"
)

// tokenRevoker invalidates session tokens by jti. *token.Denylist implements it.
type tokenRevoker interface {
	Revoke(jti string) error
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service  *service.AuthService
	cookies  session.Config
	denylist tokenRevoker
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookies session.Config, denylist tokenRevoker) *AuthHandler {
	return &AuthHandler{service: svc, cookies: cookies, denylist: denylist}
}

// HandleRegister handles POST /api/auth/register. A fresh account gets its
// session cookie immediately, so the client can call authenticated endpoints
// without a separate login.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	user, tok, err := h.service.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.cookies.Set(w, tok)
	respond(w, http.StatusCreated, "User registered successfully", user)
}

// HandleLogin handles POST /api/auth/login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	user, tok, err := h.service.Login(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.cookies.Set(w, tok)
	respond(w, http.StatusOK, "User logged in successfully", user)
}

// HandleMe handles GET /api/auth/me.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, "User retrieved successfully", user)
}

// HandleLogout handles GET/POST /api/auth/logout. The cookie is always
// cleared with the attributes it was set with. Putting the token's jti on the
// deny-list is best-effort on top: the client-side logout must not depend on
// deny-list health.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)

	if jti, ok := middleware.TokenIDFromContext(r.Context()); ok {
		if err := h.denylist.Revoke(jti); err != nil {
			slog.Error("token revocation failed", "error", err)
		}
	}

	respond(w, http.StatusOK, "User logged out successfully", nil)
}
