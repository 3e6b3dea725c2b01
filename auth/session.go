package auth

import (
	"encoding/json"
	"net/http"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/globals"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Handler serves session issuance and logout.
type Handler struct {
	tokens *TokenService
	secure bool // production: Secure + SameSite=None for cross-site frontends
	logger *zap.Logger
}

func NewHandler(tokens *TokenService, secure bool, logger *zap.Logger) *Handler {
	return &Handler{tokens: tokens, secure: secure, logger: logger}
}

// CreateSession handles POST /session. The claim is client-asserted;
// only a non-empty email is required before a token is minted.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var claim struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if claim.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	token, err := h.tokens.Issue(claim.Email)
	if err != nil {
		h.logger.Error("sign session token", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.tokens.TTL().Seconds())))
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles GET /session/logout by expiring the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, h.sessionCookie("", -1))
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     globals.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	}
	if h.secure {
		// browsers only accept SameSite=None together with Secure
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
