package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-planner/internal/session"
)

// SessionCookieName carries the signed session token. No Max-Age is set, so
// the cookie lives for the browser session only.
const SessionCookieName = "fp_session"

// SessionHandler verifies the shared access code and hands out a session
// token. This is a convenience for the UI, not a security boundary: the /api
// routes never check the token.
type SessionHandler struct {
	accessCode string
	issuer     *session.TokenIssuer
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(accessCode string, issuer *session.TokenIssuer) *SessionHandler {
	return &SessionHandler{accessCode: accessCode, issuer: issuer}
}

type verifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// Verify handles POST /api/session. A correct code returns
// {"authenticated": true} and sets the session cookie; anything else is 401
// with the incorrect-password message. Retries are unlimited.
func (h *SessionHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing access code.")
		return
	}

	gate := session.NewGate(h.accessCode)
	if !gate.Verify(req.Code) {
		abortWithError(c, http.StatusUnauthorized, gate.ErrorMessage())
		return
	}

	token, err := h.issuer.Issue()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create session token.")
		return
	}

	c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
