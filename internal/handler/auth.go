package handler

import (
	"errors"
	"net/http"

	"club-portal/internal/logger"
	"club-portal/internal/middleware"
	"club-portal/internal/model"
	"club-portal/internal/service"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
	snap *store.Snapshot
}

func NewAuthHandler(auth *service.AuthService, snap *store.Snapshot) *AuthHandler {
	return &AuthHandler{auth: auth, snap: snap}
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email, "reason", err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": loginMessage(err)})
		return
	}

	token, err := middleware.NewToken(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token signing failed"})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "name", u.Name, "role", u.Role)
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: sanitize(u)})
}

// GET /api/session — restores the signed-in supervisor from the token. An
// account that no longer exists in the snapshot ends the session.
func (h *AuthHandler) Session(c *gin.Context) {
	uid := c.GetString("user_id")
	for _, u := range h.snap.Supervisors() {
		if u.ID == uid {
			c.JSON(http.StatusOK, sanitize(u))
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUnknownEmail):
		return "email is not registered"
	case errors.Is(err, service.ErrNoRole):
		return "this account has no role assigned"
	case errors.Is(err, service.ErrWrongPassword):
		return "wrong password"
	default:
		return "login failed"
	}
}

// sanitize strips the password before a supervisor record leaves the server.
func sanitize(s *model.Supervisor) *model.Supervisor {
	cp := *s
	cp.Password = ""
	return &cp
}

func sanitizeAll(in []*model.Supervisor) []*model.Supervisor {
	out := make([]*model.Supervisor, len(in))
	for i, s := range in {
		out[i] = sanitize(s)
	}
	return out
}
