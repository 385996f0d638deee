package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jwtpizza/pizza-mock/internal/config"
	"github.com/jwtpizza/pizza-mock/internal/httperr"
	"github.com/jwtpizza/pizza-mock/internal/httpresp"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
	"github.com/jwtpizza/pizza-mock/internal/middleware"
)

type AuthHandler struct {
	store  *memstore.Store
	config *config.Config
}

func NewAuthHandler(store *memstore.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: store, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

// Register creates a diner account and logs it in, returning the
// sanitized user plus the sentinel token. A malformed body reads as an
// empty one, so it fails the same required-fields check.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	_ = c.ShouldBindJSON(&req)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "validation_error", "name, email, and password are required")
		return
	}

	user, err := h.store.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		httperr.Conflict(c, "user_exists", "user already exists")
		return
	}

	h.store.SetSession(user)

	httpresp.OK(c, gin.H{
		"user":  user.View(),
		"token": h.config.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	_ = c.ShouldBindJSON(&req)

	user := h.store.UserByEmail(req.Email)
	if user == nil || user.Password != req.Password {
		httperr.Unauthorized(c, "unauthorized", "Unauthorized")
		return
	}

	h.store.SetSession(user)

	httpresp.OK(c, gin.H{
		"user":  user.View(),
		"token": h.config.Token,
	})
}

// Logout runs behind the auth middleware, so the token is already
// checked; it still requires an active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if middleware.SessionUser(c) == nil {
		httperr.Unauthorized(c, "unauthorized", "Unauthorized")
		return
	}

	h.store.ClearSession()
	httpresp.Message(c, "logout successful")
}
