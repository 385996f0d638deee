package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwtpizza/pizza-mock/internal/httperr"
	"github.com/jwtpizza/pizza-mock/internal/httpresp"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
	"github.com/jwtpizza/pizza-mock/internal/middleware"
)

type UserHandler struct {
	store *memstore.Store
}

func NewUserHandler(store *memstore.Store) *UserHandler {
	return &UserHandler{store: store}
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Me returns the current-session user verbatim, password included. The
// whoami contract is intentionally unsanitized.
func (h *UserHandler) Me(c *gin.Context) {
	user := h.store.CurrentUser()
	if user == nil {
		httperr.Unauthorized(c, "not_logged_in", "Not logged in")
		return
	}
	httpresp.OK(c, user)
}

// Update applies a partial update to the target user. Only an admin or
// the user themselves may edit; an email change must not collide with
// another account.
func (h *UserHandler) Update(c *gin.Context) {
	session := middleware.SessionUser(c)
	if session == nil {
		httperr.Unauthorized(c, "unauthorized", "Unauthorized")
		return
	}

	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	if !session.IsAdmin() && session.ID != userID {
		httperr.Forbidden(c, "forbidden", "Forbidden")
		return
	}

	var req UpdateUserRequest
	_ = c.ShouldBindJSON(&req)

	user, err := h.store.UpdateUser(userID, req.Name, req.Email, req.Password)
	switch err {
	case nil:
	case memstore.ErrUserNotFound:
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	case memstore.ErrDuplicateEmail:
		httperr.Conflict(c, "email_in_use", "Email already in use")
		return
	default:
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	httpresp.OK(c, user.View())
}
