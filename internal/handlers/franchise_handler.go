package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwtpizza/pizza-mock/internal/config"
	"github.com/jwtpizza/pizza-mock/internal/httperr"
	"github.com/jwtpizza/pizza-mock/internal/httpresp"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
	"github.com/jwtpizza/pizza-mock/internal/middleware"
	"github.com/jwtpizza/pizza-mock/internal/models"
)

const (
	defaultPage  = 0
	defaultLimit = 10
)

type FranchiseHandler struct {
	store  *memstore.Store
	config *config.Config
}

func NewFranchiseHandler(store *memstore.Store, cfg *config.Config) *FranchiseHandler {
	return &FranchiseHandler{store: store, config: cfg}
}

// --------- Requests ---------

type FranchiseAdminRequest struct {
	Email string `json:"email"`
}

type CreateFranchiseRequest struct {
	Name string `json:"name"`
	// Pointer so a missing admins field is distinguishable from an
	// empty list: the former is a validation error, the latter is fine.
	Admins *[]FranchiseAdminRequest `json:"admins"`
}

// --------- Handlers ---------

// List is public. Supports name filtering (case-insensitive substring,
// "*" means no filter) and zero-based paging; malformed page/limit
// values fall back to the defaults.
func (h *FranchiseHandler) List(c *gin.Context) {
	name := c.Query("name")
	page := atoiDefault(c.Query("page"), defaultPage)
	limit := atoiDefault(c.Query("limit"), defaultLimit)

	franchises, more := h.store.ListFranchises(name, page, limit)
	httpresp.OK(c, httpresp.FranchisePage[*models.Franchise]{
		Franchises: franchises,
		More:       more,
	})
}

// ListByAdmin returns the franchises administered by the path user id.
// Callers who are neither that user nor an admin get an empty list, not
// an error; the endpoint does not leak whether the id administers
// anything.
func (h *FranchiseHandler) ListByAdmin(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("franchiseId"))
	if err != nil {
		httpresp.OK(c, []*models.Franchise{})
		return
	}

	session := middleware.SessionUser(c)
	canView := session != nil && (session.ID == userID || session.IsAdmin())
	if !canView {
		httpresp.OK(c, []*models.Franchise{})
		return
	}

	httpresp.OK(c, h.store.FranchisesAdministeredBy(userID))
}

// Create requires the sentinel token and an admin session; both checks
// fold into a single 403, matching the real backend's contract.
func (h *FranchiseHandler) Create(c *gin.Context) {
	if !middleware.TokenValid(c, h.config) || !h.store.CurrentUser().IsAdmin() {
		httperr.Forbidden(c, "franchise_create_denied", "unable to create a franchise")
		return
	}

	var req CreateFranchiseRequest
	_ = c.ShouldBindJSON(&req)

	if req.Name == "" || req.Admins == nil {
		httperr.BadRequest(c, "validation_error", "name and admins are required")
		return
	}

	emails := make([]string, 0, len(*req.Admins))
	for _, a := range *req.Admins {
		emails = append(emails, a.Email)
	}

	franchise := h.store.CreateFranchise(req.Name, emails)
	httpresp.OK(c, franchise)
}

func (h *FranchiseHandler) Delete(c *gin.Context) {
	if !middleware.TokenValid(c, h.config) || !h.store.CurrentUser().IsAdmin() {
		httperr.Forbidden(c, "franchise_delete_denied", "unable to delete a franchise")
		return
	}

	franchiseID, err := strconv.Atoi(c.Param("franchiseId"))
	if err != nil {
		httperr.NotFound(c, "franchise_not_found", "franchise not found")
		return
	}

	if err := h.store.DeleteFranchise(franchiseID); err != nil {
		httperr.NotFound(c, "franchise_not_found", "franchise not found")
		return
	}

	httpresp.Message(c, "franchise deleted")
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
