package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwtpizza/pizza-mock/internal/httperr"
	"github.com/jwtpizza/pizza-mock/internal/httpresp"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
	"github.com/jwtpizza/pizza-mock/internal/middleware"
	"github.com/jwtpizza/pizza-mock/internal/models"
)

type StoreHandler struct {
	store *memstore.Store
}

func NewStoreHandler(store *memstore.Store) *StoreHandler {
	return &StoreHandler{store: store}
}

type CreateStoreRequest struct {
	Name string `json:"name"`
}

// Create adds a store under a franchise. Check order is part of the
// contract: token (middleware), franchise existence, role, then payload.
func (h *StoreHandler) Create(c *gin.Context) {
	franchiseID, err := strconv.Atoi(c.Param("franchiseId"))
	if err != nil {
		httperr.NotFound(c, "franchise_not_found", "Franchise not found")
		return
	}

	franchise := h.store.FranchiseByID(franchiseID)
	if franchise == nil {
		httperr.NotFound(c, "franchise_not_found", "Franchise not found")
		return
	}

	if !canManage(middleware.SessionUser(c), franchise) {
		httperr.Forbidden(c, "store_create_denied", "unable to create a store")
		return
	}

	var req CreateStoreRequest
	_ = c.ShouldBindJSON(&req)
	if req.Name == "" {
		httperr.BadRequest(c, "validation_error", "Missing store name")
		return
	}

	store, err := h.store.CreateStore(franchiseID, req.Name)
	if err != nil {
		httperr.NotFound(c, "franchise_not_found", "Franchise not found")
		return
	}

	httpresp.OK(c, store)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	franchiseID, err := strconv.Atoi(c.Param("franchiseId"))
	if err != nil {
		httperr.NotFound(c, "franchise_not_found", "Franchise not found")
		return
	}
	storeID, err := strconv.Atoi(c.Param("storeId"))
	if err != nil {
		httperr.NotFound(c, "store_not_found", "Store not found")
		return
	}

	franchise := h.store.FranchiseByID(franchiseID)
	if franchise == nil {
		httperr.NotFound(c, "franchise_not_found", "Franchise not found")
		return
	}

	if !canManage(middleware.SessionUser(c), franchise) {
		httperr.Forbidden(c, "store_delete_denied", "unable to delete a store")
		return
	}

	switch h.store.DeleteStore(franchiseID, storeID) {
	case nil:
		httpresp.Message(c, "store deleted")
	case memstore.ErrStoreNotFound:
		httperr.NotFound(c, "store_not_found", "Store not found")
	default:
		httperr.NotFound(c, "franchise_not_found", "Franchise not found")
	}
}

// canManage: global admins may touch any franchise, otherwise the caller
// must be listed among the franchise's admins.
func canManage(u *models.User, f *models.Franchise) bool {
	if u.IsAdmin() {
		return true
	}
	return u != nil && f.HasAdmin(u.ID)
}
