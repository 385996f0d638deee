package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jwtpizza/pizza-mock/internal/httpresp"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
)

// The order endpoint never validates pizza selection or pricing; it
// echoes the payload back with a fixed order id and a fixed receipt
// token so the UI's payment flow has something to render.
const (
	syntheticOrderID = 23
	receiptToken     = "eyJpYXQ"
)

type OrderHandler struct {
	store *memstore.Store
}

func NewOrderHandler(store *memstore.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// Menu serves the static catalog.
func (h *OrderHandler) Menu(c *gin.Context) {
	httpresp.OK(c, h.store.Menu())
}

func (h *OrderHandler) Create(c *gin.Context) {
	var order map[string]any
	if err := c.ShouldBindJSON(&order); err != nil || order == nil {
		order = map[string]any{}
	}
	order["id"] = syntheticOrderID

	httpresp.OK(c, gin.H{
		"order": order,
		"jwt":   receiptToken,
	})
}
