package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwtpizza/pizza-mock/internal/models"
)

func TestMenu(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "GET", "/api/order/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menu []models.MenuItem
	decode(t, w, &menu)
	require.Len(t, menu, 2)
	assert.Equal(t, "Veggie", menu[0].Title)
	assert.Equal(t, 0.0038, menu[0].Price)
	assert.Equal(t, "Pepperoni", menu[1].Title)
}

func TestMenuRejectsUnknownMethod(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "DELETE", "/api/order/menu", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCreateOrderEchoesPayload(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "POST", "/api/order", "", gin.H{
		"franchiseId": 2,
		"storeId":     4,
		"items":       []gin.H{{"menuId": 1, "description": "Veggie", "price": 0.0038}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Order map[string]any `json:"order"`
		JWT   string         `json:"jwt"`
	}
	decode(t, w, &resp)
	assert.Equal(t, float64(23), resp.Order["id"])
	assert.Equal(t, float64(2), resp.Order["franchiseId"])
	assert.Len(t, resp.Order["items"], 1)
	assert.Equal(t, "eyJpYXQ", resp.JWT)
}

func TestCreateOrderWithEmptyBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "POST", "/api/order", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Order map[string]any `json:"order"`
	}
	decode(t, w, &resp)
	assert.Equal(t, float64(23), resp.Order["id"])
}

// The end-to-end purchase scenario: register, confirm the diner
// session, order two pizzas, get them back with the synthetic order id.
func TestRegisterAndOrderFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "POST", "/api/auth", "", gin.H{
		"name":     "Anakin Skywalker",
		"email":    "j@jwt.com",
		"password": "peace",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, "GET", "/api/user/me", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"diner"`)

	w = do(t, r, "POST", "/api/order", testToken, gin.H{
		"items": []gin.H{
			{"menuId": 1, "description": "Veggie", "price": 0.0038},
			{"menuId": 2, "description": "Pepperoni", "price": 0.0042},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Order struct {
			ID    int `json:"id"`
			Items []struct {
				Description string `json:"description"`
			} `json:"items"`
		} `json:"order"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 23, resp.Order.ID)
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "Veggie", resp.Order.Items[0].Description)
	assert.Equal(t, "Pepperoni", resp.Order.Items[1].Description)
}
