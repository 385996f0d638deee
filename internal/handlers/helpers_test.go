package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jwtpizza/pizza-mock/internal/config"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
	"github.com/jwtpizza/pizza-mock/internal/routes"
)

const testToken = "abcdef"

func newTestRouter(t *testing.T) (*gin.Engine, *memstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerPort: "0",
		Token:      testToken,
		LogLevel:   "error",
		LogFormat:  "console",
	}
	store := memstore.New()
	return routes.NewRouter(store, cfg, zap.NewNop()), store
}

// do issues a request against the router. An empty token leaves the
// Authorization header off entirely.
func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// login establishes a session for the given seeded user.
func login(t *testing.T, r *gin.Engine, email, password string) {
	t.Helper()
	w := do(t, r, "PUT", "/api/auth", "", gin.H{"email": email, "password": password})
	require.Equal(t, 200, w.Code, "login failed: %s", w.Body.String())
}
