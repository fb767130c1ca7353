package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ansh-apparels/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerReportsBuildFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	once.Do(func() {})
	buildErr = errors.New("missing environment variable: DATABASE_URL")
	fallback = misconfiguredRouter([]string{"https://anshapparels.com"})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://anshapparels.com")
	w := httptest.NewRecorder()
	Handler(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "https://anshapparels.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Server misconfigured", body.Message)

	req = httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "https://anshapparels.com")
	w = httptest.NewRecorder()
	Handler(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
