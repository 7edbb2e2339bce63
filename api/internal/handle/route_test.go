package handle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prof-bot/api/internal/router"
)

func TestRoute(t *testing.T) {
	h := New(nil)

	t.Run("POST only", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/router/route", nil)
		rec := httptest.NewRecorder()
		h.Route(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/router/route", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		h.Route(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("routes a practice request", func(t *testing.T) {
		body := `{"message":"Je veux des exercices sur les dérivées"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/router/route", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Route(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var out router.RouterOutput
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, router.ActionRoute, out.Action)
		require.NotNil(t, out.Intent)
		assert.Equal(t, router.IntentPracticeTopic, *out.Intent)
		require.NotNil(t, out.Topic)
		assert.Equal(t, "derivees", *out.Topic)
	})

	t.Run("profile level is honored", func(t *testing.T) {
		body := `{"message":"je veux passer un test","user_profile":{"level":"2nde"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/router/route", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Route(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var out router.RouterOutput
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, router.ActionRoute, out.Action)
		require.NotNil(t, out.Level)
		assert.Equal(t, "2nde", *out.Level)
	})
}
