package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook/courtbook-backend/internal/app"
	"github.com/courtbook/courtbook-backend/internal/sport"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type courtJSON struct {
	ID           string  `json:"id"`
	SportID      string  `json:"sport_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	PricePerHour float64 `json:"price_per_hour"`
}

type courtPage struct {
	Items []courtJSON `json:"items"`
	Total int         `json:"total"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCourtEndpoints(t *testing.T) {
	ctx := context.Background()
	container := app.NewContainer(app.Config{})

	badminton, err := container.SportService.Create(ctx, sport.CreateRequest{Name: "Badminton"})
	require.NoError(t, err)
	tennis, err := container.SportService.Create(ctx, sport.CreateRequest{Name: "Tennis"})
	require.NoError(t, err)

	// Admin adds courts over HTTP.
	w := doJSON(t, container.Router, http.MethodPost, "/v1/courts", gin.H{
		"sport_id": badminton.ID, "name": "Court A", "type": "Indoor", "price_per_hour": 15,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created courtJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, badminton.ID, created.SportID)

	w = doJSON(t, container.Router, http.MethodPost, "/v1/courts", gin.H{
		"sport_id": tennis.ID, "name": "Center Court", "type": "Clay", "price_per_hour": 25,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Validation failures surface as 400.
	w = doJSON(t, container.Router, http.MethodPost, "/v1/courts", gin.H{
		"sport_id": badminton.ID, "name": "No Price", "type": "Indoor",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, container.Router, http.MethodPost, "/v1/courts", gin.H{
		"sport_id": "missing", "name": "Orphan", "type": "Indoor", "price_per_hour": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Full listing.
	w = doJSON(t, container.Router, http.MethodGet, "/v1/courts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page courtPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Total)

	// Filtered by sport.
	w = doJSON(t, container.Router, http.MethodGet, "/v1/courts?sport_id="+tennis.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page = courtPage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Center Court", page.Items[0].Name)

	// Unknown sport filter yields an empty page, not an error.
	w = doJSON(t, container.Router, http.MethodGet, "/v1/courts?sport_id=missing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page = courtPage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Empty(t, page.Items)

	// Get by id.
	w = doJSON(t, container.Router, http.MethodGet, "/v1/courts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, container.Router, http.MethodGet, "/v1/courts/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
