package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/minhaz000/prime-motors-server/internal/handlers"
	"github.com/minhaz000/prime-motors-server/internal/models"
)

const esSearchResponse = `{
  "hits": {
    "total": {"value": 1},
    "hits": [
      {"_source": {"name": "Civic 2018", "location": "Dhaka", "resale_price": 11000}}
    ]
  }
}`

func newStubES(t *testing.T) *elasticsearch.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(esSearchResponse))
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}

func TestSearchListings(t *testing.T) {
	h := &handlers.SearchHandler{ES: newStubES(t), Index: "products"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?q=civic", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[struct {
		Total    int64            `json:"total"`
		Products []models.Product `json:"products"`
	}](t, rec)
	require.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Products, 1)
	require.Equal(t, "Civic 2018", resp.Products[0].Name)
}

func TestSearchRequiresQuery(t *testing.T) {
	h := &handlers.SearchHandler{ES: newStubES(t), Index: "products"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Search(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSearchUnconfigured(t *testing.T) {
	h := &handlers.SearchHandler{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?q=civic", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Search(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusServiceUnavailable, he.Code)
}
