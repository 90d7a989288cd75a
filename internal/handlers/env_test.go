package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/minhaz000/prime-motors-server/internal/handlers"
	"github.com/minhaz000/prime-motors-server/internal/middleware/auth"
	"github.com/minhaz000/prime-motors-server/internal/models"
	"github.com/minhaz000/prime-motors-server/internal/service/token"
	"github.com/minhaz000/prime-motors-server/internal/store"
	httpserver "github.com/minhaz000/prime-motors-server/internal/transport/http"
)

type eventLog struct {
	mu     sync.Mutex
	events []map[string]any
	topics []string
}

func (l *eventLog) PublishEvent(_ context.Context, topic, _ string, event interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event.(map[string]any))
	l.topics = append(l.topics, topic)
	return nil
}

func (l *eventLog) types() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	for i, e := range l.events {
		out[i], _ = e["type"].(string)
	}
	return out
}

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	Store  *store.Store
	Tokens *token.TokenService
	Events *eventLog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemory()
	tokens := &token.TokenService{Users: st.Users, JWTSecret: []byte("test-secret")}
	ev := &eventLog{}

	e := echo.New()
	deps := httpserver.Deps{
		Auth:            &auth.Middleware{Tokens: tokens, Users: st.Users},
		AuthHandler:     &handlers.AuthHandler{Tokens: tokens},
		ProductHandler:  &handlers.ProductHandler{Store: st, Producer: ev},
		BookingHandler:  &handlers.BookingHandler{Store: st, Producer: ev},
		CategoryHandler: &handlers.CategoryHandler{Store: st},
		UserHandler:     &handlers.UserHandler{Store: st, Producer: ev},
		SearchHandler:   &handlers.SearchHandler{},
	}
	httpserver.Register(e, &deps)

	return &testEnv{T: t, E: e, Store: st, Tokens: tokens, Events: ev}
}

// do runs a request through the full router, optionally authenticated.
func (env *testEnv) do(method, path string, body any, bearer string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// issueToken registers the identity and returns a token for it.
func (env *testEnv) issueToken(u models.User) string {
	env.T.Helper()
	tok, err := env.Tokens.Issue(context.Background(), u)
	require.NoError(env.T, err)
	return tok
}

func (env *testEnv) addProduct(p models.Product) models.Product {
	env.T.Helper()
	id, err := env.Store.Products.Insert(context.Background(), p)
	require.NoError(env.T, err)
	p.ID = id
	return p
}

func storeSeedCategories(env *testEnv, names ...string) {
	cats := make([]models.Category, len(names))
	for i, n := range names {
		cats[i] = models.Category{Name: n}
	}
	store.SeedCategories(env.Store, cats...)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
