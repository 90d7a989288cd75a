package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minhaz000/prime-motors-server/internal/models"
	"github.com/minhaz000/prime-motors-server/internal/store"
)

func TestGetProductsRoleScoped(t *testing.T) {
	env := newTestEnv(t)

	env.addProduct(models.Product{Name: "Civic 2018", PostedBy: models.PostedBy{Email: "seller1@test.com"}})
	env.addProduct(models.Product{Name: "Corolla 2016", PostedBy: models.PostedBy{Email: "seller2@test.com"}})

	adminToken := env.issueToken(models.User{Email: "admin@test.com", Role: "admin"})
	rec := env.do(http.MethodGet, "/products", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeJSON[[]models.Product](t, rec), 2)

	sellerToken := env.issueToken(models.User{Email: "seller1@test.com", Role: "seller"})
	rec = env.do(http.MethodGet, "/products", nil, sellerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeJSON[[]models.Product](t, rec)
	require.Len(t, items, 1)
	require.Equal(t, "seller1@test.com", items[0].PostedBy.Email)

	buyerToken := env.issueToken(models.User{Email: "buyer@test.com"})
	rec = env.do(http.MethodGet, "/products", nil, buyerToken)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetProductsByCategory(t *testing.T) {
	env := newTestEnv(t)

	env.addProduct(models.Product{Name: "Civic 2018", CategoryID: "sedan"})
	env.addProduct(models.Product{Name: "CR-V 2019", CategoryID: "suv"})

	rec := env.do(http.MethodGet, "/products/sedan", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeJSON[[]models.Product](t, rec)
	require.Len(t, items, 1)
	require.Equal(t, "Civic 2018", items[0].Name)
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	payload := models.Product{
		Name:        "Axio 2014",
		CategoryID:  "sedan",
		ResalePrice: 9500,
		PostedBy:    models.PostedBy{Name: "Karim", Email: "karim@test.com"},
	}
	rec := env.do(http.MethodPost, "/product", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON[map[string]string](t, rec)
	require.NotEmpty(t, resp["inserted_id"])
	require.Equal(t, []string{"product_created"}, env.Events.types())
}

func TestDeleteProductOwnership(t *testing.T) {
	env := newTestEnv(t)

	p := env.addProduct(models.Product{Name: "Civic 2018", PostedBy: models.PostedBy{Email: "seller1@test.com"}})
	intruderToken := env.issueToken(models.User{Email: "seller2@test.com", Role: "seller"})

	rec := env.do(http.MethodDelete, "/product/"+p.ID.Hex(), nil, intruderToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// the product must survive the rejected delete
	_, err := env.Store.Products.FindByID(context.Background(), p.ID)
	require.NoError(t, err)

	ownerToken := env.issueToken(models.User{Email: "seller1@test.com", Role: "seller"})
	rec = env.do(http.MethodDelete, "/product/"+p.ID.Hex(), nil, ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err = env.Store.Products.FindByID(context.Background(), p.ID)
	require.True(t, errors.Is(err, store.ErrNotFound))
}

func TestDeleteProductAdmin(t *testing.T) {
	env := newTestEnv(t)

	p := env.addProduct(models.Product{Name: "Civic 2018", PostedBy: models.PostedBy{Email: "seller1@test.com"}})
	adminToken := env.issueToken(models.User{Email: "admin@test.com", Role: "admin"})

	rec := env.do(http.MethodDelete, "/product/"+p.ID.Hex(), nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/product/"+p.ID.Hex(), nil, adminToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	p := env.addProduct(models.Product{Name: "Civic 2018"})

	rec := env.do(http.MethodDelete, "/product/"+p.ID.Hex(), nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	_, err := env.Store.Products.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
}

func TestAdvertisedExcludesBooked(t *testing.T) {
	env := newTestEnv(t)

	env.addProduct(models.Product{Name: "promoted", Advertise: true})
	env.addProduct(models.Product{Name: "promoted and sold", Advertise: true, Booked: true})
	env.addProduct(models.Product{Name: "plain"})

	rec := env.do(http.MethodGet, "/advertise", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeJSON[[]models.Product](t, rec)
	require.Len(t, items, 1)
	require.Equal(t, "promoted", items[0].Name)
}

func TestAdvertiseProduct(t *testing.T) {
	env := newTestEnv(t)

	p := env.addProduct(models.Product{Name: "Civic 2018"})

	rec := env.do(http.MethodPost, "/advertise/"+p.ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := env.Store.Products.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, got.Advertise)
	require.Equal(t, []string{"product_advertised"}, env.Events.types())
}

func TestAdvertiseUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/advertise/aaaaaaaaaaaaaaaaaaaaaaaa", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodPost, "/advertise/not-a-hex-id", nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// client faults share the echo.HTTPError body shape
	require.Contains(t, rec.Body.String(), `"message"`)
	require.NotContains(t, rec.Body.String(), `"status"`)
}
