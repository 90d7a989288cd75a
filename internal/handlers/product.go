package handlers

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minhaz000/prime-motors-server/internal/events"
	"github.com/minhaz000/prime-motors-server/internal/middleware/auth"
	"github.com/minhaz000/prime-motors-server/internal/models"
	"github.com/minhaz000/prime-motors-server/internal/service/search"
	"github.com/minhaz000/prime-motors-server/internal/store"
)

type ProductHandler struct {
	Store    *store.Store
	Producer events.Publisher
	ES       *elasticsearch.Client
	Index    string
}

// GetProducts lists listings scoped by the caller's role: admins see
// everything, sellers see their own, buyers see nothing.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	switch auth.RoleFrom(c) {
	case models.RoleAdmin:
		items, err := h.Store.Products.ListAll(ctx)
		if err != nil {
			return errorResponse(c, http.StatusInternalServerError, err)
		}
		return c.JSON(http.StatusOK, items)
	case models.RoleSeller:
		items, err := h.Store.Products.ListByOwner(ctx, auth.EmailFrom(c))
		if err != nil {
			return errorResponse(c, http.StatusInternalServerError, err)
		}
		return c.JSON(http.StatusOK, items)
	default:
		return echo.NewHTTPError(http.StatusForbidden, "you are not admin or seller")
	}
}

func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	items, err := h.Store.Products.ListByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var p models.Product
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.Store.Products.Insert(c.Request().Context(), p)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	p.ID = id

	publish(c, h.Producer, events.TopicProductEvents, id.Hex(), map[string]any{
		"type":      "product_created",
		"productID": id.Hex(),
		"name":      p.Name,
	})
	h.index(c, p)

	return c.JSON(http.StatusCreated, echo.Map{"inserted_id": id.Hex()})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	switch auth.RoleFrom(c) {
	case models.RoleAdmin:
		// admins may delete any listing
	case models.RoleSeller:
		p, err := h.Store.Products.FindByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return errorResponse(c, http.StatusInternalServerError, err)
		}
		if p.PostedBy.Email != auth.EmailFrom(c) {
			return echo.NewHTTPError(http.StatusForbidden, "you are not the owner of this product")
		}
	default:
		return echo.NewHTTPError(http.StatusForbidden, "you are not admin or seller")
	}

	deleted, err := h.Store.Products.Delete(ctx, id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if deleted == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	publish(c, h.Producer, events.TopicProductEvents, id.Hex(), map[string]any{
		"type":      "product_deleted",
		"productID": id.Hex(),
	})

	return c.JSON(http.StatusOK, echo.Map{"deleted_count": deleted})
}

// GetAdvertised lists promoted products that have not been booked yet.
func (h *ProductHandler) GetAdvertised(c echo.Context) error {
	items, err := h.Store.Products.ListAdvertised(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) AdvertiseProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	matched, err := h.Store.Products.SetAdvertised(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if matched == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	publish(c, h.Producer, events.TopicProductEvents, id.Hex(), map[string]any{
		"type":      "product_advertised",
		"productID": id.Hex(),
	})

	return c.JSON(http.StatusOK, echo.Map{"matched_count": matched})
}

func (h *ProductHandler) index(c echo.Context, p models.Product) {
	if h.ES == nil {
		return
	}
	if err := search.IndexProduct(c.Request().Context(), h.ES, h.Index, p); err != nil {
		c.Logger().Errorf("es index error: %v", err)
	}
}
