package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minhaz000/prime-motors-server/internal/events"
	"github.com/minhaz000/prime-motors-server/internal/store"
)

type UserHandler struct {
	Store    *store.Store
	Producer events.Publisher
}

// GetBuyers lists users whose role is neither admin nor seller.
// Admin-gated by the router.
func (h *UserHandler) GetBuyers(c echo.Context) error {
	items, err := h.Store.Users.ListBuyers(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserHandler) GetSellers(c echo.Context) error {
	items, err := h.Store.Users.ListSellers(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

// VerifyUser grants a seller the verified badge.
func (h *UserHandler) VerifyUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	matched, err := h.Store.Users.SetVerified(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if matched == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	publish(c, h.Producer, events.TopicUserEvents, id.Hex(), map[string]any{
		"type":   "seller_verified",
		"userID": id.Hex(),
	})

	return c.JSON(http.StatusOK, echo.Map{"matched_count": matched})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deleted, err := h.Store.Users.Delete(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if deleted == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	publish(c, h.Producer, events.TopicUserEvents, id.Hex(), map[string]any{
		"type":   "user_deleted",
		"userID": id.Hex(),
	})

	return c.JSON(http.StatusOK, echo.Map{"deleted_count": deleted})
}

// GetUserRole returns the full user document for the query email, or
// null when no such user exists.
func (h *UserHandler) GetUserRole(c echo.Context) error {
	email := c.QueryParam("email")

	u, err := h.Store.Users.FindByEmail(c.Request().Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateUser merge-updates the user document for the query email with
// the request body.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	email := c.QueryParam("email")

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	delete(fields, "_id")
	delete(fields, "id")

	matched, err := h.Store.Users.MergeByEmail(c.Request().Context(), email, fields)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"matched_count": matched})
}
