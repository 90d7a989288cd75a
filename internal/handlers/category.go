package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minhaz000/prime-motors-server/internal/store"
)

type CategoryHandler struct {
	Store *store.Store
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	items, err := h.Store.Categories.ListAll(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}
