package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minhaz000/prime-motors-server/internal/models"
	"github.com/minhaz000/prime-motors-server/internal/service/token"
)

type AuthHandler struct {
	Tokens *token.TokenService
}

// GetToken upserts the posted identity and returns a signed token for
// it.
func (h *AuthHandler) GetToken(c echo.Context) error {
	var u models.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if u.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	signed, err := h.Tokens.Issue(c.Request().Context(), u)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": signed})
}
