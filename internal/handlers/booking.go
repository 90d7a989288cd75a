package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minhaz000/prime-motors-server/internal/events"
	"github.com/minhaz000/prime-motors-server/internal/middleware/auth"
	"github.com/minhaz000/prime-motors-server/internal/models"
	"github.com/minhaz000/prime-motors-server/internal/store"
)

type BookingHandler struct {
	Store    *store.Store
	Producer events.Publisher
}

// GetBookings lists the bookings of the authenticated buyer.
func (h *BookingHandler) GetBookings(c echo.Context) error {
	items, err := h.Store.Bookings.ListByEmail(c.Request().Context(), auth.EmailFrom(c))
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateBooking marks the referenced product booked and records the
// booking. A failed insert restores the flag to its prior value.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var b models.Booking
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	productID, err := primitive.ObjectIDFromHex(b.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	p, err := h.Store.Products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	if err := h.Store.Products.SetBooked(ctx, productID, true); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	id, err := h.Store.Bookings.Insert(ctx, b)
	if err != nil {
		// restore the pre-read value: an earlier booking may already
		// hold the flag
		if rbErr := h.Store.Products.SetBooked(ctx, productID, p.Booked); rbErr != nil {
			c.Logger().Errorf("booking rollback failed: %v", rbErr)
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publish(c, h.Producer, events.TopicBookingEvents, id.Hex(), map[string]any{
		"type":      "booking_created",
		"bookingID": id.Hex(),
		"productID": b.ProductID,
		"email":     b.Email,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "booked successfully"})
}
