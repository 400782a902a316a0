package handler

import (
	"net/http"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) BookEvent(c *ginext.Context) {
	eventID, ok := parseID(c, "event")
	if !ok {
		return
	}

	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), h.actor(c), domain.CreateBookingInput{
		EventID: eventID,
		Date:    req.Date,
		Venue:   req.Venue,
		Day:     req.Day,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking, h.now()))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListMine(c.Request.Context(), h.actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings, h.now()))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), h.actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.now()))
}

func (h *Handler) PayBooking(c *ginext.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	var req dto.PayRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.CompletePayment(c.Request.Context(), h.actor(c), id, req.Method)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.now()))
}

func (h *Handler) Receipt(c *ginext.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	receipt, err := h.bookingService.Receipt(c.Request.Context(), h.actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}
