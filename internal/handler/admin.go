package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AdminListBookings(c *ginext.Context) {
	filter, err := bookingFilterFromQuery(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), h.actor(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings, h.now()))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Approve(c.Request.Context(), h.actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.now()))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}

	var req dto.RejectRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Reject(c.Request.Context(), h.actor(c), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.now()))
}

func (h *Handler) AdminListUsers(c *ginext.Context) {
	filter := domain.UserFilter{Search: c.Query("search")}

	from, err := parseDay(c.Query("from"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	to, err := parseDay(c.Query("to"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	filter.CreatedFrom = from
	if to != nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.CreatedTo = &end
	}

	users, err := h.userService.List(c.Request.Context(), h.actor(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AdminActivity(c *ginext.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(c, fmt.Errorf("%w: limit must be a number", domain.ErrValidation))
			return
		}
		limit = n
	}

	entries, err := h.statsService.Activity(c.Request.Context(), h.actor(c), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponses(entries))
}

func (h *Handler) Stats(c *ginext.Context) {
	dashboard, err := h.statsService.Dashboard(c.Request.Context(), h.actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

func bookingFilterFromQuery(c *ginext.Context) (domain.BookingFilter, error) {
	var filter domain.BookingFilter

	if raw := strings.TrimSpace(c.Query("status")); raw != "" && !strings.EqualFold(raw, "all") {
		for _, part := range strings.Split(raw, ",") {
			status, err := parseStatus(part)
			if err != nil {
				return filter, err
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if raw := strings.TrimSpace(c.Query("paid")); raw != "" && !strings.EqualFold(raw, "all") {
		paid, err := parsePaid(raw)
		if err != nil {
			return filter, err
		}
		filter.Paid = &paid
	}

	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid user_id", domain.ErrValidation)
		}
		filter.UserID = &id
	}

	for _, p := range []struct {
		key string
		dst *string
	}{{"from", &filter.DateFrom}, {"to", &filter.DateTo}} {
		raw := strings.TrimSpace(c.Query(p.key))
		if raw == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, raw); err != nil {
			return filter, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrValidation, p.key)
		}
		*p.dst = raw
	}

	return filter, nil
}

func parseStatus(raw string) (domain.BookingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return domain.BookingStatusPending, nil
	case "approved":
		return domain.BookingStatusApproved, nil
	case "rejected":
		return domain.BookingStatusRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", domain.ErrValidation, raw)
	}
}

func parsePaid(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "paid":
		return true, nil
	case "no", "unpaid":
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: invalid paid filter %q", domain.ErrValidation, raw)
	}
	return v, nil
}

func parseDay(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return &d, nil
}
