package handler

import (
	"net/http"
	"strings"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if strings.EqualFold(filter.Category, "all") {
		filter.Category = ""
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.eventService.Categories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), h.actor(c), toEventInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	var req dto.EventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), h.actor(c), id, toEventInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), h.actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ValidateDates(c *ginext.Context) {
	var req dto.ValidateDatesRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.eventService.ValidateAvailability(req.AvailableDates); err != nil {
		c.JSON(http.StatusOK, dto.ValidateDatesResponse{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ValidateDatesResponse{OK: true})
}

func toEventInput(req dto.EventRequest) domain.EventInput {
	return domain.EventInput{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		AvailableDays:   req.AvailableDays,
		AvailableVenues: req.AvailableVenues,
		AvailableDates:  req.AvailableDates,
	}
}
