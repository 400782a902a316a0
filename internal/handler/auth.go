package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

func (h *Handler) Login(c *ginext.Context) {
	h.login(c, false)
}

func (h *Handler) AdminLogin(c *ginext.Context) {
	h.login(c, true)
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.userService.Logout(c.Request.Context(), h.actor(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) login(c *ginext.Context, adminOnly bool) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password, adminOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *Handler) respondWithToken(c *ginext.Context, status int, user *domain.User) {
	token, expiresAt, err := h.tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(status, dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      dto.ToUserResponse(user),
	})
}

// Profile

func (h *Handler) Profile(c *ginext.Context) {
	profile, err := h.userService.Profile(c.Request.Context(), h.actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile, h.now()))
}

func (h *Handler) ChangePassword(c *ginext.Context) {
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), h.actor(c), req.NewPassword, req.ConfirmPassword); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "password updated"})
}
