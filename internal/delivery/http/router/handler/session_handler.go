// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"neocart/internal/delivery/http/middleware"
	"neocart/internal/delivery/http/response"
	"neocart/internal/domain/entity"
	"neocart/internal/domain/service"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// Login exchanges a federated ID token for a session.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	view, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionJSON(view), "Login successful")
}

// Current returns the session projection, resolving a held credential first
// if needed.
func (h *SessionHandler) Current(c echo.Context) error {
	session := middleware.GetSession(c)

	if session != nil && session.Phase() == entity.PhaseResolving {
		view, err := h.uc.Resolve(c.Request().Context(), session)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toSessionJSON(view), "")
	}

	return response.Success(c, http.StatusOK, toSessionJSON(h.uc.View(session)), "")
}

// Logout clears the session.
func (h *SessionHandler) Logout(c echo.Context) error {
	session := middleware.GetSession(c)

	if err := h.uc.Logout(c.Request().Context(), session); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// UpdateProfile saves the contact fields and rotates the credential.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "All profile fields are required")
	}

	view, err := h.uc.UpdateProfile(c.Request().Context(), middleware.GetSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The rotated credential goes back to the client for its next requests.
	return response.Success(c, http.StatusOK, map[string]any{
		"session":     toSessionJSON(view),
		"accessToken": middleware.GetSession(c).Credential().String(),
	}, "Profile updated successfully")
}

type adminViewInput struct {
	View string `json:"view" validate:"required"`
}

// SetAdminView stores the admin's pricing tier selection.
func (h *SessionHandler) SetAdminView(c echo.Context) error {
	var input *adminViewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}

	session := middleware.GetSession(c)
	if err := h.uc.SetAdminView(c.Request().Context(), session, entity.PriceView(input.View)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionJSON(h.uc.View(session)), "Pricing view updated")
}

// Theme returns the persisted theme preference.
func (h *SessionHandler) Theme(c echo.Context) error {
	theme, err := h.uc.Theme(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": string(theme)}, "")
}

type uiStateJSON struct {
	SidebarOpen    bool `json:"sidebarOpen"`
	MobileMenuOpen bool `json:"mobileMenuOpen"`
}

// UIState returns the session's transient presentation flags.
func (h *SessionHandler) UIState(c echo.Context) error {
	ui := middleware.GetSession(c).UI()

	return response.Success(c, http.StatusOK, uiStateJSON{
		SidebarOpen:    ui.SidebarOpen,
		MobileMenuOpen: ui.MobileMenuOpen,
	}, "")
}

// SetUIState replaces the session's transient presentation flags. They never
// reach the commerce API and vanish with the session.
func (h *SessionHandler) SetUIState(c echo.Context) error {
	var input *uiStateJSON
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid UI state input")
	}

	middleware.GetSession(c).SetUI(state.UIState{
		SidebarOpen:    input.SidebarOpen,
		MobileMenuOpen: input.MobileMenuOpen,
	})

	return response.Success(c, http.StatusOK, input, "")
}

type themeInput struct {
	Theme string `json:"theme" validate:"required"`
}

// SetTheme persists the theme preference.
func (h *SessionHandler) SetTheme(c echo.Context) error {
	var input *themeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme input")
	}

	if err := h.uc.SetTheme(c.Request().Context(), service.Theme(input.Theme)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": input.Theme}, "Theme updated")
}
