package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peyvand/peyvand/internal/chats"
	"github.com/peyvand/peyvand/internal/owners"
	"github.com/peyvand/peyvand/internal/pairings"
)

// AdminHandler exposes the read-mostly admin API: owners, their chats
// and pairings, plus the pairing enable toggle.
type AdminHandler struct {
	logger   *slog.Logger
	owners   *owners.Service
	chats    *chats.Service
	pairings *pairings.Service
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(log *slog.Logger, ownerSvc *owners.Service, chatSvc *chats.Service, pairingSvc *pairings.Service) *AdminHandler {
	return &AdminHandler{
		logger:   log.With(slog.String("handler", "admin")),
		owners:   ownerSvc,
		chats:    chatSvc,
		pairings: pairingSvc,
	}
}

// Register mounts the admin routes.
func (h *AdminHandler) Register(e *echo.Echo) {
	e.GET("/api/owners", h.ListOwners)
	e.GET("/api/owners/:id/chats", h.ListOwnerChats)
	e.GET("/api/owners/:id/pairings", h.ListOwnerPairings)
	e.PUT("/api/pairings/:kind/:id/enabled", h.SetPairingEnabled)
	e.DELETE("/api/owners/:id/dm-target/:platform", h.ClearDmTarget)
}

// ListOwners returns every owner row.
func (h *AdminHandler) ListOwners(c echo.Context) error {
	list, err := h.owners.List(c.Request().Context())
	if err != nil {
		h.logger.Error("list owners failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "list owners failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// ListOwnerChats returns one owner's registered chats, optionally
// filtered by ?platform= and ?kind=.
func (h *AdminHandler) ListOwnerChats(c echo.Context) error {
	list, err := h.chats.ListOwned(c.Request().Context(), c.Param("id"), c.QueryParam("platform"), c.QueryParam("kind"))
	if err != nil {
		h.logger.Error("list owner chats failed", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "list chats failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// ListOwnerPairings returns one owner's pairings of both kinds.
func (h *AdminHandler) ListOwnerPairings(c echo.Context) error {
	list, err := h.pairings.ListOwned(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list owner pairings failed", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "list pairings failed"})
	}
	return c.JSON(http.StatusOK, list)
}

type setEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// SetPairingEnabled toggles one pairing on or off.
func (h *AdminHandler) SetPairingEnabled(c echo.Context) error {
	var req setEnabledRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
	}
	pairing, err := h.pairings.SetEnabled(c.Request().Context(), c.Param("id"), c.Param("kind"), req.Enabled)
	if err != nil {
		if errors.Is(err, pairings.ErrPairingNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Message: "pairing not found"})
		}
		h.logger.Error("set pairing enabled failed", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "set enabled failed"})
	}
	return c.JSON(http.StatusOK, pairing)
}

// ClearDmTarget drops one owner's DM forwarding target on the given
// platform. The owner keeps the identity link, only routing stops.
func (h *AdminHandler) ClearDmTarget(c echo.Context) error {
	owner, err := h.owners.ClearDmTarget(c.Request().Context(), c.Param("id"), c.Param("platform"))
	if err != nil {
		if errors.Is(err, owners.ErrOwnerNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Message: "owner not found"})
		}
		h.logger.Error("clear dm target failed", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "clear dm target failed"})
	}
	return c.JSON(http.StatusOK, owner)
}
