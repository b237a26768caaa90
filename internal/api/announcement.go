package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
)

type announcementResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Round   int    `json:"round,omitempty"`
	Venue   string `json:"venue,omitempty"`
}

// GetAnnouncement reports the currently open boost window, scraped from the
// league account's recent forum posts.
func (h *Handler) GetAnnouncement(c echo.Context) error {
	announcement, err := h.announcements.FindAnnouncement(c.Request().Context())
	if err != nil {
		if errors.Is(err, common.ErrNoAnnouncement) {
			return c.JSON(http.StatusOK, announcementResponse{
				Success: false,
				Message: "Boost post not found",
			})
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, announcementResponse{
		Success: true,
		Message: fmt.Sprintf("Next Boost: Round %d - %s", announcement.Round, announcement.Venue),
		Round:   announcement.Round,
		Venue:   announcement.Venue,
	})
}
