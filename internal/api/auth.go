package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message,omitempty"`
	Username string             `json:"username,omitempty"`
	Messages []messageResponse  `json:"messages,omitempty"`
}

type messageResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Sender string `json:"sender"`
	Date   string `json:"date"`
	Body   string `json:"body"`
}

// Login authenticates against the forum, stores the session and returns the
// freshly scraped inbox.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, sessionResponse{
			Success: false,
			Message: "Missing username or password",
		})
	}

	ctx := c.Request().Context()
	session, err := h.messages.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrLoginFailed) {
			return c.JSON(http.StatusUnauthorized, sessionResponse{
				Success: false,
				Message: "Login failed",
			})
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	if err := h.store.SaveSession(ctx, session); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return h.refreshInbox(c, session)
}

// CheckSession validates the stored session against the forum and, when still
// live, returns the current inbox.
func (h *Handler) CheckSession(c echo.Context) error {
	ctx := c.Request().Context()

	session, err := h.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			return c.JSON(http.StatusUnauthorized, sessionResponse{
				Success: false,
				Message: "Not logged in",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	ok, err := h.messages.CheckSession(ctx, session)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, sessionResponse{
			Success: false,
			Message: "Session expired",
		})
	}

	return h.refreshInbox(c, session)
}

func (h *Handler) refreshInbox(c echo.Context, session *model.Session) error {
	ctx := c.Request().Context()

	messages, err := h.messages.FetchMessages(ctx, session)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if err := h.store.SaveMessages(ctx, messages); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]messageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, messageResponse{
			ID:     msg.ID,
			Title:  msg.Title,
			Sender: msg.Sender,
			Date:   msg.Date,
			Body:   msg.Body,
		})
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Success:  true,
		Username: session.Username,
		Messages: out,
	})
}
