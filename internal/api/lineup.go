package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MilosMiki/GPGSL-boosts/internal/boost"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

type boostResponse struct {
	EntityID      int  `json:"entityId"`
	Boosted       int  `json:"boosted"`
	ManuallyFixed bool `json:"manuallyFixed"`
	Cancelled     bool `json:"cancelled"`
}

type unmatchedResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Sender         string `json:"sender"`
	Date           string `json:"date"`
	Body           string `json:"body"`
	Reason         string `json:"message"`
	SuggestedTitle string `json:"suggestedTitle,omitempty"`
}

type recordResponse struct {
	Title  string `json:"title"`
	Sender string `json:"sender"`
	Date   string `json:"date"`
	Body   string `json:"body"`
}

type failureResponse struct {
	MessageID string `json:"messageId"`
	Date      string `json:"date"`
	Error     string `json:"error"`
}

type lineupResponse struct {
	Duplicates         map[int]bool        `json:"duplicates"`
	Boosts             []boostResponse     `json:"boosts"`
	Unmatched          []unmatchedResponse `json:"unmatched"`
	DeadlineViolations []recordResponse    `json:"deadlineViolations"`
	Other              []recordResponse    `json:"other"`
	Failures           []failureResponse   `json:"failures"`
}

// GetLineup runs a full matching pass over the cached inbox for the requested
// round and returns the partitioned result. Unmatched records carry an
// advisory corrected title for the fix-up workflow.
func (h *Handler) GetLineup(c echo.Context) error {
	raceID, err := strconv.Atoi(c.QueryParam("race"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "race param not set")
	}

	ctx := c.Request().Context()

	race, err := h.store.GetRace(ctx, raceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	drivers, err := h.store.ListDrivers(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	teams, err := h.store.ListTeams(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	overrides, err := h.store.GetOverrides(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	messages, err := h.store.ListMessages(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	viewer := c.QueryParam("viewer")
	if viewer == "" {
		if session, sessionErr := h.store.GetSession(ctx); sessionErr == nil {
			viewer = session.Username
		}
	}

	res := boost.Run(boost.Input{
		Overrides: overrides,
		Messages:  messages,
		Drivers:   drivers,
		Teams:     teams,
		Race:      *race,
		Viewer:    model.Viewer{Username: viewer},
		Now:       time.Now(),
	})

	return c.JSON(http.StatusOK, buildLineupResponse(res, drivers, teams))
}

func buildLineupResponse(res *boost.Result, drivers []model.Driver, teams []model.Team) lineupResponse {
	out := lineupResponse{
		Duplicates:         res.Duplicates,
		Boosts:             make([]boostResponse, 0, len(res.Boosts)),
		Unmatched:          make([]unmatchedResponse, 0, len(res.Unmatched)),
		DeadlineViolations: make([]recordResponse, 0, len(res.DeadlineViolations)),
		Other:              make([]recordResponse, 0, len(res.Other)),
		Failures:           make([]failureResponse, 0, len(res.Failures)),
	}

	for _, b := range res.Boosts {
		out.Boosts = append(out.Boosts, boostResponse{
			EntityID:      b.EntityID,
			Boosted:       b.Boosted,
			ManuallyFixed: b.ManuallyFixed,
			Cancelled:     b.Cancelled,
		})
	}
	for _, u := range res.Unmatched {
		out.Unmatched = append(out.Unmatched, unmatchedResponse{
			ID:             u.ID,
			Title:          u.Title,
			Sender:         u.Sender,
			Date:           u.Date,
			Body:           u.Body,
			Reason:         u.Reason,
			SuggestedTitle: boost.SuggestTitle(u.Title, u.Sender, drivers, teams),
		})
	}
	for _, r := range res.DeadlineViolations {
		out.DeadlineViolations = append(out.DeadlineViolations, recordResponse(r))
	}
	for _, r := range res.Other {
		out.Other = append(out.Other, recordResponse(r))
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, failureResponse{
			MessageID: f.MessageID,
			Date:      f.Date,
			Error:     f.Err.Error(),
		})
	}

	return out
}

type fixRequest struct {
	MessageID     string `json:"messageId"`
	OriginalTitle string `json:"originalTitle"`
	FixedTitle    string `json:"fixedTitle"`
	Sender        string `json:"sender"`
}

// SaveFix persists an admin-approved title override; the next lineup pass
// picks it up.
func (h *Handler) SaveFix(c echo.Context) error {
	var req fixRequest
	if err := c.Bind(&req); err != nil || req.MessageID == "" || req.FixedTitle == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "messageId and fixedTitle are required")
	}

	fixed := &model.FixedTitle{
		MessageID:     req.MessageID,
		OriginalTitle: req.OriginalTitle,
		FixedTitle:    req.FixedTitle,
		Sender:        req.Sender,
	}
	if err := h.store.SaveFixedTitle(c.Request().Context(), fixed); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
