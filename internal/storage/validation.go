// Package storage provides the data persistence layer for the boost tracker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidDriver  = errors.New("invalid driver")
	ErrInvalidTeam    = errors.New("invalid team")
	ErrInvalidRace    = errors.New("invalid race")
	ErrInvalidFix     = errors.New("invalid fixed title")
	ErrInvalidSession = errors.New("invalid session")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDriver validates a roster driver.
func validateDriver(driver *model.Driver) error {
	if driver == nil {
		return fmt.Errorf("%w: driver", ErrNilParameter)
	}
	if driver.ID <= 0 {
		return fmt.Errorf("%w: missing id", ErrInvalidDriver)
	}
	if strings.TrimSpace(driver.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDriver)
	}
	if strings.TrimSpace(driver.Username) == "" {
		return fmt.Errorf("%w: missing username", ErrInvalidDriver)
	}
	return nil
}

// validateTeam validates a roster team.
func validateTeam(team *model.Team) error {
	if team == nil {
		return fmt.Errorf("%w: team", ErrNilParameter)
	}
	if team.ID <= 0 {
		return fmt.Errorf("%w: missing id", ErrInvalidTeam)
	}
	if strings.TrimSpace(team.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTeam)
	}
	if strings.TrimSpace(team.Username) == "" {
		return fmt.Errorf("%w: missing username", ErrInvalidTeam)
	}
	return nil
}

// validateRace validates a calendar entry.
func validateRace(race *model.Race) error {
	if race == nil {
		return fmt.Errorf("%w: race", ErrNilParameter)
	}
	if race.ID <= 0 {
		return fmt.Errorf("%w: missing id", ErrInvalidRace)
	}
	if race.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidRace)
	}
	if strings.TrimSpace(race.Venue) == "" {
		return fmt.Errorf("%w: missing venue", ErrInvalidRace)
	}
	return nil
}

// validateFixedTitle validates a title override.
func validateFixedTitle(fixed *model.FixedTitle) error {
	if fixed == nil {
		return fmt.Errorf("%w: fixed title", ErrNilParameter)
	}
	if strings.TrimSpace(fixed.MessageID) == "" {
		return fmt.Errorf("%w: missing message id", ErrInvalidFix)
	}
	if strings.TrimSpace(fixed.FixedTitle) == "" {
		return fmt.Errorf("%w: missing corrected title", ErrInvalidFix)
	}
	return nil
}

// validateSession validates a forum session.
func validateSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("%w: session", ErrNilParameter)
	}
	if strings.TrimSpace(session.Username) == "" {
		return fmt.Errorf("%w: missing username", ErrInvalidSession)
	}
	if strings.TrimSpace(session.Cookie) == "" {
		return fmt.Errorf("%w: missing cookie", ErrInvalidSession)
	}
	return nil
}
