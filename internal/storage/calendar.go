package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// ListRaces retrieves the season calendar in round order.
func (s *SQLiteStorage) ListRaces(ctx context.Context) ([]model.Race, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, venue, track, country
		FROM calendar
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var races []model.Race
	for rows.Next() {
		var race model.Race
		if err := rows.Scan(&race.ID, &race.Date, &race.Venue, &race.Track, &race.Country); err != nil {
			return nil, fmt.Errorf("failed to scan race: %w", err)
		}
		races = append(races, race)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calendar: %w", err)
	}

	return races, nil
}

// GetRace retrieves one calendar entry by round number.
func (s *SQLiteStorage) GetRace(ctx context.Context, id int) (*model.Race, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var race model.Race
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, venue, track, country
		FROM calendar
		WHERE id = ?
	`, id).Scan(&race.ID, &race.Date, &race.Venue, &race.Track, &race.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: race %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get race: %w", err)
	}

	return &race, nil
}

// SaveRace inserts or updates a calendar entry.
func (s *SQLiteStorage) SaveRace(ctx context.Context, race *model.Race) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRace(race); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calendar (id, date, venue, track, country)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			venue = excluded.venue,
			track = excluded.track,
			country = excluded.country
	`, race.ID, race.Date, race.Venue, race.Track, race.Country)
	if err != nil {
		return fmt.Errorf("failed to save race: %w", err)
	}

	return nil
}
