package storage

import (
	"context"
	"fmt"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// ListDrivers retrieves the full driver roster ordered by id, which groups
// drivers by team and seat.
func (s *SQLiteStorage) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, username, team
		FROM drivers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var drivers []model.Driver
	for rows.Next() {
		var driver model.Driver
		if err := rows.Scan(&driver.ID, &driver.Name, &driver.Username, &driver.Team); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, driver)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drivers: %w", err)
	}

	return drivers, nil
}

// SaveDriver inserts or updates a roster driver.
func (s *SQLiteStorage) SaveDriver(ctx context.Context, driver *model.Driver) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDriver(driver); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drivers (id, name, username, team)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			username = excluded.username,
			team = excluded.team
	`, driver.ID, driver.Name, driver.Username, driver.Team)
	if err != nil {
		return fmt.Errorf("failed to save driver: %w", err)
	}

	return nil
}

// DeleteDriver removes a driver from the roster.
func (s *SQLiteStorage) DeleteDriver(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: driver %d", common.ErrNotFound, id)
	}

	return nil
}

// ListTeams retrieves all teams ordered by id.
func (s *SQLiteStorage) ListTeams(ctx context.Context) ([]model.Team, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, username, short1, short2
		FROM teams
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var teams []model.Team
	for rows.Next() {
		var team model.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Username, &team.Short1, &team.Short2); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// SaveTeam inserts or updates a team.
func (s *SQLiteStorage) SaveTeam(ctx context.Context, team *model.Team) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTeam(team); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO teams (id, name, username, short1, short2)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			username = excluded.username,
			short1 = excluded.short1,
			short2 = excluded.short2
	`, team.ID, team.Name, team.Username, team.Short1, team.Short2)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

// DeleteTeam removes a team.
func (s *SQLiteStorage) DeleteTeam(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: team %d", common.ErrNotFound, id)
	}

	return nil
}
