package storage

import (
	"context"
	"fmt"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// ListWarnings retrieves all warning totals ordered by username.
func (s *SQLiteStorage) ListWarnings(ctx context.Context) ([]model.WarningTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT username, warnings, not_posted
		FROM warnings
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query warnings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.WarningTotal
	for rows.Next() {
		var total model.WarningTotal
		if err := rows.Scan(&total.Username, &total.Warnings, &total.NotPosted); err != nil {
			return nil, fmt.Errorf("failed to scan warning: %w", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate warnings: %w", err)
	}

	return totals, nil
}

// SaveWarning inserts or updates a user's warning total.
func (s *SQLiteStorage) SaveWarning(ctx context.Context, warning *model.WarningTotal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if warning == nil {
		return fmt.Errorf("%w: warning", ErrNilParameter)
	}
	if err := validateString(warning.Username, "username"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO warnings (username, warnings, not_posted, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(username) DO UPDATE SET
			warnings = excluded.warnings,
			not_posted = excluded.not_posted,
			updated_at = CURRENT_TIMESTAMP
	`, warning.Username, warning.Warnings, warning.NotPosted)
	if err != nil {
		return fmt.Errorf("failed to save warning: %w", err)
	}

	return nil
}
