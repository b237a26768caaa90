package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// GetSession retrieves the stored forum session, if any.
func (s *SQLiteStorage) GetSession(ctx context.Context) (*model.Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var session model.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT username, cookie, updated_at
		FROM session
		WHERE id = 1
	`).Scan(&session.Username, &session.Cookie, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// SaveSession stores the forum session, replacing any previous login.
func (s *SQLiteStorage) SaveSession(ctx context.Context, session *model.Session) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSession(session); err != nil {
		return err
	}

	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, username, cookie, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			cookie = excluded.cookie,
			updated_at = excluded.updated_at
	`, session.Username, session.Cookie, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// ClearSession logs the user out locally.
func (s *SQLiteStorage) ClearSession(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
