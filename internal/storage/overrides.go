package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// ListFixedTitles retrieves every stored title override, newest first.
func (s *SQLiteStorage) ListFixedTitles(ctx context.Context) ([]model.FixedTitle, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT message_id, original_title, fixed_title, sender, created_at
		FROM fixed_titles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed titles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var fixes []model.FixedTitle
	for rows.Next() {
		var fixed model.FixedTitle
		err := rows.Scan(
			&fixed.MessageID,
			&fixed.OriginalTitle,
			&fixed.FixedTitle,
			&fixed.Sender,
			&fixed.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed title: %w", err)
		}
		fixes = append(fixes, fixed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fixed titles: %w", err)
	}

	return fixes, nil
}

// GetOverrides returns the overrides in the shape a matching pass consumes,
// keyed by message id.
func (s *SQLiteStorage) GetOverrides(ctx context.Context) (map[string]string, error) {
	fixes, err := s.ListFixedTitles(ctx)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]string, len(fixes))
	for _, fixed := range fixes {
		overrides[fixed.MessageID] = fixed.FixedTitle
	}
	return overrides, nil
}

// SaveFixedTitle inserts or replaces a title override for a message.
func (s *SQLiteStorage) SaveFixedTitle(ctx context.Context, fixed *model.FixedTitle) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateFixedTitle(fixed); err != nil {
		return err
	}

	if fixed.CreatedAt.IsZero() {
		fixed.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fixed_titles (message_id, original_title, fixed_title, sender, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(message_id) DO UPDATE SET
			original_title = excluded.original_title,
			fixed_title = excluded.fixed_title,
			sender = excluded.sender,
			created_at = excluded.created_at
	`, fixed.MessageID, fixed.OriginalTitle, fixed.FixedTitle, fixed.Sender, fixed.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save fixed title: %w", err)
	}

	return nil
}

// DeleteFixedTitle removes an override, reverting the message to its raw title.
func (s *SQLiteStorage) DeleteFixedTitle(ctx context.Context, messageID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(messageID, "messageID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM fixed_titles WHERE message_id = ?`, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete fixed title: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: fixed title for message %s", common.ErrNotFound, messageID)
	}

	return nil
}
