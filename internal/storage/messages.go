package storage

import (
	"context"
	"fmt"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// SaveMessages upserts a batch of scraped messages into the local cache. An
// existing body is preserved when the incoming row carries an empty one, since
// inbox listings arrive without bodies.
func (s *SQLiteStorage) SaveMessages(ctx context.Context, messages []model.RawMessage) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO messages (id, title, sender, date, body)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			sender = excluded.sender,
			date = excluded.date,
			body = CASE WHEN excluded.body != '' THEN excluded.body ELSE messages.body END,
			fetched_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare message upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, msg := range messages {
		if msg.ID == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, msg.ID, msg.Title, msg.Sender, msg.Date, msg.Body); err != nil {
			return fmt.Errorf("failed to save message %s: %w", msg.ID, err)
		}
	}

	return tx.Commit()
}

// ListMessages retrieves the cached message batch in fetch order.
func (s *SQLiteStorage) ListMessages(ctx context.Context) ([]model.RawMessage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, sender, date, body
		FROM messages
		ORDER BY fetched_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []model.RawMessage
	for rows.Next() {
		var msg model.RawMessage
		if err := rows.Scan(&msg.ID, &msg.Title, &msg.Sender, &msg.Date, &msg.Body); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// UpdateMessageBody backfills the body of a cached message after a detail fetch.
func (s *SQLiteStorage) UpdateMessageBody(ctx context.Context, id, body string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE messages SET body = ?, fetched_at = CURRENT_TIMESTAMP WHERE id = ?
	`, body, id)
	if err != nil {
		return fmt.Errorf("failed to update message body: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: message %s", common.ErrNotFound, id)
	}

	return nil
}
