package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/config"
	"github.com/MilosMiki/GPGSL-boosts/internal/forum"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
	"github.com/MilosMiki/GPGSL-boosts/internal/service"
	"github.com/MilosMiki/GPGSL-boosts/internal/storage"
)

// initStorage opens the SQLite store at the configured path and runs
// migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath()

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newForumClient builds the scraper against the configured forum root.
func newForumClient() *forum.Client {
	return forum.NewClient(forum.WithBaseURL(config.ForumBaseURL()))
}

// requireSession loads the saved forum login and verifies it is still live.
func requireSession(ctx context.Context, store service.Storage, client *forum.Client) (*model.Session, error) {
	session, err := store.GetSession(ctx)
	if err != nil {
		return nil, common.NewUserError("no saved login, run 'gpgsl login' first", err)
	}

	ok, err := client.CheckSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to verify session: %w", err)
	}
	if !ok {
		if clearErr := store.ClearSession(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, common.NewUserError("forum session expired, run 'gpgsl login' again", nil)
	}

	return session, nil
}
