// Package service defines the interfaces between the application layers.
package service

import (
	"context"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Roster operations
	ListDrivers(ctx context.Context) ([]model.Driver, error)
	SaveDriver(ctx context.Context, driver *model.Driver) error
	DeleteDriver(ctx context.Context, id int) error
	ListTeams(ctx context.Context) ([]model.Team, error)
	SaveTeam(ctx context.Context, team *model.Team) error
	DeleteTeam(ctx context.Context, id int) error

	// Calendar operations
	ListRaces(ctx context.Context) ([]model.Race, error)
	GetRace(ctx context.Context, id int) (*model.Race, error)
	SaveRace(ctx context.Context, race *model.Race) error

	// Title override operations
	ListFixedTitles(ctx context.Context) ([]model.FixedTitle, error)
	GetOverrides(ctx context.Context) (map[string]string, error)
	SaveFixedTitle(ctx context.Context, fixed *model.FixedTitle) error
	DeleteFixedTitle(ctx context.Context, messageID string) error

	// Warning totals
	ListWarnings(ctx context.Context) ([]model.WarningTotal, error)
	SaveWarning(ctx context.Context, warning *model.WarningTotal) error

	// Forum session
	GetSession(ctx context.Context) (*model.Session, error)
	SaveSession(ctx context.Context, session *model.Session) error
	ClearSession(ctx context.Context) error

	// Message cache
	SaveMessages(ctx context.Context, messages []model.RawMessage) error
	ListMessages(ctx context.Context) ([]model.RawMessage, error)
	UpdateMessageBody(ctx context.Context, id, body string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// MessageSource fetches private messages from the forum.
type MessageSource interface {
	Login(ctx context.Context, username, password string) (*model.Session, error)
	CheckSession(ctx context.Context, session *model.Session) (bool, error)
	FetchMessages(ctx context.Context, session *model.Session) ([]model.RawMessage, error)
	FetchMessageBody(ctx context.Context, session *model.Session, messageID string) (string, error)
}

// AnnouncementSource locates the current boost announcement post.
type AnnouncementSource interface {
	FindAnnouncement(ctx context.Context) (*Announcement, error)
}

// Announcement describes the forum post opening a boost window.
type Announcement struct {
	Venue string
	Round int
}
