package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func testRoster() ([]model.Driver, []model.Team) {
	drivers := []model.Driver{
		{ID: 101, Name: "John Smith", Username: "jsmith", Team: "Ferrari"},
		{ID: 102, Name: "Maria Lopez", Username: "mlopez", Team: "Ferrari"},
		{ID: 201, Name: "Pierre Dubois", Username: "pdubois", Team: "Red Arrow"},
	}
	teams := []model.Team{
		{ID: 1, Name: "Ferrari", Username: "enzo", Short1: "FER", Short2: "Scuderia"},
		{ID: 2, Name: "Red Arrow Racing", Username: "redboss", Short1: "RAR"},
		{ID: 3, Name: "Minimal", Username: "mini"},
	}
	return drivers, teams
}

func TestDriverByIdentity(t *testing.T) {
	drivers, teams := testRoster()
	r := NewResolver(drivers, teams)

	got := r.DriverByIdentity("John Smith")
	require.NotNil(t, got)
	assert.Equal(t, 101, got.ID)

	got = r.DriverByIdentity("JOHN SMITH")
	require.NotNil(t, got)
	assert.Equal(t, 101, got.ID)

	got = r.DriverByIdentity("mlopez")
	require.NotNil(t, got)
	assert.Equal(t, 102, got.ID)

	assert.Nil(t, r.DriverByIdentity("Smith"), "partial names must not resolve")
	assert.Nil(t, r.DriverByIdentity("nobody"))
}

func TestTeamByName(t *testing.T) {
	drivers, teams := testRoster()
	r := NewResolver(drivers, teams)

	tests := []struct {
		name   string
		query  string
		wantID int
	}{
		{name: "full name", query: "Ferrari", wantID: 1},
		{name: "full name folded", query: "ferrari", wantID: 1},
		{name: "first alias", query: "RAR", wantID: 2},
		{name: "second alias", query: "scuderia", wantID: 1},
		{name: "no alias configured", query: "Minimal", wantID: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.TeamByName(tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}

	assert.Nil(t, r.TeamByName("Williams"))
	assert.Nil(t, r.TeamByName(""), "empty fragment matches nothing")
}

func TestDriverForSender(t *testing.T) {
	drivers, teams := testRoster()
	r := NewResolver(drivers, teams)

	admin := model.Viewer{Username: "GPGSL"}
	member := model.Viewer{Username: "jsmith"}

	// The admin mailbox holds the boosts as sent; the sender is the booster.
	got := r.DriverForSender("jsmith", admin)
	require.NotNil(t, got)
	assert.Equal(t, 101, got.ID)

	// A member mailbox holds copies received from the league account, so a
	// message from it is the member's own boost.
	got = r.DriverForSender("GPGSL", member)
	require.NotNil(t, got)
	assert.Equal(t, 101, got.ID)

	// Anything else in a member mailbox resolves to nobody.
	assert.Nil(t, r.DriverForSender("mlopez", member))
	assert.Nil(t, r.DriverForSender("stranger", admin))
}

func TestAuthorized(t *testing.T) {
	drivers, teams := testRoster()
	r := NewResolver(drivers, teams)

	admin := model.Viewer{Username: "GPGSL"}
	member := model.Viewer{Username: "jsmith"}

	tests := []struct {
		name     string
		username string
		sender   string
		viewer   model.Viewer
		want     bool
	}{
		{
			name:     "admin accepts owner as sender",
			username: "jsmith",
			sender:   "jsmith",
			viewer:   admin,
			want:     true,
		},
		{
			name:     "admin rejects other sender",
			username: "jsmith",
			sender:   "mlopez",
			viewer:   admin,
			want:     false,
		},
		{
			// The ownership check is an exact comparison, stricter than
			// the folded roster lookups.
			name:     "admin rejects case mismatch",
			username: "jsmith",
			sender:   "JSmith",
			viewer:   admin,
			want:     false,
		},
		{
			name:     "member accepts own entity via league account",
			username: "jsmith",
			sender:   "GPGSL",
			viewer:   member,
			want:     true,
		},
		{
			name:     "member rejects someone else's entity",
			username: "mlopez",
			sender:   "GPGSL",
			viewer:   member,
			want:     false,
		},
		{
			name:     "member rejects direct sender",
			username: "jsmith",
			sender:   "jsmith",
			viewer:   member,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Authorized(tt.username, tt.sender, tt.viewer))
		})
	}
}
