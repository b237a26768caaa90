package boost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func testInput(messages []model.RawMessage) Input {
	drivers, teams := testRoster()
	return Input{
		Messages: messages,
		Drivers:  drivers,
		Teams:    teams,
		Race: model.Race{
			ID:      5,
			Date:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Venue:   "Monaco Grand Prix",
			Track:   "Monte Carlo",
			Country: "Monaco",
		},
		Viewer: model.Viewer{Username: "GPGSL"},
		Now:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func msg(id, title, sender string) model.RawMessage {
	return model.RawMessage{
		ID:     id,
		Title:  title,
		Sender: sender,
		Date:   "02/28/2026 3:00PM",
		Body:   "Good luck everyone!",
	}
}

func TestRunDriverBoost(t *testing.T) {
	res := Run(testInput([]model.RawMessage{
		msg("1", "Driver Boost - John Smith - Monaco", "jsmith"),
	}))

	require.Len(t, res.Boosts, 1)
	assert.Equal(t, model.Boost{EntityID: 101, Boosted: model.BoostSingle}, res.Boosts[0])
	assert.Empty(t, res.Unmatched)
	assert.Empty(t, res.Other)
	assert.Empty(t, res.Duplicates)
}

func TestRunTeamBoost(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		body        string
		wantBoosted int
	}{
		{
			name:        "explicit double",
			title:       "Team Boost - Ferrari - Monaco - Double",
			wantBoosted: model.BoostDouble,
		},
		{
			name:        "explicit single",
			title:       "Team Boost - Ferrari - Monaco - Single",
			wantBoosted: model.BoostSingle,
		},
		{
			name:        "alias and type from body",
			title:       "Team Boost - FER - Monaco",
			body:        "We'll take the double this round.",
			wantBoosted: model.BoostDouble,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := msg("1", tt.title, "enzo")
			if tt.body != "" {
				m.Body = tt.body
			}
			res := Run(testInput([]model.RawMessage{m}))

			require.Len(t, res.Boosts, 1)
			assert.Equal(t, 1, res.Boosts[0].EntityID)
			assert.Equal(t, tt.wantBoosted, res.Boosts[0].Boosted)
			assert.Empty(t, res.Unmatched)
		})
	}
}

func TestRunRejections(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		sender     string
		wantReason string
	}{
		{
			name:       "unknown driver",
			title:      "Driver Boost - Nobody - Monaco",
			sender:     "jsmith",
			wantReason: ReasonDriverNotFound,
		},
		{
			name:       "driver boost from wrong sender",
			title:      "Driver Boost - John Smith - Monaco",
			sender:     "mlopez",
			wantReason: ReasonWrongDriverUser,
		},
		{
			name:       "unknown team",
			title:      "Team Boost - Williams - Monaco - Single",
			sender:     "enzo",
			wantReason: ReasonTeamNotFound,
		},
		{
			name:       "team boost from wrong sender",
			title:      "Team Boost - Ferrari - Monaco - Single",
			sender:     "redboss",
			wantReason: ReasonWrongTeamOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(testInput([]model.RawMessage{msg("1", tt.title, tt.sender)}))

			assert.Empty(t, res.Boosts)
			require.Len(t, res.Unmatched, 1)
			assert.Equal(t, tt.wantReason, res.Unmatched[0].Reason)
			assert.Equal(t, "1", res.Unmatched[0].ID)
		})
	}
}

func TestRunWrongVenueGoesToOther(t *testing.T) {
	res := Run(testInput([]model.RawMessage{
		msg("1", "Driver Boost - John Smith - Spa", "jsmith"),
		msg("2", "Weekly newsletter", "moderator"),
	}))

	assert.Empty(t, res.Boosts)
	assert.Empty(t, res.Unmatched)
	require.Len(t, res.Other, 2)
	assert.Equal(t, "Driver Boost - John Smith - Spa", res.Other[0].Title)
	assert.Equal(t, "Weekly newsletter", res.Other[1].Title)
}

func TestRunDuplicateEntity(t *testing.T) {
	res := Run(testInput([]model.RawMessage{
		msg("1", "Driver Boost - John Smith - Monaco", "jsmith"),
		msg("2", "Driver Boost - John Smith - Monaco", "jsmith"),
	}))

	require.Len(t, res.Boosts, 1, "second boost for the same entity is dropped")
	assert.Equal(t, 101, res.Boosts[0].EntityID)
	assert.Equal(t, map[int]bool{101: true}, res.Duplicates)
}

func TestRunRepeatedMessageID(t *testing.T) {
	// A repeated inbox row is the same message, not a duplicate boost.
	res := Run(testInput([]model.RawMessage{
		msg("1", "Driver Boost - John Smith - Monaco", "jsmith"),
		msg("1", "Driver Boost - John Smith - Monaco", "jsmith"),
	}))

	require.Len(t, res.Boosts, 1)
	assert.Empty(t, res.Duplicates)
}

func TestRunDeadline(t *testing.T) {
	onTime := msg("1", "Driver Boost - John Smith - Monaco", "jsmith")
	onTime.Date = "03/01/2026 7:59PM"
	late := msg("2", "Driver Boost - Maria Lopez - Monaco", "mlopez")
	late.Date = "03/01/2026 8:01PM"

	res := Run(testInput([]model.RawMessage{onTime, late}))

	require.Len(t, res.Boosts, 1)
	assert.Equal(t, 101, res.Boosts[0].EntityID)
	require.Len(t, res.DeadlineViolations, 1)
	assert.Equal(t, "Driver Boost - Maria Lopez - Monaco", res.DeadlineViolations[0].Title)
}

func TestRunDateFailure(t *testing.T) {
	bad := msg("1", "Driver Boost - John Smith - Monaco", "jsmith")
	bad.Date = "whenever"

	res := Run(testInput([]model.RawMessage{
		bad,
		msg("2", "Driver Boost - Maria Lopez - Monaco", "mlopez"),
	}))

	require.Len(t, res.Failures, 1)
	assert.Equal(t, "1", res.Failures[0].MessageID)
	assert.Equal(t, "whenever", res.Failures[0].Date)
	assert.Error(t, res.Failures[0].Err)

	// The pass keeps going past the failed message.
	require.Len(t, res.Boosts, 1)
	assert.Equal(t, 102, res.Boosts[0].EntityID)
}

func TestRunCancelledBoost(t *testing.T) {
	res := Run(testInput([]model.RawMessage{
		msg("1", "Driver Boost - John Smith - Monaco - cancelled", "jsmith"),
	}))

	require.Len(t, res.Boosts, 1)
	assert.True(t, res.Boosts[0].Cancelled)
	assert.Equal(t, 101, res.Boosts[0].EntityID)
}

func TestRunOverride(t *testing.T) {
	in := testInput([]model.RawMessage{
		msg("1", "boost pls!!", "jsmith"),
	})
	in.Overrides = map[string]string{"1": "Driver Boost - John Smith - Monaco"}

	res := Run(in)

	require.Len(t, res.Boosts, 1)
	assert.Equal(t, 101, res.Boosts[0].EntityID)
	assert.True(t, res.Boosts[0].ManuallyFixed)
}

func TestRunSenderFallback(t *testing.T) {
	// A title with too few delimiters still matches when the sender is on the
	// roster and the title names both the driver and the venue.
	res := Run(testInput([]model.RawMessage{
		msg("1", "Driver Boost Monaco for John Smith", "jsmith"),
	}))

	require.Len(t, res.Boosts, 1)
	assert.Equal(t, 101, res.Boosts[0].EntityID)
}

func TestRunMemberViewer(t *testing.T) {
	in := testInput([]model.RawMessage{
		msg("1", "Driver Boost - John Smith - Monaco", "GPGSL"),
		msg("2", "Driver Boost - Maria Lopez - Monaco", "GPGSL"),
	})
	in.Viewer = model.Viewer{Username: "jsmith"}

	res := Run(in)

	// A member sees only their own boost as matched; the league account's
	// forward of someone else's boost is rejected.
	require.Len(t, res.Boosts, 1)
	assert.Equal(t, 101, res.Boosts[0].EntityID)
	require.Len(t, res.Unmatched, 1)
	assert.Equal(t, ReasonWrongDriverUser, res.Unmatched[0].Reason)
}

func TestRunEntityEncodedTitle(t *testing.T) {
	res := Run(testInput([]model.RawMessage{
		msg("1", "Driver Boost &#8211; John Smith &#8211; Monaco", "jsmith"),
	}))

	// Entity-encoded dashes decode to en dashes, which are not the expected
	// delimiter, so the sender fallback carries the match.
	require.Len(t, res.Boosts, 1)
	assert.Equal(t, 101, res.Boosts[0].EntityID)
}

func TestRunIdempotent(t *testing.T) {
	in := testInput([]model.RawMessage{
		msg("1", "Driver Boost - John Smith - Monaco", "jsmith"),
		msg("2", "Team Boost - Ferrari - Monaco - Double", "enzo"),
		msg("3", "Driver Boost - John Smith - Monaco", "jsmith"),
		msg("4", "Weekly newsletter", "moderator"),
	})

	first := Run(in)
	second := Run(in)

	assert.Equal(t, first, second)
}
