package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "well formed title unchanged",
			title: "Driver Boost - Smith - Monaco",
			want:  "Driver Boost - Smith - Monaco",
		},
		{
			name:  "missing delimiter repaired",
			title: "Driver Boost Smith - Monaco",
			want:  "Driver Boost - Smith - Monaco",
		},
		{
			name:  "team boost delimiter repaired",
			title: "Team Boost Ferrari - Monaco - Single",
			want:  "Team Boost - Ferrari - Monaco - Single",
		},
		{
			name:  "decorative punctuation trimmed",
			title: `"Driver Boost - Smith - Monaco"`,
			want:  "Driver Boost - Smith - Monaco",
		},
		{
			name:  "leading dots and trailing parens trimmed",
			title: ". Driver Boost - Smith - Monaco)",
			want:  "Driver Boost - Smith - Monaco",
		},
		{
			name:  "en dash delimiter left alone",
			title: "Driver Boost – Smith – Monaco",
			want:  "Driver Boost – Smith – Monaco",
		},
		{
			name:  "unrelated title untouched",
			title: "Race report",
			want:  "Race report",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.title))
		})
	}
}

func TestDecodeTitle(t *testing.T) {
	assert.Equal(t, "Team Boost - M&M Racing - Monaco - Single",
		DecodeTitle("Team Boost - M&amp;M Racing - Monaco - Single"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantDriver bool
		wantTeam   bool
	}{
		{
			name:       "explicit driver boost",
			title:      "Driver Boost - Smith - Monaco",
			wantDriver: true,
		},
		{
			name:     "explicit team boost",
			title:    "Team Boost - Ferrari - Monaco - Double",
			wantTeam: true,
		},
		{
			name:       "case insensitive",
			title:      "dRiVeR bOoSt - Smith - Monaco",
			wantDriver: true,
		},
		{
			name:     "bare boost with single marker is a team boost",
			title:    "Boost - Ferrari - Monaco - Single",
			wantTeam: true,
		},
		{
			name:     "bare boost with double marker is a team boost",
			title:    "Boost - Ferrari - Monaco - double",
			wantTeam: true,
		},
		{
			name:       "bare boost without marker is a driver boost",
			title:      "Boost - Smith - Monaco",
			wantDriver: true,
		},
		{
			name:       "both phrases present stays ambiguous",
			title:      "Driver Boost Team Boost - Monaco",
			wantDriver: true,
			wantTeam:   true,
		},
		{
			name:  "not a boost",
			title: "Hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.title)
			assert.Equal(t, tt.wantDriver, got.DriverBoost, "DriverBoost")
			assert.Equal(t, tt.wantTeam, got.TeamBoost, "TeamBoost")
		})
	}
}

func TestMatchesVenue(t *testing.T) {
	race := model.Race{Venue: "Monaco Grand Prix", Track: "Monte Carlo", Country: "Monaco"}

	assert.True(t, MatchesVenue("Driver Boost - Smith - Monaco", race))
	assert.True(t, MatchesVenue("Boost - Ferrari - Monte Carlo - Single", race))

	// The venue test is case-sensitive, unlike classification.
	assert.False(t, MatchesVenue("Driver Boost - Smith - monaco", race))
	assert.False(t, MatchesVenue("Driver Boost - Smith - Spa", race))
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled("Driver Boost - Smith - Monaco - cancelled"))
	assert.True(t, IsCancelled("Driver Boost - Smith - Monaco - CANCELLED  "))
	assert.True(t, IsCancelled("Driver Boost - Smith - Monaco – cancelled"))
	assert.False(t, IsCancelled("Driver Boost - Smith - Monaco"))
	assert.False(t, IsCancelled("cancelled - Driver Boost - Smith - Monaco"))
}

func TestExtractDriverBoost(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantName  string
		wantVenue string
		wantOK    bool
	}{
		{
			name:      "plain title",
			title:     "Driver Boost - Smith - Monaco",
			wantName:  "Smith",
			wantVenue: "Monaco",
			wantOK:    true,
		},
		{
			name:      "bare boost prefix",
			title:     "Boost - Smith - Monaco",
			wantName:  "Smith",
			wantVenue: "Monaco",
			wantOK:    true,
		},
		{
			name:      "parenthetical username after name",
			title:     "Driver Boost - John Smith (jsmith) - Monaco",
			wantName:  "John Smith",
			wantVenue: "Monaco",
			wantOK:    true,
		},
		{
			name:      "name fully parenthesized",
			title:     "Driver Boost - (jsmith) - Monaco",
			wantName:  "jsmith",
			wantVenue: "Monaco",
			wantOK:    true,
		},
		{
			name:      "trailing dash tolerated",
			title:     "Driver Boost - Smith - Monaco -",
			wantName:  "Smith",
			wantVenue: "Monaco",
			wantOK:    true,
		},
		{
			name:      "multi word venue",
			title:     "Driver Boost - Smith - Monaco Grand Prix",
			wantName:  "Smith",
			wantVenue: "Monaco Grand Prix",
			wantOK:    true,
		},
		{
			name:   "no delimiters",
			title:  "Driver Boost please",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotVenue, ok := ExtractDriverBoost(tt.title)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, gotName)
			assert.Equal(t, tt.wantVenue, gotVenue)
		})
	}
}

func TestExtractTeamBoost(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantName string
		wantType string
		wantOK   bool
	}{
		{
			name:     "double boost",
			title:    "Team Boost - Ferrari - Monaco - Double",
			wantName: "Ferrari",
			wantType: "Double",
			wantOK:   true,
		},
		{
			name:     "single boost lower case",
			title:    "Team Boost - Ferrari - Monaco - single",
			wantName: "Ferrari",
			wantType: "single",
			wantOK:   true,
		},
		{
			name:     "comma delimiters",
			title:    "Team Boost, Ferrari, Monaco, Double",
			wantName: "Ferrari",
			wantType: "Double",
			wantOK:   true,
		},
		{
			name:     "parenthesized boost type",
			title:    "Team Boost - Ferrari - Monaco (Double)",
			wantName: "Ferrari",
			wantType: "Double",
			wantOK:   true,
		},
		{
			name:   "missing boost type",
			title:  "Team Boost - Ferrari - Monaco",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, _, gotType, ok := ExtractTeamBoost(tt.title)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, gotName)
			assert.Equal(t, tt.wantType, gotType)
		})
	}
}

func TestAppendBodyBoostType(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		want  string
	}{
		{
			name:  "type already in title",
			title: "Team Boost - Ferrari - Monaco - Double",
			body:  "single please",
			want:  "Team Boost - Ferrari - Monaco - Double",
		},
		{
			name:  "single from body",
			title: "Team Boost - Ferrari - Monaco",
			body:  "I would like a single boost please",
			want:  "Team Boost - Ferrari - Monaco - single",
		},
		{
			name:  "double from body",
			title: "Team Boost - Ferrari - Monaco",
			body:  "Going for the DOUBLE this time",
			want:  "Team Boost - Ferrari - Monaco - double",
		},
		{
			name:  "single wins over double",
			title: "Team Boost - Ferrari - Monaco",
			body:  "single, not double",
			want:  "Team Boost - Ferrari - Monaco - single",
		},
		{
			name:  "nothing in body",
			title: "Team Boost - Ferrari - Monaco",
			body:  "good luck everyone",
			want:  "Team Boost - Ferrari - Monaco",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendBodyBoostType(tt.title, tt.body))
		})
	}
}
