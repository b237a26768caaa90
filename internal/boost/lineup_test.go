package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func lineupFixture() ([]model.Team, []model.Driver) {
	teams := []model.Team{
		{ID: 100, Name: "Ferrari", Username: "enzo", Short1: "FER", Short2: "Scuderia"},
		{ID: 200, Name: "Red Arrow Racing", Username: "redboss"},
	}
	drivers := []model.Driver{
		{ID: 101, Name: "John Smith", Username: "jsmith", Team: "Ferrari"},
		{ID: 102, Name: "Maria Lopez", Username: "mlopez", Team: "Ferrari"},
		{ID: 103, Name: "Timo Vogel", Username: "tvogel", Team: "Ferrari"},
		{ID: 201, Name: "Pierre Dubois", Username: "pdubois", Team: "Red Arrow Racing"},
		{ID: 202, Name: "Anna Kovacs", Username: "akovacs", Team: "Red Arrow Racing"},
	}
	return teams, drivers
}

func TestBuildLineup(t *testing.T) {
	teams, drivers := lineupFixture()
	res := &Result{
		Duplicates: map[int]bool{202: true},
		Boosts: []model.Boost{
			{EntityID: 100, Boosted: model.BoostDouble},
			{EntityID: 101, Boosted: model.BoostSingle},
			{EntityID: 103, Boosted: model.BoostSingle, ManuallyFixed: true},
			{EntityID: 201, Boosted: model.BoostSingle, Cancelled: true},
		},
	}
	warnings := []model.WarningTotal{
		{Username: "enzo", Warnings: 1},
		{Username: "mlopez", Warnings: 2},
		{Username: "redboss", Warnings: 3},
	}

	rows := BuildLineup(teams, drivers, res, warnings, LineupOptions{Race: true, Test: true})
	require.Len(t, rows, 7)

	assert.Equal(t, LineupRow{
		Entry:   "1. Ferrari (enzo) [FER · Scuderia]",
		Boost:   "8",
		Warning: "10",
	}, rows[0])
	assert.Equal(t, LineupRow{
		Entry: "#1: John Smith (jsmith)",
		Boost: "200",
	}, rows[1])
	assert.Equal(t, LineupRow{
		Entry:   "#2: Maria Lopez (mlopez)",
		Warning: "40",
	}, rows[2])
	assert.Equal(t, LineupRow{
		Entry: "#3: Timo Vogel (tvogel) - manually matched",
		Boost: "200",
	}, rows[3])
	assert.Equal(t, LineupRow{
		Entry:   "2. Red Arrow Racing (redboss)",
		Warning: "out",
	}, rows[4])

	// A cancelled boost keeps its annotation but scores nothing.
	assert.Equal(t, LineupRow{
		Entry: "#1: Pierre Dubois (pdubois) - user cancelled boost",
	}, rows[5])
	assert.Equal(t, LineupRow{
		Entry: "#2: Anna Kovacs (akovacs) - duplicate boost",
	}, rows[6])
}

func TestBuildLineupFilters(t *testing.T) {
	teams, drivers := lineupFixture()
	res := &Result{Duplicates: map[int]bool{}}

	raceOnly := BuildLineup(teams, drivers, res, nil, LineupOptions{Race: true})
	require.Len(t, raceOnly, 6)
	assert.Contains(t, raceOnly[1].Entry, "John Smith")
	assert.Contains(t, raceOnly[2].Entry, "Maria Lopez")

	testOnly := BuildLineup(teams, drivers, res, nil, LineupOptions{Test: true})
	require.Len(t, testOnly, 3)
	assert.Contains(t, testOnly[1].Entry, "Timo Vogel")
}

func TestBuildLineupTestFullGrid(t *testing.T) {
	teams, drivers := lineupFixture()
	res := &Result{Duplicates: map[int]bool{}}

	rows := BuildLineup(teams, drivers, res, nil, LineupOptions{TestFullGrid: true})
	require.Len(t, rows, 6)

	// Ferrari has a real test driver in seat 3; seat 4 is backfilled by the
	// second race driver.
	assert.Equal(t, "#3: Timo Vogel (tvogel)", rows[1].Entry)
	assert.Equal(t, "#4: Maria Lopez (mlopez) - race", rows[2].Entry)

	// Red Arrow has no test drivers at all; both race drivers fill in.
	assert.Equal(t, "#3: Pierre Dubois (pdubois) - race", rows[4].Entry)
	assert.Equal(t, "#4: Anna Kovacs (akovacs) - race", rows[5].Entry)
}

func TestBuildTeamAndDriverLineups(t *testing.T) {
	teams, drivers := lineupFixture()
	res := &Result{
		Duplicates: map[int]bool{},
		Boosts:     []model.Boost{{EntityID: 100, Boosted: model.BoostSingle}},
	}

	teamRows := BuildTeamLineup(teams, res, nil)
	require.Len(t, teamRows, 2)
	assert.Equal(t, "4", teamRows[0].Boost)

	driverRows := BuildDriverLineup(teams, drivers, res, nil, LineupOptions{Race: true, Test: true})
	require.Len(t, driverRows, 5)
	for _, row := range driverRows {
		assert.NotContains(t, row.Entry, "Ferrari (")
	}
}

func TestLineupTSV(t *testing.T) {
	rows := []LineupRow{
		{Entry: "1. Ferrari (enzo)", Boost: "8", Warning: "10"},
		{Entry: "#1: John Smith (jsmith)", Boost: "200", Warning: ""},
	}

	got := LineupTSV(rows)
	assert.Equal(t, "User\tBoosts\tWarning\n1. Ferrari (enzo)\t8\t10\n#1: John Smith (jsmith)\t200\t", got)
}
