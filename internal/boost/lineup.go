package boost

import (
	"fmt"
	"strings"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// LineupOptions selects which grid rows to include.
type LineupOptions struct {
	Race         bool
	Test         bool
	TestFullGrid bool
}

// LineupRow is one rendered line of the lineup table.
type LineupRow struct {
	Entry   string
	Boost   string
	Warning string
}

// BuildLineup assembles the posting-ready lineup: one row per team followed by
// its drivers, annotated with boost points and warning penalties. In
// test-full-grid mode only test seats are listed, and empty third/fourth seats
// are filled by the team's race drivers.
func BuildLineup(teams []model.Team, drivers []model.Driver, res *Result, warnings []model.WarningTotal, opts LineupOptions) []LineupRow {
	boostByEntity := make(map[int]model.Boost, len(res.Boosts))
	for _, b := range res.Boosts {
		boostByEntity[b.EntityID] = b
	}
	warningsByUser := make(map[string]int, len(warnings))
	for _, w := range warnings {
		warningsByUser[w.Username] = w.Warnings
	}

	var rows []LineupRow
	for _, team := range teams {
		rows = append(rows, teamRow(team, boostByEntity, res.Duplicates, warningsByUser))
		for _, entry := range teamDriverEntries(team, drivers, opts) {
			rows = append(rows, driverRow(entry, boostByEntity, res.Duplicates, warningsByUser))
		}
	}
	return rows
}

// BuildDriverLineup lists only the driver rows.
func BuildDriverLineup(teams []model.Team, drivers []model.Driver, res *Result, warnings []model.WarningTotal, opts LineupOptions) []LineupRow {
	boostByEntity := make(map[int]model.Boost, len(res.Boosts))
	for _, b := range res.Boosts {
		boostByEntity[b.EntityID] = b
	}
	warningsByUser := make(map[string]int, len(warnings))
	for _, w := range warnings {
		warningsByUser[w.Username] = w.Warnings
	}

	var rows []LineupRow
	for _, team := range teams {
		for _, entry := range teamDriverEntries(team, drivers, opts) {
			rows = append(rows, driverRow(entry, boostByEntity, res.Duplicates, warningsByUser))
		}
	}
	return rows
}

// BuildTeamLineup lists only the team rows.
func BuildTeamLineup(teams []model.Team, res *Result, warnings []model.WarningTotal) []LineupRow {
	boostByEntity := make(map[int]model.Boost, len(res.Boosts))
	for _, b := range res.Boosts {
		boostByEntity[b.EntityID] = b
	}
	warningsByUser := make(map[string]int, len(warnings))
	for _, w := range warnings {
		warningsByUser[w.Username] = w.Warnings
	}

	rows := make([]LineupRow, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, teamRow(team, boostByEntity, res.Duplicates, warningsByUser))
	}
	return rows
}

// LineupTSV renders rows as tab-separated text with a header line, pasteable
// into a spreadsheet.
func LineupTSV(rows []LineupRow) string {
	var sb strings.Builder
	sb.WriteString("User\tBoosts\tWarning")
	for _, row := range rows {
		sb.WriteString("\n")
		sb.WriteString(row.Entry)
		sb.WriteString("\t")
		sb.WriteString(row.Boost)
		sb.WriteString("\t")
		sb.WriteString(row.Warning)
	}
	return sb.String()
}

func teamRow(team model.Team, boosts map[int]model.Boost, duplicates map[int]bool, warnings map[string]int) LineupRow {
	entry := fmt.Sprintf("%d. %s (%s)", team.Number(), team.Name, team.Username)
	if team.Short1 != "" || team.Short2 != "" {
		entry += " ["
		if team.Short1 != "" {
			entry += team.Short1
		}
		if team.Short1 != "" && team.Short2 != "" {
			entry += " · "
		}
		if team.Short2 != "" {
			entry += team.Short2
		}
		entry += "]"
	}

	boost, hasBoost := boosts[team.ID]
	entry += boostFlag(boost, hasBoost, duplicates[team.ID])

	points := ""
	if hasBoost && !boost.Cancelled {
		switch boost.Boosted {
		case model.BoostSingle:
			points = "4"
		case model.BoostDouble:
			points = "8"
		}
	}

	return LineupRow{
		Entry:   entry,
		Boost:   points,
		Warning: model.TeamPenalty(warnings[team.Username]),
	}
}

// driverEntry is a roster driver as placed on the grid; promoted race drivers
// occupy a synthetic test seat.
type driverEntry struct {
	driver   model.Driver
	seatID   int
	promoted bool
}

func teamDriverEntries(team model.Team, drivers []model.Driver, opts LineupOptions) []driverEntry {
	var teamDrivers []model.Driver
	for _, driver := range drivers {
		if driver.TeamNumber() == team.Number() {
			teamDrivers = append(teamDrivers, driver)
		}
	}

	var entries []driverEntry
	for _, driver := range teamDrivers {
		seat := driver.ID % 100
		if opts.TestFullGrid {
			if seat >= 3 {
				entries = append(entries, driverEntry{driver: driver, seatID: driver.ID})
			}
			continue
		}
		if (opts.Race && seat <= 2) || (opts.Test && seat >= 3) {
			entries = append(entries, driverEntry{driver: driver, seatID: driver.ID})
		}
	}

	if opts.TestFullGrid {
		// Race drivers fill the test seats their team left empty.
		hasSeat := func(seat int) bool {
			for _, driver := range teamDrivers {
				if driver.ID%100 == seat {
					return true
				}
			}
			return false
		}
		findSeat := func(seat int) *model.Driver {
			for i := range teamDrivers {
				if teamDrivers[i].ID%100 == seat {
					return &teamDrivers[i]
				}
			}
			return nil
		}
		if !hasSeat(3) {
			if racer := findSeat(1); racer != nil {
				entries = append(entries, driverEntry{driver: *racer, seatID: team.ID + 3, promoted: true})
			}
		}
		if !hasSeat(4) {
			if racer := findSeat(2); racer != nil {
				entries = append(entries, driverEntry{driver: *racer, seatID: team.ID + 4, promoted: true})
			}
		}
	}

	return entries
}

func driverRow(entry driverEntry, boosts map[int]model.Boost, duplicates map[int]bool, warnings map[string]int) LineupRow {
	cell := fmt.Sprintf("#%d: %s (%s)", entry.seatID%100, entry.driver.Name, entry.driver.Username)

	boost, hasBoost := boosts[entry.seatID]
	cell += boostFlag(boost, hasBoost, duplicates[entry.seatID])
	if entry.promoted {
		cell += " - race"
	}

	points := ""
	if hasBoost && !boost.Cancelled && boost.Boosted == model.BoostSingle {
		points = "200"
	}

	return LineupRow{
		Entry:   cell,
		Boost:   points,
		Warning: model.DriverPenalty(warnings[entry.driver.Username]),
	}
}

func boostFlag(boost model.Boost, hasBoost, duplicate bool) string {
	switch {
	case hasBoost && boost.Cancelled:
		return " - user cancelled boost"
	case hasBoost && boost.ManuallyFixed:
		return " - manually matched"
	case duplicate:
		return " - duplicate boost"
	default:
		return ""
	}
}
