package model

// WarningTotal is the activity-check standing for one forum user, written by
// the external activity checker and read-only here.
type WarningTotal struct {
	Username  string
	Warnings  int
	NotPosted bool
}

// TeamPenalty maps a team's warning count to the grid penalty shown in the
// lineup table.
func TeamPenalty(warnings int) string {
	switch {
	case warnings >= 3:
		return "out"
	case warnings == 2:
		return "25"
	case warnings == 1:
		return "10"
	}
	return ""
}

// DriverPenalty maps a driver's warning count to the grid penalty shown in
// the lineup table.
func DriverPenalty(warnings int) string {
	switch {
	case warnings >= 3:
		return "out"
	case warnings == 2:
		return "40"
	case warnings == 1:
		return "20"
	}
	return ""
}
