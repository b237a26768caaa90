package model

// Driver ids encode both team and seat: floor(id/100) is the team number and
// id%100 is the seat, where 1 and 2 are race seats and 3+ are test seats.
type Driver struct {
	Name     string
	Username string
	Team     string // denormalized team name
	ID       int
}

// IsRaceDriver reports whether the driver holds a race seat.
func (d Driver) IsRaceDriver() bool {
	seat := d.ID % 100
	return seat == 1 || seat == 2
}

// IsTestDriver reports whether the driver holds a test seat.
func (d Driver) IsTestDriver() bool {
	return d.ID%100 >= 3
}

// TeamNumber returns the team the driver belongs to, derived from the id.
func (d Driver) TeamNumber() int {
	return d.ID / 100
}

// Team ids are multiples of 100. Short1 and Short2 are optional alternate
// names accepted when matching boost titles.
type Team struct {
	Name     string
	Username string
	Short1   string
	Short2   string
	ID       int
}

// Number returns the team's grid number.
func (t Team) Number() int {
	return t.ID / 100
}
