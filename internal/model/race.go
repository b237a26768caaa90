package model

import "time"

// Race is one entry of the season calendar. Venue, track and country are the
// strings a boost title must contain to count for this race.
type Race struct {
	Date    time.Time // race day at midnight
	Venue   string
	Track   string
	Country string
	ID      int
}

// Deadline returns the boost cutoff: race day at 20:00 in the date's location.
func (r Race) Deadline() time.Time {
	y, m, d := r.Date.Date()
	return time.Date(y, m, d, 20, 0, 0, 0, r.Date.Location())
}
