package model

import "time"

// FixedTitle is an admin-approved correction for one message. When present it
// replaces the scraped title before classification on every pass.
type FixedTitle struct {
	CreatedAt     time.Time
	MessageID     string
	OriginalTitle string
	FixedTitle    string
	Sender        string
}
