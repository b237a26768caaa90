// Package model defines the domain types shared across the application.
package model

// RawMessage is one private message as scraped from the forum, before any
// classification. Body may be empty when the per-message fetch has not run yet.
type RawMessage struct {
	ID     string
	Title  string // HTML-entity-encoded, exactly as scraped
	Sender string
	Date   string // free-text forum timestamp
	Body   string
}
