package model

import (
	"strings"
	"time"
)

// Session is a saved forum login. Cookie is the phorum session cookie value.
type Session struct {
	UpdatedAt time.Time
	Username  string
	Cookie    string
}

// PrivilegedUsername is the league-admin forum account. When logged in as any
// other account the inbox shows received copies, so sender and receiver are
// swapped from the viewer's perspective.
const PrivilegedUsername = "GPGSL"

// Viewer identifies whose mailbox a pass is looking at. An unprivileged
// viewer sees boosts they sent as messages from the privileged account.
type Viewer struct {
	Username string
}

// Privileged reports whether the viewer is the league-admin account.
func (v Viewer) Privileged() bool {
	return strings.EqualFold(v.Username, PrivilegedUsername)
}
