package boost

import (
	"strings"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// Resolver maps extracted name fragments and forum usernames onto the roster.
// Driver and team lookups are case-insensitive exact matches only; fuzzy
// matching is reserved for the advisory title suggestions in suggest.go.
type Resolver struct {
	drivers []model.Driver
	teams   []model.Team
}

// NewResolver creates a resolver over a roster snapshot.
func NewResolver(drivers []model.Driver, teams []model.Team) *Resolver {
	return &Resolver{drivers: drivers, teams: teams}
}

// DriverByIdentity finds a driver whose name or username equals the extracted
// fragment, ignoring case.
func (r *Resolver) DriverByIdentity(nameOrUsername string) *model.Driver {
	for i := range r.drivers {
		if strings.EqualFold(r.drivers[i].Name, nameOrUsername) ||
			strings.EqualFold(r.drivers[i].Username, nameOrUsername) {
			return &r.drivers[i]
		}
	}
	return nil
}

// DriverByUsername finds a driver by forum username, ignoring case.
func (r *Resolver) DriverByUsername(username string) *model.Driver {
	for i := range r.drivers {
		if strings.EqualFold(r.drivers[i].Username, username) {
			return &r.drivers[i]
		}
	}
	return nil
}

// DriverForSender resolves a driver from the message sender when the title
// carried no usable name. For the privileged viewer the sender is the
// boosting user; for anyone else the mailbox holds received copies, so a
// message from the privileged account is the viewer's own boost.
func (r *Resolver) DriverForSender(sender string, viewer model.Viewer) *model.Driver {
	if viewer.Privileged() {
		return r.DriverByUsername(sender)
	}
	if sender == model.PrivilegedUsername {
		return r.DriverByUsername(viewer.Username)
	}
	return nil
}

// TeamByName finds a team whose name or either short alias equals the
// extracted fragment, ignoring case. Empty aliases never match.
func (r *Resolver) TeamByName(name string) *model.Team {
	for i := range r.teams {
		t := &r.teams[i]
		if strings.EqualFold(t.Name, name) {
			return t
		}
		if t.Short1 != "" && strings.EqualFold(t.Short1, name) {
			return t
		}
		if t.Short2 != "" && strings.EqualFold(t.Short2, name) {
			return t
		}
	}
	return nil
}

// TeamByUsername finds a team by its owner's forum username, ignoring case.
func (r *Resolver) TeamByUsername(username string) *model.Team {
	for i := range r.teams {
		if strings.EqualFold(r.teams[i].Username, username) {
			return &r.teams[i]
		}
	}
	return nil
}

// Authorized reports whether the entity owned by username was boosted by its
// rightful user. The sender/viewer swap mirrors DriverForSender: the
// privileged viewer checks the sender directly, an unprivileged viewer only
// accepts their own entity on a message from the privileged account.
func (r *Resolver) Authorized(username, sender string, viewer model.Viewer) bool {
	if viewer.Privileged() {
		return username == sender
	}
	return username == viewer.Username && sender == model.PrivilegedUsername
}

// containsFold is a case-insensitive substring test.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
