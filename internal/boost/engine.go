package boost

import (
	"strings"
	"time"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// Reasons attached to unmatched boost messages.
const (
	ReasonDriverNotFound  = "Error: Driver not found."
	ReasonWrongDriverUser = "Error: incorrect username for driver."
	ReasonTeamNotFound    = "Error: Team not found."
	ReasonWrongTeamOwner  = "Error: incorrect username for team owner."
)

// Input is everything one pass needs. All fields are read-only snapshots; the
// pass never mutates them.
type Input struct {
	Overrides map[string]string // message id -> admin-fixed title
	Messages  []model.RawMessage
	Drivers   []model.Driver
	Teams     []model.Team
	Race      model.Race
	Viewer    model.Viewer
	Now       time.Time // reference instant for relative timestamps
}

// Failure records a message whose date could not be parsed. The pass skips
// the message and keeps going.
type Failure struct {
	Err       error
	MessageID string
	Date      string
}

// Result partitions the batch: every deduplicated message lands in exactly
// one of Boosts (via a Boost record), Unmatched, DeadlineViolations, Other or
// Failures. Duplicates flags entities targeted by more than one qualifying
// message; the extra messages are dropped, not added as second boosts.
type Result struct {
	Duplicates         map[int]bool
	Boosts             []model.Boost
	Unmatched          []model.UnmatchedMessage
	DeadlineViolations []model.Record
	Other              []model.Record
	Failures           []Failure
}

// Run executes one full matching pass over a message batch. It is a pure
// function of its input: same snapshots, same output.
func Run(in Input) *Result {
	res := &Result{Duplicates: make(map[int]bool)}
	resolver := NewResolver(in.Drivers, in.Teams)
	deadline := in.Race.Deadline()
	boosted := make(map[int]bool)

	seen := make(map[string]bool, len(in.Messages))
	for _, msg := range in.Messages {
		// The scraper occasionally repeats the first inbox row; keep the
		// first occurrence of every id.
		if seen[msg.ID] {
			continue
		}
		seen[msg.ID] = true

		rawTitle := msg.Title
		manuallyFixed := false
		if fixed, ok := in.Overrides[msg.ID]; ok && fixed != "" {
			rawTitle = fixed
			manuallyFixed = true
		}

		sent, err := ParseMessageDate(msg.Date, in.Now)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Err: err, MessageID: msg.ID, Date: msg.Date})
			continue
		}

		title := DecodeTitle(rawTitle)
		if sent.After(deadline) {
			res.DeadlineViolations = append(res.DeadlineViolations, record(title, msg, sent))
			continue
		}

		processed := NormalizeTitle(title)
		cls := Classify(title)
		findVenue := MatchesVenue(title, in.Race)
		cancelled := IsCancelled(title)

		switch {
		case cls.DriverBoost && !cls.TeamBoost:
			matchDriverBoost(res, resolver, boosted, msg, in.Viewer, matchContext{
				title:         title,
				processed:     processed,
				sent:          sent,
				findVenue:     findVenue,
				cancelled:     cancelled,
				manuallyFixed: manuallyFixed,
			})
		case cls.TeamBoost && !cls.DriverBoost:
			matchTeamBoost(res, resolver, boosted, msg, in.Viewer, matchContext{
				title:         title,
				processed:     processed,
				sent:          sent,
				findVenue:     findVenue,
				cancelled:     cancelled,
				manuallyFixed: manuallyFixed,
			})
		default:
			// Not a boost, or ambiguously both kinds at once.
			res.Other = append(res.Other, record(title, msg, sent))
		}
	}

	return res
}

// matchContext carries the per-message derivations shared by both branches.
type matchContext struct {
	title         string
	processed     string
	sent          time.Time
	findVenue     bool
	cancelled     bool
	manuallyFixed bool
}

func matchDriverBoost(res *Result, resolver *Resolver, boosted map[int]bool, msg model.RawMessage, viewer model.Viewer, mc matchContext) {
	matched := false
	reason := ""

	if mc.findVenue {
		var driver *model.Driver
		authorized := false

		name, _, extracted := ExtractDriverBoost(mc.processed)
		if !extracted || name == "" {
			// Malformed title: fall back to the effective sender, but only
			// accept the match when the driver's name appears in the title.
			driver = resolver.DriverForSender(msg.Sender, viewer)
			authorized = driver != nil && containsFold(mc.title, driver.Name)
		} else {
			driver = resolver.DriverByIdentity(name)
			authorized = driver != nil && resolver.Authorized(driver.Username, msg.Sender, viewer)
		}

		switch {
		case driver == nil:
			reason = ReasonDriverNotFound
		case !authorized:
			reason = ReasonWrongDriverUser
		default:
			matched = true
			addBoost(res, boosted, model.Boost{
				EntityID:      driver.ID,
				Boosted:       model.BoostSingle,
				ManuallyFixed: mc.manuallyFixed,
				Cancelled:     mc.cancelled,
			})
		}
	}

	if !matched {
		rejectBoost(res, msg, mc, reason)
	}
}

func matchTeamBoost(res *Result, resolver *Resolver, boosted map[int]bool, msg model.RawMessage, viewer model.Viewer, mc matchContext) {
	matched := false
	reason := ""

	// Users sometimes state single/double only in the body.
	processed := AppendBodyBoostType(mc.processed, msg.Body)

	name, _, boostType, extracted := ExtractTeamBoost(processed)
	if extracted && name != "" && mc.findVenue {
		team := resolver.TeamByName(name)
		switch {
		case team == nil:
			reason = ReasonTeamNotFound
		case !resolver.Authorized(team.Username, msg.Sender, viewer):
			reason = ReasonWrongTeamOwner
		default:
			amount := model.BoostSingle
			if strings.EqualFold(boostType, "double") {
				amount = model.BoostDouble
			}
			matched = true
			addBoost(res, boosted, model.Boost{
				EntityID:      team.ID,
				Boosted:       amount,
				ManuallyFixed: mc.manuallyFixed,
				Cancelled:     mc.cancelled,
			})
		}
	}

	if !matched {
		rejectBoost(res, msg, mc, reason)
	}
}

// addBoost records a boost unless the entity already holds one this pass, in
// which case the entity is flagged duplicate and the extra boost dropped.
func addBoost(res *Result, boosted map[int]bool, b model.Boost) {
	if boosted[b.EntityID] {
		res.Duplicates[b.EntityID] = true
		return
	}
	boosted[b.EntityID] = true
	res.Boosts = append(res.Boosts, b)
}

// rejectBoost routes a failed boost match: messages naming the selected race
// go to Unmatched for triage, everything else to Other.
func rejectBoost(res *Result, msg model.RawMessage, mc matchContext, reason string) {
	if mc.findVenue {
		res.Unmatched = append(res.Unmatched, model.UnmatchedMessage{
			ID:     msg.ID,
			Title:  mc.title,
			Sender: msg.Sender,
			Date:   FormatMessageDate(mc.sent),
			Body:   msg.Body,
			Reason: reason,
		})
		return
	}
	res.Other = append(res.Other, record(mc.title, msg, mc.sent))
}

func record(title string, msg model.RawMessage, sent time.Time) model.Record {
	return model.Record{
		Title:  title,
		Sender: msg.Sender,
		Date:   FormatMessageDate(sent),
		Body:   msg.Body,
	}
}
