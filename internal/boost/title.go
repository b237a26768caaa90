package boost

import (
	"html"
	"regexp"
	"strings"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

var (
	// Decorative punctuation users wrap titles in: quotes, dots, parens.
	reTrimEdges = regexp.MustCompile(`^[^a-zA-Z]+|[^a-zA-Z]+$`)

	// "Driver Boost" / "Team Boost" prefix; used to repair a missing
	// delimiter between "Boost" and the name that follows.
	reBoostPrefix = regexp.MustCompile(`(?i)^((?:driver|team)\s+boost)\s*`)

	reDriverBoost = regexp.MustCompile(`(?i)driver boost`)
	reTeamBoost   = regexp.MustCompile(`(?i)team boost`)
	reAnyBoost    = regexp.MustCompile(`(?i)boost`)

	reCancelled = regexp.MustCompile(`(?i)[-–—]\s*cancelled\s*$`)

	reSingle = regexp.MustCompile(`(?i)single`)
	reDouble = regexp.MustCompile(`(?i)double`)

	// Title extraction: "Boost - name (optional parenthetical) - venue"
	// with optional leading kind, optional parens around either capture and
	// a tolerated trailing delimiter.
	reDriverExtract = regexp.MustCompile(`(?i)^(?:(?:driver\s+)?boost)\s*-\s*\(?([^(]+?)\s*(?:\([^)]*\))?\s*-\s*(\(?.+?\)?)\s*[-,]?\s*$`)

	// Team titles additionally carry the boost type and allow commas as
	// delimiters: "Team Boost - name - venue [- extra] - Single|Double".
	reTeamExtract = regexp.MustCompile(`(?i)"?(?:(?:team\s+)?boost)\s*[-,]\s*(\(?.+?\)?)\s*[-,]\s*(\(?.+?\)?)\s*(?:[-,].+?)?\s*\(?(single|double)\)?"?`)
)

// DecodeTitle resolves HTML entities left over from scraping.
func DecodeTitle(raw string) string {
	return html.UnescapeString(raw)
}

// NormalizeTitle prepares a decoded title for extraction: it strips non-letter
// characters from both ends and inserts the " - " delimiter users tend to
// omit after "Driver Boost"/"Team Boost".
func NormalizeTitle(title string) string {
	title = reTrimEdges.ReplaceAllString(title, "")

	loc := reBoostPrefix.FindStringSubmatchIndex(title)
	if loc == nil {
		return title
	}
	rest := title[loc[1]:]
	if startsWithDash(rest) {
		return title
	}
	return title[loc[2]:loc[3]] + " - " + rest
}

func startsWithDash(s string) bool {
	s = strings.TrimLeft(s, " \t")
	for _, dash := range []string{"-", "–", "—"} {
		if strings.HasPrefix(s, dash) {
			return true
		}
	}
	return false
}

// Classification is the outcome of the keyword heuristics on one title.
type Classification struct {
	DriverBoost bool
	TeamBoost   bool
}

// IsBoost reports whether the title was recognized as either boost kind.
func (c Classification) IsBoost() bool {
	return c.DriverBoost || c.TeamBoost
}

// Classify decides whether a title announces a driver boost or a team boost.
// A title saying just "boost" is disambiguated by its trailing segment: a
// single/double marker means a team boost, anything else a driver boost.
func Classify(title string) Classification {
	c := Classification{
		DriverBoost: reDriverBoost.MatchString(title),
		TeamBoost:   reTeamBoost.MatchString(title),
	}
	if reAnyBoost.MatchString(title) && !c.IsBoost() {
		if lastSegmentHasBoostType(title) {
			c.TeamBoost = true
		} else {
			c.DriverBoost = true
		}
	}
	return c
}

// lastSegmentHasBoostType inspects the text after the last dash for a
// single/double marker.
func lastSegmentHasBoostType(title string) bool {
	if title == "" {
		return false
	}
	parts := strings.Split(title, "-")
	last := strings.ToLower(parts[len(parts)-1])
	return strings.Contains(last, "single") || strings.Contains(last, "double")
}

// MatchesVenue reports whether the title names the selected race. The
// comparison is a plain case-sensitive substring test.
func MatchesVenue(title string, race model.Race) bool {
	return strings.Contains(title, race.Venue) ||
		strings.Contains(title, race.Track) ||
		strings.Contains(title, race.Country)
}

// IsCancelled detects the "- cancelled" suffix users append to withdraw a
// boost. A cancelled boost still occupies the entity's slot but scores no
// points.
func IsCancelled(title string) bool {
	return reCancelled.MatchString(title)
}

// ExtractDriverBoost pulls the driver name (or username) and venue fragment
// out of a normalized driver boost title.
func ExtractDriverBoost(title string) (name, venue string, ok bool) {
	m := reDriverExtract.FindStringSubmatch(title)
	if m == nil {
		return "", "", false
	}
	return stripParens(m[1]), strings.TrimSpace(m[2]), true
}

// ExtractTeamBoost pulls the team name, venue fragment and boost type out of
// a normalized team boost title.
func ExtractTeamBoost(title string) (name, venue, boostType string, ok bool) {
	m := reTeamExtract.FindStringSubmatch(title)
	if m == nil {
		return "", "", "", false
	}
	return stripParens(m[1]), strings.TrimSpace(m[2]), m[3], true
}

// AppendBodyBoostType compensates for users who only state single/double in
// the message body: the marker is appended to the title so extraction sees it.
func AppendBodyBoostType(title, body string) string {
	if lastSegmentHasBoostType(title) {
		return title
	}
	if reSingle.MatchString(body) {
		return title + " - single"
	}
	if reDouble.MatchString(body) {
		return title + " - double"
	}
	return title
}

func stripParens(s string) string {
	s = strings.NewReplacer("(", "", ")", "").Replace(s)
	return strings.TrimSpace(s)
}
