package boost

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

var (
	// Everything after the second dash is the venue fragment, which may
	// itself contain dashes ("Belgian Grand Prix - Spa").
	reSuggestVenue = regexp.MustCompile(`(?i)boost\s*-\s*[^-]+\s*-\s*(.+)$`)
	reSuggestName  = regexp.MustCompile(`(?i)boost\s*-\s*([^-]+)`)

	// A team title's trailing boost type rides along in the venue capture;
	// it is stripped here and re-appended canonically.
	reVenueTrailingType = regexp.MustCompile(`(?i)\s*[-–—,]\s*\(?(?:single|double)\)?\s*$`)
)

// SuggestTitle proposes a corrected title for an unmatched boost message,
// walking progressively looser matching tiers against the roster: sender
// username, exact name, exact alias, substring containment either way, and
// finally the last word of the extracted name. The suggestion is advisory; if
// nothing matches the original title comes back unchanged.
func SuggestTitle(originalTitle, sender string, drivers []model.Driver, teams []model.Team) string {
	title := DecodeTitle(originalTitle)

	isDriverBoost := reDriverBoost.MatchString(title)
	isTeamBoost := reTeamBoost.MatchString(title)

	venue := ""
	if m := reSuggestVenue.FindStringSubmatch(title); m != nil {
		venue = strings.TrimSpace(m[1])
	}
	if isTeamBoost {
		venue = reVenueTrailingType.ReplaceAllString(venue, "")
	}

	extractedName := ""
	if m := reSuggestName.FindStringSubmatch(title); m != nil {
		extractedName = stripParens(m[1])
	}

	switch {
	case isDriverBoost:
		if driver := suggestDriver(sender, extractedName, drivers); driver != nil && venue != "" {
			return fmt.Sprintf("Driver Boost - %s - %s", driver.Name, venue)
		}
	case isTeamBoost:
		if team := suggestTeam(sender, extractedName, teams); team != nil && venue != "" {
			boostType := "Single"
			if reDouble.MatchString(title) {
				boostType = "Double"
			}
			return fmt.Sprintf("Team Boost - %s - %s - %s", team.Name, venue, boostType)
		}
	}

	return originalTitle
}

func suggestDriver(sender, extractedName string, drivers []model.Driver) *model.Driver {
	// The sender username is the most reliable signal.
	for i := range drivers {
		if strings.EqualFold(drivers[i].Username, sender) {
			return &drivers[i]
		}
	}
	if extractedName == "" {
		return nil
	}
	for i := range drivers {
		if strings.EqualFold(drivers[i].Name, extractedName) {
			return &drivers[i]
		}
	}
	for i := range drivers {
		if strings.EqualFold(drivers[i].Username, extractedName) {
			return &drivers[i]
		}
	}
	for i := range drivers {
		if containsEitherWay(drivers[i].Name, extractedName) {
			return &drivers[i]
		}
	}
	for i := range drivers {
		if containsEitherWay(drivers[i].Username, extractedName) {
			return &drivers[i]
		}
	}
	// Surname tier: the last word alone, when long enough to be meaningful.
	words := strings.Fields(extractedName)
	if len(words) > 0 {
		last := words[len(words)-1]
		if len(last) > 2 {
			for i := range drivers {
				if containsFold(drivers[i].Name, last) || containsFold(drivers[i].Username, last) {
					return &drivers[i]
				}
			}
		}
	}
	return nil
}

func suggestTeam(sender, extractedName string, teams []model.Team) *model.Team {
	for i := range teams {
		if strings.EqualFold(teams[i].Username, sender) {
			return &teams[i]
		}
	}
	if extractedName == "" {
		return nil
	}
	for i := range teams {
		if strings.EqualFold(teams[i].Name, extractedName) {
			return &teams[i]
		}
	}
	for i := range teams {
		t := &teams[i]
		if (t.Short1 != "" && strings.EqualFold(t.Short1, extractedName)) ||
			(t.Short2 != "" && strings.EqualFold(t.Short2, extractedName)) {
			return t
		}
	}
	for i := range teams {
		if containsEitherWay(teams[i].Name, extractedName) {
			return &teams[i]
		}
	}
	for i := range teams {
		if containsEitherWay(teams[i].Username, extractedName) {
			return &teams[i]
		}
	}
	return nil
}

func containsEitherWay(a, b string) bool {
	return containsFold(a, b) || containsFold(b, a)
}
