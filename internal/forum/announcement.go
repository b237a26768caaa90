package forum

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/service"
)

// The league account posts "Boost Announcement" threads; a forum search for
// its recent posts in the series forum finds the current one.
const announcementSearchPath = "/search.php?107,search=,author=GPGSL,page=1,match_type=ALL,match_dates=365,match_forum=4,match_threads=0"

var (
	reAnnouncementRound = regexp.MustCompile(`Round (\d+):`)
	reAnnouncementVenue = regexp.MustCompile(`Round \d+: ([^-]+)`)
)

// FindAnnouncement scans the two most recent league posts for an open boost
// window and reports its round number and venue.
func (c *Client) FindAnnouncement(ctx context.Context) (*service.Announcement, error) {
	doc, err := c.fetchDocument(ctx, c.httpClient, c.baseURL+announcementSearchPath, "")
	if err != nil {
		return nil, err
	}

	results := doc.Find("div.search-result")
	if results.Length() == 0 {
		return nil, fmt.Errorf("%w: no search results", common.ErrNoAnnouncement)
	}

	var found *service.Announcement
	results.EachWithBreak(func(i int, result *goquery.Selection) bool {
		if i >= 2 {
			return false
		}

		text := strings.TrimSpace(result.Find("blockquote").Text())
		if !strings.Contains(text, "Boost Announcement") {
			return true
		}

		roundMatch := reAnnouncementRound.FindStringSubmatch(text)
		if roundMatch == nil {
			return true
		}

		venue := ""
		if venueMatch := reAnnouncementVenue.FindStringSubmatch(text); venueMatch != nil {
			venue = strings.TrimSpace(venueMatch[1])
		}

		round, _ := strconv.Atoi(roundMatch[1])
		found = &service.Announcement{
			Round: round,
			Venue: venue,
		}
		return false
	})

	if found == nil {
		return nil, common.ErrNoAnnouncement
	}
	return found, nil
}
