package forum

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

// FetchMessages scrapes the private message inbox listing. Bodies are not
// included; they require one request per message and are fetched lazily via
// FetchMessageBody.
func (c *Client) FetchMessages(ctx context.Context, session *model.Session) ([]model.RawMessage, error) {
	if session == nil || session.Cookie == "" {
		return nil, common.ErrNotLoggedIn
	}

	doc, err := c.fetchDocument(ctx, c.httpClient, c.baseURL+"/pm.php?4", session.Cookie)
	if err != nil {
		return nil, err
	}

	var messages []model.RawMessage
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		checkbox := row.Find(`input[type='checkbox']`).First()
		titleLink := row.Find("td:nth-child(2) a").First()
		senderLink := row.Find("td:nth-child(3) a").First()
		dateCell := row.Find("td:nth-child(4)").First()

		id, _ := checkbox.Attr("value")
		if id == "" || titleLink.Length() == 0 || senderLink.Length() == 0 || dateCell.Length() == 0 {
			return
		}

		messages = append(messages, model.RawMessage{
			ID:     id,
			Title:  strings.TrimSpace(titleLink.Text()),
			Sender: strings.TrimSpace(senderLink.Text()),
			Date:   strings.TrimSpace(dateCell.Text()),
		})
	})

	return messages, nil
}

// FetchMessageBody loads one private message and extracts its body text. The
// page carries the message id in a hidden form field; a mismatch means the
// forum served a different message than requested.
func (c *Client) FetchMessageBody(ctx context.Context, session *model.Session, messageID string) (string, error) {
	if session == nil || session.Cookie == "" {
		return "", common.ErrNotLoggedIn
	}
	if messageID == "" {
		return "", fmt.Errorf("%w: empty message id", common.ErrForumScrape)
	}

	pageURL := fmt.Sprintf("%s/pm.php?4,page=read,folder_id=inbox,pm_id=%s", c.baseURL, messageID)
	doc, err := c.fetchDocument(ctx, c.httpClient, pageURL, session.Cookie)
	if err != nil {
		return "", err
	}

	foundID, _ := doc.Find(`input[name='pm_id']`).Attr("value")
	if foundID != messageID {
		return "", fmt.Errorf("%w: message id mismatch, requested %s got %q", common.ErrForumScrape, messageID, foundID)
	}

	body := doc.Find("div.message-body").First()
	return strings.TrimSpace(body.Text()), nil
}
