// Package forum scrapes the grandprixgames.org Phorum instance: login,
// private message listings, message bodies and the boost announcement search.
package forum

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

const (
	defaultBaseURL = "https://www.grandprixgames.org"

	sessionCookieName = "phorum_session_v5"

	// The forum serves a stripped page to clients without browser headers.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36"
	defaultAccept    = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"
)

// Client talks to the forum over plain HTTP with a session cookie.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different forum root, used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a forum client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login performs the two-step Phorum login: fetch the login form for its
// one-time posting token, then post the credentials and capture the session
// cookie.
func (c *Client) Login(ctx context.Context, username, password string) (*model.Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	client := &http.Client{
		Timeout: c.httpClient.Timeout,
		Jar:     jar,
	}

	doc, err := c.fetchDocument(ctx, client, c.baseURL+"/login.php?4", "")
	if err != nil {
		return nil, fmt.Errorf("failed to load login page: %w", err)
	}

	token, ok := doc.Find(`input[name='posting_token:login']`).Attr("value")
	if !ok || token == "" {
		return nil, fmt.Errorf("%w: posting token not found on login page", common.ErrLoginFailed)
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("posting_token:login", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login.php", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setBrowserHeaders(req, "")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit login form: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: login returned status %d", common.ErrLoginFailed, resp.StatusCode)
	}

	postURL, err := url.Parse(c.baseURL + "/login.php")
	if err != nil {
		return nil, fmt.Errorf("failed to parse login URL: %w", err)
	}
	for _, cookie := range jar.Cookies(postURL) {
		if cookie.Name == sessionCookieName && cookie.Value != "" && cookie.Value != "deleted" {
			slog.Info("Forum login succeeded", "username", username)
			return &model.Session{
				Username:  username,
				Cookie:    fmt.Sprintf("%s=%s", sessionCookieName, cookie.Value),
				UpdatedAt: time.Now(),
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: no session cookie issued", common.ErrLoginFailed)
}

// CheckSession reports whether a stored session cookie still opens the
// private message page. An expired session bounces to the login form.
func (c *Client) CheckSession(ctx context.Context, session *model.Session) (bool, error) {
	if session == nil || session.Cookie == "" {
		return false, nil
	}

	doc, err := c.fetchDocument(ctx, c.httpClient, c.baseURL+"/pm.php?4", session.Cookie)
	if err != nil {
		return false, err
	}

	if doc.Find(`input[name='posting_token:login']`).Length() > 0 {
		return false, nil
	}
	return true, nil
}

// fetchDocument GETs a forum page and parses it.
func (c *Client) fetchDocument(ctx context.Context, client *http.Client, pageURL, cookie string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setBrowserHeaders(req, cookie)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrForumScrape, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", common.ErrForumScrape, pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", common.ErrForumScrape, pageURL, err)
	}
	return doc, nil
}

func (c *Client) setBrowserHeaders(req *http.Request, cookie string) {
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", defaultAccept)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
}
