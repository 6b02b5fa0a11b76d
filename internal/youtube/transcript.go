package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://video.google.com"

// Client fetches caption transcripts from YouTube's timedtext endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	lang       string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the timedtext endpoint base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLanguage sets the preferred caption language code. Default "en".
// When the preferred language has no track, the first available track
// is used instead.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

// NewClient creates a caption client with a 30 second request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		lang:       "en",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// trackList is the XML shape of the timedtext track listing.
type trackList struct {
	Tracks []track `xml:"track"`
}

type track struct {
	Name     string `xml:"name,attr"`
	LangCode string `xml:"lang_code,attr"`
}

// transcript is the XML shape of a single caption track.
type transcript struct {
	Texts []captionText `xml:"text"`
}

type captionText struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Body  string `xml:",chardata"`
}

// Transcript downloads the caption track for videoID and returns the
// fragment texts joined by single spaces, in chronological order.
// Failures are typed: *ErrNoCaptions when no track exists,
// *ErrCaptionFetch for transport/HTTP errors, *ErrCaptionParse for
// undecodable payloads.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	tr, err := c.pickTrack(ctx, videoID)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", tr.LangCode)
	if tr.Name != "" {
		params.Set("name", tr.Name)
	}

	body, err := c.get(ctx, videoID, params)
	if err != nil {
		return "", err
	}

	var doc transcript
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", &ErrCaptionParse{VideoID: videoID, Err: err}
	}
	if len(doc.Texts) == 0 {
		return "", &ErrNoCaptions{VideoID: videoID}
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " "), nil
}

// pickTrack lists available caption tracks and selects the preferred
// language, falling back to the first track.
func (c *Client) pickTrack(ctx context.Context, videoID string) (track, error) {
	params := url.Values{}
	params.Set("type", "list")
	params.Set("v", videoID)

	body, err := c.get(ctx, videoID, params)
	if err != nil {
		return track{}, err
	}
	// An unknown video or one with captions disabled yields an empty body.
	if len(strings.TrimSpace(string(body))) == 0 {
		return track{}, &ErrNoCaptions{VideoID: videoID}
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return track{}, &ErrCaptionParse{VideoID: videoID, Err: err}
	}
	if len(list.Tracks) == 0 {
		return track{}, &ErrNoCaptions{VideoID: videoID}
	}

	for _, t := range list.Tracks {
		if t.LangCode == c.lang {
			return t, nil
		}
	}
	return list.Tracks[0], nil
}

func (c *Client) get(ctx context.Context, videoID string, params url.Values) ([]byte, error) {
	u := fmt.Sprintf("%s/timedtext?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &ErrCaptionFetch{VideoID: videoID, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ErrCaptionFetch{VideoID: videoID, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &ErrNoCaptions{VideoID: videoID}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ErrCaptionFetch{VideoID: videoID, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrCaptionFetch{VideoID: videoID, Err: err}
	}
	return body, nil
}
