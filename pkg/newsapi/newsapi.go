// Package newsapi is a client for the NewsAPI.org v2 HTTP API. A Client is
// configured once with an API key, endpoint, and country, then fetched from
// through one of three transports: blocking (Fetch), asynchronous
// (FetchAsync), or browser-embedded (FetchWeb, js/wasm builds only). All
// three compose the same URL, send the same Authorization header, and
// classify API responses identically.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/c-leri/newsapi/pkg/httpclient"
	"go.uber.org/zap"
)

// BaseURL is the fixed API root every request URL is composed from.
const BaseURL = "https://newsapi.org/v2"

const defaultTimeout = 10 * time.Second

// Client holds the request configuration for API fetches. A Client is owned
// by a single caller; mutate it via the setters between fetches, not
// concurrently.
type Client struct {
	apiKey   string
	endpoint Endpoint
	country  Country
	httpc    httpclient.Client
	log      *zap.SugaredLogger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient injects the transport used by Fetch and FetchAsync.
func WithHTTPClient(c httpclient.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(cl *Client) { cl.log = log }
}

// New creates a client for the given API key. Defaults: top headlines, US,
// and the transport native to the build target.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: TopHeadlines,
		country:  US,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpc == nil {
		c.httpc = defaultTransport()
	}
	return c
}

// SetEndpoint selects the API resource to query. Returns the client for chaining.
func (c *Client) SetEndpoint(e Endpoint) *Client {
	c.endpoint = e
	return c
}

// SetCountry selects the country filter. Returns the client for chaining.
func (c *Client) SetCountry(co Country) *Client {
	c.country = co
	return c
}

// prepareURL composes the request URL: the endpoint appended to BaseURL as a
// path segment, with the query set to exactly country=<country>.
func (c *Client) prepareURL() (string, error) {
	u, err := url.Parse(BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrURLParsing, err)
	}
	u = u.JoinPath(c.endpoint.String())
	u.RawQuery = "country=" + c.country.String()
	return u.String(), nil
}

// headers returns the request headers; the API key travels as the bare
// Authorization value, never in the URL.
func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": c.apiKey}
}

// Fetch issues the request on the blocking transport and suspends the caller
// until the response is decoded and classified. Failure kinds are preserved:
// ErrRequestFailed for transport errors, ErrFailedResponseToString for an
// unreadable body, ErrArticleParseFail for invalid JSON.
func (c *Client) Fetch(ctx context.Context) (*Response, error) {
	reqURL, err := c.prepareURL()
	if err != nil {
		return nil, err
	}

	c.log.Debugw("fetching articles", "url", reqURL)

	resp, err := c.httpc.Get(ctx, reqURL, c.headers())
	if err != nil {
		var readErr *httpclient.BodyReadError
		if errors.As(err, &readErr) {
			return nil, fmt.Errorf("%w: %v", ErrFailedResponseToString, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var response Response
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArticleParseFail, err)
	}

	return classify(&response)
}

// Result carries the outcome of an asynchronous fetch.
type Result struct {
	Response *Response
	Err      error
}

// FetchAsync runs the fetch on its own goroutine and delivers exactly one
// Result on the returned channel, which is then closed. Transport and decode
// failures collapse into ErrAsyncRequestFailed; API-level classification is
// identical to Fetch. Cancel via ctx.
func (c *Client) FetchAsync(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- c.fetchAsync(ctx)
	}()
	return out
}

func (c *Client) fetchAsync(ctx context.Context) Result {
	reqURL, err := c.prepareURL()
	if err != nil {
		return Result{Err: err}
	}

	c.log.Debugw("fetching articles async", "url", reqURL)

	resp, err := c.httpc.Get(ctx, reqURL, c.headers())
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrAsyncRequestFailed, err)}
	}

	var response Response
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrAsyncRequestFailed, err)}
	}

	r, err := classify(&response)
	return Result{Response: r, Err: err}
}

// classify maps a decoded response into success or a typed error. Pure:
// identical (status, code) input yields the same outcome on every transport.
func classify(r *Response) (*Response, error) {
	if r.Status() == "ok" {
		return r, nil
	}
	code, _ := r.Code()
	return nil, mapResponseErr(code)
}

// mapResponseErr translates an API error code into a BadRequestError.
// Unrecognized or absent codes fall through to the generic reason; extending
// the table is a new case here, callers keep matching on ErrBadRequest.
func mapResponseErr(code string) error {
	switch code {
	case "apiKeyDisabled":
		return &BadRequestError{Reason: "Your API key has been disabled"}
	default:
		return &BadRequestError{Reason: "Unknown error"}
	}
}
