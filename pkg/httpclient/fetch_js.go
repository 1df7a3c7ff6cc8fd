//go:build js && wasm

package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

// FetchClient is the browser transport. Under js/wasm net/http delegates to
// the Fetch API, so requests run on the embedding event loop and suspend
// cooperatively.
type FetchClient struct {
	client *http.Client
}

// NewFetchClient creates a browser-backed client with the specified timeout.
func NewFetchClient(timeout time.Duration) *FetchClient {
	return &FetchClient{client: &http.Client{Timeout: timeout}}
}

// Get performs an HTTP GET through the browser's fetch.
func (f *FetchClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BodyReadError{Err: err}
	}

	return &rawResponse{body: body, statusCode: resp.StatusCode}, nil
}
