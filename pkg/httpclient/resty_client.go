package httpclient

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient is the blocking transport, backed by resty. The calling
// goroutine suspends for the full request duration; impose timeouts through
// the constructor or the request context.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a blocking client with the specified timeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	return &RestyClient{client: c}
}

// Get performs a blocking HTTP GET. The body is read here rather than by
// resty so that read failures surface as *BodyReadError, distinct from
// connection failures.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx).SetDoNotParseResponse(true)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}

	raw := resp.RawBody()
	defer raw.Close()

	body, err := io.ReadAll(raw)
	if err != nil {
		return nil, &BodyReadError{Err: err}
	}

	return &rawResponse{body: body, statusCode: resp.StatusCode()}, nil
}
