//go:build js && wasm

package newsapi

import (
	"context"
	"encoding/json"

	"github.com/c-leri/newsapi/pkg/httpclient"
)

// defaultTransport selects the Fetch-backed client on browser builds.
func defaultTransport() httpclient.Client {
	return httpclient.NewFetchClient(defaultTimeout)
}

// FetchWeb issues the request on the browser's event loop. Transport and
// decode failures each collapse into a BadRequestError with a fixed reason;
// API-level classification is identical to Fetch.
func (c *Client) FetchWeb(ctx context.Context) (*Response, error) {
	reqURL, err := c.prepareURL()
	if err != nil {
		return nil, err
	}

	c.log.Debugw("fetching articles via browser", "url", reqURL)

	resp, err := c.httpc.Get(ctx, reqURL, c.headers())
	if err != nil {
		return nil, &BadRequestError{Reason: "failed sending request"}
	}

	var response Response
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, &BadRequestError{Reason: "failed converting response to json"}
	}

	return classify(&response)
}
