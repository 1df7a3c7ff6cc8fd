//go:build !(js && wasm)

package newsapi

import "github.com/c-leri/newsapi/pkg/httpclient"

// defaultTransport selects the blocking resty client on native builds.
func defaultTransport() httpclient.Client {
	return httpclient.NewRestyClient(defaultTimeout)
}
