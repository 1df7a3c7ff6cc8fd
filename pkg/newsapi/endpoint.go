package newsapi

import "fmt"

// Endpoint selects the API resource to query.
type Endpoint int

const (
	// TopHeadlines queries the /top-headlines resource.
	TopHeadlines Endpoint = iota
)

// String returns the URL path segment for the endpoint.
func (e Endpoint) String() string {
	switch e {
	case TopHeadlines:
		return "top-headlines"
	default:
		return ""
	}
}

// ParseEndpoint resolves an endpoint from its path-segment form.
func ParseEndpoint(s string) (Endpoint, error) {
	switch s {
	case "top-headlines":
		return TopHeadlines, nil
	default:
		return 0, fmt.Errorf("unknown endpoint %q", s)
	}
}

// Country selects the country filter applied to a query.
type Country int

const (
	US Country = iota
	FR
)

// String returns the query-parameter value for the country.
func (c Country) String() string {
	switch c {
	case US:
		return "us"
	case FR:
		return "fr"
	default:
		return ""
	}
}

// ParseCountry resolves a country from its query-parameter form.
func ParseCountry(s string) (Country, error) {
	switch s {
	case "us":
		return US, nil
	case "fr":
		return FR, nil
	default:
		return 0, fmt.Errorf("unknown country %q", s)
	}
}
