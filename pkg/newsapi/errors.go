package newsapi

import "errors"

// Failure kinds a fetch can surface. Callers match with errors.Is; nothing is
// retried or recovered internally.
var (
	// ErrRequestFailed reports a transport-level failure on the blocking path.
	ErrRequestFailed = errors.New("failed fetching articles")
	// ErrFailedResponseToString reports an unreadable response body on the blocking path.
	ErrFailedResponseToString = errors.New("failed converting response to string")
	// ErrArticleParseFail reports structurally invalid response JSON.
	ErrArticleParseFail = errors.New("article parsing failed")
	// ErrURLParsing reports a malformed base URL.
	ErrURLParsing = errors.New("url parsing failed")
	// ErrAsyncRequestFailed reports any transport or decode failure on the async path.
	ErrAsyncRequestFailed = errors.New("async request failed")
	// ErrBadRequest matches every BadRequestError via errors.Is.
	ErrBadRequest = errors.New("bad request")
)

// BadRequestError reports an API-level semantic failure with a human-readable
// reason, and browser-path transport or decode failures.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string { return "request failed: " + e.Reason }

// Is makes errors.Is(err, ErrBadRequest) true for any BadRequestError.
func (e *BadRequestError) Is(target error) bool { return target == ErrBadRequest }
