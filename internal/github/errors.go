package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v57/github"
)

// ErrRateLimited is returned when the API signals exhausted quota
// (403 with a zero remaining-rate-limit header, or 429). It is never
// retried; the client short-circuits to the stale-cache fallback.
var ErrRateLimited = errors.New("github: rate limit exceeded")

// ErrTransient marks timeouts, connection errors, 5xx responses and
// malformed response bodies. Transient errors are retried per page up to
// the retry policy's bound.
var ErrTransient = errors.New("github: transient network failure")

// UnexpectedStatusError is any other non-success HTTP status. Not retried.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("github: unexpected status %d", e.StatusCode)
}

// classify maps transport and go-github errors onto the error taxonomy
// surfaced to callers.
func classify(err error) error {
	var rle *gh.RateLimitError
	if errors.As(err, &rle) {
		return ErrRateLimited
	}
	var arle *gh.AbuseRateLimitError
	if errors.As(err, &arle) {
		return ErrRateLimited
	}

	var er *gh.ErrorResponse
	if errors.As(err, &er) && er.Response != nil {
		status := er.Response.StatusCode
		switch {
		case status == http.StatusForbidden &&
			er.Response.Header.Get("X-RateLimit-Remaining") == "0":
			return ErrRateLimited
		case status == http.StatusTooManyRequests:
			return ErrRateLimited
		case status >= 500:
			return fmt.Errorf("%w: %v", ErrTransient, err)
		default:
			return &UnexpectedStatusError{StatusCode: status}
		}
	}

	// Transport failures, timeouts and JSON decode errors all land here.
	return fmt.Errorf("%w: %v", ErrTransient, err)
}

func retryable(err error) bool {
	return errors.Is(err, ErrTransient)
}
