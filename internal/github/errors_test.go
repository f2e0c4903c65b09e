package github

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v57/github"
)

func errorResponse(status int, header http.Header) *gh.ErrorResponse {
	if header == nil {
		header = http.Header{}
	}
	return &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Header:     header,
			Request:    &http.Request{Method: "GET", URL: &url.URL{Path: "/"}},
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{
			name: "rate limit error type",
			err:  &gh.RateLimitError{},
			want: func(err error) bool { return errors.Is(err, ErrRateLimited) },
		},
		{
			name: "abuse rate limit error type",
			err:  &gh.AbuseRateLimitError{},
			want: func(err error) bool { return errors.Is(err, ErrRateLimited) },
		},
		{
			name: "403 with zero remaining quota",
			err: errorResponse(http.StatusForbidden,
				http.Header{"X-Ratelimit-Remaining": []string{"0"}}),
			want: func(err error) bool { return errors.Is(err, ErrRateLimited) },
		},
		{
			name: "429 too many requests",
			err:  errorResponse(http.StatusTooManyRequests, nil),
			want: func(err error) bool { return errors.Is(err, ErrRateLimited) },
		},
		{
			name: "500 is transient",
			err:  errorResponse(http.StatusInternalServerError, nil),
			want: func(err error) bool { return errors.Is(err, ErrTransient) },
		},
		{
			name: "503 is transient",
			err:  errorResponse(http.StatusServiceUnavailable, nil),
			want: func(err error) bool { return errors.Is(err, ErrTransient) },
		},
		{
			name: "404 is unexpected status",
			err:  errorResponse(http.StatusNotFound, nil),
			want: func(err error) bool {
				var use *UnexpectedStatusError
				return errors.As(err, &use) && use.StatusCode == http.StatusNotFound
			},
		},
		{
			name: "plain 403 is unexpected status",
			err:  errorResponse(http.StatusForbidden, nil),
			want: func(err error) bool {
				var use *UnexpectedStatusError
				return errors.As(err, &use) && use.StatusCode == http.StatusForbidden
			},
		},
		{
			name: "transport error is transient",
			err:  &url.Error{Op: "Get", URL: "https://api.github.com", Err: errors.New("connection refused")},
			want: func(err error) bool { return errors.Is(err, ErrTransient) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if !tt.want(got) {
				t.Errorf("classify(%v) = %v, wrong class", tt.err, got)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	if retryable(ErrRateLimited) {
		t.Error("rate limit errors must not be retried")
	}
	if retryable(&UnexpectedStatusError{StatusCode: 404}) {
		t.Error("unexpected statuses must not be retried")
	}
	if !retryable(classify(errorResponse(http.StatusBadGateway, nil))) {
		t.Error("5xx responses must be retried")
	}
}
