package http

import (
	"net/http"
	"time"
)

// BackoffConfig controls retry behaviour for a request. A nil config means a
// single attempt with no retries.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// doRequestWithBackoff executes doRequest, retrying transport failures and
// 5xx responses with exponential delay when a backoff config is provided.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	successResult, errorResult, status, err := hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
	if backoff == nil || err == nil {
		return successResult, errorResult, status, err
	}

	interval := backoff.InitialInterval
	for attempt := 1; attempt <= backoff.MaxRetries; attempt++ {
		if !isRetryable(status) {
			break
		}

		time.Sleep(interval)
		interval *= 2
		if backoff.MaxInterval > 0 && interval > backoff.MaxInterval {
			interval = backoff.MaxInterval
		}

		successResult, errorResult, status, err = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil {
			break
		}
	}

	return successResult, errorResult, status, err
}

// isRetryable reports whether a retry can change the outcome: transport
// failures (no status) and server-side errors qualify, client errors do not.
func isRetryable(status int) bool {
	return status == 0 || status >= http.StatusInternalServerError
}
