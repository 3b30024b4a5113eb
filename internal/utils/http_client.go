package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultRetryCount is how many times an idempotent request is repeated after
// a transport error or a 5xx response.
const defaultRetryCount = 2

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
//	client := utils.NewHTTPClient("http://localhost:8081", 15*time.Second)
//	resp, err := client.R().SetBody(req).Post("/encrypt")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL with a per-request
// timeout. Failed requests are retried on transport errors and 5xx
// responses with a short backoff; callers must only send idempotent
// requests through it.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPClient{Client: client}
}
