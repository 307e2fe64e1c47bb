package crm

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm-reporting/internal/shared/loggers"
	"crm-reporting/internal/shared/svcerrors"
	"crm-reporting/internal/tokens"
)

const (
	requestTimeout = 30 * time.Second
	connectTimeout = 10 * time.Second
)

// httpGetter performs authenticated GET requests against the CRM API,
// retrying transient failures per the retry policy.
type httpGetter struct {
	baseURL string
	bearer  tokens.BearerSource
	client  *http.Client
	policy  retryPolicy
}

func newHTTPGetter(baseURL string, bearer tokens.BearerSource) *httpGetter {
	return &httpGetter{
		baseURL: strings.TrimRight(baseURL, "/"),
		bearer:  bearer,
		client: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
		policy: defaultRetryPolicy(),
	}
}

// get performs one logical GET (with retries) and returns the response body.
func (g *httpGetter) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	// Credential failures are configuration errors, never retried.
	token, err := g.bearer.Token(ctx)
	if err != nil {
		return nil, err
	}

	var body []byte
	err = g.policy.do(ctx, endpoint, func(attempt int) error {
		data, err := g.getOnce(ctx, endpoint, params, token, attempt)
		if err != nil {
			return err
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (g *httpGetter) getOnce(ctx context.Context, endpoint string, params url.Values, token string, attempt int) ([]byte, error) {
	requestURL := g.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, svcerrors.NewInternalErrorUndefined(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		metricRequestsTotal.WithLabelValues(endpoint, outcomeTransientError).Inc()
		return nil, errNetworkFailure(endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metricRequestsTotal.WithLabelValues(endpoint, outcomeTransientError).Inc()
		return nil, errNetworkFailure(endpoint, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		metricRequestsTotal.WithLabelValues(endpoint, outcomeTransientError).Inc()
		return nil, errTransientStatus(endpoint, resp.StatusCode)
	default:
		metricRequestsTotal.WithLabelValues(endpoint, outcomePermanentError).Inc()
		return nil, errPermanentStatus(endpoint, resp.StatusCode)
	}

	metricRequestsTotal.WithLabelValues(endpoint, outcomeSuccess).Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldEndpoint, endpoint).
		Int(loggers.FieldAttempt, attempt).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("request completed")

	return data, nil
}
