package backend

import (
	"bytes"
	"context"
	"crypto/rsa"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-fed/httpsig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/metrics"
)

type contextKey int

const contextEndpoint contextKey = iota

func withEndpoint(ctx context.Context, endpoint string) context.Context {
	return context.WithValue(ctx, contextEndpoint, endpoint)
}

func endpointFromRequest(request *http.Request) string {
	endpoint, _ := request.Context().Value(contextEndpoint).(string)
	return endpoint
}

// ThrottledTransport spaces calls to the backend. When the backend announces
// its budget through x-rate-limit headers the endpoint limiter follows it.
type ThrottledTransport struct {
	log            logger.Logger
	wrap           http.RoundTripper
	defaultRate    rate.Limit
	mu             sync.Mutex
	waitUntilReset map[string]time.Time
	ratelimiters   map[string]*rate.Limiter
}

func NewThrottledTransport(wrap http.RoundTripper, requestsPerSecond float64, log logger.Logger) *ThrottledTransport {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &ThrottledTransport{
		log:            log,
		wrap:           wrap,
		defaultRate:    limit,
		ratelimiters:   make(map[string]*rate.Limiter),
		waitUntilReset: make(map[string]time.Time),
	}
}

func (c *ThrottledTransport) limiter(key string) (*rate.Limiter, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	limiter, ok := c.ratelimiters[key]
	if !ok {
		limiter = rate.NewLimiter(c.defaultRate, 1)
		c.ratelimiters[key] = limiter
	}
	return limiter, c.waitUntilReset[key]
}

func (c *ThrottledTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	requestKey := endpointFromRequest(request)
	limiter, resetAt := c.limiter(requestKey)

	if wait := time.Until(resetAt); wait > 0 {
		c.log.WithField("seconds_to_wait", wait.Seconds()).
			Trace("No calls remaining, waiting to the next reset")
		timer := time.NewTimer(wait)
		select {
		case <-request.Context().Done():
			timer.Stop()
			return nil, errors.Wrap(request.Context().Err(), "request cancelled while throttled")
		case <-timer.C:
		}
	}
	if err := limiter.Wait(request.Context()); err != nil {
		return nil, errors.Wrap(err, "rate limiter refused the request")
	}

	resp, err := c.wrap.RoundTrip(request)
	if resp != nil {
		c.update(requestKey, resp)
	}
	return resp, err //nolint:wrapcheck
}

func (c *ThrottledTransport) update(requestKey string, resp *http.Response) {
	resetTimestamp, timestampErr := strconv.ParseInt(resp.Header.Get("x-rate-limit-reset"), 10, 64)
	remainingCalls, remainingCallsErr := strconv.ParseFloat(resp.Header.Get("x-rate-limit-remaining"), 64)
	if timestampErr != nil || remainingCallsErr != nil {
		return
	}
	resetDate := time.Unix(resetTimestamp, 0)
	durationUntilReset := time.Until(resetDate)

	c.mu.Lock()
	defer c.mu.Unlock()
	if remainingCalls == 0 {
		c.waitUntilReset[requestKey] = resetDate
		return
	}
	delete(c.waitUntilReset, requestKey)
	if durationUntilReset <= 0 {
		return
	}
	newRate := remainingCalls / durationUntilReset.Seconds()
	c.log.WithFields(logrus.Fields{
		"rate":                newRate,
		"request_key":         requestKey,
		"remaining_calls":     remainingCalls,
		"seconds_until_reset": durationUntilReset.Seconds(),
	}).Trace("updated new rate")
	c.ratelimiters[requestKey] = rate.NewLimiter(rate.Limit(newRate), 1)
}

// SigningTransport adds an HTTP signature made with the portal key to every call.
type SigningTransport struct {
	mu     sync.Mutex
	wrap   http.RoundTripper
	signer httpsig.Signer
	key    *rsa.PrivateKey
	keyID  string
}

func NewSigningTransport(wrap http.RoundTripper, key *rsa.PrivateKey, keyID string) (*SigningTransport, error) {
	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.RSA_SHA256},
		httpsig.DigestSha256,
		[]string{httpsig.RequestTarget, "date", "host", "digest"},
		httpsig.Signature,
		30, // seconds
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create an http request signer")
	}
	return &SigningTransport{wrap: wrap, signer: signer, key: key, keyID: keyID}, nil
}

func (t *SigningTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request = request.Clone(request.Context())
	var body []byte
	if request.Body != nil {
		var err error
		body, err = io.ReadAll(request.Body)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read request body")
		}
		_ = request.Body.Close()
		request.Body = io.NopCloser(bytes.NewReader(body))
	}
	if request.Header.Get("date") == "" {
		request.Header.Set("date", time.Now().UTC().Format(http.TimeFormat))
	}
	if request.Header.Get("host") == "" {
		request.Header.Set("host", request.URL.Host)
	}

	t.mu.Lock()
	err := t.signer.SignRequest(t.key, t.keyID, request, body)
	t.mu.Unlock()
	if err != nil {
		return nil, errors.Wrap(err, "unable to sign http request")
	}
	return t.wrap.RoundTrip(request) //nolint:wrapcheck
}

// MetricsTransport records every backend call by endpoint and status code.
type MetricsTransport struct {
	wrap  http.RoundTripper
	meter metrics.Meter
}

func NewMetricsTransport(wrap http.RoundTripper, meter metrics.Meter) *MetricsTransport {
	return &MetricsTransport{wrap: wrap, meter: meter}
}

func (t *MetricsTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.wrap.RoundTrip(request)
	code := 0
	if resp != nil {
		code = resp.StatusCode
	}
	t.meter.BackendRequest(endpointFromRequest(request), code, time.Since(start))
	return resp, err //nolint:wrapcheck
}
