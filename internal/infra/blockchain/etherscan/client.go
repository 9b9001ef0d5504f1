// Package etherscan reads blocks through the Etherscan proxy API, which
// mirrors the Ethereum JSON-RPC methods behind an HTTP GET interface.
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabapcia/maxdelta/internal/balancechange"
	"github.com/gabapcia/maxdelta/internal/pkg/logger"
	"github.com/gabapcia/maxdelta/internal/pkg/resilience/retry"
)

// DefaultBaseURL is the Etherscan API endpoint used when none is configured.
const DefaultBaseURL = "https://api.etherscan.io/api"

var (
	// ErrProviderReturnedError indicates an Etherscan error status or a JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrRateLimited indicates that Etherscan rejected the call because of its rate limit.
	ErrRateLimited = errors.New("rate limit reached")

	// ErrUnexpectedStatus indicates a non-2xx HTTP status with an unreadable body.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// envelope covers both answer shapes of the proxy module: the Etherscan
// status envelope used for errors and the JSON-RPC one used on success.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Err returns the provider error carried by the envelope, if any.
func (e envelope) Err() error {
	if e.Error != nil {
		return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, e.Error.Code, e.Error.Message)
	}

	if e.Status != "0" {
		return nil
	}

	var detail string
	if err := json.Unmarshal(e.Result, &detail); err != nil {
		detail = string(e.Result)
	}

	if strings.Contains(strings.ToLower(detail), "rate limit") {
		return fmt.Errorf("%w: %w: %s", ErrProviderReturnedError, ErrRateLimited, detail)
	}

	return fmt.Errorf("%w: %s - %s", ErrProviderReturnedError, e.Message, detail)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	chainID    uint64
	retry      retry.Retry
}

var _ balancechange.Blockchain = (*client)(nil)

// Option configures the Etherscan client.
type Option func(*client)

// WithChainID adds the chainid parameter required by the multichain endpoint.
// Zero leaves it out.
func WithChainID(id uint64) Option {
	return func(c *client) {
		c.chainID = id
	}
}

// WithRateLimitAttempts sets how many times a rate-limited call is attempted.
func WithRateLimitAttempts(n uint) Option {
	return func(c *client) {
		c.retry = newRateLimitRetry(retry.WithAttempts(n))
	}
}

// WithRetry replaces the rate-limit retry policy.
func WithRetry(r retry.Retry) Option {
	return func(c *client) {
		c.retry = r
	}
}

func newRateLimitRetry(opts ...retry.Option) retry.Retry {
	return retry.New(append([]retry.Option{
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, ErrRateLimited) }),
	}, opts...)...)
}

// NewClient returns a chain data source that queries baseURL with apiKey.
// An empty baseURL selects DefaultBaseURL.
//
// Parameters:
//   - httpClient: client used for every API call, usually from transport/http.
//   - baseURL: root of the Etherscan-compatible API.
//   - apiKey: key sent with each request.
//   - opts: optional settings such as the chain ID and rate limit retries.
//
// Returns:
//   - A client implementing the balancechange.Blockchain interface.
func NewClient(httpClient *http.Client, baseURL, apiKey string, opts ...Option) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		retry:      newRateLimitRetry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// call runs a proxy action, retrying while Etherscan reports a rate limit.
func (c *client) call(ctx context.Context, action string, params url.Values) (json.RawMessage, error) {
	var result json.RawMessage
	err := c.retry.Execute(ctx, func() error {
		var err error
		result, err = c.do(ctx, action, params)
		if errors.Is(err, ErrRateLimited) {
			logger.Debug(ctx, "etherscan rate limit reached", "action", action)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *client) do(ctx context.Context, action string, params url.Values) (json.RawMessage, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("module", "proxy")
	query.Set("action", action)
	query.Set("apikey", c.apiKey)
	if c.chainID != 0 {
		query.Set("chainid", strconv.FormatUint(c.chainID, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data envelope
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode/100 != 2 {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}
