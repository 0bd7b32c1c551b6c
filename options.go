package starkgate

import (
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithNetwork selects a named network preset. The default is Goerli.
func WithNetwork(network Network) ClientOption {
	return func(c *Client) {
		c.network = network
	}
}

// WithBaseURL overrides the network preset with an explicit base URL.
// Useful for private deployments and test servers.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for all exchanges.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPollInterval sets the delay between confirmation poll cycles.
// Default is 8 seconds.
func WithPollInterval(interval time.Duration) ClientOption {
	return func(c *Client) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// WithRandSource sets the randomness source used for deploy salts.
// The default is crypto/rand. Tests can inject a deterministic reader.
func WithRandSource(r io.Reader) ClientOption {
	return func(c *Client) {
		c.randSource = r
	}
}

// CloneFrom copies the full configuration of an existing client. Options
// applied after CloneFrom override the copied values.
func CloneFrom(other *Client) ClientOption {
	return func(c *Client) {
		if other == nil {
			return
		}
		c.network = other.network
		c.baseURL = other.baseURL
		c.httpClient = other.httpClient
		c.logger = other.logger
		c.pollInterval = other.pollInterval
		c.randSource = other.randSource
	}
}
