package starkgate

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.Network() != Goerli {
		t.Errorf("Expected default network %s, got %s", Goerli, c.Network())
	}
	if c.BaseURL() != "https://alpha4.starknet.io" {
		t.Errorf("Unexpected default base URL %s", c.BaseURL())
	}
	if c.pollInterval != 8*time.Second {
		t.Errorf("Expected 8s poll interval, got %s", c.pollInterval)
	}
}

func TestWithNetwork(t *testing.T) {
	c, err := NewClient(WithNetwork(Mainnet))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.BaseURL() != "https://alpha-mainnet.starknet.io" {
		t.Errorf("Unexpected mainnet base URL %s", c.BaseURL())
	}
}

func TestWithUnknownNetwork(t *testing.T) {
	_, err := NewClient(WithNetwork("devnet-7"))
	if !errors.Is(err, ErrUnknownNetwork) {
		t.Errorf("Expected ErrUnknownNetwork, got %v", err)
	}
}

func TestWithBaseURL(t *testing.T) {
	c, err := NewClient(WithBaseURL("http://localhost:5050/"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.BaseURL() != "http://localhost:5050" {
		t.Errorf("Expected trailing slash trimmed, got %s", c.BaseURL())
	}
}

func TestWithOptions(t *testing.T) {
	httpClient := &http.Client{Timeout: time.Second}
	logger := zap.NewExample()
	randSource := bytes.NewReader([]byte{1, 2, 3})

	c, err := NewClient(
		WithHTTPClient(httpClient),
		WithLogger(logger),
		WithPollInterval(250*time.Millisecond),
		WithRandSource(randSource),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.httpClient != httpClient {
		t.Error("Expected the injected HTTP client")
	}
	if c.logger != logger {
		t.Error("Expected the injected logger")
	}
	if c.pollInterval != 250*time.Millisecond {
		t.Errorf("Expected 250ms poll interval, got %s", c.pollInterval)
	}
	if c.randSource != randSource {
		t.Error("Expected the injected randomness source")
	}
}

func TestNilOptionValuesIgnored(t *testing.T) {
	c, err := NewClient(WithHTTPClient(nil), WithLogger(nil), WithPollInterval(0))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.httpClient == nil || c.logger == nil {
		t.Error("Expected nil option values to keep defaults")
	}
	if c.pollInterval != 8*time.Second {
		t.Errorf("Expected default poll interval, got %s", c.pollInterval)
	}
}

func TestCloneFrom(t *testing.T) {
	original, err := NewClient(
		WithNetwork(Mainnet),
		WithPollInterval(time.Second),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	clone, err := NewClient(CloneFrom(original))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if clone.Network() != Mainnet {
		t.Errorf("Expected cloned network %s, got %s", Mainnet, clone.Network())
	}
	if clone.BaseURL() != original.BaseURL() {
		t.Errorf("Expected cloned base URL %s, got %s", original.BaseURL(), clone.BaseURL())
	}
	if clone.pollInterval != time.Second {
		t.Errorf("Expected cloned poll interval, got %s", clone.pollInterval)
	}

	// Later options override cloned configuration.
	override, err := NewClient(CloneFrom(original), WithBaseURL("http://localhost:5050"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if override.BaseURL() != "http://localhost:5050" {
		t.Errorf("Expected override to win, got %s", override.BaseURL())
	}
}
