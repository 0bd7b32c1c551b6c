package starkgate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Network selects a gateway deployment by name.
type Network string

const (
	// Mainnet is the production network.
	Mainnet Network = "mainnet-alpha"

	// Goerli is the public test network. It is the default.
	Goerli Network = "goerli-alpha"
)

// baseURL returns the preset base URL for the network, or "" if unknown.
func (n Network) baseURL() string {
	switch n {
	case Mainnet:
		return "https://alpha-mainnet.starknet.io"
	case Goerli:
		return "https://alpha4.starknet.io"
	default:
		return ""
	}
}

// defaultPollInterval is the delay between confirmation poll cycles.
const defaultPollInterval = 8 * time.Second

// Client talks to one gateway deployment: the write gateway for submitting
// transactions and the read feeder-gateway for queries. Every operation is
// a single request/response exchange; the client keeps no connection state
// and never retries. Retry policy belongs to WaitForTransaction and to the
// caller.
//
// A Client is safe for concurrent use.
type Client struct {
	network      Network
	baseURL      string
	httpClient   *http.Client
	logger       *zap.Logger
	pollInterval time.Duration
	randSource   io.Reader
}

// NewClient creates a Client for the configured network. Without options
// it targets Goerli with an 8 second poll interval and no logging.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		network:      Goerli,
		httpClient:   &http.Client{},
		logger:       zap.NewNop(),
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		c.baseURL = c.network.baseURL()
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, c.network)
	}
	return c, nil
}

// Network returns the configured network.
func (c *Client) Network() Network {
	return c.network
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// gatewayURL builds a write-path URL for the given operation.
func (c *Client) gatewayURL(op string) string {
	return c.baseURL + "/gateway/" + op
}

// feederURL builds a read-path URL for the given operation and query.
func (c *Client) feederURL(op string, query url.Values) string {
	u := c.baseURL + "/feeder_gateway/" + op
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// blockQuery builds the blockId query parameter. An empty identifier maps
// to the literal sentinel "null", which the feeder-gateway reads as the
// latest block.
func blockQuery(blockID string) url.Values {
	if blockID == "" {
		blockID = "null"
	}
	return url.Values{"blockId": []string{blockID}}
}

// AddTransaction submits a transaction to the write gateway and returns the
// acknowledgement. For a DeployTransaction with a nil salt, a fresh random
// salt is drawn from the client's randomness source first.
func (c *Client) AddTransaction(ctx context.Context, tx Transaction) (*AddTransactionResponse, error) {
	if deploy, ok := tx.(DeployTransaction); ok && deploy.Salt == nil {
		salt, err := RandomSalt(c.randSource)
		if err != nil {
			return nil, err
		}
		tx = deploy.WithSalt(salt)
	}

	c.logger.Debug("submitting transaction", zap.String("type", string(tx.Type())))

	var resp AddTransactionResponse
	if err := c.post(ctx, "add_transaction", c.gatewayURL("add_transaction"), tx, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("transaction submitted",
		zap.String("type", string(tx.Type())),
		zap.String("tx_hash", resp.TransactionHash),
		zap.String("code", resp.Code))
	return &resp, nil
}

// ContractAddresses fetches the network's core contract addresses.
func (c *Client) ContractAddresses(ctx context.Context) (*ContractAddresses, error) {
	var resp ContractAddresses
	if err := c.get(ctx, "get_contract_addresses", c.feederURL("get_contract_addresses", nil), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CallContract executes a read-only contract call against the state at
// blockID ("" means latest). No transaction is created.
func (c *Client) CallContract(ctx context.Context, call Call, blockID string) (*CallResult, error) {
	var resp CallResult
	u := c.feederURL("call_contract", blockQuery(blockID))
	if err := c.post(ctx, "call_contract", u, call, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Block fetches the block identified by blockID ("" means latest).
func (c *Client) Block(ctx context.Context, blockID string) (*Block, error) {
	var resp Block
	if err := c.get(ctx, "get_block", c.feederURL("get_block", blockQuery(blockID)), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Code fetches the deployed bytecode and ABI of a contract at blockID
// ("" means latest).
func (c *Client) Code(ctx context.Context, contractAddress string, blockID string) (*ContractCode, error) {
	query := blockQuery(blockID)
	query.Set("contractAddress", contractAddress)

	var resp ContractCode
	if err := c.get(ctx, "get_code", c.feederURL("get_code", query), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StorageAt fetches the value of one storage slot of a contract at blockID
// ("" means latest).
func (c *Client) StorageAt(ctx context.Context, contractAddress string, key Felt, blockID string) (Felt, error) {
	query := blockQuery(blockID)
	query.Set("contractAddress", contractAddress)
	query.Set("key", key.String())

	var resp Felt
	if err := c.get(ctx, "get_storage_at", c.feederURL("get_storage_at", query), &resp); err != nil {
		return Felt{}, err
	}
	return resp, nil
}

// TransactionStatus fetches the current status of a transaction. The hash
// is normalized to canonical hex in the query.
func (c *Client) TransactionStatus(ctx context.Context, txHash Felt) (*TransactionStatusResponse, error) {
	query := url.Values{"transactionHash": []string{txHash.Hex()}}

	var resp TransactionStatusResponse
	if err := c.get(ctx, "get_transaction_status", c.feederURL("get_transaction_status", query), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Transaction fetches the full record of a transaction. The hash is
// normalized to canonical hex in the query.
func (c *Client) Transaction(ctx context.Context, txHash Felt) (*TransactionInfo, error) {
	query := url.Values{"transactionHash": []string{txHash.Hex()}}

	var resp TransactionInfo
	if err := c.get(ctx, "get_transaction", c.feederURL("get_transaction", query), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs one GET exchange and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &GatewayError{Endpoint: endpoint, Err: err}
	}
	return c.do(endpoint, req, out)
}

// post performs one POST exchange with a JSON body and decodes the JSON
// response into out.
func (c *Client) post(ctx context.Context, endpoint, rawURL string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(encoded))
	if err != nil {
		return &GatewayError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(endpoint, req, out)
}

// do executes one request and decodes the response. Any transport failure
// or non-2xx status becomes a *GatewayError; the client never interprets
// business-logic fields in error bodies.
func (c *Client) do(endpoint string, req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &GatewayError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &GatewayError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &GatewayError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(data), Err: err}
	}
	return nil
}
