package starkgate

import "encoding/json"

// TransactionStatus is the network's view of a submitted transaction. The
// enumeration is owned by the server; values outside the known set are
// carried through untouched.
type TransactionStatus string

const (
	// StatusNotReceived means the network has no record of the transaction.
	StatusNotReceived TransactionStatus = "NOT_RECEIVED"

	// StatusReceived means the transaction is known but not yet processed.
	StatusReceived TransactionStatus = "RECEIVED"

	// StatusPending means the transaction is part of a block being built.
	StatusPending TransactionStatus = "PENDING"

	// StatusRejected means the network refused the transaction.
	StatusRejected TransactionStatus = "REJECTED"

	// StatusAcceptedOnChain means the transaction is part of an accepted block.
	StatusAcceptedOnChain TransactionStatus = "ACCEPTED_ONCHAIN"
)

// Terminal reports whether the status can no longer change on the server.
func (s TransactionStatus) Terminal() bool {
	return s == StatusRejected || s == StatusAcceptedOnChain
}

// FailureReason carries the server's explanation for a rejected transaction.
type FailureReason struct {
	Code         string `json:"code"`
	ErrorMessage string `json:"error_message"`
}

// TransactionStatusResponse is the feeder-gateway's answer to a
// get_transaction_status query.
type TransactionStatusResponse struct {
	TxStatus        TransactionStatus `json:"tx_status"`
	BlockHash       string            `json:"block_hash,omitempty"`
	TxFailureReason *FailureReason    `json:"tx_failure_reason,omitempty"`
}

// AddTransactionResponse is the gateway's acknowledgement of a submitted
// transaction: a preliminary status code and the transaction hash to poll.
// Address is populated for deployments.
type AddTransactionResponse struct {
	Code            string `json:"code"`
	TransactionHash string `json:"transaction_hash"`
	Address         string `json:"address,omitempty"`
}

// ContractAddresses holds the network's core contract addresses.
type ContractAddresses struct {
	Starknet             string `json:"Starknet"`
	GpsStatementVerifier string `json:"GpsStatementVerifier"`
}

// Block is a feeder-gateway block record. Transaction bodies are kept raw;
// this client does not interpret them.
type Block struct {
	BlockHash       string          `json:"block_hash"`
	ParentBlockHash string          `json:"parent_block_hash"`
	BlockNumber     int64           `json:"block_number"`
	StateRoot       string          `json:"state_root"`
	Status          string          `json:"status,omitempty"`
	Timestamp       int64           `json:"timestamp"`
	Transactions    json.RawMessage `json:"transactions,omitempty"`
}

// ContractCode is the deployed bytecode and ABI of a contract.
type ContractCode struct {
	Bytecode []Felt          `json:"bytecode"`
	ABI      json.RawMessage `json:"abi,omitempty"`
}

// TransactionInfo is the feeder-gateway's full record of a transaction.
type TransactionInfo struct {
	Status           TransactionStatus `json:"status"`
	BlockHash        string            `json:"block_hash,omitempty"`
	BlockNumber      int64             `json:"block_number,omitempty"`
	TransactionIndex int64             `json:"transaction_index,omitempty"`
	Transaction      json.RawMessage   `json:"transaction,omitempty"`
}

// Call is a read-only contract invocation for the call_contract query.
//
// Unlike InvokeTransaction, the wire form always carries the calldata and
// signature keys, empty arrays included: the query endpoint requires their
// explicit presence.
type Call struct {
	ContractAddress    Felt
	EntryPointSelector Felt
	Calldata           []Felt
	Signature          []Felt
}

// MarshalJSON encodes the call query body with always-present calldata and
// signature arrays.
func (c Call) MarshalJSON() ([]byte, error) {
	type wire struct {
		ContractAddress    string `json:"contract_address"`
		EntryPointSelector string `json:"entry_point_selector"`
		Calldata           []Felt `json:"calldata"`
		Signature          []Felt `json:"signature"`
	}

	w := wire{
		ContractAddress:    c.ContractAddress.Hex(),
		EntryPointSelector: c.EntryPointSelector.Hex(),
		Calldata:           c.Calldata,
		Signature:          c.Signature,
	}
	if w.Calldata == nil {
		w.Calldata = []Felt{}
	}
	if w.Signature == nil {
		w.Signature = []Felt{}
	}
	return json.Marshal(w)
}

// CallResult is the result words of a call_contract query.
type CallResult struct {
	Result []Felt `json:"result"`
}
