// Package starkgate is a Go client for the StarkNet gateway and
// feeder-gateway HTTP APIs.
//
// The gateway is the write path: new transactions (contract deployments and
// function invocations) are submitted to it as JSON payloads. The
// feeder-gateway is the read path: blocks, contract code, storage slots and
// transaction statuses are queried from it. This library covers both, plus
// the encoding rules the gateway's verifier expects byte-for-byte.
//
// # Basic Usage
//
// Create a client for a network, submit a transaction, and wait for it to
// be accepted:
//
//	client, err := starkgate.NewClient(starkgate.WithNetwork(starkgate.Goerli))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tx := starkgate.InvokeTransaction{
//	    ContractAddress:    starkgate.MustFelt("0x1a2b..."),
//	    EntryPointSelector: starkgate.SelectorFromName("transfer"),
//	    Calldata:           []starkgate.Felt{starkgate.MustFelt("100")},
//	}
//
//	resp, err := client.AddTransaction(ctx, tx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := client.WaitForTransaction(ctx, starkgate.MustFelt(resp.TransactionHash))
//
// # Field Elements
//
// Every on-chain numeric value (addresses, selectors, calldata, signatures,
// storage keys) is a field element with no fixed bit width. The Felt type
// wraps an arbitrary-precision integer and handles the gateway's encoding
// rules: canonical lowercase 0x hex on the wire where hex is expected, and
// unquoted decimal literals in JSON bodies so values beyond the float64-safe
// range survive serialization exactly.
//
// # Transaction Kinds
//
// Transactions form a closed sum type: InvokeTransaction calls an entry
// point on a deployed contract, DeployTransaction installs a new contract
// instance. Each variant serializes only the fields meaningful to it; an
// invoke payload never carries a contract address salt and a deploy payload
// never carries a signature.
//
// # Confirmation
//
// Gateway acceptance is eventually consistent. WaitForTransaction polls the
// transaction status at a fixed interval until the network reports a
// decisive outcome, distinguishing an explicit rejection from a transaction
// that was never indexed at all.
package starkgate
