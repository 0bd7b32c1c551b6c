package starkgate

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
)

// TransactionType discriminates the transaction variants on the wire.
type TransactionType string

const (
	// TypeInvokeFunction calls an entry point on a deployed contract.
	TypeInvokeFunction TransactionType = "INVOKE_FUNCTION"

	// TypeDeploy installs a new contract instance.
	TypeDeploy TransactionType = "DEPLOY"
)

// Transaction is a payload accepted by the gateway's add_transaction
// endpoint. This is a sealed interface - only the variants in this package
// implement it, so encoding can match exhaustively and a field belonging
// to one variant can never leak into the other's wire form.
type Transaction interface {
	// isTransaction is unexported to seal the interface.
	isTransaction()

	// Type returns the wire discriminator for this variant.
	Type() TransactionType

	json.Marshaler
}

// Signature is an ordered pair of field elements produced by a signer.
type Signature [2]Felt

// InvokeTransaction calls an entry point on a deployed contract.
//
// Signature is optional: the network accepts unsigned invocations, and in
// that case the signature field must be absent from the payload entirely,
// not present-but-empty.
type InvokeTransaction struct {
	ContractAddress    Felt
	EntryPointSelector Felt
	Calldata           []Felt
	Signature          *Signature
}

func (InvokeTransaction) isTransaction() {}

// Type returns TypeInvokeFunction.
func (InvokeTransaction) Type() TransactionType { return TypeInvokeFunction }

// MarshalJSON encodes the invocation wire form. The contract address and
// entry-point selector travel as canonical hex; calldata and signature
// words travel as full-precision decimal literals.
func (tx InvokeTransaction) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type               TransactionType `json:"type"`
		ContractAddress    string          `json:"contract_address"`
		EntryPointSelector string          `json:"entry_point_selector"`
		Calldata           []Felt          `json:"calldata"`
		Signature          *Signature      `json:"signature,omitempty"`
	}

	w := wire{
		Type:               TypeInvokeFunction,
		ContractAddress:    tx.ContractAddress.Hex(),
		EntryPointSelector: tx.EntryPointSelector.Hex(),
		Calldata:           tx.Calldata,
		Signature:          tx.Signature,
	}
	if w.Calldata == nil {
		w.Calldata = []Felt{}
	}
	return json.Marshal(w)
}

// DeployTransaction installs a new contract instance.
//
// Salt may be left nil, in which case Client.AddTransaction resolves it to
// a freshly drawn random field element before submission. ConstructorCalldata
// entries are passed to the network verbatim; the gateway accepts decimal
// strings as-is, so no numeric coercion is applied.
type DeployTransaction struct {
	Salt                *Felt
	ConstructorCalldata []string
	Contract            *CompiledContract
}

func (DeployTransaction) isTransaction() {}

// Type returns TypeDeploy.
func (DeployTransaction) Type() TransactionType { return TypeDeploy }

// MarshalJSON encodes the deployment wire form, compressing the contract's
// program section in place of the original. The salt must already be
// resolved; serializing with a nil salt fails with ErrMissingSalt rather
// than silently defaulting, so an unresolved transaction can never reach
// the wire.
func (tx DeployTransaction) MarshalJSON() ([]byte, error) {
	if tx.Salt == nil {
		return nil, ErrMissingSalt
	}
	if tx.Contract == nil {
		return nil, ErrMissingContract
	}

	program, err := CompressProgram(tx.Contract.Program)
	if err != nil {
		return nil, err
	}

	type definition struct {
		Program           string          `json:"program"`
		ABI               json.RawMessage `json:"abi,omitempty"`
		EntryPointsByType json.RawMessage `json:"entry_points_by_type,omitempty"`
	}
	type wire struct {
		Type                TransactionType `json:"type"`
		ContractAddressSalt string          `json:"contract_address_salt"`
		ConstructorCalldata []string        `json:"constructor_calldata"`
		ContractDefinition  definition      `json:"contract_definition"`
	}

	w := wire{
		Type:                TypeDeploy,
		ContractAddressSalt: tx.Salt.Hex(),
		ConstructorCalldata: tx.ConstructorCalldata,
		ContractDefinition: definition{
			Program:           program,
			ABI:               tx.Contract.ABI,
			EntryPointsByType: tx.Contract.EntryPointsByType,
		},
	}
	if w.ConstructorCalldata == nil {
		w.ConstructorCalldata = []string{}
	}
	return json.Marshal(w)
}

// WithSalt returns a copy of the transaction with the salt set.
func (tx DeployTransaction) WithSalt(salt Felt) DeployTransaction {
	tx.Salt = &salt
	return tx
}

// RandomSalt draws a uniformly random field element from r to use as a
// contract address salt. Pass crypto/rand.Reader outside of tests.
func RandomSalt(r io.Reader) (Felt, error) {
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, feltPrime)
	if err != nil {
		return Felt{}, fmt.Errorf("starkgate: drawing salt: %w", err)
	}
	return Felt{value: v}, nil
}
