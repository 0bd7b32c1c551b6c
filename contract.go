package starkgate

import (
	"encoding/json"
	"fmt"
	"io"
)

// CompiledContract is a compiled contract as produced by the compiler: the
// program document, the ABI, and the entry points grouped by type. The
// record is immutable; the program is compressed only at transaction
// encoding time and the decompressed original is never sent.
type CompiledContract struct {
	Program           json.RawMessage `json:"program"`
	ABI               json.RawMessage `json:"abi,omitempty"`
	EntryPointsByType json.RawMessage `json:"entry_points_by_type,omitempty"`
}

// ParseCompiledContract parses compiler output JSON into a CompiledContract.
// A contract without a program section is not deployable and fails with
// ErrInvalidProgramFormat.
func ParseCompiledContract(data []byte) (*CompiledContract, error) {
	var c CompiledContract
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProgramFormat, err)
	}
	if len(c.Program) == 0 || string(c.Program) == "null" {
		return nil, fmt.Errorf("%w: missing program section", ErrInvalidProgramFormat)
	}
	return &c, nil
}

// ReadCompiledContract reads compiler output from r and parses it.
func ReadCompiledContract(r io.Reader) (*CompiledContract, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProgramFormat, err)
	}
	return ParseCompiledContract(data)
}

// MustParseCompiledContract is like ParseCompiledContract but panics on
// error. This is a convenience for tests and examples with embedded JSON.
func MustParseCompiledContract(data []byte) *CompiledContract {
	c, err := ParseCompiledContract(data)
	if err != nil {
		panic(err)
	}
	return c
}
