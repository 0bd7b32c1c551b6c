package starkgate

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status   TransactionStatus
		terminal bool
	}{
		{StatusNotReceived, false},
		{StatusReceived, false},
		{StatusPending, false},
		{StatusRejected, true},
		{StatusAcceptedOnChain, true},
		{TransactionStatus("SOMETHING_NEW"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.terminal {
				t.Errorf("Expected Terminal() == %v for %s", tt.terminal, tt.status)
			}
		})
	}
}

func TestCallMarshalKeysAlwaysPresent(t *testing.T) {
	data, err := json.Marshal(Call{
		ContractAddress:    MustFelt("0x1"),
		EntryPointSelector: MustFelt("0x2"),
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Read-only calls require explicit presence of both keys, empty or not.
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if calldata, present := m["calldata"]; !present || string(calldata) != "[]" {
		t.Errorf("Expected calldata to be present and empty, got %s", calldata)
	}
	if signature, present := m["signature"]; !present || string(signature) != "[]" {
		t.Errorf("Expected signature to be present and empty, got %s", signature)
	}
}

func TestCallMarshalValues(t *testing.T) {
	data, err := json.Marshal(Call{
		ContractAddress:    MustFelt("0xdead"),
		EntryPointSelector: MustFelt("0x2"),
		Calldata:           []Felt{MustFelt("18446744073709551617")},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"contract_address":"0xdead"`) {
		t.Errorf("Expected hex contract address, got %s", data)
	}
	if !strings.Contains(string(data), `"calldata":[18446744073709551617]`) {
		t.Errorf("Expected full-precision calldata literal, got %s", data)
	}
}

func TestContractCodeUnmarshal(t *testing.T) {
	const body = `{"bytecode": ["0x480680017fff8000", "0x3"], "abi": []}`

	var code ContractCode
	if err := json.Unmarshal([]byte(body), &code); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(code.Bytecode) != 2 {
		t.Fatalf("Expected 2 bytecode words, got %d", len(code.Bytecode))
	}
	if got := code.Bytecode[1].String(); got != "3" {
		t.Errorf("Expected bytecode word 3, got %s", got)
	}
}
