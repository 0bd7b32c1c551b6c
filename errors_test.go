package starkgate

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrMalformedNumber", ErrMalformedNumber, "starkgate: malformed number"},
		{"ErrInvalidProgramFormat", ErrInvalidProgramFormat, "starkgate: invalid program format"},
		{"ErrUnknownNetwork", ErrUnknownNetwork, "starkgate: unknown network"},
		{"ErrMissingSalt", ErrMissingSalt, "starkgate: contract address salt not resolved"},
		{"ErrMissingContract", ErrMissingContract, "starkgate: missing contract definition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestGatewayError(t *testing.T) {
	t.Run("http failure", func(t *testing.T) {
		err := &GatewayError{Endpoint: "get_block", StatusCode: 500, Body: "boom"}
		expected := `starkgate: request to get_block failed with status 500: boom`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("transport failure wraps", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := &GatewayError{Endpoint: "add_transaction", Err: inner}
		if !errors.Is(err, inner) {
			t.Error("Expected GatewayError to unwrap to the transport error")
		}
		expected := `starkgate: request to add_transaction failed: connection refused`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestRejectedError(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		err := &RejectedError{Hash: MustFelt("0x1f"), Reason: "Invalid entry point"}
		expected := `starkgate: transaction 0x1f rejected: Invalid entry point`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("without reason", func(t *testing.T) {
		err := &RejectedError{Hash: MustFelt("0x1f")}
		expected := `starkgate: transaction 0x1f rejected`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestUnreachableError(t *testing.T) {
	err := &UnreachableError{Hash: MustFelt("255")}
	expected := `starkgate: transaction 0xff not received by the network`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestErrorKindsDistinct(t *testing.T) {
	var rejected *RejectedError
	var unreachable *UnreachableError

	err := error(&RejectedError{Hash: MustFelt("1")})
	if !errors.As(err, &rejected) {
		t.Error("Expected errors.As to match RejectedError")
	}
	if errors.As(err, &unreachable) {
		t.Error("RejectedError must not match UnreachableError")
	}
}
