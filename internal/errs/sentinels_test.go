package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromStatus_Classification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   error
	}{
		{401, ErrUnauthorized},
		{404, ErrNotFound},
		{400, ErrValidation},
		{422, ErrValidation},
		{500, ErrServer},
		{503, ErrServer},
	}
	for _, c := range cases {
		err := FromStatus("GET", "/doacoes", c.status, "")
		if !errors.Is(err, c.want) {
			t.Fatalf("status %d: got %v, want sentinel %v", c.status, err, c.want)
		}
		if err.Status != c.status {
			t.Fatalf("status %d not preserved: %d", c.status, err.Status)
		}
	}
}

func TestFromStatus_UnexpectedStatusIsNoSentinel(t *testing.T) {
	t.Parallel()

	err := FromStatus("GET", "/itens", 418, "")
	for _, s := range []error{ErrUnauthorized, ErrNotFound, ErrValidation, ErrServer, ErrNetwork} {
		if errors.Is(err, s) {
			t.Fatalf("418 must not match %v", s)
		}
	}
}

func TestNetwork_WrapsCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("dial tcp: connection refused")
	err := Network("POST", "/auth/login", cause)
	if !IsNetwork(err) {
		t.Fatalf("expected network classification, got %v", err)
	}
	if err.Status != 0 {
		t.Fatalf("network errors carry no status, got %d", err.Status)
	}
}

func TestValidation_FieldAndMessage(t *testing.T) {
	t.Parallel()

	err := Validation("email", "email is required")
	if !IsValidation(err) {
		t.Fatalf("expected validation classification")
	}
	if err.Field != "email" {
		t.Fatalf("field not preserved: %q", err.Field)
	}
}

func TestAPIError_ErrorString(t *testing.T) {
	t.Parallel()

	withMsg := FromStatus("PUT", "/doacoes/5/status", 500, "boom")
	if got := withMsg.Error(); got != "PUT /doacoes/5/status: 500: boom" {
		t.Fatalf("unexpected error string: %q", got)
	}
	netErr := Network("GET", "/itens", errors.New("timeout"))
	if got := netErr.Error(); got == "" {
		t.Fatalf("empty error string")
	}
}

func TestMalformed(t *testing.T) {
	t.Parallel()

	err := Malformed("POST", "/auth/login", "missing token")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed sentinel, got %v", err)
	}
	if IsUnauthorized(err) {
		t.Fatalf("malformed must not look like 401")
	}
}
