package sicar

import (
	"errors"
	"fmt"
	"testing"
)

func TestFetchErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{"transport", &FetchError{URL: "https://car.gov.br/x", Reason: FetchTransport, Err: errors.New("boom")}, "fetch https://car.gov.br/x: transport: boom"},
		{"empty body", &FetchError{URL: "https://car.gov.br/x", Reason: FetchEmptyBody}, "fetch https://car.gov.br/x: empty body"},
		{"wrong type", &FetchError{URL: "https://car.gov.br/x", Reason: FetchWrongType}, "fetch https://car.gov.br/x: wrong content type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("broken pipe")
	err := fmt.Errorf("attempt 3: %w", &FetchError{URL: "u", Reason: FetchTransport, Err: cause})

	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatal("expected FetchError in chain")
	}
	if fe.Reason != FetchTransport {
		t.Fatalf("expected transport reason, got %v", fe.Reason)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{URL: "https://car.gov.br/publico/imoveis/index", StatusCode: 504}
	want := "https://car.gov.br/publico/imoveis/index HTTP 504"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFetchReasonStrings(t *testing.T) {
	tests := []struct {
		reason FetchReason
		want   string
	}{
		{FetchTransport, "transport"},
		{FetchEmptyBody, "empty body"},
		{FetchWrongType, "wrong content type"},
		{FetchReason(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
