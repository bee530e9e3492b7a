package sicar

import (
	"errors"
	"testing"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    State
		wantErr bool
	}{
		{"SP", SP, false},
		{"sp", SP, false},
		{" pa ", PA, false},
		{"df", DF, false},
		{"to", TO, false},
		{"XX", "", true},
		{"", "", true},
		{"São Paulo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseState(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownState) {
					t.Fatalf("ParseState(%q) err = %v, want ErrUnknownState", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseState(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseState(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatesComplete(t *testing.T) {
	all := States()
	if len(all) != 27 {
		t.Fatalf("expected 27 federative units, got %d", len(all))
	}
	seen := make(map[State]bool, len(all))
	for _, st := range all {
		if !st.valid() {
			t.Fatalf("invalid state %q in listing", st)
		}
		if seen[st] {
			t.Fatalf("duplicate state %q", st)
		}
		seen[st] = true
	}
}

func TestStatesReturnsCopy(t *testing.T) {
	States()[0] = "ZZ"
	if States()[0] != AC {
		t.Fatal("States must not expose internal storage")
	}
}
