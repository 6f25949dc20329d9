package shared

import (
	"bytes"
	"strings"
	"testing"
)

func TestSplitIDs(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic list",
			input: "a,b,c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "whitespace trimmed",
			input: " a , b ,c ",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty entries dropped",
			input: "a,,b,",
			want:  []string{"a", "b"},
		},
		{
			name:  "single id",
			input: "4iV5W9uYEdYUVa79Axb7Rh",
			want:  []string{"4iV5W9uYEdYUVa79Axb7Rh"},
		},
		{
			name:  "only separators",
			input: ", ,",
			want:  []string{},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIDs(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitIDs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitIDs()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateState(t *testing.T) {
	t.Run("generates non-empty token", func(t *testing.T) {
		state, err := GenerateState()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(state) != 32 {
			t.Errorf("expected 32 hex characters, got %d", len(state))
		}
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a, _ := GenerateState()
		b, _ := GenerateState()
		if a == b {
			t.Error("expected distinct state tokens")
		}
	})
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]any{"name": "test"}

	t.Run("compact", func(t *testing.T) {
		out, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.Contains(string(out), "\n") {
			t.Error("compact output should not contain newlines")
		}
	})

	t.Run("pretty", func(t *testing.T) {
		out, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(out), "  ") {
			t.Error("pretty output should be indented")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("test message", "key", "value")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain message, got %s", buf.String())
	}
}
