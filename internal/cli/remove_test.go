package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/casey/apptrack/internal/presenter"
)

func TestConfirmRemoval(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"YES\n", true},
		{"Yes\n", true},
		{"y\n", false},
		{"no\n", false},
		{"\n", false},
		{"yess\n", false},
	}

	for _, tt := range tests {
		out := &bytes.Buffer{}
		prompt := NewPrompter(strings.NewReader(tt.input), out)

		confirmed, err := confirmRemoval(prompt, presenter.New(out), "My App", "my-app")
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if confirmed != tt.want {
			t.Fatalf("input %q: expected confirmed=%v", tt.input, tt.want)
		}
		if !strings.Contains(out.String(), "About to remove app: My App (my-app)") {
			t.Fatalf("expected removal warning, got %q", out.String())
		}
	}
}
