package auth

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalPrompter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain code", "4/abc123\n", "4/abc123", false},
		{"surrounding whitespace", "  4/abc123  \n", "4/abc123", false},
		{"no trailing newline", "4/abc123", "4/abc123", false},
		{"empty line", "\n", "", true},
		{"whitespace only", "   \n", "", true},
		{"closed input", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &TerminalPrompter{In: strings.NewReader(tt.input), Out: &out}

			got, err := p.Prompt("https://example.com/auth")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Prompt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Prompt() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "https://example.com/auth") {
				t.Error("Prompt() should print the authorization URL")
			}
		})
	}
}
