package llm

import (
	"context"
	"testing"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "markdown fence",
			input:    "```markdown\n# Hello\n```",
			expected: "# Hello",
		},
		{
			name:     "bare fence",
			input:    "```\n# Hello\n```",
			expected: "# Hello",
		},
		{
			name:     "no fence",
			input:    "# Hello",
			expected: "# Hello",
		},
		{
			name:     "inner fences preserved",
			input:    "# Hello\n\n```js\ncode\n```\n\nmore",
			expected: "# Hello\n\n```js\ncode\n```\n\nmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.expected {
				t.Errorf("StripCodeFence() = %q, want %q", got, tt.expected)
			}
		})
	}
}
