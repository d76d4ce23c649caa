package pipeline

import (
	"context"
	"testing"
)

func TestObsidianPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "# Title\n\nBody.",
			expected: "# Title\n\nBody.",
		},
		{
			name:     "crlf normalized",
			input:    "a\r\nb\r\nc",
			expected: "a\nb\nc",
		},
		{
			name:     "bare cr normalized",
			input:    "a\rb",
			expected: "a\nb",
		},
		{
			name:     "highlight becomes placeholders",
			input:    "some ==highlighted== text",
			expected: "some " + markStartPlaceholder + "highlighted" + markEndPlaceholder + " text",
		},
		{
			name:  "multiple highlights on one line",
			input: "==a== and ==b==",
			expected: markStartPlaceholder + "a" + markEndPlaceholder +
				" and " + markStartPlaceholder + "b" + markEndPlaceholder,
		},
		{
			name:     "unclosed highlight untouched",
			input:    "not ==finished",
			expected: "not ==finished",
		},
		{
			name:     "blank lines compressed",
			input:    "a\n\n\n\nb",
			expected: "a\n\nb",
		},
	}

	p := &ObsidianPreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.expected {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestObsidianPreprocessor_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &ObsidianPreprocessor{}
	input := "==x==\r\n"
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("canceled context should return input unchanged, got %q", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no placeholders",
			input:    "<p>plain</p>",
			expected: "<p>plain</p>",
		},
		{
			name:     "placeholder pair",
			input:    "<p>" + markStartPlaceholder + "hot" + markEndPlaceholder + "</p>",
			expected: "<p><mark>hot</mark></p>",
		},
		{
			name: "multiple pairs",
			input: markStartPlaceholder + "a" + markEndPlaceholder +
				" " + markStartPlaceholder + "b" + markEndPlaceholder,
			expected: "<mark>a</mark> <mark>b</mark>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertMarkPlaceholders(tt.input); got != tt.expected {
				t.Errorf("ConvertMarkPlaceholders(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
