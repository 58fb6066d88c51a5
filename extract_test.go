package nandoku_test

import (
	"testing"

	"nandoku"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "fenced with json label",
			text: "Here you go:\n```json\n{\"options\": [\"a\", \"b\", \"c\"]}\n```\nEnjoy!",
			want: `{"options": ["a", "b", "c"]}`,
			ok:   true,
		},
		{
			name: "fenced without label",
			text: "```\n{\"options\": []}\n```",
			want: `{"options": []}`,
			ok:   true,
		},
		{
			name: "bare object",
			text: `{"options": ["a"]}`,
			want: `{"options": ["a"]}`,
			ok:   true,
		},
		{
			name: "object surrounded by prose",
			text: `The answer is {"options": ["a"]} as requested.`,
			want: `{"options": ["a"]}`,
			ok:   true,
		},
		{
			name: "nested braces",
			text: `prefix {"outer": {"inner": 1}} suffix`,
			want: `{"outer": {"inner": 1}}`,
			ok:   true,
		},
		{
			name: "unbalanced braces",
			text: `{"options": ["a"`,
			ok:   false,
		},
		{
			name: "no object at all",
			text: "sorry, I cannot help with that",
			ok:   false,
		},
		{
			name: "empty input",
			text: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nandoku.ExtractJSONObject(tt.text)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}
