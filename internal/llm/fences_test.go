package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"uppercase tag", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here is the report:\n{\"a\":1}", `{"a":1}`},
		{"trailing prose", "{\"a\":1}\nLet me know if you need more.", `{"a":1}`},
		{"array payload", "```json\n[1,2]\n```", `[1,2]`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	in := "```json\n{\"a\": {\"b\": [1, 2]}}\n```"
	once := StripFences(in)
	assert.Equal(t, once, StripFences(once))
}
