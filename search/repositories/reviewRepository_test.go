package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "wombat", want: "wombat"},
		{name: "percent escaped", input: "100% cotton", want: `100\% cotton`},
		{name: "underscore escaped", input: "snake_case", want: `snake\_case`},
		{name: "backslash escaped first", input: `a\%b`, want: `a\\\%b`},
		{name: "sql metacharacters stay literal", input: `' OR '1'='1`, want: `' OR '1'='1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}
