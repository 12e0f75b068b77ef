package unslpk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReindentJSON(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"object": {
			in:   `{"alpha":1,"beta":[true,null]}`,
			want: "{\n  \"alpha\": 1,\n  \"beta\": [\n    true,\n    null\n  ]\n}",
		},
		"array": {
			in:   `[1,2,3]`,
			want: "[\n  1,\n  2,\n  3\n]",
		},
		"empty containers stay compact": {
			in:   `{"a":{},"b":[]}`,
			want: "{\n  \"a\": {},\n  \"b\": []\n}",
		},
		"existing whitespace is normalized": {
			in:   "{\n      \"a\" :  1 }",
			want: "{\n  \"a\": 1\n}",
		},
		"scalar": {
			in:   `42`,
			want: "42",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, reindentJSON(&buf, strings.NewReader(tc.in)))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestReindentJSONMalformed(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, reindentJSON(&buf, strings.NewReader(`{"alpha":`)))
}
