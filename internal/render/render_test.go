package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzshiming/easydata"
)

type user struct {
	Name string `easydata:"name"`
	Age  int    `easydata:"age"`
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		opts      []Option
		want      string
		truncated bool
	}{
		{
			name:  "literal",
			value: 42,
			want:  "literal int = 42\n",
		},
		{
			name:  "list",
			value: []any{1, "a", nil},
			want: "list (3)\n" +
				"  [0]: literal int = 1\n" +
				"  [1]: literal string = \"a\"\n" +
				"  [2]: null\n",
		},
		{
			name:  "mapping sorted",
			value: map[string]any{"b": true, "a": []int{1}},
			want: "mapping (2)\n" +
				"  a: list (1)\n" +
				"    [0]: literal int = 1\n" +
				"  b: literal bool = true\n",
		},
		{
			name:  "object",
			value: &user{Name: "ada", Age: 36},
			want: "object render.user\n" +
				"  name: literal string = \"ada\"\n" +
				"  age: literal int = 36\n",
		},
		{
			name:  "depth",
			value: map[string]any{"a": []int{1}},
			opts:  []Option{WithDepth(1)},
			want: "mapping (1)\n" +
				"  a: list (1)\n",
			truncated: true,
		},
		{
			name:  "depth without hidden children",
			value: map[string]any{"a": []int{}},
			opts:  []Option{WithDepth(1)},
			want: "mapping (1)\n" +
				"  a: list (0)\n",
		},
		{
			name:  "object at depth",
			value: []any{&user{Name: "ada"}},
			opts:  []Option{WithDepth(1)},
			want: "list (1)\n" +
				"  [0]: object render.user\n",
			truncated: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := New(&buf, append([]Option{WithColor(false)}, tt.opts...)...)
			require.NoError(t, p.Print(easydata.MustClassify(tt.value)))
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.truncated, p.Truncated())
		})
	}
}
