package pyparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

func TestExtractParams(t *testing.T) {
	tests := []struct {
		name      string
		paramList string
		want      []types.ParameterSignature
	}{
		{
			name:      "annotated parameters",
			paramList: "path: str, count: int",
			want: []types.ParameterSignature{
				{Name: "path", DeclaredType: "str"},
				{Name: "count", DeclaredType: "int"},
			},
		},
		{
			name:      "defaults",
			paramList: "path: str = 'out.txt', verbose=False",
			want: []types.ParameterSignature{
				{Name: "path", DeclaredType: "str", HasDefault: true},
				{Name: "verbose", HasDefault: true},
			},
		},
		{
			name:      "unannotated",
			paramList: "a, b, c",
			want: []types.ParameterSignature{
				{Name: "a"}, {Name: "b"}, {Name: "c"},
			},
		},
		{
			name:      "commas inside subscripts",
			paramList: "mapping: Dict[str, int], pair: Tuple[int, int] = (0, 0)",
			want: []types.ParameterSignature{
				{Name: "mapping", DeclaredType: "Dict[str, int]"},
				{Name: "pair", DeclaredType: "Tuple[int, int]", HasDefault: true},
			},
		},
		{
			name:      "splat parameters",
			paramList: "x: int, *args: int, **kwargs: str",
			want: []types.ParameterSignature{
				{Name: "x", DeclaredType: "int"},
				{Name: "args", DeclaredType: "int"},
				{Name: "kwargs", DeclaredType: "str"},
			},
		},
		{
			name:      "markers skipped",
			paramList: "a: int, /, b: str, *, c: bool",
			want: []types.ParameterSignature{
				{Name: "a", DeclaredType: "int"},
				{Name: "b", DeclaredType: "str"},
				{Name: "c", DeclaredType: "bool"},
			},
		},
		{
			name:      "self receiver skipped",
			paramList: "self, name: str",
			want: []types.ParameterSignature{
				{Name: "name", DeclaredType: "str"},
			},
		},
		{
			name:      "cls receiver skipped",
			paramList: "cls, raw: bytes",
			want: []types.ParameterSignature{
				{Name: "raw", DeclaredType: "bytes"},
			},
		},
		{
			name:      "annotated self kept",
			paramList: "self: 'Node', other: 'Node'",
			want: []types.ParameterSignature{
				{Name: "self", DeclaredType: "'Node'"},
				{Name: "other", DeclaredType: "'Node'"},
			},
		},
		{
			name:      "string default with comma",
			paramList: "sep: str = ', ', end: str = '\\n'",
			want: []types.ParameterSignature{
				{Name: "sep", DeclaredType: "str", HasDefault: true},
				{Name: "end", DeclaredType: "str", HasDefault: true},
			},
		},
		{
			name:      "default with comparison",
			paramList: "strict: bool = 1 == 1",
			want: []types.ParameterSignature{
				{Name: "strict", DeclaredType: "bool", HasDefault: true},
			},
		},
		{
			name:      "unannotated lambda default",
			paramList: "key=lambda x: x",
			want: []types.ParameterSignature{
				{Name: "key", HasDefault: true},
			},
		},
		{
			name:      "annotated lambda default",
			paramList: "key: Callable = lambda pair: pair[0], reverse: bool = False",
			want: []types.ParameterSignature{
				{Name: "key", DeclaredType: "Callable", HasDefault: true},
				{Name: "reverse", DeclaredType: "bool", HasDefault: true},
			},
		},
		{
			name:      "empty list",
			paramList: "",
			want:      []types.ParameterSignature{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractParams(tt.paramList)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractParams_Errors(t *testing.T) {
	tests := []struct {
		name      string
		paramList string
	}{
		{"unbalanced brackets", "mapping: Dict[str, int"},
		{"stray close", "a: int]"},
		{"unterminated string", "s: str = 'oops"},
		{"invalid name", "1bad: int"},
		{"duplicate name", "a: int, a: str"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractParams(tt.paramList)
			require.Error(t, err)
		})
	}
}
