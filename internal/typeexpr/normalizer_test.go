package typeexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

func TestNormalize_Canonicalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		optional bool
	}{
		{"simple name", "int", "int", false},
		{"surrounding whitespace", "  str  ", "str", false},
		{"internal whitespace", "Dict[ str , int ]", "Dict[str, int]", false},
		{"nested generics", "Dict[str, List[Tuple[int, int]]]", "Dict[str, List[Tuple[int, int]]]", false},
		{"dotted name", "np.ndarray", "np.ndarray", false},
		{"forward reference", "'MyClass'", "MyClass", false},
		{"double quoted forward ref", `"List[int]"`, "List[int]", false},
		{"inner forward ref", `List["Node"]`, "List[Node]", false},
		{"optional wrapper", "Optional[int]", "int", true},
		{"optional typing prefix", "typing.Optional[str]", "str", true},
		{"pipe none", "int | None", "int", true},
		{"none first", "None | int", "int", true},
		{"union none", "Union[int, None]", "int", true},
		{"union expands", "Union[int, str]", "int | str", false},
		{"optional of union", "Optional[int | str]", "int | str", true},
		{"bare none", "None", "None", false},
		{"optional of none", "Optional[None]", "None", true},
		{"none union of none", "None | None", "None", true},
		{"union order preserved", "str | int", "str | int", false},
		{"callable with list args", "Callable[[int, str], bool]", "Callable[[int, str], bool]", false},
		{"ellipsis", "Callable[..., int]", "Callable[..., int]", false},
		{"literal values", "Literal[1, 2]", "Literal[1, 2]", false},
		{"empty tuple subscript", "Tuple[()]", "Tuple[()]", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.optional, got.Optional)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"int",
		"Dict[ str,int ]",
		"Optional[int]",
		"int | None",
		"Union[int, str]",
		"'Forward'",
		"Callable[[int], str] | None",
	}

	for _, input := range inputs {
		first, err := Normalize(input)
		require.NoError(t, err, input)

		second, err := Normalize(first.Text)
		require.NoError(t, err, first.Text)
		assert.Equal(t, first.Text, second.Text, "normalize(normalize(%q))", input)
	}
}

func TestNormalize_OptionalEqualsPipeNone(t *testing.T) {
	a, err := Normalize("Optional[int]")
	require.NoError(t, err)
	b, err := Normalize("int | None")
	require.NoError(t, err)
	assert.Equal(t, a.Text, b.Text)
	assert.True(t, a.Optional)
	assert.True(t, b.Optional)
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated bracket", "List[int"},
		{"stray close bracket", "List]int["},
		{"empty brackets", "List[]"},
		{"top level comma", "int, str"},
		{"unterminated quote", "'MyClass"},
		{"trailing pipe", "int |"},
		{"double atom", "int str"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestNormalize_DepthBound(t *testing.T) {
	deep := strings.Repeat("List[", MaxNestingDepth+2) + "int" + strings.Repeat("]", MaxNestingDepth+2)
	_, err := Normalize(deep)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrTypeTooDeep)
}

func TestNormalize_EmptyInput(t *testing.T) {
	got, err := Normalize("   ")
	require.NoError(t, err)
	assert.Empty(t, got.Text)
	assert.False(t, got.Optional)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Optional[int]", "int | None"))
	assert.True(t, Equal("Dict[ str,int ]", "Dict[str, int]"))
	assert.False(t, Equal("int | str", "str | int"))
	assert.False(t, Equal("int", "str"))
	assert.False(t, Equal("List[int", "List[int]"))
}
