package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

func TestCheckFunction_Consistent(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		`def f(x: int, y: str = "a")`,
		"Summary.\n\nArgs:\n    x (int): desc\n    y (str): desc\n",
	)
	assert.Empty(t, findings)
}

func TestCheckFunction_TypeMismatch(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(x: int)",
		"Summary.\n\nArgs:\n    x (str): desc\n",
	)
	require.Len(t, findings, 1)
	assert.Equal(t, types.KindTypeMismatch, findings[0].Kind)
	assert.Equal(t, "x", findings[0].ParameterName)
	assert.Equal(t, "int", findings[0].DeclaredType)
	assert.Equal(t, "str", findings[0].DocumentedType)
}

func TestCheckFunction_MissingInDoc(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(x, y: int)",
		"Summary.\n\nArgs:\n    y (int): desc\n",
	)
	require.Len(t, findings, 1)
	assert.Equal(t, types.KindMissingInDoc, findings[0].Kind)
	assert.Equal(t, "x", findings[0].ParameterName)
}

func TestCheckFunction_MissingInSignature(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(x: int)",
		"Summary.\n\nArgs:\n    x (int): desc\n    ghost (str): desc\n",
	)
	require.Len(t, findings, 1)
	assert.Equal(t, types.KindMissingInSignature, findings[0].Kind)
	assert.Equal(t, "ghost", findings[0].ParameterName)
	assert.Equal(t, "str", findings[0].DocumentedType)
}

func TestCheckFunction_OneSidedType(t *testing.T) {
	t.Run("declared only", func(t *testing.T) {
		findings := New(DefaultConfig()).CheckFunction(
			"def f(x: int)",
			"Summary.\n\nArgs:\n    x: desc\n",
		)
		require.Len(t, findings, 1)
		assert.Equal(t, types.KindTypeMismatch, findings[0].Kind)
		assert.Equal(t, "int", findings[0].DeclaredType)
		assert.Empty(t, findings[0].DocumentedType)
	})

	t.Run("documented only", func(t *testing.T) {
		findings := New(DefaultConfig()).CheckFunction(
			"def f(x)",
			"Summary.\n\nArgs:\n    x (int): desc\n",
		)
		require.Len(t, findings, 1)
		assert.Equal(t, types.KindTypeMismatch, findings[0].Kind)
		assert.Empty(t, findings[0].DeclaredType)
		assert.Equal(t, "int", findings[0].DocumentedType)
	})

	t.Run("both untyped", func(t *testing.T) {
		findings := New(DefaultConfig()).CheckFunction(
			"def f(x)",
			"Summary.\n\nArgs:\n    x: desc\n",
		)
		assert.Empty(t, findings)
	})
}

func TestCheckFunction_OptionalEquivalence(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		docType   string
	}{
		{"Optional vs union", "def f(x: Optional[int])", "int | None"},
		{"union vs Optional", "def f(x: int | None)", "Optional[int]"},
		{"Optional vs optional qualifier", "def f(x: Optional[int] = None)", "int, optional"},
		{"whitespace collapsed", "def f(x: Dict[str,int])", "Dict[str, int]"},
		{"forward reference quotes", "def f(x: 'Node')", "Node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := New(DefaultConfig()).CheckFunction(
				tt.signature,
				"Summary.\n\nArgs:\n    x ("+tt.docType+"): desc\n",
			)
			assert.Empty(t, findings)
		})
	}
}

func TestCheckFunction_UnionOrderSignificant(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(x: int | str)",
		"Summary.\n\nArgs:\n    x (str | int): desc\n",
	)
	require.Len(t, findings, 1)
	assert.Equal(t, types.KindTypeMismatch, findings[0].Kind)
}

func TestCheckFunction_SelfSkipped(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def get(self, key: str)",
		"Summary.\n\nArgs:\n    key (str): desc\n",
	)
	assert.Empty(t, findings)
}

func TestCheckFunction_SingleLineDocstringExempt(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(x: int, y: str)",
		"Do the thing.",
	)
	assert.Empty(t, findings)
}

func TestCheckFunction_NoDocstring(t *testing.T) {
	t.Run("default skips", func(t *testing.T) {
		findings := New(DefaultConfig()).CheckFunction("def f(x: int)", "")
		assert.Empty(t, findings)
	})

	t.Run("required", func(t *testing.T) {
		findings := New(Config{RequireDocstring: true}).CheckFunction("def f(x: int)", "")
		require.Len(t, findings, 1)
		assert.Equal(t, types.KindMissingDocstring, findings[0].Kind)
	})

	t.Run("required but no parameters", func(t *testing.T) {
		findings := New(Config{RequireDocstring: true}).CheckFunction("def f()", "")
		assert.Empty(t, findings)
	})
}

func TestCheckFunction_MalformedSignature(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(x: Dict[str, int",
		"Summary.\n\nArgs:\n    x (dict): desc\n",
	)
	require.Len(t, findings, 1)
	assert.Equal(t, types.KindUnparseableFunction, findings[0].Kind)
	assert.NotEmpty(t, findings[0].Detail)
}

func TestCheckFunction_MalformedArgsBlock(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(x: int)",
		"Summary.\n\nArgs:\n    not an entry line\n",
	)
	require.Len(t, findings, 1)
	assert.Equal(t, types.KindUnparseableFunction, findings[0].Kind)
}

func TestCheckFunction_OrderMismatch(t *testing.T) {
	doc := "Summary.\n\nArgs:\n    b (int): desc\n    a (int): desc\n"

	t.Run("disabled by default", func(t *testing.T) {
		findings := New(DefaultConfig()).CheckFunction("def f(a: int, b: int)", doc)
		assert.Empty(t, findings)
	})

	t.Run("enabled", func(t *testing.T) {
		findings := New(Config{CheckOrder: true}).CheckFunction("def f(a: int, b: int)", doc)
		require.Len(t, findings, 1)
		assert.Equal(t, types.KindNameOrderMismatch, findings[0].Kind)
	})
}

func TestCheckFunction_BareParameterList(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"x: int, y: str",
		"Summary.\n\nArgs:\n    x (int): desc\n    y (str): desc\n",
	)
	assert.Empty(t, findings)
}

func TestCheckFunction_LambdaDefault(t *testing.T) {
	findings := New(DefaultConfig()).CheckFunction(
		"def f(key=lambda x: x)",
		"Summary.\n\nArgs:\n    key: Sort key.\n",
	)
	assert.Empty(t, findings)
}

func TestCheckSource_MultipleFunctions(t *testing.T) {
	src := `def good(x: int):
    """Good.

    Args:
        x (int): Fine.
    """
    return x

def drifted(y: str):
    """Drifted.

    Args:
        y (int): Stale.
    """
    return y
`
	result, err := New(DefaultConfig()).CheckSource(context.Background(), []byte(src), "sample.py")
	require.NoError(t, err)

	assert.Equal(t, 2, result.FunctionsChecked)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "drifted", result.Findings[0].FunctionName)
	assert.Equal(t, types.KindTypeMismatch, result.Findings[0].Kind)
	assert.Equal(t, "sample.py", result.Findings[0].File)
	assert.Equal(t, 9, result.Findings[0].Location.Line)
}

func TestCheckSource_ExemptFunctionsCountedAsSkipped(t *testing.T) {
	src := `def brief(x: int):
    """One line only."""
    return x

def bare(y: str):
    return y

def checked(z: int):
    """Checked.

    Args:
        z (int): Fine.
    """
    return z
`
	result, err := New(DefaultConfig()).CheckSource(context.Background(), []byte(src), "sample.py")
	require.NoError(t, err)

	assert.Empty(t, result.Findings)
	assert.Equal(t, 1, result.FunctionsChecked)
	assert.Equal(t, 2, result.FunctionsSkipped)
}

func TestCheckSource_ErrorConfined(t *testing.T) {
	src := `def broken(a: int):
    """Broken.

    Args:
        garbage line here
    """
    pass

def fine(b: str):
    """Fine.

    Args:
        b (str): Good.
    """
    return b
`
	result, err := New(DefaultConfig()).CheckSource(context.Background(), []byte(src), "sample.py")
	require.NoError(t, err)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, types.KindUnparseableFunction, result.Findings[0].Kind)
	assert.Equal(t, "broken", result.Findings[0].FunctionName)
}

func TestCheckSource_MethodOrder(t *testing.T) {
	src := `class Cache:
    def put(self, key: str, value: bytes):
        """Store a value.

        Args:
            key (str): Lookup key.
            value (bytes): Payload.
        """
        self.data[key] = value
`
	result, err := New(DefaultConfig()).CheckSource(context.Background(), []byte(src), "cache.py")
	require.NoError(t, err)
	assert.Empty(t, result.Findings)
	assert.Equal(t, 1, result.FunctionsChecked)
}
