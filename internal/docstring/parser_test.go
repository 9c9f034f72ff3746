package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []types.DocumentedParameter
	}{
		{
			name: "typed entries",
			doc: `Summary line.

    Args:
        path (str): Where to write.
        count (int): How many.
    `,
			want: []types.DocumentedParameter{
				{Name: "path", DocumentedType: "str"},
				{Name: "count", DocumentedType: "int"},
			},
		},
		{
			name: "untyped entry",
			doc: `Summary.

    Args:
        data: The payload.
    `,
			want: []types.DocumentedParameter{
				{Name: "data", DocumentedType: ""},
			},
		},
		{
			name: "optional qualifier stripped",
			doc: `Summary.

    Args:
        timeout (float, optional): Seconds to wait.
        retries (int, Optional): Attempt count.
    `,
			want: []types.DocumentedParameter{
				{Name: "timeout", DocumentedType: "float", Optional: true},
				{Name: "retries", DocumentedType: "int", Optional: true},
			},
		},
		{
			name: "star prefixes stripped",
			doc: `Summary.

    Args:
        *args (int): Extra values.
        **kwargs (str): Extra options.
    `,
			want: []types.DocumentedParameter{
				{Name: "args", DocumentedType: "int"},
				{Name: "kwargs", DocumentedType: "str"},
			},
		},
		{
			name: "continuation lines skipped",
			doc: `Summary.

    Args:
        path (str): Where to write the file,
            relative to the working directory.
        count (int): How many.
    `,
			want: []types.DocumentedParameter{
				{Name: "path", DocumentedType: "str"},
				{Name: "count", DocumentedType: "int"},
			},
		},
		{
			name: "section ends at blank line",
			doc: `Summary.

    Args:
        path (str): Where to write.

        count (int): ignored, outside the section.
    `,
			want: []types.DocumentedParameter{
				{Name: "path", DocumentedType: "str"},
			},
		},
		{
			name: "section ends at sibling header",
			doc: `Summary.

    Args:
        path (str): Where to write.
    Returns:
        bool: Whether it worked.
    `,
			want: []types.DocumentedParameter{
				{Name: "path", DocumentedType: "str"},
			},
		},
		{
			name: "arguments alias",
			doc: `Summary.

    Arguments:
        key (str): Lookup key.
    `,
			want: []types.DocumentedParameter{
				{Name: "key", DocumentedType: "str"},
			},
		},
		{
			name: "complex type with pipes",
			doc: `Summary.

    Args:
        value (int | None): Maybe a number.
    `,
			want: []types.DocumentedParameter{
				{Name: "value", DocumentedType: "int | None"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_NoSection(t *testing.T) {
	doc := `Summary line.

    Longer description without any argument section.

    Returns:
        int: A number.
    `
	got, err := ParseArgs(doc)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseArgs_SingleLineExempt(t *testing.T) {
	got, err := ParseArgs("Do the thing.")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseArgs_MalformedEntry(t *testing.T) {
	doc := `Summary.

    Args:
        path (str): Where to write.
        not a valid entry line
    `
	_, err := ParseArgs(doc)
	require.Error(t, err)

	var perr *types.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "malformed Args entry")
}

func TestIsSingleLine(t *testing.T) {
	assert.True(t, IsSingleLine("Do the thing."))
	assert.True(t, IsSingleLine("  Do the thing.  "))
	assert.False(t, IsSingleLine("Summary.\n\nMore detail."))
}
