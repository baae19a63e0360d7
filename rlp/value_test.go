package rlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromValue(t *testing.T) {
	item, err := FromValue("dog")
	require.NoError(t, err)
	require.Equal(t, String("dog"), item)

	item, err = FromValue([]byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, String{1, 2}, item)

	item, err = FromValue([]any{"cat", []any{"dog", []byte{}}, []string{"a"}})
	require.NoError(t, err)
	require.Equal(t, List{String("cat"), List{String("dog"), String{}}, List{String("a")}}, item)

	item, err = FromValue(List{})
	require.NoError(t, err)
	require.Equal(t, List{}, item)

	for _, invalid := range []any{nil, 42, 1.5, map[string]any{}, []any{"a", 3}, true} {
		_, err = FromValue(invalid)
		require.ErrorIs(t, err, ErrInvalidInput, "%#v", invalid)
	}
}

func TestEncodeValue(t *testing.T) {
	encoded, err := EncodeValue([]any{"cat", "dog"})
	require.NoError(t, err)
	require.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, encoded)

	_, err = EncodeValue(7)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseJSON(t *testing.T) {
	item, err := ParseJSON([]byte(`["cat", ["dog", []], ""]`))
	require.NoError(t, err)
	require.Equal(t, List{String("cat"), List{String("dog"), List{}}, String("")}, item)

	item, err = ParseJSON([]byte(`"dog"`))
	require.NoError(t, err)
	require.Equal(t, String("dog"), item)

	for _, invalid := range []string{`[1, 2]`, `{"a": "b"}`, `null`, `["a"`} {
		_, err = ParseJSON([]byte(invalid))
		require.ErrorIs(t, err, ErrInvalidInput, invalid)
	}
}

func TestFormat(t *testing.T) {
	require.Equal(t, "[ 0x83, 'd', 'o', 'g' ]", Format([]byte{0x83, 'd', 'o', 'g'}))
	require.Equal(t, "[ 0x80 ]", Format([]byte{0x80}))
	require.Equal(t, "[ ' ', '~', 0x7f, 0x1f, 0x00 ]", Format([]byte{' ', '~', 0x7f, 0x1f, 0}))
	require.Equal(t, "[  ]", Format(nil))
}
