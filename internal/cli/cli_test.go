package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smartcontractkit/ecrlp/curve"
	"github.com/smartcontractkit/ecrlp/field"
	"github.com/smartcontractkit/ecrlp/rlp"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRlp(t *testing.T) {
	for _, tc := range []struct {
		args     []string
		expected string
	}{
		{[]string{"dog"}, `The string "dog" = [ 0x83, 'd', 'o', 'g' ]`},
		{[]string{"a"}, `The string "a" = [ 'a' ]`},
		{[]string{""}, `The empty string "" = [ 0x80 ]`},
		{[]string{"cat", "dog"}, `The list ["cat", "dog"] = [ 0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g' ]`},
		{[]string{}, `The empty list [] = [ 0xc0 ]`},
		{[]string{`json["cat", ["dog"]]`}, `The list ["cat", ["dog"]] = [ 0xc9, 0x83, 'c', 'a', 't', 0xc4, 0x83, 'd', 'o', 'g' ]`},
		{[]string{`json"dog"`}, `The string "dog" = [ 0x83, 'd', 'o', 'g' ]`},
	} {
		stdout, _, err := run(t, append([]string{"rlp"}, tc.args...)...)
		require.NoError(t, err, "%q", tc.args)
		require.Equal(t, tc.expected+"\n", stdout)
	}
}

func TestRlp_HexAndKeccak(t *testing.T) {
	stdout, _, err := run(t, "rlp", "--hex", "--keccak", "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "0x80", lines[1])
	// the hash of the empty string's encoding is the root of the empty trie
	require.Equal(t, "keccak256 0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421", lines[2])
}

func TestRlp_InvalidInput(t *testing.T) {
	_, _, err := run(t, "rlp", "json[1, 2]")
	require.ErrorIs(t, err, rlp.ErrInvalidInput)

	_, _, err = run(t, "rlp", "json[")
	require.ErrorIs(t, err, rlp.ErrInvalidInput)
}

func TestField(t *testing.T) {
	for _, tc := range []struct {
		args     []string
		expected string
	}{
		{[]string{"--modulus", "7", "add", "3", "6"}, "2 (mod 7)"},
		{[]string{"--modulus", "23", "inv", "7"}, "10 (mod 23)"},
		{[]string{"--modulus", "23", "div", "1", "7"}, "10 (mod 23)"},
		{[]string{"--modulus", "7", "sub", "3", "6"}, "4 (mod 7)"},
		{[]string{"--modulus", "7", "neg", "3"}, "4 (mod 7)"},
		{[]string{"--modulus", "7", "--", "mul", "-1", "3"}, "4 (mod 7)"},
		{[]string{"--modulus", "5", "--generator", "2,0,1", "mul", "2,1", "0,2"}, "1 + 4*t in GF(5^2)"},
		{[]string{"--modulus", "5", "--generator", "2,0,1", "add", "2,1", "3,4"}, "0 in GF(5^2)"},
	} {
		stdout, _, err := run(t, append([]string{"field"}, tc.args...)...)
		require.NoError(t, err, "%q", tc.args)
		require.Equal(t, tc.expected+"\n", stdout, "%q", tc.args)
	}
}

func TestField_RandomExtension(t *testing.T) {
	args := []string{"field", "--modulus", "5", "--degree", "3", "--seed", "TestField_RandomExtension", "mul", "1,2,3", "4,0,1"}
	first, stderr, err := run(t, args...)
	require.NoError(t, err)
	require.Contains(t, stderr, "generated extension field")
	require.Contains(t, first, "in GF(5^3)")

	second, _, err := run(t, args...)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestField_Errors(t *testing.T) {
	_, _, err := run(t, "field", "--modulus", "7", "inv", "0")
	require.ErrorIs(t, err, field.ErrDivisionByZero)

	_, _, err = run(t, "field", "--modulus", "8", "add", "1", "1")
	require.ErrorIs(t, err, field.ErrInvalidModulus)

	_, _, err = run(t, "field", "--modulus", "7", "add", "1")
	require.ErrorIs(t, err, errUsage)

	_, _, err = run(t, "field", "--modulus", "7", "pow", "1", "2")
	require.ErrorIs(t, err, errUsage)

	_, _, err = run(t, "field", "--modulus", "5", "--generator", "2,0,2", "add", "1", "1")
	require.ErrorIs(t, err, field.ErrInvalidGenerator)

	// t^2 + 4 = (t + 1)(t + 4) over GF(5): t + 1 has no inverse
	_, stderr, err := run(t, "field", "--modulus", "5", "--generator", "4,0,1", "inv", "1,1")
	require.ErrorIs(t, err, field.ErrDivisionByZero)
	require.Contains(t, stderr, "generator is reducible")
}

func TestCurve(t *testing.T) {
	stdout, _, err := run(t, "curve", "--modulus", "5", "--a", "1", "--b", "1", "--x", "2", "--y", "1", "--", "1", "2", "3", "-1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Equal(t, []string{
		"P = (2 (mod 5), 1 (mod 5)) on y^2 = x^3 + (1 (mod 5))*x + (1 (mod 5))",
		"1*P = (2 (mod 5), 1 (mod 5))",
		"2*P = (2 (mod 5), 4 (mod 5))",
		"3*P = Infinity",
		"-1*P = (2 (mod 5), 4 (mod 5))",
	}, lines)
}

func TestCurve_ExtensionField(t *testing.T) {
	stdout, _, err := run(t, "curve", "--modulus", "5", "--generator", "2,0,1", "--x", "2", "--y", "1", "9")
	require.NoError(t, err)
	require.Contains(t, stdout, "9*P = ")
}

func TestCurve_Errors(t *testing.T) {
	_, _, err := run(t, "curve", "--modulus", "5", "--x", "1", "--y", "1")
	require.ErrorIs(t, err, curve.ErrPointNotOnCurve)

	_, _, err = run(t, "curve", "--modulus", "2", "--x", "0", "--y", "1")
	require.ErrorIs(t, err, curve.ErrUnsupportedField)

	_, _, err = run(t, "curve", "--modulus", "5", "--x", "2", "--y", "1", "two")
	require.ErrorIs(t, err, errUsage)
}

func TestMetricsFlag(t *testing.T) {
	_, stderr, err := run(t, "--metrics", "rlp", "cat", "dog")
	require.NoError(t, err)
	require.Contains(t, stderr, "ecrlp_rlp_encodings_total 1\n")
	require.Contains(t, stderr, "ecrlp_rlp_encoded_bytes_total 9\n")

	_, stderr, err = run(t, "--metrics", "curve", "--modulus", "5", "--x", "2", "--y", "1", "2", "3")
	require.NoError(t, err)
	require.Contains(t, stderr, "ecrlp_curve_scalar_multiplications_total 2\n")
}

func TestField_SeedHelp(t *testing.T) {
	root := NewRootCommand()
	cmd, _, err := root.Find([]string{"field"})
	require.NoError(t, err)
	require.Contains(t, cmd.Flags().Lookup("seed").Usage, "non-cryptographic")
}
