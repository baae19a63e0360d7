package curve

import (
	"math/big"
	"testing"

	"filippo.io/nistec"
	"github.com/smartcontractkit/ecrlp/field"
	"github.com/smartcontractkit/ecrlp/internal/testimplementations/unsaferand"
	"github.com/stretchr/testify/require"
)

// uncompressed returns the SEC 1 uncompressed encoding used by nistec, 0x04 || x || y.
func uncompressed(t *testing.T, p *Point[*field.PrimeElement]) []byte {
	if p.IsInfinity() {
		return []byte{0}
	}
	x, y, ok := p.Coordinates()
	require.True(t, ok)
	return append(append([]byte{4}, x.Bytes()...), y.Bytes()...)
}

func scalarBytes(k *big.Int) []byte {
	return k.FillBytes(make([]byte, 32))
}

func TestP256_Generator(t *testing.T) {
	_, g, _ := P256()
	require.Equal(t, nistec.NewP256Point().SetGenerator().Bytes(), uncompressed(t, g))
}

func TestP256_ScalarBaseMult(t *testing.T) {
	rand := unsaferand.New("TestP256_ScalarBaseMult")
	_, g, n := P256()

	for range 5 {
		k, err := g.Curve().A().Field().Random(rand)
		require.NoError(t, err)
		scalar := new(big.Int).Mod(k.BigInt(), n)

		expected, err := nistec.NewP256Point().ScalarBaseMult(scalarBytes(scalar))
		require.NoError(t, err)

		got, err := g.ScalarMult(scalar)
		require.NoError(t, err)
		require.Equal(t, expected.Bytes(), uncompressed(t, got))
	}
}

func TestP256_AddAndDouble(t *testing.T) {
	_, g, _ := P256()

	g2, err := g.Double()
	require.NoError(t, err)
	expected := nistec.NewP256Point().Double(nistec.NewP256Point().SetGenerator())
	require.Equal(t, expected.Bytes(), uncompressed(t, g2))

	g3, err := g2.Add(g)
	require.NoError(t, err)
	expected = nistec.NewP256Point().Add(expected, nistec.NewP256Point().SetGenerator())
	require.Equal(t, expected.Bytes(), uncompressed(t, g3))
}

func TestP256_Order(t *testing.T) {
	_, g, n := P256()

	inf, err := g.ScalarMult(n)
	require.NoError(t, err)
	require.True(t, inf.IsInfinity())

	last, err := g.ScalarMult(new(big.Int).Sub(n, big.NewInt(1)))
	require.NoError(t, err)
	require.True(t, last.Equal(g.Negate()))
}
