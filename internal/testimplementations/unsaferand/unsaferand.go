package unsaferand

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/rand/v2"
)

// UnsafeRand is a deterministic io.Reader for tests, backed by a ChaCha8 stream seeded from the given arguments.
// The generated sequence is not suitable for cryptographic use. UnsafeRand is not safe for concurrent use.
type UnsafeRand struct {
	*rand.ChaCha8
}

var _ io.Reader = &UnsafeRand{}

// New returns a reader whose output depends only on the fmt.Sprintf("%#v", seedArgs) representation of the seed
// arguments. Passing maps leads to non-deterministic output, as their iteration order is not fixed.
func New(seedArgs ...any) *UnsafeRand {
	seed := sha256.Sum256(fmt.Appendf(nil, "%#v", seedArgs))
	return &UnsafeRand{rand.NewChaCha8(seed)}
}

// Intn returns a value in [0, n) drawn from the same stream.
func (r *UnsafeRand) Intn(n int) int {
	return rand.New(r.ChaCha8).IntN(n)
}
