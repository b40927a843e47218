package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Source permutes a sequence of n elements through swap. *rand.Rand from
// math/rand satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

var suite suites.Suite = suites.MustFind("Ed25519")

// streamSource runs a Fisher-Yates shuffle drawing indexes from a cipher
// stream.
type streamSource struct {
	stream cipher.Stream
}

// NewSeededSource returns a deterministic Source: the same seed always
// yields the same sequence of permutations. The indexes are drawn from the
// XOF of the Ed25519 suite keyed with the seed.
func NewSeededSource(seed []byte) Source {
	return &streamSource{stream: suite.XOF(seed)}
}

// NewRandomSource returns a Source fed by the suite's cryptographic random
// stream.
func NewRandomSource() Source {
	return &streamSource{stream: suite.RandomStream()}
}

func (s *streamSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := random.Int(big.NewInt(int64(i+1)), s.stream)
		swap(i, int(j.Int64()))
	}
}
