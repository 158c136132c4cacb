// Package random supplies the randomness capability consumed by the
// commitment engine and the opponent's die selection.
//
// The production source is a kyber cipher stream seeded from the
// operating system's cryptographically secure generator. Uniform draws
// go through kyber's rejection-sampling Int, so non-power-of-two
// ranges carry no modulo bias. Tests substitute a scripted source.
package random

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Source provides unpredictable values for commitments and choices.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
	// Key returns size bytes of fresh key material.
	Key(size int) []byte
}

type secureSource struct {
	stream cipher.Stream
}

// NewSecure returns a Source backed by a crypto/rand-seeded stream.
func NewSecure() Source {
	return &secureSource{stream: random.New()}
}

func (s *secureSource) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with non-positive n")
	}
	// kyber's Int rejects zero and draws from [1, mod). Draw over
	// [1, n] and shift down so every value in [0, n) is reachable.
	return int(random.Int(big.NewInt(int64(n)+1), s.stream).Int64()) - 1
}

func (s *secureSource) Key(size int) []byte {
	return random.Bits(uint(size)*8, false, s.stream)
}

// Scripted replays a fixed sequence of values, for deterministic tests.
// Intn returns the next scripted value modulo n; Key returns KeyByte
// repeated. Not safe for anything but tests.
type Scripted struct {
	Values  []int
	KeyByte byte
	next    int
}

func (s *Scripted) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}

func (s *Scripted) Key(size int) []byte {
	key := make([]byte, size)
	for i := range key {
		key[i] = s.KeyByte
	}
	return key
}
