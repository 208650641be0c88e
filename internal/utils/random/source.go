package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. The zero value is ready to use.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

var ErrSequenceExhausted = errors.New("random sequence exhausted")

// SequenceSource replays a fixed list of values, each reduced modulo n.
// Used to make draws reproducible.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	pos    int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid bound %d", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.values) {
		return 0, ErrSequenceExhausted
	}
	v := s.values[s.pos] % n
	if v < 0 {
		v += n
	}
	s.pos++
	return v, nil
}
