package chunkex

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_random_source.go -package=mocks github.com/npillmayer/chunkex RandomSource

import (
	"math/rand/v2"
	"sync/atomic"
)

// RandomSource draws the numbers used to resolve the Any ordinal.
// IntN returns a number in [0,n) for n > 0. Implementations must be safe for
// concurrent use.
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

type randomHolder struct {
	src RandomSource
}

var randomSource atomic.Pointer[randomHolder]

func init() {
	randomSource.Store(&randomHolder{src: globalRand{}})
}

// SetRandomSource replaces the process-wide random source and returns the
// previous one. A nil src restores the default source, which is backed by
// math/rand/v2.
func SetRandomSource(src RandomSource) RandomSource {
	if src == nil {
		src = globalRand{}
	}
	old := randomSource.Swap(&randomHolder{src: src})
	return old.src
}

// randomOrdinal returns an ordinal in [1,n]. An empty window has the single
// ordinal 1.
func randomOrdinal(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 + randomSource.Load().src.IntN(n)
}
