package folly

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// The scalar primitives are pure with respect to their inputs, so
// independent goroutines may call them freely. Run them under the race
// detector to back that up.
func TestScalarPrimitives_Concurrent(t *testing.T) {
	g, _ := errgroup.WithContext(context.Background())

	for w := 0; w < 8; w++ {
		seed := int64(w)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 20000; i++ {
				x := rng.Uint64()

				if got, want := FindFirstSet(x), naiveFirstSet(x); got != want {
					return fmt.Errorf("FindFirstSet(%#x) = %d, want %d", x, got, want)
				}
				if got, want := FindLastSet(x), naiveLastSet(x); got != want {
					return fmt.Errorf("FindLastSet(%#x) = %d, want %d", x, got, want)
				}
				if Swap(Swap(x)) != x || Big(Big(x)) != x || Little(Little(x)) != x {
					return fmt.Errorf("endian round trip failed for %#x", x)
				}

				v := x % (1 << 62)
				if p := NextPowTwo(v); !IsPowTwo(p) || p < v {
					return fmt.Errorf("NextPowTwo(%d) = %d", v, p)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

// Concurrent readers of a shared block slice are fine; only writers race.
func TestBitIterator_ConcurrentReaders(t *testing.T) {
	blocks := make([]uint64, 256)
	rng := rand.New(rand.NewSource(12))
	for i := range blocks {
		if rng.Intn(4) == 0 {
			blocks[i] = rng.Uint64()
		}
	}

	begin := MakeBitIterator(blocks, 0, 0)
	end := BitRangeEnd(blocks)
	want := naiveScan(begin, end)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 1000; i++ {
				if got := FindFirstSetInRange(begin, end); !got.Equal(want) {
					return fmt.Errorf("scan returned bit %d, want %d", got.Index(), want.Index())
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
