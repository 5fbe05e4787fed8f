package uintconv

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	var buff [MaxLen]byte

	t.Run("zero", func(t *testing.T) {
		require.Equal(t, "0", string(Format(&buff, 0)))
	})

	t.Run("regular", func(t *testing.T) {
		require.Equal(t, "123", string(Format(&buff, 123)))
		require.Equal(t, "10", string(Format(&buff, 10)))
		require.Equal(t, "1000000", string(Format(&buff, 1000000)))
	})

	t.Run("max", func(t *testing.T) {
		require.Equal(t, strconv.FormatUint(math.MaxUint, 10), string(Format(&buff, math.MaxUint)))
	})

	t.Run("matches strconv", func(t *testing.T) {
		for range 1000 {
			n := uint(rand.Uint64())
			require.Equal(t, strconv.FormatUint(uint64(n), 10), string(Format(&buff, n)))
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, n := range []uint{0, 1, 9, 10, 99, 100, 4878, math.MaxUint32, math.MaxUint - 1, math.MaxUint} {
			formatted := Format(&buff, n)
			if len(formatted) > 1 {
				require.NotEqual(t, byte('0'), formatted[0])
			}

			parsed, err := Parse(formatted)
			require.NoError(t, err)
			require.Equal(t, n, parsed)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("leading zero", func(t *testing.T) {
		num, err := Parse([]byte("0042"))
		require.NoError(t, err)
		require.Equal(t, uint(42), num)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse(nil)
		require.EqualError(t, err, ErrNotANumber.Error())
	})

	t.Run("invalid char", func(t *testing.T) {
		num, err := Parse([]byte("123g456"))
		require.Equal(t, uint(0), num)
		require.ErrorIs(t, err, ErrNotANumber)

		_, err = Parse([]byte("-1"))
		require.ErrorIs(t, err, ErrNotANumber)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Parse([]byte(strconv.FormatUint(math.MaxUint, 10) + "0"))
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func BenchmarkFormat(b *testing.B) {
	var buff [MaxLen]byte

	for i := range b.N {
		_ = Format(&buff, uint(i))
	}
}
