package client

import (
	"testing"

	"github.com/indigo-web/iter"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	headers := NewHeaders(2).
		Add("Content-Type", "application/json; charset=utf-8").
		Add("x-tag", "a").
		Add("X-Tag", "b")

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		require.Equal(t, "a", headers.Value("X-TAG"))
		value, found := headers.Get("content-type")
		require.True(t, found)
		require.Equal(t, "application/json; charset=utf-8", value)

		_, found = headers.Get("content-length")
		require.False(t, found)
		require.Empty(t, headers.Value("content-length"))
	})

	t.Run("iter in arrival order", func(t *testing.T) {
		want := []Pair{
			{Key: "Content-Type", Value: "application/json; charset=utf-8"},
			{Key: "x-tag", Value: "a"},
			{Key: "X-Tag", Value: "b"},
		}
		require.Equal(t, want, iter.Extract(headers.Iter(), nil))

		it := headers.Iter()
		for _, pair := range want {
			got, cont := it.Next()
			require.True(t, cont)
			require.Equal(t, pair, got)
		}
		_, cont := it.Next()
		require.False(t, cont)
	})

	t.Run("content type", func(t *testing.T) {
		mime, found := headers.ContentType()
		require.True(t, found)
		require.Equal(t, "application/json", mime)

		mime, found = NewHeaders(0).ContentType()
		require.False(t, found)
		require.Empty(t, mime)
	})

	t.Run("content length", func(t *testing.T) {
		length, found, err := NewHeaders(1).Add("Content-Length", " 42 ").ContentLength()
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, uint(42), length)

		_, found, err = NewHeaders(0).ContentLength()
		require.NoError(t, err)
		require.False(t, found)

		for _, bad := range []string{"", "ten", "-1", "1 2", "99999999999999999999999"} {
			_, found, err = NewHeaders(1).Add("content-length", bad).ContentLength()
			require.True(t, found)
			require.ErrorIs(t, err, ErrBadContentLength, bad)
		}
	})

	t.Run("clear", func(t *testing.T) {
		headers.Clear()
		require.Zero(t, headers.Len())
		_, found := headers.Get("x-tag")
		require.False(t, found)
		_, cont := headers.Iter().Next()
		require.False(t, cont)
	})
}
