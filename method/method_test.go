package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkMethod(b *testing.B) {
	var parsed Method

	for i := Unknown; i <= Count; i++ {
		b.Run(i.String(), func(b *testing.B) {
			m := i.String()
			b.SetBytes(int64(len(m)))
			b.ResetTimer()

			for j := 0; j < b.N; j++ {
				parsed = Parse(m)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}

func TestMethod(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, method := range List {
			assert.Equal(t, method, Parse(method.String()))
			assert.Equal(t, method, FromBytes([]byte(method.String())))
		}
	})

	t.Run("tokens", func(t *testing.T) {
		require.Equal(t, "GET", GET.String())
		require.Equal(t, "HANDSHAKE", HANDSHAKE.String())
		require.Equal(t, "UNKNOWN", Method(200).String())
	})

	t.Run("unrecognized", func(t *testing.T) {
		for _, token := range []string{"", "get", "CONNECT", "TRACE", "HANDSHAKES", "POS"} {
			require.Equal(t, Unknown, Parse(token), token)
		}
	})

	t.Run("has body", func(t *testing.T) {
		for _, method := range List {
			switch method {
			case POST, PUT, PATCH:
				require.True(t, method.HasBody(), method.String())
			default:
				require.False(t, method.HasBody(), method.String())
			}
		}
	})
}
