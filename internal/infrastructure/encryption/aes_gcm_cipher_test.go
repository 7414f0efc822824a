package encryption

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T, secret string) *AESGCMCipher {
	t.Helper()
	key, err := KeyFromSecret(secret)
	require.NoError(t, err)
	c, err := NewAESGCMCipher(key)
	require.NoError(t, err)
	return c
}

func TestAESGCMCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "unit-test-passphrase")

	payloads := [][]byte{
		{},
		[]byte("%PDF-1.7 claim evidence"),
		bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 4096),
	}
	for _, p := range payloads {
		sealed, err := c.Encrypt(p)
		require.NoError(t, err)
		require.Equal(t, BlobVersionAESGCM, sealed[0])
		if len(p) > 0 {
			require.False(t, bytes.Contains(sealed, p), "plaintext leaked into blob")
		}

		opened, err := c.Decrypt(sealed)
		require.NoError(t, err)
		require.True(t, bytes.Equal(p, opened))
	}
}

func TestAESGCMCipher_NonceIsFresh(t *testing.T) {
	c := newTestCipher(t, "unit-test-passphrase")
	a, err := c.Encrypt([]byte("same"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestAESGCMCipher_DecryptFailures(t *testing.T) {
	c := newTestCipher(t, "key-one")
	sealed, err := c.Encrypt([]byte("payload"))
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		other := newTestCipher(t, "key-two")
		_, err := other.Decrypt(sealed)
		require.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("tampered body", func(t *testing.T) {
		broken := append([]byte(nil), sealed...)
		broken[len(broken)-1] ^= 0x01
		_, err := c.Decrypt(broken)
		require.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("unknown version", func(t *testing.T) {
		broken := append([]byte(nil), sealed...)
		broken[0] = 0x7f
		_, err := c.Decrypt(broken)
		require.True(t, errors.Is(err, ErrUnsupportedBlobVersion))
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := c.Decrypt(sealed[:5])
		require.ErrorIs(t, err, ErrMalformedBlob)
	})
}

func TestKeyFromSecret(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := KeyFromSecret("  ")
		require.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("raw base64 key is used as-is", func(t *testing.T) {
		raw := bytes.Repeat([]byte{0x42}, KeySize)
		key, err := KeyFromSecret(base64.StdEncoding.EncodeToString(raw))
		require.NoError(t, err)
		require.Equal(t, raw, key)
	})

	t.Run("passphrase is derived deterministically", func(t *testing.T) {
		a, err := KeyFromSecret("correct horse battery staple")
		require.NoError(t, err)
		b, err := KeyFromSecret("correct horse battery staple")
		require.NoError(t, err)
		require.Len(t, a, KeySize)
		require.Equal(t, a, b)
	})

	t.Run("short key rejected by cipher", func(t *testing.T) {
		_, err := NewAESGCMCipher([]byte("short"))
		require.ErrorIs(t, err, ErrInvalidKeySize)
	})
}
