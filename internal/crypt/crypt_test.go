package crypt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	enc, err := New(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("TRX9uH2qWallet001")
	require.NoError(t, err)
	assert.NotEqual(t, "TRX9uH2qWallet001", ciphertext)

	plaintext, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "TRX9uH2qWallet001", plaintext)
}

func TestNew_RejectsShortKey(t *testing.T) {
	t.Parallel()

	_, err := New([]byte("too-short"))
	assert.Error(t, err)
}

func TestDecrypt_RejectsGarbage(t *testing.T) {
	t.Parallel()

	enc, err := New(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	_, err = enc.Decrypt("not-base64!!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = enc.Decrypt("YWJjZA==")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	t.Parallel()

	enc1, err := New(bytes.Repeat([]byte("a"), 32))
	require.NoError(t, err)
	enc2, err := New(bytes.Repeat([]byte("b"), 32))
	require.NoError(t, err)

	ciphertext, err := enc1.Encrypt("secret")
	require.NoError(t, err)

	_, err = enc2.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
