package storage

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload_PlainBase64(t *testing.T) {
	raw := []byte("not really a png but bytes are bytes")
	payload := base64.StdEncoding.EncodeToString(raw)

	got, err := DecodePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDecodePayload_DataURLPrefixStripped(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	encoded := base64.StdEncoding.EncodeToString(raw)

	plain, err := DecodePayload(encoded)
	require.NoError(t, err)

	prefixed, err := DecodePayload("data:image/png;base64," + encoded)
	require.NoError(t, err)

	assert.Equal(t, plain, prefixed)
}

func TestDecodePayload_Empty(t *testing.T) {
	_, err := DecodePayload("")
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestDecodePayload_OnlyPrefix(t *testing.T) {
	_, err := DecodePayload("data:image/png;base64,")
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestDecodePayload_InvalidCharacters(t *testing.T) {
	_, err := DecodePayload("this is !!! not base64")
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestDecodePayload_TruncatedPadding(t *testing.T) {
	valid := base64.StdEncoding.EncodeToString([]byte("some image bytes"))
	_, err := DecodePayload(valid[:len(valid)-1])
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestNewImageName(t *testing.T) {
	a := NewImageName()
	b := NewImageName()

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotContains(t, a, "/")
	assert.NotContains(t, a, "\\")
}
