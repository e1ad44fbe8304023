package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

	uri := EncodeDataURI("image/png", payload)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", uri)

	mimeType, data, err := DecodeDataURI(uri)
	require.Nil(t, err)

	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, payload, data)
}

func TestDecodeFailsForPlainString(t *testing.T) {
	_, _, err := DecodeDataURI("not-an-image")
	require.NotNil(t, err)
}

func TestDecodeFailsWithoutSeparator(t *testing.T) {
	_, _, err := DecodeDataURI("data:image/png;base64")
	require.NotNil(t, err)
}

func TestDecodeFailsForNonBase64Encoding(t *testing.T) {
	_, _, err := DecodeDataURI("data:image/png,rawbytes")
	require.NotNil(t, err)
}

func TestDecodeFailsForCorruptPayload(t *testing.T) {
	_, _, err := DecodeDataURI("data:image/png;base64,%%%%")
	require.NotNil(t, err)
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/jpeg;base64,Zm9v"))
	assert.False(t, IsDataURI("https://example.com/banner.png"))
	assert.False(t, IsDataURI(""))
}
