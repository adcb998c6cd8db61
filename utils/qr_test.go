package utils

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCodeDataURL(t *testing.T) {
	url, err := GenerateQRCodeDataURL("TKT-0001", 128)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	raw, err := DecodeDataURL(url)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestDecodeDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))

	got, err := DecodeDataURL(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	got, err = DecodeDataURL("data:image/jpeg;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	_, err = DecodeDataURL("")
	assert.Error(t, err)

	_, err = DecodeDataURL("data:image/png,rawtext")
	assert.Error(t, err)

	_, err = DecodeDataURL("data:image/png;base64,@@@")
	assert.Error(t, err)
}
