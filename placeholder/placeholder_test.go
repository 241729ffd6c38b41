package placeholder

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"card size", 400, 250},
		{"detail size", 800, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Generate(Caption, tt.width, tt.height, 80)
			require.NoError(t, err)
			require.NotZero(t, buf.Len())

			img, err := webp.Decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	_, err := Generate("x", 0, 100, 80)
	assert.Error(t, err)

	_, err = Favicon(0)
	assert.Error(t, err)
}

func TestFavicon(t *testing.T) {
	buf, err := Favicon(32)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestEnsureAssets(t *testing.T) {
	dir := t.TempDir()
	placeholderPath := filepath.Join(dir, "images", "car-place-holder.webp")
	faviconPath := filepath.Join(dir, "images", "favicon.png")

	written, err := EnsureAssets(dir, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{placeholderPath, faviconPath}, written)

	data, err := os.ReadFile(placeholderPath)
	require.NoError(t, err)
	_, err = webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// Existing files are left alone unless forced.
	require.NoError(t, os.WriteFile(faviconPath, []byte("custom"), 0o644))
	written, err = EnsureAssets(dir, false)
	require.NoError(t, err)
	assert.Empty(t, written)
	data, err = os.ReadFile(faviconPath)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))

	written, err = EnsureAssets(dir, true)
	require.NoError(t, err)
	assert.Len(t, written, 2)
	data, err = os.ReadFile(faviconPath)
	require.NoError(t, err)
	assert.NotEqual(t, "custom", string(data))
}
