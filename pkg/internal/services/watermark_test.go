package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var watermarkBackground = color.RGBA{B: 200, A: 255}

func writeTestImage(t *testing.T, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, watermarkBackground)
		}
	}

	var buf bytes.Buffer
	switch filepath.Ext(name) {
	case ".png":
		require.NoError(t, png.Encode(&buf, img))
	default:
		require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}))
	}

	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, buf.Bytes(), 0o644))
	return file
}

func decodeTestImage(t *testing.T, file string) (image.Image, string) {
	t.Helper()
	src, err := os.Open(file)
	require.NoError(t, err)
	defer src.Close()

	img, format, err := image.Decode(src)
	require.NoError(t, err)
	return img, format
}

func TestTextWatermarkerDrawsInCorner(t *testing.T) {
	file := writeTestImage(t, "cover.png", 200, 100)

	err := TextWatermarker{Margin: 10, Quality: 90}.Watermark(file, "journal")
	require.NoError(t, err)

	img, format := decodeTestImage(t, file)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())

	changed := false
	for x := 100; x < 200 && !changed; x++ {
		for y := 60; y < 100; y++ {
			if color.RGBAModel.Convert(img.At(x, y)) != watermarkBackground {
				changed = true
				break
			}
		}
	}
	assert.True(t, changed)
	assert.Equal(t, watermarkBackground, color.RGBAModel.Convert(img.At(5, 5)))
}

func TestTextWatermarkerKeepsJpeg(t *testing.T) {
	file := writeTestImage(t, "cover.jpg", 160, 90)

	err := TextWatermarker{Margin: 10, Quality: 90}.Watermark(file, "journal")
	require.NoError(t, err)

	_, format := decodeTestImage(t, file)
	assert.Equal(t, "jpeg", format)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(file), ".watermark-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestTextWatermarkerSkips(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		text   string
	}{
		{name: "empty text", width: 200, height: 100, text: ""},
		{name: "small image", width: 20, height: 10, text: "journal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := writeTestImage(t, "cover.png", tt.width, tt.height)
			before, err := os.ReadFile(file)
			require.NoError(t, err)

			err = TextWatermarker{Margin: 10, Quality: 90}.Watermark(file, tt.text)
			assert.ErrorIs(t, err, ErrWatermarkSkipped)

			after, err := os.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestTextWatermarkerRejectsBrokenImage(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(file, []byte("not an image"), 0o644))

	err := TextWatermarker{Margin: 10, Quality: 90}.Watermark(file, "journal")
	assert.Error(t, err)
}
