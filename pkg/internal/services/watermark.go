package services

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type Watermarker interface {
	Watermark(file string, text string) error
}

var ImageWatermarker Watermarker = TextWatermarker{Margin: 10, Quality: 90}

// ErrWatermarkSkipped is returned when the image was left untouched on purpose.
var ErrWatermarkSkipped = errors.New("watermark skipped")

// TextWatermarker draws the text in the bottom right corner of the image and
// writes the result back to the same file in its original format.
type TextWatermarker struct {
	Margin  int
	Quality int
}

func (v TextWatermarker) Watermark(file string, text string) error {
	if len(text) == 0 {
		return ErrWatermarkSkipped
	}

	src, err := os.Open(file)
	if err != nil {
		return err
	}
	img, format, err := image.Decode(src)
	_ = src.Close()
	if err != nil {
		return fmt.Errorf("unable to decode image: %v", err)
	}

	face := basicfont.Face7x13
	bounds := img.Bounds()
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()
	if bounds.Dx() < width+v.Margin*2 || bounds.Dy() < height+v.Margin*2 {
		// Too small to carry a readable mark
		return ErrWatermarkSkipped
	}

	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	x := bounds.Max.X - width - v.Margin
	y := bounds.Max.Y - v.Margin - face.Metrics().Descent.Ceil()

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.RGBA{A: 160}),
		Face: face,
		Dot:  fixed.P(x+1, y+1),
	}
	drawer.DrawString(text)
	drawer.Src = image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 220})
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)

	return v.write(file, format, canvas)
}

func (v TextWatermarker) write(file, format string, img image.Image) error {
	out, err := os.CreateTemp(filepath.Dir(file), ".watermark-*")
	if err != nil {
		return err
	}
	defer os.Remove(out.Name())

	switch format {
	case "jpeg":
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: v.Quality})
	case "png":
		err = png.Encode(out, img)
	case "gif":
		err = gif.Encode(out, img, nil)
	default:
		err = fmt.Errorf("unsupported image format %s", format)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	return os.Rename(out.Name(), file)
}
