package placeholder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"go.uber.org/zap"

	"github.com/autohub/site/config"
)

// Caption is the text under the placeholder car.
const Caption = "No Image Available"

var (
	backgroundColor = color.RGBA{229, 231, 235, 255}
	bodyColor       = color.RGBA{156, 163, 175, 255}
	wheelColor      = color.RGBA{75, 85, 99, 255}
	textColor       = color.RGBA{75, 85, 99, 255}
)

// Generate draws a car silhouette with a caption and returns it as WebP. The
// drawing is made at twice the size and scaled down.
func Generate(caption string, width, height int, quality float32) (*bytes.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width*2, height*2))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{backgroundColor}, image.Point{}, draw.Src)
	drawCar(canvas)
	addText(canvas, caption, textColor, canvas.Bounds().Dx()/2, canvas.Bounds().Dy()*5/6)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(img, img.Bounds(), canvas, canvas.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %v", err)
	}
	return &buf, nil
}

// Favicon draws a square site icon of the given size as PNG.
func Favicon(size int) (*bytes.Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d", size)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size*4, size*4))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{color.RGBA{37, 99, 235, 255}}, image.Point{}, draw.Src)
	drawCar(canvas)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(img, img.Bounds(), canvas, canvas.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %v", err)
	}
	return &buf, nil
}

// EnsureAssets writes the placeholder image and favicon under staticDir when
// they are missing, or always when force is set. It returns the files written.
func EnsureAssets(staticDir string, force bool) ([]string, error) {
	assets := []struct {
		urlPath string
		render  func() (*bytes.Buffer, error)
	}{
		{config.PlaceholderImage, func() (*bytes.Buffer, error) { return Generate(Caption, 800, 500, 80) }},
		{config.FaviconImage, func() (*bytes.Buffer, error) { return Favicon(32) }},
	}

	var written []string
	for _, a := range assets {
		path := filepath.Join(staticDir, filepath.FromSlash(strings.TrimPrefix(a.urlPath, "/")))
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}

		buf, err := a.render()
		if err != nil {
			return written, fmt.Errorf("render %s: %w", a.urlPath, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		zap.S().Infof("[ASSET] Wrote %s (%d bytes)", path, buf.Len())
		written = append(written, path)
	}
	return written, nil
}

// drawCar paints a boxy side view centred in the upper part of img.
func drawCar(img *image.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	body := image.Rect(w/5, h*2/5, w*4/5, h*3/5)
	cabin := image.Rect(w*7/20, h*1/4, w*13/20, h*2/5)
	draw.Draw(img, body, &image.Uniform{bodyColor}, image.Point{}, draw.Src)
	draw.Draw(img, cabin, &image.Uniform{bodyColor}, image.Point{}, draw.Src)

	r := h / 12
	fillCircle(img, w*3/10, h*3/5, r, wheelColor)
	fillCircle(img, w*7/10, h*3/5, r, wheelColor)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				img.Set(cx+x, cy+y, c)
			}
		}
	}
}

// addText centres each line of text around (x, y)
func addText(img *image.RGBA, text string, c color.Color, x, y int) {
	f := basicfont.Face7x13

	lines := strings.Split(text, "\n")
	lineHeight := f.Height + 20
	startY := y - len(lines)*lineHeight/2

	for i, line := range lines {
		startX := x - len(line)*f.Width/2

		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: f,
			Dot: fixed.Point26_6{
				X: fixed.Int26_6(startX * 64),
				Y: fixed.Int26_6((startY + i*lineHeight) * 64),
			},
		}
		d.DrawString(line)
	}
}
