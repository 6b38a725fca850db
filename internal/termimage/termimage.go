// Package termimage renders small raster images, such as CAPTCHA
// challenges, as coloured text using upper half block characters. Each
// character cell carries two vertically stacked pixels: the foreground
// paints the top one and the background paints the bottom one.
package termimage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// HalfBlock is the glyph used for every cell.
const HalfBlock = "▀"

// ErrUnsupportedImage is returned for payloads that are not PNG, JPEG or GIF.
var ErrUnsupportedImage = errors.New("unsupported image format")

// Decode parses PNG, JPEG or GIF bytes.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return img, format, nil
}

// Extension returns the file extension matching the image format of
// data, including the leading dot, or ".img" when it is not recognised.
func Extension(data []byte) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ".img"
	}
	if format == "jpeg" {
		return ".jpg"
	}
	return "." + format
}

// Renderer turns images into terminal text.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer uses the default lipgloss renderer, which detects the
// colour support of stdout.
func NewRenderer() *Renderer {
	return &Renderer{lg: lipgloss.DefaultRenderer()}
}

// NewTrueColorRenderer always emits 24-bit colour sequences.
func NewTrueColorRenderer() *Renderer {
	lg := lipgloss.NewRenderer(&bytes.Buffer{})
	lg.SetColorProfile(termenv.TrueColor)
	return &Renderer{lg: lg}
}

// NewPlainRenderer emits no colour at all; pixels are drawn as shade
// characters instead. Useful for logs and dumb terminals.
func NewPlainRenderer() *Renderer {
	lg := lipgloss.NewRenderer(&bytes.Buffer{})
	lg.SetColorProfile(termenv.Ascii)
	return &Renderer{lg: lg}
}

// Size returns the cell grid an image of the given pixel size occupies
// when scaled to at most width columns.
func Size(bounds image.Rectangle, width int) (cols, rows int) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || width <= 0 {
		return 0, 0
	}
	cols = min(width, w)
	// Pixel rows after scaling, then two per cell.
	scaledH := max(1, h*cols/w)
	rows = (scaledH + 1) / 2
	return cols, rows
}

// Render draws img at most width cells wide. Lines are separated by "\n"
// with no trailing newline.
func (r *Renderer) Render(img image.Image, width int) string {
	b := img.Bounds()
	cols, rows := Size(b, width)
	if cols == 0 {
		return ""
	}

	plain := r.lg.ColorProfile() == termenv.Ascii
	scaledH := max(1, b.Dy()*cols/b.Dx())

	sample := func(cx, py int) color.Color {
		if py >= scaledH {
			return nil
		}
		x := b.Min.X + cx*b.Dx()/cols
		y := b.Min.Y + py*b.Dy()/scaledH
		return img.At(x, y)
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top := sample(col, row*2)
			bottom := sample(col, row*2+1)
			if plain {
				sb.WriteString(shade(top, bottom))
				continue
			}
			style := r.lg.NewStyle().Foreground(hex(top))
			if bottom != nil {
				style = style.Background(hex(bottom))
			}
			sb.WriteString(style.Render(HalfBlock))
		}
	}
	return sb.String()
}

// RenderBytes decodes data and renders it.
func (r *Renderer) RenderBytes(data []byte, width int) (string, error) {
	img, _, err := Decode(data)
	if err != nil {
		return "", err
	}
	return r.Render(img, width), nil
}

// WriteFile saves the raw image bytes so an external viewer can show
// them. The file is readable only by the current user.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// luminance returns the perceived brightness of c in [0, 255].
func luminance(c color.Color) int {
	if c == nil {
		return 255
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 255
	}
	return int((299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000)
}

// shade picks a character approximating two stacked pixels on a light
// background: dark ink becomes a filled glyph.
func shade(top, bottom color.Color) string {
	dark := func(c color.Color) bool { return luminance(c) < 128 }
	switch t, b := dark(top), dark(bottom); {
	case t && b:
		return "█"
	case t:
		return "▀"
	case b:
		return "▄"
	default:
		return " "
	}
}
