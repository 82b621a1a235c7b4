// Package ggrenderer provides a raster implementation using the gg library.
package ggrenderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/textimage/pkg/adapters/logger"
	"github.com/user/textimage/pkg/hexcolor"
	"github.com/user/textimage/pkg/ports"
)

// maxColors matches the palette limit of an 8-bit indexed image.
const maxColors = 256

// fontDPI is the resolution font sizes are rendered at.
const fontDPI = 96

var (
	// ErrInvalidSize is returned for canvases with a non-positive dimension.
	ErrInvalidSize = errors.New("ggrenderer: invalid canvas size")

	// ErrCanvasClosed is returned when a closed canvas is used.
	ErrCanvasClosed = errors.New("ggrenderer: canvas closed")

	// ErrPaletteFull is returned when a canvas has no free color index.
	ErrPaletteFull = errors.New("ggrenderer: palette full")

	// ErrUnknownColor is returned when a style references a color index
	// that was not allocated on the canvas.
	ErrUnknownColor = errors.New("ggrenderer: color not allocated on this canvas")
)

// Renderer implements ports.Raster using the gg library.
// Font files are read through the supplied file system.
type Renderer struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new Renderer. A nil log discards font loading messages.
func New(fs ports.FileSystem, log ports.Logger) *Renderer {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Renderer{fs: fs, logger: log.WithComponent("ggrenderer")}
}

// NewCanvas creates a new transparent canvas.
func (r *Renderer) NewCanvas(width, height int) (ports.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Canvas{
		dc:     gg.NewContext(width, height),
		fs:     r.fs,
		logger: r.logger,
		faces:  make(map[faceKey]font.Face),
	}, nil
}

// Ensure Renderer implements ports.Raster
var _ ports.Raster = (*Renderer)(nil)

type faceKey struct {
	path string
	size int
}

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc      *gg.Context
	fs      ports.FileSystem
	logger  ports.Logger
	palette []ports.RGB
	faces   map[faceKey]font.Face
}

// Allocate reserves the next palette index for rgb.
// The first allocation fills the canvas.
func (c *Canvas) Allocate(rgb ports.RGB) (ports.ColorAllocation, error) {
	if c.dc == nil {
		return ports.ColorAllocation{}, ErrCanvasClosed
	}
	if len(c.palette) >= maxColors {
		return ports.ColorAllocation{}, ErrPaletteFull
	}

	index := len(c.palette)
	c.palette = append(c.palette, rgb)
	if index == 0 {
		c.dc.SetColor(hexcolor.ToColor(rgb))
		c.dc.Clear()
	}

	return ports.ColorAllocation{RGB: rgb, Index: index}, nil
}

// DrawText draws text with its baseline origin at (x, y), rotated
// counter-clockwise around that point by style.Angle degrees.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	if c.dc == nil {
		return ErrCanvasClosed
	}
	idx := style.Color.Index
	if idx < 0 || idx >= len(c.palette) || c.palette[idx] != style.Color.RGB {
		return fmt.Errorf("%w: index %d", ErrUnknownColor, idx)
	}

	face, err := c.face(style.FontPath, style.FontSize)
	if err != nil {
		return err
	}

	c.dc.Push()
	defer c.dc.Pop()

	fx, fy := float64(x), float64(y)
	if style.Angle != 0 {
		// gg rotates clockwise in screen space.
		c.dc.RotateAbout(gg.Radians(-float64(style.Angle)), fx, fy)
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(hexcolor.ToColor(style.Color.RGB))
	c.dc.DrawString(text, fx, fy)

	return nil
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.dc == nil {
		return ErrCanvasClosed
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	if c.dc == nil {
		return 0
	}
	return c.dc.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	if c.dc == nil {
		return 0
	}
	return c.dc.Height()
}

// Close releases the canvas and the font faces it loaded.
// Closing an already closed canvas is a no-op.
func (c *Canvas) Close() error {
	if c.dc == nil {
		return nil
	}
	var errs []error
	for key, face := range c.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close font %q: %w", key.path, err))
		}
	}
	c.faces = nil
	c.palette = nil
	c.dc = nil
	return errors.Join(errs...)
}

// face returns the font face for path at size points, loading it on first use.
// An empty path selects the built-in Go Regular font.
func (c *Canvas) face(path string, size int) (font.Face, error) {
	key := faceKey{path: path, size: size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	data := goregular.TTF
	if path == "" {
		c.logger.Debug("Using built-in font at %d pt", size)
	} else {
		c.logger.Debug("Loading font %s at %d pt", path, size)
		var err error
		data, err = c.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %q: %w", path, err)
		}
	}

	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}

	f := truetype.NewFace(parsed, &truetype.Options{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	c.faces[key] = f
	return f, nil
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
