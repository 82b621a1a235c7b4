package ports

import "io"

// Raster abstracts the graphics capability used to draw text images.
type Raster interface {
	// NewCanvas creates a blank canvas with the specified dimensions.
	// The caller owns the canvas and must Close it.
	NewCanvas(width, height int) (Canvas, error)
}

// Canvas is a raster surface owned by a single build.
type Canvas interface {
	// Allocate binds an RGB triple to a canvas-specific color index.
	// The first allocation on a canvas becomes its background color.
	Allocate(rgb RGB) (ColorAllocation, error)

	// DrawText draws text with its baseline origin at (x, y).
	DrawText(text string, x, y int, style TextStyle) error

	// EncodePNG writes the canvas to w in PNG format.
	EncodePNG(w io.Writer) error

	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Close releases the canvas and its color allocations.
	Close() error
}

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ColorAllocation is an RGB triple bound to a canvas color index.
type ColorAllocation struct {
	RGB
	Index int
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize int             // Font size in points
	Angle    int             // Rotation in degrees, counter-clockwise
	Color    ColorAllocation // Allocated on the canvas being drawn
	FontPath string          // Font file; empty selects the built-in font
}
