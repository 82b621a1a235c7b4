package textimage

import (
	"fmt"

	"github.com/user/textimage/pkg/hexcolor"
	"github.com/user/textimage/pkg/ports"
)

type colorSet struct {
	background ports.ColorAllocation
	font       ports.ColorAllocation
}

// allocateColors decodes and allocates the background color, then the font
// color. Background goes first so it becomes the canvas fill.
func allocateColors(canvas ports.Canvas, opts Options) (colorSet, error) {
	var set colorSet
	var err error

	if set.background, err = allocateHex(canvas, opts.BackgroundColor); err != nil {
		return set, fmt.Errorf("background color: %w", err)
	}
	if set.font, err = allocateHex(canvas, opts.FontColor); err != nil {
		return set, fmt.Errorf("font color: %w", err)
	}
	return set, nil
}

func allocateHex(canvas ports.Canvas, hex string) (ports.ColorAllocation, error) {
	rgb, err := hexcolor.Decode(hex)
	if err != nil {
		return ports.ColorAllocation{}, err
	}
	return canvas.Allocate(rgb)
}

// composer draws lines top to bottom. Only the baseline y changes between
// lines.
type composer struct {
	canvas     ports.Canvas
	decorator  ports.Decorator
	logger     ports.Logger
	style      ports.TextStyle
	x, y       int
	lineHeight int
	useLocal   bool
}

func (c *composer) compose(lines []string) error {
	c.logger.Debug("Drawing %d lines", len(lines))

	y := c.y
	for i, line := range lines {
		c.logger.Debug("Drawing line %d/%d", i+1, len(lines))
		text := c.decorator.Decorate(line, c.useLocal)
		if err := c.canvas.DrawText(text, c.x, y, c.style); err != nil {
			return fmt.Errorf("draw line %d: %w", i+1, err)
		}
		y += c.lineHeight
	}
	return nil
}
