// Package textimage renders lines of text onto a canvas and encodes the
// result as a PNG image, returned in memory or written to a file.
package textimage

import (
	"fmt"

	"github.com/user/textimage/pkg/adapters/logger"
	"github.com/user/textimage/pkg/adapters/persiandigits"
	"github.com/user/textimage/pkg/ports"
)

// Builder provides a fluent interface for composing a text image.
// Setters validate nothing; all checks happen in Build.
// A Builder must not be used from multiple goroutines at once.
type Builder struct {
	opts  Options
	lines LineStore

	raster ports.Raster
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a Builder with default options.
// A nil logger discards all messages.
func New(raster ports.Raster, fs ports.FileSystem, log ports.Logger) *Builder {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Builder{
		opts:   DefaultOptions(),
		raster: raster,
		fs:     fs,
		logger: log.WithComponent("textimage"),
	}
}

// NewWithOptions creates a Builder and applies options as WithOptions does.
func NewWithOptions(raster ports.Raster, fs ports.FileSystem, log ports.Logger, options map[string]any) *Builder {
	return New(raster, fs, log).WithOptions(options)
}

// WithWidth sets the canvas width in pixels.
func (b *Builder) WithWidth(width int) *Builder {
	b.opts.Width = width
	return b
}

// WithFileName sets the output path used in file mode.
func (b *Builder) WithFileName(name string) *Builder {
	b.opts.FileName = name
	return b
}

// WithOutputImage selects buffer mode (true) or file mode (false).
func (b *Builder) WithOutputImage(output bool) *Builder {
	b.opts.OutputImage = output
	return b
}

// WithBackgroundColor sets the background hex color code.
func (b *Builder) WithBackgroundColor(hex string) *Builder {
	b.opts.BackgroundColor = hex
	return b
}

// WithFontColor sets the text hex color code.
func (b *Builder) WithFontColor(hex string) *Builder {
	b.opts.FontColor = hex
	return b
}

// WithFontSize sets the font size in points.
func (b *Builder) WithFontSize(size int) *Builder {
	b.opts.FontSize = size
	return b
}

// WithAngle sets the text rotation in degrees.
func (b *Builder) WithAngle(angle int) *Builder {
	b.opts.Angle = angle
	return b
}

// WithHorizontalPosition sets the x coordinate shared by every line.
func (b *Builder) WithHorizontalPosition(x int) *Builder {
	b.opts.HorizontalPosition = x
	return b
}

// WithVerticalPosition sets the baseline y coordinate of the first line.
func (b *Builder) WithVerticalPosition(y int) *Builder {
	b.opts.VerticalPosition = y
	return b
}

// WithLineHeight sets the distance between consecutive baselines.
func (b *Builder) WithLineHeight(height int) *Builder {
	b.opts.LineHeight = height
	return b
}

// WithFont sets the font file path.
func (b *Builder) WithFont(path string) *Builder {
	b.opts.Font = path
	return b
}

// WithUseLocalNumber sets whether the decorator localizes digits.
func (b *Builder) WithUseLocalNumber(use bool) *Builder {
	b.opts.UseLocalNumber = use
	return b
}

// WithDecorator replaces the decorator. nil restores the default.
func (b *Builder) WithDecorator(d ports.Decorator) *Builder {
	b.opts.Decorator = d
	return b
}

// WithOptions applies options by name. Unknown names and values of an
// unusable type are ignored.
func (b *Builder) WithOptions(options map[string]any) *Builder {
	for name, value := range options {
		if set, ok := optionSetters[name]; ok {
			set(b, value)
		}
	}
	return b
}

// AddLine appends a line of text.
func (b *Builder) AddLine(line string) *Builder {
	b.lines.Add(line)
	return b
}

// AddLines appends the string entries of lines in order; other entries are dropped.
func (b *Builder) AddLines(lines []any) *Builder {
	b.lines.AddAll(lines)
	return b
}

// AddStrings appends each line in order.
func (b *Builder) AddStrings(lines ...string) *Builder {
	for _, line := range lines {
		b.lines.Add(line)
	}
	return b
}

// Options returns a copy of the current options.
func (b *Builder) Options() Options {
	return b.opts
}

// Lines returns a copy of the stored lines.
func (b *Builder) Lines() []string {
	return b.lines.All()
}

// Build renders the stored lines and produces the output selected by
// OutputImage. Every call recomputes the canvas, colors and decorator from
// the current options and lines; nothing is carried over between calls.
func (b *Builder) Build() (out Output, err error) {
	opts := b.opts
	lines := b.lines.All()

	decorator := opts.Decorator
	if decorator == nil {
		b.logger.Debug("Using default decorator")
		decorator = persiandigits.New()
	}

	if opts.Width <= 0 || opts.LineHeight <= 0 {
		return Output{}, fmt.Errorf("%w: width %d, line height %d", ErrInvalidCanvasSize, opts.Width, opts.LineHeight)
	}
	if !opts.OutputImage && opts.FileName == "" {
		return Output{}, ErrMissingFileName
	}

	height := CanvasHeight(len(lines), opts.LineHeight)
	b.logger.Debug("Creating canvas %dx%d", opts.Width, height)
	canvas, err := b.raster.NewCanvas(opts.Width, height)
	if err != nil {
		return Output{}, fmt.Errorf("create canvas: %w", err)
	}
	defer func() {
		if cerr := canvas.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release canvas: %w", cerr)
		}
	}()

	colors, err := allocateColors(canvas, opts)
	if err != nil {
		return Output{}, err
	}

	c := composer{
		canvas:    canvas,
		decorator: decorator,
		logger:    b.logger,
		style: ports.TextStyle{
			FontSize: opts.FontSize,
			Angle:    opts.Angle,
			Color:    colors.font,
			FontPath: opts.Font,
		},
		x:          opts.HorizontalPosition,
		y:          opts.VerticalPosition,
		lineHeight: opts.LineHeight,
		useLocal:   opts.UseLocalNumber,
	}
	if err := c.compose(lines); err != nil {
		return Output{}, err
	}

	return b.encode(canvas, opts)
}
