package textimage

import (
	"math"

	"github.com/user/textimage/pkg/ports"
)

// Options holds every style and layout setting consumed by Build.
type Options struct {
	// Canvas
	Width int // Canvas width in pixels (default: 500)

	// Output
	FileName    string // Output path used in file mode
	OutputImage bool   // true selects buffer mode, false selects file mode

	// Style
	BackgroundColor string // Hex color code (default: #FFFFFF)
	FontColor       string // Hex color code (default: #000000)
	FontSize        int    // Font size in points (default: 12)
	Angle           int    // Text rotation in degrees (default: 0)
	Font            string // Font file path; empty selects the built-in font

	// Layout
	HorizontalPosition int // X of every line's baseline origin (default: 10)
	VerticalPosition   int // Y of the first line's baseline (default: 10)
	LineHeight         int // Distance between baselines (default: 25)

	// Decoration
	UseLocalNumber bool            // Passed to the decorator (default: true)
	Decorator      ports.Decorator // nil selects the default decorator at build time
}

// DefaultOptions returns Options with default values.
func DefaultOptions() Options {
	return Options{
		Width:              500,
		BackgroundColor:    "#FFFFFF",
		FontColor:          "#000000",
		FontSize:           12,
		Angle:              0,
		HorizontalPosition: 10,
		VerticalPosition:   10,
		LineHeight:         25,
		UseLocalNumber:     true,
	}
}

// Option names accepted by WithOptions.
const (
	OptWidth                   = "width"
	OptFileName                = "fileName"
	OptOutputImage             = "outputImage"
	OptBackgroundColor         = "backgroundColor"
	OptBackgroundColorAllocate = "backgroundColorAllocate"
	OptFontColor               = "fontColor"
	OptFontColorAllocate       = "fontColorAllocate"
	OptFontSize                = "fontSize"
	OptAngle                   = "angle"
	OptHorizontalPosition      = "horizontalPosition"
	OptVerticalPosition        = "verticalPosition"
	OptLineHeight              = "lineHeight"
	OptFont                    = "font"
	OptLines                   = "lines"
	OptImageResource           = "imageResource"
	OptDecorator               = "decorator"
	OptUseLocalNumber          = "useLocalNumber"
)

// optionSetter applies one option value. It reports false when the value has
// an unusable type; such values are ignored.
type optionSetter func(b *Builder, v any) bool

// optionSetters is the closed set of names WithOptions recognizes.
// Color allocations and the canvas only exist during Build, so their names
// are accepted without effect.
var optionSetters = map[string]optionSetter{
	OptWidth:              intOption(func(o *Options, n int) { o.Width = n }),
	OptFileName:           stringOption(func(o *Options, s string) { o.FileName = s }),
	OptOutputImage:        boolOption(func(o *Options, v bool) { o.OutputImage = v }),
	OptBackgroundColor:    stringOption(func(o *Options, s string) { o.BackgroundColor = s }),
	OptFontColor:          stringOption(func(o *Options, s string) { o.FontColor = s }),
	OptFontSize:           intOption(func(o *Options, n int) { o.FontSize = n }),
	OptAngle:              intOption(func(o *Options, n int) { o.Angle = n }),
	OptHorizontalPosition: intOption(func(o *Options, n int) { o.HorizontalPosition = n }),
	OptVerticalPosition:   intOption(func(o *Options, n int) { o.VerticalPosition = n }),
	OptLineHeight:         intOption(func(o *Options, n int) { o.LineHeight = n }),
	OptFont:               stringOption(func(o *Options, s string) { o.Font = s }),
	OptUseLocalNumber:     boolOption(func(o *Options, v bool) { o.UseLocalNumber = v }),
	OptDecorator:          setDecoratorOption,
	OptLines:              setLinesOption,

	OptBackgroundColorAllocate: ignoredOption,
	OptFontColorAllocate:       ignoredOption,
	OptImageResource:           ignoredOption,
}

// IsOption reports whether name is a recognized option name.
func IsOption(name string) bool {
	_, ok := optionSetters[name]
	return ok
}

func intOption(set func(*Options, int)) optionSetter {
	return func(b *Builder, v any) bool {
		n, ok := toInt(v)
		if ok {
			set(&b.opts, n)
		}
		return ok
	}
}

func stringOption(set func(*Options, string)) optionSetter {
	return func(b *Builder, v any) bool {
		s, ok := v.(string)
		if ok {
			set(&b.opts, s)
		}
		return ok
	}
}

func boolOption(set func(*Options, bool)) optionSetter {
	return func(b *Builder, v any) bool {
		x, ok := v.(bool)
		if ok {
			set(&b.opts, x)
		}
		return ok
	}
}

func setDecoratorOption(b *Builder, v any) bool {
	if v == nil {
		b.opts.Decorator = nil
		return true
	}
	d, ok := v.(ports.Decorator)
	if ok {
		b.opts.Decorator = d
	}
	return ok
}

func setLinesOption(b *Builder, v any) bool {
	switch lines := v.(type) {
	case []string:
		b.lines.Reset()
		for _, line := range lines {
			b.lines.Add(line)
		}
	case []any:
		b.lines.Reset()
		b.lines.AddAll(lines)
	default:
		return false
	}
	return true
}

func ignoredOption(*Builder, any) bool {
	return true
}

// toInt converts integer values and integral floats, as produced by YAML
// and JSON decoders, to int. Values outside the int32 range are rejected
// for every numeric kind.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return fitInt64(int64(n))
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return fitInt64(n)
	case uint:
		return fitUint64(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return fitUint64(uint64(n))
	case uint64:
		return fitUint64(n)
	case float32:
		return fitFloat(float64(n))
	case float64:
		return fitFloat(n)
	}
	return 0, false
}

func fitInt64(n int64) (int, bool) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func fitUint64(n uint64) (int, bool) {
	if n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func fitFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
