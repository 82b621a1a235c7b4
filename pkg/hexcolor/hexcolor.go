// Package hexcolor decodes "#rgb" and "#rrggbb" color codes.
package hexcolor

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/user/textimage/pkg/ports"
)

// ErrInvalidColorFormat is returned for color codes that lack the leading
// '#', have a digit count other than 3 or 6, or contain non-hex digits.
var ErrInvalidColorFormat = errors.New("hexcolor: invalid hexadecimal color code")

// Decode parses a hex color code into its channel values.
// The short form expands each digit by duplication, so "#abc" equals "#aabbcc".
func Decode(s string) (ports.RGB, error) {
	if !strings.HasPrefix(s, "#") {
		return ports.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	hex := s[1:]

	var pairs [3]string
	switch len(hex) {
	case 3:
		for i := range pairs {
			pairs[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6:
		for i := range pairs {
			pairs[i] = hex[i*2 : i*2+2]
		}
	default:
		return ports.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	var ch [3]uint8
	for i, p := range pairs {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return ports.RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
		}
		ch[i] = uint8(v)
	}

	return ports.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ToColor converts an RGB triple to an opaque color.RGBA.
func ToColor(rgb ports.RGB) color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
