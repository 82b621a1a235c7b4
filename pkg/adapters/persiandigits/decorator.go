// Package persiandigits provides the default line decorator, which rewrites
// digits into the Persian (Extended Arabic-Indic) script.
package persiandigits

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/user/textimage/pkg/ports"
)

const (
	persianZero = '۰' // U+06F0
	arabicZero  = '٠' // U+0660
)

// Decorator implements ports.Decorator.
type Decorator struct {
	localize transform.Transformer
}

// New creates a new Decorator.
func New() *Decorator {
	return &Decorator{localize: runes.Map(toPersian)}
}

// Decorate replaces Western and Arabic-Indic digits with Persian digits when
// useLocalDigits is set. Otherwise text is returned unchanged.
func (d *Decorator) Decorate(text string, useLocalDigits bool) string {
	if !useLocalDigits || text == "" {
		return text
	}
	out, _, err := transform.String(d.localize, text)
	if err != nil {
		return text
	}
	return out
}

func toPersian(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return persianZero + (r - '0')
	case r >= arabicZero && r <= arabicZero+9:
		return persianZero + (r - arabicZero)
	}
	return r
}

// Ensure Decorator implements ports.Decorator
var _ ports.Decorator = (*Decorator)(nil)
