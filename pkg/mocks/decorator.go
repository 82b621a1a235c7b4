package mocks

import "github.com/user/textimage/pkg/ports"

// DecorateCall records one Decorate invocation.
type DecorateCall struct {
	Text           string
	UseLocalDigits bool
}

// Decorator is a mock implementation of ports.Decorator.
// Without DecorateFunc it returns the text unchanged.
type Decorator struct {
	DecorateFunc func(text string, useLocalDigits bool) string
	Log          *CallLog

	Calls []DecorateCall
}

func (m *Decorator) Decorate(text string, useLocalDigits bool) string {
	m.Log.add("Decorate %s", text)
	m.Calls = append(m.Calls, DecorateCall{Text: text, UseLocalDigits: useLocalDigits})
	if m.DecorateFunc != nil {
		return m.DecorateFunc(text, useLocalDigits)
	}
	return text
}

var _ ports.Decorator = (*Decorator)(nil)
