package ports

// Decorator rewrites a line of text before it is drawn.
// Implementations must be pure and accept any input.
type Decorator interface {
	Decorate(text string, useLocalDigits bool) string
}

// DecoratorFunc is a function adapter for Decorator interface.
type DecoratorFunc func(text string, useLocalDigits bool) string

// Decorate implements Decorator interface.
func (f DecoratorFunc) Decorate(text string, useLocalDigits bool) string {
	return f(text, useLocalDigits)
}
