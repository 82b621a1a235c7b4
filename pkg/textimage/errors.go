package textimage

import "errors"

var (
	// ErrInvalidCanvasSize is returned when the configured width or line
	// height cannot produce a canvas.
	ErrInvalidCanvasSize = errors.New("textimage: width and line height must be positive")

	// ErrMissingFileName is returned when file mode is selected without a file name.
	ErrMissingFileName = errors.New("textimage: file name required in file mode")
)
