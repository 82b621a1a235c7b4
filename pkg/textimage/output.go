package textimage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/user/textimage/pkg/ports"
)

// OutputMode identifies how a build delivered its image.
type OutputMode int

const (
	// OutputFile means the image was written to a file.
	OutputFile OutputMode = iota
	// OutputBuffer means the image was returned in memory.
	OutputBuffer
)

// String returns the string representation of the output mode.
func (m OutputMode) String() string {
	switch m {
	case OutputFile:
		return "file"
	case OutputBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Output is the result of a build: either encoded PNG bytes or the name of
// the file they were written to.
type Output struct {
	mode     OutputMode
	data     []byte
	fileName string
}

// Mode returns which variant the output holds.
func (o Output) Mode() OutputMode {
	return o.mode
}

// Bytes returns the encoded image in buffer mode.
func (o Output) Bytes() ([]byte, bool) {
	if o.mode != OutputBuffer {
		return nil, false
	}
	return o.data, true
}

// FileName returns the written file name in file mode.
func (o Output) FileName() (string, bool) {
	if o.mode != OutputFile || o.fileName == "" {
		return "", false
	}
	return o.fileName, true
}

func (b *Builder) encode(canvas ports.Canvas, opts Options) (Output, error) {
	if opts.OutputImage {
		var buf bytes.Buffer
		if err := canvas.EncodePNG(&buf); err != nil {
			return Output{}, fmt.Errorf("encode image: %w", err)
		}
		b.logger.Debug("Image encoded: %d bytes", buf.Len())
		return Output{mode: OutputBuffer, data: buf.Bytes()}, nil
	}

	f, err := b.fs.Create(opts.FileName)
	if err != nil {
		return Output{}, fmt.Errorf("create %s: %w", opts.FileName, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return Output{}, b.discard(opts.FileName, fmt.Errorf("encode image: %w", err))
	}
	if err := f.Close(); err != nil {
		return Output{}, b.discard(opts.FileName, fmt.Errorf("close %s: %w", opts.FileName, err))
	}

	b.logger.Debug("Image written to %s", opts.FileName)
	return Output{mode: OutputFile, fileName: opts.FileName}, nil
}

// discard removes a partially written output file. A failed removal is
// joined to cause.
func (b *Builder) discard(fileName string, cause error) error {
	if err := b.fs.Remove(fileName); err != nil {
		return errors.Join(cause, fmt.Errorf("remove %s: %w", fileName, err))
	}
	return cause
}
