package mocks

import (
	"fmt"
	"io"

	"github.com/user/textimage/pkg/ports"
)

// pngSignature is written by the mock canvas in place of a real encoding.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// CallLog records the order of calls across mocks sharing it.
type CallLog struct {
	Entries []string
}

func (l *CallLog) add(format string, args ...interface{}) {
	if l != nil {
		l.Entries = append(l.Entries, fmt.Sprintf(format, args...))
	}
}

// Raster is a mock implementation of ports.Raster.
type Raster struct {
	NewCanvasFunc func(width, height int) (ports.Canvas, error)

	// Log, when set, is shared with every canvas the mock creates.
	Log *CallLog

	Canvases []*Canvas
}

func (m *Raster) NewCanvas(width, height int) (ports.Canvas, error) {
	m.Log.add("NewCanvas %dx%d", width, height)
	if m.NewCanvasFunc != nil {
		return m.NewCanvasFunc(width, height)
	}
	c := &Canvas{W: width, H: height, Log: m.Log}
	m.Canvases = append(m.Canvases, c)
	return c, nil
}

// Last returns the most recently created canvas, or nil.
func (m *Raster) Last() *Canvas {
	if len(m.Canvases) == 0 {
		return nil
	}
	return m.Canvases[len(m.Canvases)-1]
}

var _ ports.Raster = (*Raster)(nil)

// DrawCall records one DrawText invocation.
type DrawCall struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

// Canvas is a mock implementation of ports.Canvas.
type Canvas struct {
	W, H int
	Log  *CallLog

	AllocateFunc  func(rgb ports.RGB) (ports.ColorAllocation, error)
	DrawTextFunc  func(text string, x, y int, style ports.TextStyle) error
	EncodePNGFunc func(w io.Writer) error

	Allocations []ports.ColorAllocation
	Draws       []DrawCall
	Encodes     int
	CloseCalls  int
}

func (m *Canvas) Allocate(rgb ports.RGB) (ports.ColorAllocation, error) {
	m.Log.add("Allocate %02x%02x%02x", rgb.R, rgb.G, rgb.B)
	if m.AllocateFunc != nil {
		return m.AllocateFunc(rgb)
	}
	a := ports.ColorAllocation{RGB: rgb, Index: len(m.Allocations)}
	m.Allocations = append(m.Allocations, a)
	return a, nil
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	m.Log.add("DrawText %s", text)
	if m.DrawTextFunc != nil {
		if err := m.DrawTextFunc(text, x, y, style); err != nil {
			return err
		}
	}
	m.Draws = append(m.Draws, DrawCall{Text: text, X: x, Y: y, Style: style})
	return nil
}

func (m *Canvas) EncodePNG(w io.Writer) error {
	m.Log.add("EncodePNG")
	m.Encodes++
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(w)
	}
	_, err := w.Write(pngSignature)
	return err
}

func (m *Canvas) Width() int  { return m.W }
func (m *Canvas) Height() int { return m.H }

func (m *Canvas) Close() error {
	m.Log.add("Close")
	m.CloseCalls++
	return nil
}

var _ ports.Canvas = (*Canvas)(nil)
