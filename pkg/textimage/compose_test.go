package textimage

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/user/textimage/pkg/adapters/logger"
	"github.com/user/textimage/pkg/hexcolor"
	"github.com/user/textimage/pkg/mocks"
	"github.com/user/textimage/pkg/ports"
)

func TestBuild_DrawsEachLineAtSteppedPositions(t *testing.T) {
	b, raster, _ := newTestBuilder()
	b.WithOutputImage(true).
		WithHorizontalPosition(15).
		WithVerticalPosition(20).
		WithLineHeight(30).
		WithFontSize(16).
		WithAngle(5).
		WithFont("/fonts/a.ttf").
		WithFontColor("#336699").
		WithDecorator(&mocks.Decorator{}).
		AddStrings("one", "two", "three")

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	canvas := raster.Last()
	if canvas.W != 500 || canvas.H != 120 {
		t.Errorf("expected 500x120 canvas, got %dx%d", canvas.W, canvas.H)
	}

	font := ports.ColorAllocation{RGB: ports.RGB{R: 0x33, G: 0x66, B: 0x99}, Index: 1}
	style := ports.TextStyle{FontSize: 16, Angle: 5, Color: font, FontPath: "/fonts/a.ttf"}
	want := []mocks.DrawCall{
		{Text: "one", X: 15, Y: 20, Style: style},
		{Text: "two", X: 15, Y: 50, Style: style},
		{Text: "three", X: 15, Y: 80, Style: style},
	}
	if diff := cmp.Diff(want, canvas.Draws); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_LogsProgressPerLine(t *testing.T) {
	var buf bytes.Buffer
	b := New(&mocks.Raster{}, mocks.NewFileSystem(), logger.NewWriter(ports.LevelDebug, &buf))
	b.WithOutputImage(true).WithDecorator(&mocks.Decorator{}).AddStrings("a", "b")

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"[textimage] Drawing 2 lines",
		"[textimage] Drawing line 1/2",
		"[textimage] Drawing line 2/2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output %q", want, out)
		}
	}
}

func TestBuild_AllocatesBackgroundThenFont(t *testing.T) {
	b, raster, _ := newTestBuilder()
	b.WithOutputImage(true).WithBackgroundColor("#abc").WithFontColor("#010203")

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []ports.ColorAllocation{
		{RGB: ports.RGB{R: 0xaa, G: 0xbb, B: 0xcc}, Index: 0},
		{RGB: ports.RGB{R: 1, G: 2, B: 3}, Index: 1},
	}
	if diff := cmp.Diff(want, raster.Last().Allocations); diff != "" {
		t.Errorf("allocations mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DecoratesBeforeEachDrawAfterSetup(t *testing.T) {
	log := &mocks.CallLog{}
	raster := &mocks.Raster{Log: log}
	decorator := &mocks.Decorator{
		Log: log,
		DecorateFunc: func(text string, useLocalDigits bool) string {
			return strings.ToUpper(text)
		},
	}
	b := New(raster, mocks.NewFileSystem(), nil).
		WithOutputImage(true).
		WithDecorator(decorator).
		AddStrings("a", "b")

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{
		"NewCanvas 500x75",
		"Allocate ffffff",
		"Allocate 000000",
		"Decorate a",
		"DrawText A",
		"Decorate b",
		"DrawText B",
		"EncodePNG",
		"Close",
	}
	if diff := cmp.Diff(want, log.Entries); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_PassesUseLocalNumberToDecorator(t *testing.T) {
	for _, local := range []bool{true, false} {
		b, _, _ := newTestBuilder()
		d := &mocks.Decorator{}
		b.WithOutputImage(true).WithDecorator(d).WithUseLocalNumber(local).AddStrings("1", "2")

		if _, err := b.Build(); err != nil {
			t.Fatalf("Build failed: %v", err)
		}

		want := []mocks.DecorateCall{{Text: "1", UseLocalDigits: local}, {Text: "2", UseLocalDigits: local}}
		if diff := cmp.Diff(want, d.Calls); diff != "" {
			t.Errorf("decorate calls mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestBuild_DefaultDecoratorResolvedLazily(t *testing.T) {
	b, raster, _ := newTestBuilder()
	b.WithOutputImage(true).AddLine("Room 12")

	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := raster.Last().Draws[0].Text; got != "Room ۱۲" {
		t.Errorf("expected localized digits, got %q", got)
	}
	if b.Options().Decorator != nil {
		t.Error("default decorator should not be stored on the builder")
	}

	// A decorator set after a build still takes effect.
	b.WithDecorator(&mocks.Decorator{})
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := raster.Last().Draws[0].Text; got != "Room 12" {
		t.Errorf("expected undecorated text, got %q", got)
	}
}

func TestBuild_InvalidColorAbortsBeforeDrawing(t *testing.T) {
	tests := []struct {
		name   string
		bg, fg string
		prefix string
	}{
		{"background without hash", "FFFFFF", "#000000", "background color"},
		{"background wrong length", "#1234", "#000000", "background color"},
		{"font wrong length", "#FFFFFF", "#12", "font color"},
		{"font without hash", "#FFFFFF", "1a2b3c", "font color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, raster, fs := newTestBuilder()
			d := &mocks.Decorator{}
			b.WithFileName("out.png").
				WithBackgroundColor(tt.bg).
				WithFontColor(tt.fg).
				WithDecorator(d).
				AddLine("text")

			out, err := b.Build()
			if !errors.Is(err, hexcolor.ErrInvalidColorFormat) {
				t.Fatalf("expected ErrInvalidColorFormat, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("expected error to start with %q, got %q", tt.prefix, err)
			}
			if out.Mode() != OutputFile {
				t.Errorf("expected zero output, got mode %v", out.Mode())
			}
			if _, ok := out.FileName(); ok {
				t.Error("expected no file name in failed output")
			}

			canvas := raster.Last()
			if len(canvas.Draws) != 0 || len(d.Calls) != 0 {
				t.Error("expected no decoration or drawing")
			}
			if canvas.Encodes != 0 {
				t.Error("expected no encoding")
			}
			if canvas.CloseCalls != 1 {
				t.Errorf("expected canvas to be closed once, got %d", canvas.CloseCalls)
			}
			if len(fs.GetAllFiles()) != 0 {
				t.Error("expected no file to be written")
			}
		})
	}
}

func TestBuild_DrawErrorReleasesCanvas(t *testing.T) {
	drawErr := errors.New("glyph failure")
	var canvas *mocks.Canvas
	raster := &mocks.Raster{
		NewCanvasFunc: func(width, height int) (ports.Canvas, error) {
			canvas = &mocks.Canvas{
				W: width, H: height,
				DrawTextFunc: func(text string, x, y int, style ports.TextStyle) error {
					if text == "bad" {
						return drawErr
					}
					return nil
				},
			}
			return canvas, nil
		},
	}
	b := New(raster, mocks.NewFileSystem(), nil).
		WithOutputImage(true).
		WithDecorator(&mocks.Decorator{}).
		AddStrings("good", "bad", "never")

	_, err := b.Build()
	if !errors.Is(err, drawErr) {
		t.Fatalf("expected draw error, got %v", err)
	}
	if !strings.Contains(err.Error(), "draw line 2") {
		t.Errorf("expected line number in error, got %q", err)
	}
	if len(canvas.Draws) != 1 {
		t.Errorf("expected drawing to stop after the failing line, got %d draws", len(canvas.Draws))
	}
	if canvas.Encodes != 0 {
		t.Error("expected no encoding")
	}
	if canvas.CloseCalls != 1 {
		t.Errorf("expected canvas to be closed once, got %d", canvas.CloseCalls)
	}
}

func TestBuild_AllocateErrorReleasesCanvas(t *testing.T) {
	allocErr := errors.New("no colors left")
	var canvas *mocks.Canvas
	raster := &mocks.Raster{
		NewCanvasFunc: func(width, height int) (ports.Canvas, error) {
			canvas = &mocks.Canvas{
				W: width, H: height,
				AllocateFunc: func(rgb ports.RGB) (ports.ColorAllocation, error) {
					return ports.ColorAllocation{}, allocErr
				},
			}
			return canvas, nil
		},
	}
	b := New(raster, mocks.NewFileSystem(), nil).WithOutputImage(true)

	if _, err := b.Build(); !errors.Is(err, allocErr) {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if canvas.CloseCalls != 1 {
		t.Errorf("expected canvas to be closed once, got %d", canvas.CloseCalls)
	}
}

func TestBuild_NewCanvasError(t *testing.T) {
	canvasErr := errors.New("out of memory")
	raster := &mocks.Raster{
		NewCanvasFunc: func(width, height int) (ports.Canvas, error) {
			return nil, canvasErr
		},
	}
	b := New(raster, mocks.NewFileSystem(), nil).WithOutputImage(true)

	if _, err := b.Build(); !errors.Is(err, canvasErr) {
		t.Fatalf("expected canvas error, got %v", err)
	}
}

func TestBuild_InvalidCanvasSize(t *testing.T) {
	tests := []struct {
		name              string
		width, lineHeight int
	}{
		{"zero width", 0, 25},
		{"negative width", -5, 25},
		{"zero line height", 500, 0},
		{"negative line height", 500, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, raster, _ := newTestBuilder()
			b.WithOutputImage(true).WithWidth(tt.width).WithLineHeight(tt.lineHeight)

			if _, err := b.Build(); !errors.Is(err, ErrInvalidCanvasSize) {
				t.Fatalf("expected ErrInvalidCanvasSize, got %v", err)
			}
			if len(raster.Canvases) != 0 {
				t.Error("expected no canvas to be created")
			}
		})
	}
}

func TestBuild_RepeatedBuildsRecompute(t *testing.T) {
	b, raster, _ := newTestBuilder()
	b.WithOutputImage(true).WithDecorator(&mocks.Decorator{}).AddLine("a")

	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	b.AddLine("b").WithFontColor("#f00")
	if _, err := b.Build(); err != nil {
		t.Fatalf("second Build failed: %v", err)
	}

	if len(raster.Canvases) != 2 {
		t.Fatalf("expected a fresh canvas per build, got %d", len(raster.Canvases))
	}
	first, second := raster.Canvases[0], raster.Canvases[1]
	if first.H != 50 || second.H != 75 {
		t.Errorf("expected heights 50 and 75, got %d and %d", first.H, second.H)
	}
	if len(first.Draws) != 1 || len(second.Draws) != 2 {
		t.Errorf("expected 1 and 2 draws, got %d and %d", len(first.Draws), len(second.Draws))
	}
	if len(second.Allocations) != 2 {
		t.Errorf("expected allocations not to accumulate, got %d", len(second.Allocations))
	}
	if got := second.Draws[0].Style.Color.RGB; got != (ports.RGB{R: 255}) {
		t.Errorf("expected updated font color, got %+v", got)
	}
	if first.CloseCalls != 1 || second.CloseCalls != 1 {
		t.Error("expected every canvas to be closed once")
	}
}
