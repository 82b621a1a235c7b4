// Package main provides the CLI entry point for textimage.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/user/textimage/pkg/adapters/ggrenderer"
	"github.com/user/textimage/pkg/adapters/logger"
	"github.com/user/textimage/pkg/adapters/osfilesystem"
	"github.com/user/textimage/pkg/config"
	"github.com/user/textimage/pkg/ports"
	"github.com/user/textimage/pkg/textimage"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "textimage",
		Usage:     l10n.T("Render lines of text into a PNG image"),
		UsageText: "textimage [options] [line ...]",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML job file")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output PNG file path")},
			&cli.BoolFlag{Name: "stdout", Usage: l10n.T("Write the PNG image to standard output")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Canvas width in pixels (default: 500)")},
			&cli.StringFlag{Name: "background", Usage: l10n.T("Background color (hex, e.g., #FFFFFF)")},
			&cli.StringFlag{Name: "font-color", Usage: l10n.T("Text color (hex, e.g., #000000)")},
			&cli.IntFlag{Name: "font-size", Usage: l10n.T("Font size in points (default: 12)")},
			&cli.IntFlag{Name: "angle", Usage: l10n.T("Text rotation in degrees")},
			&cli.IntFlag{Name: "x", Usage: l10n.T("Horizontal start position (default: 10)")},
			&cli.IntFlag{Name: "y", Usage: l10n.T("Vertical start position (default: 10)")},
			&cli.IntFlag{Name: "line-height", Usage: l10n.T("Line height in pixels (default: 25)")},
			&cli.StringFlag{Name: "font", Usage: l10n.T("TrueType font file")},
			&cli.BoolFlag{Name: "latin-digits", Usage: l10n.T("Keep Western digits instead of Persian digits")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
		},
		Action: func(c *cli.Context) error {
			return run(c, stdin, stdout, stderr)
		},
	}
}

func run(c *cli.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Defaults()
	configPath := c.String("config")
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	applyFlags(c, &cfg)

	log := newLogger(c, cfg.OutputImage, stderr)
	if configPath != "" {
		log.Debug("Loaded config from %s", configPath)
	}

	if len(cfg.Lines) == 0 && !isTerminal(stdin) {
		lines, err := readLines(stdin)
		if err != nil {
			return fmt.Errorf("read lines: %w", err)
		}
		cfg.Lines = lines
	}

	fs := osfilesystem.New()
	builder := textimage.New(ggrenderer.New(fs, log), fs, log).WithOptions(cfg.Options())

	log.Info("Rendering %d lines", len(cfg.Lines))
	out, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build image: %w", err)
	}

	if data, ok := out.Bytes(); ok {
		_, err := stdout.Write(data)
		return err
	}
	if name, ok := out.FileName(); ok {
		log.Info("Output saved to %s", name)
	}
	return nil
}

// newLogger creates the CLI logger. When the image goes to standard output,
// all log messages are sent to stderr instead.
func newLogger(c *cli.Context, imageOnStdout bool, stderr io.Writer) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	level := ports.ParseLogLevel(c.String("log-level"))
	if imageOnStdout {
		return logger.NewWriter(level, stderr)
	}
	return logger.NewConsole(level)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// applyFlags overrides config values with flags set on the command line.
// Positional arguments replace configured lines.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("output") {
		cfg.FileName = c.String("output")
	}
	if c.IsSet("stdout") {
		cfg.OutputImage = c.Bool("stdout")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("background") {
		cfg.BackgroundColor = c.String("background")
	}
	if c.IsSet("font-color") {
		cfg.FontColor = c.String("font-color")
	}
	if c.IsSet("font-size") {
		cfg.FontSize = c.Int("font-size")
	}
	if c.IsSet("angle") {
		cfg.Angle = c.Int("angle")
	}
	if c.IsSet("x") {
		cfg.HorizontalPosition = c.Int("x")
	}
	if c.IsSet("y") {
		cfg.VerticalPosition = c.Int("y")
	}
	if c.IsSet("line-height") {
		cfg.LineHeight = c.Int("line-height")
	}
	if c.IsSet("font") {
		cfg.Font = c.String("font")
	}
	if c.IsSet("latin-digits") {
		cfg.UseLocalNumber = !c.Bool("latin-digits")
	}
	if c.NArg() > 0 {
		cfg.Lines = c.Args().Slice()
	}
}

// maxLineSize bounds a single stdin line.
const maxLineSize = 1 << 20

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
