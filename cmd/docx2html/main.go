// docx2html converts a DOCX document to HTML.
//
// Each body paragraph becomes a <p>, or an <ol>/<li> pair when it belongs
// to a numbered list. Run formatting (bold, italic, underline, font size)
// is carried into inline markup.
//
// Configuration:
//
// Settings can be read from a YAML (.yaml, .yml) or TOML (.toml) file:
//
//	font_size: 12
//	standalone: true
//	title: "Minutes"
//	log_level: "debug"
//	output: "minutes.html"
//
// Usage:
//
//	docx2html [options] input.docx
//
// Options:
//
//	-config string     Path to a YAML or TOML configuration file
//	-font-size int     Override the document default font size, in points
//	-standalone        Write a complete HTML page instead of a fragment
//	-title string      Title of the standalone page
//	-log-level string  Log level (debug, info, warn, error)
//	-o string          Path to write the HTML to (default stdout)
//
// Flags override values from the configuration file.
//
// Example:
//
//	docx2html -standalone -title "Minutes" -o minutes.html minutes.docx
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/tsawler/docxhtml"
	"github.com/tsawler/docxhtml/internal/logging"
)

const appName = "docx2html"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run parses args, converts the input and writes the result. Errors are
// logged before being returned.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to a YAML or TOML configuration file")
	var fv flagValues
	fs.IntVar(&fv.fontSize, "font-size", 0, "Override the document default font size, in points")
	fs.BoolVar(&fv.standalone, "standalone", false, "Write a complete HTML page instead of a fragment")
	fs.StringVar(&fv.title, "title", "", "Title of the standalone page")
	fs.StringVar(&fv.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&fv.output, "o", "", "Path to write the HTML to (default stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fv.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		fv.set[f.Name] = true
	})

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one input file is required")
		fmt.Fprintln(stderr, "Usage:")
		fs.PrintDefaults()
		return fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	input := fs.Arg(0)

	logger := logging.NewWithWriter(stderr, appName, fv.logLevel)

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			logger.Error().Err(err).Str("config", *configPath).Msg("failed to load config")
			return err
		}
		cfg = loaded
	}
	cfg = fv.overlay(cfg)

	if cfg.LogLevel != fv.logLevel {
		logger = logging.NewWithWriter(stderr, appName, cfg.LogLevel)
	}
	if err := convert(input, cfg, stdout, logger); err != nil {
		logger.Error().Err(err).Str("file", input).Msg("conversion failed")
		return err
	}
	return nil
}

func convert(input string, cfg config, stdout io.Writer, logger zerolog.Logger) error {
	conv := docxhtml.Open(input).Logger(logger)
	if cfg.FontSize > 0 {
		conv = conv.FontSize(cfg.FontSize)
	}
	if cfg.Standalone {
		conv = conv.Standalone(cfg.Title)
	}

	out, err := conv.HTML()
	if err != nil {
		return err
	}
	out += "\n"

	if cfg.Output == "" {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(cfg.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	logger.Info().Str("file", input).Str("output", cfg.Output).Msg("wrote HTML")
	return nil
}
