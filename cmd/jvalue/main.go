// Command jvalue inspects and reformats JSON documents without decoding them
// into Go values. Input is read from the named files, or stdin when none are
// given, and may hold several values one after another.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/charmbracelet/log"

	"github.com/oarkflow/jvalue"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "jvalue",
	Level:  log.InfoLevel,
})

// globals are the flags every command shares.
type globals struct {
	format   *string
	logLevel *string
}

func (g *globals) setup(*kingpin.ParseContext) error {
	level, err := log.ParseLevel(*g.logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

func (g *globals) layout() jvalue.Format {
	f, err := jvalue.ParseFormat(*g.format)
	if err != nil {
		exitWithErr(err)
	}
	return f
}

func main() {
	app := kingpin.New("jvalue", "Inspect and reformat JSON documents lazily.")
	app.HelpFlag.Short('h')

	g := &globals{
		format: app.Flag("format", "Output layout.").
			Short('f').
			Envar("JVALUE_FORMAT").
			Default(jvalue.Pretty.String()).
			Enum(jvalue.FormatNames()...),
		logLevel: app.Flag("log-level", "Log level (debug, info, warn, error).").
			Envar("JVALUE_LOG_LEVEL").
			Default("info").
			String(),
	}
	app.PreAction(g.setup)

	addFmtCommand(app, g)
	addGetCommand(app, g)
	addCountCommand(app, g)
	addValidateCommand(app, g)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

// eachValue calls fn for every value found in files, or in stdin when files
// is empty. It stops at the first read error or the first error from fn.
func eachValue(files []string, fn func(name string, v jvalue.Value) error) error {
	if len(files) == 0 {
		return streamValues("-", os.Stdin, fn)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		err = streamValues(name, f, fn)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func streamValues(name string, r io.Reader, fn func(string, jvalue.Value) error) error {
	s := jvalue.NewStream(r)
	for n := 0; ; n++ {
		v, err := s.Next()
		if errors.Is(err, io.EOF) {
			logger.Debug("input done", "file", name, "values", n)
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: value %d: %w", name, n, err)
		}
		if err := fn(name, v); err != nil {
			return err
		}
	}
}

// readInput reads a whole file, or stdin for "-".
func readInput(name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(b), nil
}

func exitWithErr(err error) {
	logger.Error(err)
	os.Exit(1)
}
