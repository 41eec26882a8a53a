package main

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/oarkflow/jvalue"
	"github.com/oarkflow/jvalue/scanner"
)

// validateCommand checks every input value in full and reports each fault
// with its offset.
type validateCommand struct {
	files *[]string

	total, bad int
}

func addValidateCommand(app *kingpin.Application, _ *globals) {
	cmd := &validateCommand{}
	c := app.Command("validate", "Check that every value is well formed.")
	cmd.files = c.Arg("files", "Files to read, stdin when omitted.").ExistingFiles()
	c.Action(cmd.run)
}

func (cmd *validateCommand) run(*kingpin.ParseContext) error {
	files := *cmd.files
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		text, err := readInput(name)
		if err != nil {
			exitWithErr(err)
		}
		cmd.checkAll(name, text)
	}
	logger.Info("validated", "values", cmd.total, "invalid", cmd.bad)
	if cmd.bad > 0 {
		exitWithErr(fmt.Errorf("%d of %d values are invalid", cmd.bad, cmd.total))
	}
	return nil
}

// checkAll splits text into consecutive values with the scanner instead of
// the stream decoder, so a malformed value is reported with its offset in
// the file and checking resumes after it.
func (cmd *validateCommand) checkAll(name, text string) {
	end := len(text)
	for i := scanner.SkipWhitespace(text, 0, end); i < end; i = scanner.SkipWhitespace(text, i, end) {
		next, err := scanner.SkipValue(text, i, end)
		if next == i {
			// a stray delimiter is a value of its own
			next = i + 1
		}
		if err == nil {
			err = checkToken(text[i:next])
		}
		cmd.total++
		if err != nil {
			cmd.bad++
			cmd.report(name, i, err)
		}
		i = next
	}
}

func checkToken(token string) error {
	v, err := jvalue.Parse(token)
	if err != nil {
		return err
	}
	return v.Validate()
}

func (cmd *validateCommand) report(name string, base int, err error) {
	var serr *jvalue.SyntaxError
	if errors.As(err, &serr) {
		logger.Warn(serr.Err, "file", name, "value", cmd.total, "offset", base+serr.Offset, "near", serr.Snippet())
		return
	}
	logger.Warn(err, "file", name, "value", cmd.total)
}
