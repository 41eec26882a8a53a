package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/oarkflow/jvalue"
)

// fmtCommand re-emits every input value in the selected layout.
type fmtCommand struct {
	g     *globals
	files *[]string
}

func addFmtCommand(app *kingpin.Application, g *globals) {
	cmd := &fmtCommand{g: g}
	c := app.Command("fmt", "Reformat JSON values.")
	cmd.files = c.Arg("files", "Files to read, stdin when omitted.").ExistingFiles()
	c.Action(cmd.run)
}

func (cmd *fmtCommand) run(*kingpin.ParseContext) error {
	out := bufio.NewWriter(os.Stdout)
	err := eachValue(*cmd.files, cmd.writeTo(out))
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		exitWithErr(fmt.Errorf("failed to format: %w", err))
	}
	return nil
}

// writeTo returns the callback that re-emits one value per line into out.
func (cmd *fmtCommand) writeTo(out *bufio.Writer) func(string, jvalue.Value) error {
	format := cmd.g.layout()
	return func(_ string, v jvalue.Value) error {
		if err := v.SerializeTo(out, format); err != nil {
			return err
		}
		return out.WriteByte('\n')
	}
}
