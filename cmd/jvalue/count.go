package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/oarkflow/jvalue"
)

// countCommand prints the element or member count of every input value.
type countCommand struct {
	files *[]string
}

func addCountCommand(app *kingpin.Application, _ *globals) {
	cmd := &countCommand{}
	c := app.Command("count", "Count the elements or members of each value.")
	cmd.files = c.Arg("files", "Files to read, stdin when omitted.").ExistingFiles()
	c.Action(cmd.run)
}

func (cmd *countCommand) run(*kingpin.ParseContext) error {
	if err := eachValue(*cmd.files, cmd.writeTo(os.Stdout)); err != nil {
		exitWithErr(fmt.Errorf("failed to count: %w", err))
	}
	return nil
}

func (cmd *countCommand) writeTo(out io.Writer) func(string, jvalue.Value) error {
	return func(name string, v jvalue.Value) error {
		n, err := v.Count()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\t%s\t%d\n", name, v.Kind(), n)
		return err
	}
}
