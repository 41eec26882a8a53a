package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/oarkflow/jvalue"
)

// getCommand prints the value found at a path inside every input value.
type getCommand struct {
	g    *globals
	path *[]string
	file *string
	raw  *bool
}

func addGetCommand(app *kingpin.Application, g *globals) {
	cmd := &getCommand{g: g}
	c := app.Command("get", "Print the value at a path of member names and array indexes.")
	cmd.file = c.Flag("file", "File to read, stdin when omitted.").Short('i').ExistingFile()
	cmd.raw = c.Flag("raw", "Print strings without quotes.").Short('r').Bool()
	cmd.path = c.Arg("path", "Path segments.").Strings()
	c.Action(cmd.run)
}

func (cmd *getCommand) run(*kingpin.ParseContext) error {
	var files []string
	if *cmd.file != "" {
		files = append(files, *cmd.file)
	}
	out := bufio.NewWriter(os.Stdout)
	err := eachValue(files, cmd.writeTo(out))
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		exitWithErr(fmt.Errorf("failed to get: %w", err))
	}
	return nil
}

func (cmd *getCommand) writeTo(out *bufio.Writer) func(string, jvalue.Value) error {
	format := cmd.g.layout()
	return func(name string, v jvalue.Value) error {
		found, err := v.Lookup(*cmd.path...)
		if err != nil {
			return err
		}
		logger.Debug("lookup", "file", name, "path", *cmd.path, "kind", found.Kind())
		if *cmd.raw && found.Kind() == jvalue.KindString {
			_, err = fmt.Fprintln(out, found.ToString(""))
			return err
		}
		if err := found.SerializeTo(out, format); err != nil {
			return err
		}
		return out.WriteByte('\n')
	}
}
