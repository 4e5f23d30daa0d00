// stringlet is a command-line tool for working with stringlet values and
// column blobs.
//
// Subcommands:
//
//	inspect   encode a string and report its layout
//	compare   compare two strings held in different configurations
//	pack      write one string per input line into a column blob
//	unpack    print the strings of a column blob, one per line
//
// Every subcommand accepts --config FILE to load defaults from a JSONC file
// and --verbose to log to stderr. Flags given on the command line override
// the file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

type command struct {
	name    string
	summary string
	run     func(env *environment, args []string) error
}

var commands = []command{
	{"inspect", "encode a string and report its layout", runInspect},
	{"compare", "compare two strings held in different configurations", runCompare},
	{"pack", "write one string per input line into a column blob", runPack},
	{"unpack", "print the strings of a column blob, one per line", runUnpack},
}

// environment carries the process streams so commands can be tested.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	env := &environment{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := run(env, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(env *environment, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(env.stderr)
		return nil
	}

	for _, cmd := range commands {
		if cmd.name == args[0] {
			err := cmd.run(env, args[1:])
			if errors.Is(err, pflag.ErrHelp) {
				return nil
			}

			return err
		}
	}

	printUsage(env.stderr)

	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n  stringlet <command> [flags] [args]\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintf(w, "\nRun \"stringlet <command> --help\" for the flags of a command.\n")
}
