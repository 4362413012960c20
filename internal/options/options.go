// Package options parses the chef binary's command line: a
// package-level docopt usage string, a Parse function that fills
// package-level state, and typed accessors for the parsed flags.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	recipePath  string
	command     string
	dishNames   []string
	repl        bool
	debug       bool
	interactive bool
	usage       = `chef

Usage:
  chef [-d] RECIPE [DISHES...]
  chef [-d] -c COMMAND
  chef [-d] -r
  chef -h
  chef -v

Arguments:
  RECIPE  Path to a Chef recipe file.
  DISHES  Unused positional arguments, accepted for command-line symmetry
          with recipes that take no input; Chef recipes read no external
          input.

Options:
  -c, --command=COMMAND  Run the given recipe text directly.
  -r, --repl              Read a recipe interactively, line by line.
  -d, --debug             Emit per-statement debug logging to stderr.
  -h, --help              Display this help.
  -v, --version           Print chef's version.

If chef is invoked with no RECIPE and stdin is a TTY, the REPL starts
automatically, as though -r had been given.
`
)

// Parse parses os.Args against the usage string above, populating the
// package's accessors. Like oh's options.Parse, a malformed usage
// string is a programming error ("this should never happen"); a genuine
// command-line mistake makes docopt print usage and exit on its own.
func Parse(version string) {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		panic(err.Error())
	}

	if v, _ := opts.Bool("--version"); v {
		os.Stdout.WriteString(version + "\n")
		os.Exit(0)
	}

	command, _ = opts.String("--command")
	recipePath, _ = opts.String("RECIPE")
	dishNames, _ = opts["DISHES"].([]string)
	repl, _ = opts.Bool("--repl")
	debug, _ = opts.Bool("--debug")

	if recipePath == "" && command == "" && !repl {
		repl = isatty.IsTerminal(os.Stdin.Fd())
	}
	interactive = repl
}

// RecipePath returns the path given as RECIPE, or "" if none was given.
func RecipePath() string { return recipePath }

// Command returns the recipe text given via -c/--command, or "" if none.
func Command() string { return command }

// Dishes returns the unused DISHES positional arguments.
func Dishes() []string { return dishNames }

// REPL reports whether chef should read a recipe interactively.
func REPL() bool { return repl }

// Interactive reports whether the recipe is read interactively: -r/--repl
// was given, or stdin is a terminal and no RECIPE/--command was given.
func Interactive() bool { return interactive }

// Debug reports whether -d/--debug was given.
func Debug() bool { return debug }
