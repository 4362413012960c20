// Command chef runs Chef recipes: the language the chef package
// implements an interpreter for. This file is the outer collaborator —
// file/stdin reading, argument parsing, logging configuration, the
// interactive REPL, and printing dishes.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/culinary-source/chef/chef"
	"github.com/culinary-source/chef/internal/config"
	"github.com/culinary-source/chef/internal/logging"
	"github.com/culinary-source/chef/internal/options"
)

const version = "chef version 0.1.0"

func main() {
	options.Parse(version)

	source, err := readRecipe()
	if err != nil {
		fmt.Fprintln(os.Stderr, "chef:", err)
		os.Exit(1)
	}

	opts, err := chefOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, "chef:", err)
		os.Exit(1)
	}

	dishes, err := chef.Execute(source, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chef:", err)
		os.Exit(1)
	}

	for _, dish := range dishes {
		fmt.Println(dish)
	}
}

// chefOptions merges the optional chef.yaml configuration file with the
// debug-controlled structured logger into the chef.Option set Execute
// receives.
func chefOptions() ([]chef.Option, error) {
	f, err := config.Load()
	if err != nil {
		return nil, err
	}

	opts := []chef.Option{chef.WithLogger(logging.New(options.Debug()))}
	if f.MaxSousChefDepth > 0 {
		opts = append(opts, chef.WithMaxSousChefDepth(f.MaxSousChefDepth))
	}
	if f.MaxStatements > 0 {
		opts = append(opts, chef.WithMaxStatements(f.MaxStatements))
	}
	return opts, nil
}

// readRecipe reads recipe source from -c, a RECIPE file, the REPL, or
// stdin, per the mode options.Parse decided.
func readRecipe() (string, error) {
	switch {
	case options.Command() != "":
		return options.Command(), nil
	case options.RecipePath() != "":
		data, err := os.ReadFile(options.RecipePath())
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", options.RecipePath(), err)
		}
		return string(data), nil
	case options.REPL():
		return readREPL()
	default:
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
}

// readREPL reads a recipe interactively, line by line, with history and
// basic line editing: it reads until a blank line follows a Serves line,
// or EOF, since chef runs one recipe per invocation rather than one
// command per line.
func readREPL() (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	var lines []string
	sawServes := false
	for {
		text, err := line.Prompt("chef> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		line.AppendHistory(text)

		trimmed := strings.TrimSpace(text)
		if trimmed == "" && sawServes {
			break
		}
		if strings.HasPrefix(trimmed, "Serves ") {
			sawServes = true
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n"), nil
}
