// Package chef implements the execution core of the Chef esoteric
// programming language: lexical normalization of recipe text into
// statements, a recipe-level section state machine, an instruction
// dispatcher, and an execution engine over mixing bowls and baking
// dishes. Its entry point is Execute, tuned by the Option functions in
// options.go; failures are reported as *Fault values.
package chef

// Execute normalizes, parses, and runs one Chef recipe (and, through
// Serve-with, any auxiliary recipes it invokes), returning the ordered
// list of dish strings its Serves/Refrigerate statements produced.
//
// Reading source from a file or stdin, parsing command-line arguments,
// logging, and printing dishes to a terminal are explicitly out of
// scope for this function — see cli/ for that ambient layer.
func Execute(source string, opts ...Option) ([]string, error) {
	o := resolveOptions(opts)

	program, err := parseProgram(source, o.MaxStatements)
	if err != nil {
		o.Logger.Error("recipe parsing faulted", "error", err)
		return nil, err
	}

	engine := newEngine(program, o)
	diners, err := engine.runTopLevel()
	if err != nil {
		o.Logger.Error("recipe execution faulted", "error", err)
		return nil, err
	}
	return diners, nil
}
