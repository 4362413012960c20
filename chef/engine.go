package chef

import (
	"strings"
)

// LoopFrame records one nested Verb/until loop, per spec.md section 3.
// Frames form a LIFO stack owned entirely by the Engine; a frame is
// created when its header statement is dispatched and destroyed when its
// guard ingredient reaches zero or Set-aside forces it closed.
type LoopFrame struct {
	StartPC       int
	EndPC         int
	GuardName     string
	DecrementName string // empty when the until-clause named no ingredient
	ForceExit     bool
}

// execState is the mutable cooking state for one recipe invocation
// (spec.md section 3): a top-level recipe, or a sous-chef invoked by
// Serve-with. Every field here is private to a single invocation; a
// sous-chef gets a deep copy of the caller's bowls and dishes and its own
// fresh ingredient table, loop stack, and program counter.
type execState struct {
	ingredients *IngredientTable
	bowls       *StackSet
	dishes      *StackSet
	diners      []string
	loopStack   []*LoopFrame
	pc          int
	methodEnd   int
	exit        bool
}

// Engine owns one source Program and executes recipes against it,
// dispatching statements through the operator table in spec.md section
// 4.4 and the PC-control rules in section 4.5: an explicit program
// counter advanced after each dispatched statement, a switch on the current
// statement's head, and loop-frame popping driven entirely by state
// carried in execState.
type Engine struct {
	program *Program
	opts    Options
	depth   int
}

// newEngine builds an Engine over an already-lexed Program.
func newEngine(program *Program, opts Options) *Engine {
	return &Engine{program: program, opts: opts}
}

// runTopLevel parses and executes the recipe starting at statement 0 and
// returns its diners output.
func (e *Engine) runTopLevel() ([]string, error) {
	recipe, err := parseRecipe(e.program.Statements, 0)
	if err != nil {
		return nil, err
	}
	state := &execState{
		ingredients: recipe.Ingredients,
		bowls:       NewStackSet(),
		dishes:      NewStackSet(),
	}
	state.pc = recipe.MethodStart
	if err := e.runRecipe(recipe, state); err != nil {
		return nil, err
	}
	return state.diners, nil
}

// runRecipe implements the program-counter control rules of spec.md
// section 4.5 over one recipe's method range, then performs the
// recipe's closing Serves action if execution reached the end of the
// method normally (i.e. was not short-circuited by Refrigerate).
func (e *Engine) runRecipe(recipe *Recipe, state *execState) error {
	state.methodEnd = recipe.MethodEnd

	for state.pc < recipe.MethodEnd && !state.exit {
		if n := len(state.loopStack); n > 0 {
			frame := state.loopStack[n-1]

			if frame.ForceExit {
				state.pc = frame.EndPC + 1
				state.loopStack = state.loopStack[:n-1]
				continue
			}

			if state.pc == frame.EndPC {
				done, err := e.evaluateBackEdge(state, frame)
				if err != nil {
					return err
				}
				if done {
					state.loopStack = state.loopStack[:n-1]
				}
				continue
			}
		}

		if err := e.step(state); err != nil {
			return err
		}
		state.pc++
	}

	if !state.exit {
		if err := e.prepareDishes(state, recipe.ServesCount); err != nil {
			return err
		}
		state.exit = true
	}
	return nil
}

// evaluateBackEdge evaluates a loop's guard at its back-edge statement:
// the decrement target is decremented first, then the guard is checked —
// if it is at or below zero the loop is done (caller pops the frame) and
// pc jumps past it, otherwise pc returns to the statement after the
// header. A guard of n runs the body exactly n times. The until-clause's
// decrement target defaults to the guard ingredient itself when it
// names none (the bare "<Verb> until <verbed>." form, with no ingredient
// between "until" and the loop-closing verb) — without this default the
// guard is never touched and the loop never ends.
func (e *Engine) evaluateBackEdge(state *execState, frame *LoopFrame) (done bool, err error) {
	guard, ok := state.ingredients.Get(frame.GuardName)
	if !ok || !guard.Defined {
		return false, newFault(ReferenceError, state.pc+1, "loop guard ingredient %q is undefined", frame.GuardName)
	}

	decName := frame.DecrementName
	if decName == "" {
		decName = frame.GuardName
	}
	dec, ok := state.ingredients.Get(decName)
	if !ok || !dec.Defined {
		return false, newFault(ReferenceError, state.pc+1, "loop decrement ingredient %q is undefined", decName)
	}
	dec.Value--

	if guard.Value <= 0 {
		state.pc = frame.EndPC + 1
		return true, nil
	}
	state.pc = frame.StartPC + 1
	return false, nil
}

// step dispatches the single statement at state.pc, exactly the
// "decode a verb and arguments, invoke the operator" step of spec.md
// section 4.3/4.4.
func (e *Engine) step(state *execState) error {
	stmt := e.program.Statements[state.pc]
	tokens := strings.Fields(stmt)
	if len(tokens) == 0 {
		return nil
	}
	statementIndex := state.pc + 1

	e.opts.Logger.Debug("dispatch statement",
		"depth", e.depth, "statement_index", statementIndex, "verb", tokens[0])

	switch tokens[0] {
	case "Put":
		return e.opPut(state, tokens, statementIndex)
	case "Fold":
		return e.opFold(state, tokens, statementIndex)
	case "Add":
		return e.opAdd(state, tokens, statementIndex)
	case "Remove":
		return e.opRemove(state, tokens, statementIndex)
	case "Combine":
		return e.opCombine(state, tokens, statementIndex)
	case "Divide":
		return e.opDivide(state, tokens, statementIndex)
	case "Liquefy":
		return e.opLiquefy(state, tokens, statementIndex)
	case "Stir":
		return e.opStir(state, tokens, statementIndex)
	case "Clean":
		return e.opClean(state, tokens, statementIndex)
	case "Pour":
		return e.opPour(state, tokens, statementIndex)
	case "Set":
		return e.opSetAside(state, tokens, statementIndex)
	case "Serve":
		return e.opServeWith(state, tokens, statementIndex)
	case "Refrigerate":
		return e.opRefrigerate(state, tokens, statementIndex)
	case "Take", "Mix":
		return newFault(Unsupported, statementIndex, "%q is not supported", tokens[0])
	default:
		return e.pushLoopFrame(state, tokens, statementIndex)
	}
}

// --- ingredient / bowl resolution helpers ---

func (e *Engine) requireIngredient(state *execState, name string, statementIndex int) (*Ingredient, error) {
	ing, ok := state.ingredients.Get(name)
	if !ok || !ing.Defined {
		return nil, newFault(ReferenceError, statementIndex, "ingredient %q is undefined", name)
	}
	return ing, nil
}

func resolveBowlIndexOrDefault(tokens []string) int {
	if idx, ok := extractBowlIndex(tokens); ok {
		return idx
	}
	return 1
}

func requireBowlIndex(tokens []string, statementIndex int) (int, error) {
	idx, ok := extractBowlIndex(tokens)
	if !ok {
		return 0, newFault(ReferenceError, statementIndex, "statement has no mixing bowl anchor")
	}
	return idx, nil
}

func requireDishIndex(tokens []string, statementIndex int) (int, error) {
	idx, ok := extractDishIndex(tokens)
	if !ok {
		return 0, newFault(ReferenceError, statementIndex, "statement has no baking dish anchor")
	}
	return idx, nil
}

// --- operators (spec.md section 4.4) ---

func (e *Engine) opPut(state *execState, tokens []string, statementIndex int) error {
	name := extractIngredientName(tokens, 1, "into")
	ing, err := e.requireIngredient(state, name, statementIndex)
	if err != nil {
		return err
	}
	idx, err := requireBowlIndex(tokens, statementIndex)
	if err != nil {
		return err
	}
	state.bowls.Get(idx).Push(Cell{Value: ing.Value, Type: ing.Type})
	return nil
}

func (e *Engine) opFold(state *execState, tokens []string, statementIndex int) error {
	name := extractIngredientName(tokens, 1, "into")
	if name == "" {
		return newFault(ReferenceError, statementIndex, "Fold names no ingredient")
	}
	idx, err := requireBowlIndex(tokens, statementIndex)
	if err != nil {
		return err
	}
	bowl := state.bowls.Get(idx)
	cell, ok := bowl.Pop()
	if !ok {
		return newFault(StateError, statementIndex, "cannot Fold from empty mixing bowl %d", idx)
	}
	state.ingredients.Set(name, cell.Value, cell.Type)
	return nil
}

func (e *Engine) opAdd(state *execState, tokens []string, statementIndex int) error {
	name := extractIngredientName(tokens, 1, "to")
	idx := resolveBowlIndexOrDefault(tokens)
	bowl := state.bowls.Get(idx)

	if name == "dry ingredients" {
		var sum int64
		for _, v := range state.ingredients.DryValues() {
			sum += v
		}
		bowl.Push(Cell{Value: sum, Type: Unspecified})
		return nil
	}

	ing, err := e.requireIngredient(state, name, statementIndex)
	if err != nil {
		return err
	}
	top, ok := bowl.Top()
	if !ok {
		return newFault(StateError, statementIndex, "cannot Add to empty mixing bowl %d", idx)
	}
	top.Value += ing.Value
	bowl.SetTop(top)
	return nil
}

func (e *Engine) opRemove(state *execState, tokens []string, statementIndex int) error {
	name := extractIngredientName(tokens, 1, "from")
	idx := resolveBowlIndexOrDefault(tokens)
	bowl := state.bowls.Get(idx)

	ing, err := e.requireIngredient(state, name, statementIndex)
	if err != nil {
		return err
	}
	top, ok := bowl.Top()
	if !ok {
		return newFault(StateError, statementIndex, "cannot Remove from empty mixing bowl %d", idx)
	}
	top.Value -= ing.Value
	bowl.SetTop(top)
	return nil
}

func (e *Engine) opCombine(state *execState, tokens []string, statementIndex int) error {
	name := extractIngredientName(tokens, 1, "into")
	idx := resolveBowlIndexOrDefault(tokens)
	bowl := state.bowls.Get(idx)

	ing, err := e.requireIngredient(state, name, statementIndex)
	if err != nil {
		return err
	}
	top, ok := bowl.Top()
	if !ok {
		return newFault(StateError, statementIndex, "cannot Combine into empty mixing bowl %d", idx)
	}
	top.Value *= ing.Value
	bowl.SetTop(top)
	return nil
}

func (e *Engine) opDivide(state *execState, tokens []string, statementIndex int) error {
	name := extractIngredientName(tokens, 1, "into")
	idx := resolveBowlIndexOrDefault(tokens)
	bowl := state.bowls.Get(idx)

	ing, err := e.requireIngredient(state, name, statementIndex)
	if err != nil {
		return err
	}
	if ing.Value == 0 {
		return newFault(StateError, statementIndex, "cannot Divide by zero")
	}
	top, ok := bowl.Top()
	if !ok {
		return newFault(StateError, statementIndex, "cannot Divide into empty mixing bowl %d", idx)
	}
	top.Value /= ing.Value // Go's / on int64 truncates toward zero.
	bowl.SetTop(top)
	return nil
}

func (e *Engine) opLiquefy(state *execState, tokens []string, statementIndex int) error {
	idx := resolveBowlIndexOrDefault(tokens)
	state.bowls.Get(idx).Liquefy()
	return nil
}

func (e *Engine) opStir(state *execState, tokens []string, statementIndex int) error {
	if minutesIdx := indexOf(tokens, "minutes"); minutesIdx > 0 {
		n, err := parseUint(tokens[minutesIdx-1])
		if err != nil {
			return newFault(ReferenceError, statementIndex, "malformed Stir minute count %q", tokens[minutesIdx-1])
		}
		idx := resolveBowlIndexOrDefault(tokens)
		state.bowls.Get(idx).Rotate(n)
		return nil
	}

	name := extractIngredientName(tokens, 1, "into")
	ing, err := e.requireIngredient(state, name, statementIndex)
	if err != nil {
		return err
	}
	idx := resolveBowlIndexOrDefault(tokens)
	state.bowls.Get(idx).Rotate(int(ing.Value))
	return nil
}

func (e *Engine) opClean(state *execState, tokens []string, statementIndex int) error {
	idx := resolveBowlIndexOrDefault(tokens)
	state.bowls.Clean(idx)
	return nil
}

func (e *Engine) opPour(state *execState, tokens []string, statementIndex int) error {
	bowlIdx, err := requireBowlIndex(tokens, statementIndex)
	if err != nil {
		return err
	}
	dishIdx, err := requireDishIndex(tokens, statementIndex)
	if err != nil {
		return err
	}
	bowl := state.bowls.Get(bowlIdx)
	if bowl.Len() == 0 {
		return newFault(StateError, statementIndex, "cannot Pour from empty mixing bowl %d", bowlIdx)
	}
	state.dishes.Get(dishIdx).AppendFrom(bowl)
	return nil
}

func (e *Engine) opSetAside(state *execState, tokens []string, statementIndex int) error {
	if n := len(state.loopStack); n > 0 {
		state.loopStack[n-1].ForceExit = true
	}
	return nil
}

func (e *Engine) opServeWith(state *execState, tokens []string, statementIndex int) error {
	title := extractIngredientName(tokens, 2, "")
	if title == "" {
		return newFault(StructuralError, statementIndex, "Serve with names no recipe")
	}
	targetPC, ok := e.program.Index[strings.ToLower(title)]
	if !ok {
		return newFault(StructuralError, statementIndex, "no recipe titled %q", title)
	}
	return e.serveWith(state, targetPC, statementIndex)
}

func (e *Engine) serveWith(callerState *execState, titlePC, statementIndex int) error {
	if e.depth+1 > e.opts.MaxSousChefDepth {
		return newFault(StructuralError, statementIndex, "sous-chef recursion exceeded depth %d", e.opts.MaxSousChefDepth)
	}

	subRecipe, err := parseRecipe(e.program.Statements, titlePC)
	if err != nil {
		return err
	}

	subState := &execState{
		ingredients: subRecipe.Ingredients,
		bowls:       callerState.bowls.Clone(),
		dishes:      callerState.dishes.Clone(),
		pc:          subRecipe.MethodStart,
	}

	e.depth++
	err = e.runRecipe(subRecipe, subState)
	e.depth--
	if err != nil {
		return err
	}

	callerState.bowls.Get(1).AppendFrom(subState.bowls.Get(1))
	return nil
}

func (e *Engine) opRefrigerate(state *execState, tokens []string, statementIndex int) error {
	if forIdx := indexOf(tokens, "for"); forIdx >= 0 && forIdx+1 < len(tokens) {
		n, err := parseUint(tokens[forIdx+1])
		if err != nil {
			return newFault(ReferenceError, statementIndex, "malformed Refrigerate hour count %q", tokens[forIdx+1])
		}
		if err := e.prepareDishes(state, n); err != nil {
			return err
		}
	}
	state.exit = true
	return nil
}

// pushLoopFrame implements the arbitrary-verb loop header: scan forward
// for the matching " until " statement and push a LoopFrame, per
// spec.md section 4.4.
func (e *Engine) pushLoopFrame(state *execState, tokens []string, statementIndex int) error {
	guardName := extractIngredientName(tokens, 1, "")
	if guardName == "" {
		return newFault(StructuralError, statementIndex, "loop header %q names no ingredient", strings.Join(tokens, " "))
	}

	endPC := -1
	for i := state.pc + 1; i < state.methodEnd; i++ {
		if strings.Contains(" "+e.program.Statements[i]+" ", " until ") {
			endPC = i
			break
		}
	}
	if endPC < 0 {
		return newFault(StructuralError, statementIndex, "loop header %q has no matching \"until\"", strings.Join(tokens, " "))
	}

	endTokens := strings.Fields(e.program.Statements[endPC])
	decrementName := extractIngredientName(endTokens, 1, "until")

	state.loopStack = append(state.loopStack, &LoopFrame{
		StartPC:       state.pc,
		EndPC:         endPC,
		GuardName:     guardName,
		DecrementName: decrementName,
	})
	return nil
}

// prepareDishes drains the first n baking dishes (1-based indices 1..n)
// top-to-bottom, rendering dry cells as decimal digits and liquid cells
// as their Unicode code point, per spec.md section 4.4.
func (e *Engine) prepareDishes(state *execState, n int) error {
	for i := 0; i < n; i++ {
		idx := i + 1
		if !state.dishes.Exists(idx) {
			return newFault(StateError, state.pc+1,
				"Serves %d requires %d baking dishes, only %d exist", n, n, state.dishes.Count())
		}
		dish := state.dishes.Get(idx)
		var sb strings.Builder
		for {
			cell, ok := dish.Pop()
			if !ok {
				break
			}
			renderCell(&sb, cell)
		}
		state.diners = append(state.diners, sb.String())
	}
	return nil
}
