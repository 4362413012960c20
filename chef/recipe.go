package chef

import "strings"

// section is the parser's state, per the table in spec.md section 4.2.
// This is the "small tagged enum, table-driven transitions" spec.md
// section 9 asks for.
type section int

const (
	sectionDiscoveringTitle section = iota
	sectionReadingIngredients
	sectionIngredientsComplete
	sectionReadingInstructions
	sectionServing
	sectionDone
)

// Recipe is one titled Chef program: its ingredient table, the statement
// range making up its method, and its Serves line and count. The title
// index shared by every recipe of a source lives on Program, not here.
type Recipe struct {
	Title       string
	Ingredients *IngredientTable
	MethodStart int // index into Program.Statements of the first method statement
	MethodEnd   int // index one past the last method statement (exclusive)
	ServesLine  int // statement index of the "Serves N" line
	ServesCount int
}

// RecipeIndex maps a lowercase, trimmed recipe title to the statement
// index where that recipe's title line lives in Program.Statements —
// the lookup Serve-with uses to find an auxiliary recipe (spec.md
// section 3, "Recipe program").
type RecipeIndex map[string]int

// Program is the normalized statement list plus the title index, shared
// read-only by every recipe and sous-chef invocation parsed from one
// source (spec.md section 3).
type Program struct {
	Statements []string
	Index      RecipeIndex
}

// parseProgram normalizes source and builds the title index by scanning
// for every statement that begins a recipe: statement 0, and any
// statement immediately following a Serves line (the blank-then-title
// boundary between a recipe and the next auxiliary recipe).
func parseProgram(source string, maxStatements int) (*Program, error) {
	statements := normalize(source)
	if maxStatements > 0 && len(statements) > maxStatements {
		return nil, newFault(ParseError, 0,
			"recipe source exceeds maximum of %d statements", maxStatements)
	}

	p := &Program{Statements: statements, Index: RecipeIndex{}}

	i := 0
	for i < len(statements) {
		if statements[i] == "" {
			i++
			continue
		}
		title := statements[i]
		key := strings.ToLower(strings.TrimSpace(title))
		if _, exists := p.Index[key]; !exists {
			p.Index[key] = i
		}
		// Skip ahead to the statement following this recipe's Serves
		// line so the next title we find belongs to the next recipe.
		next := findServesLine(statements, i)
		if next < 0 {
			break
		}
		i = next + 1
	}

	return p, nil
}

// findServesLine scans forward from start for the first statement that
// begins a "Serves " line, returning its index, or -1 if none is found.
func findServesLine(statements []string, start int) int {
	for i := start; i < len(statements); i++ {
		if strings.HasPrefix(statements[i], "Serves ") {
			return i
		}
	}
	return -1
}

// parseRecipe runs the section state machine (spec.md section 4.2)
// starting at statements[start], producing a Recipe describing the
// title, ingredient table, and method statement range. The caller (the
// engine, for both the top-level recipe and every Serve-with target)
// supplies start; parseRecipe returns once it has consumed the Serves
// line that closes the recipe.
func parseRecipe(statements []string, start int) (*Recipe, error) {
	r := &Recipe{Ingredients: NewIngredientTable()}
	state := sectionDiscoveringTitle

	i := start
	for i < len(statements) && state != sectionDone {
		stmt := statements[i]

		switch state {
		case sectionDiscoveringTitle:
			if stmt == "" {
				i++
				continue
			}
			if stmt == "Ingredients" {
				state = sectionReadingIngredients
				i++
				continue
			}
			r.Title = stmt
			i++

		case sectionReadingIngredients:
			if stmt == "" {
				state = sectionIngredientsComplete
				i++
				continue
			}
			if err := declareIngredient(r.Ingredients, stmt, i); err != nil {
				return nil, err
			}
			i++

		case sectionIngredientsComplete:
			if stmt == "" {
				i++
				continue
			}
			if stmt == "Method" {
				state = sectionReadingInstructions
				r.MethodStart = i + 1
				i++
				continue
			}
			return nil, newFault(ParseError, i+1, "expected \"Method\" section marker, found %q", stmt)

		case sectionReadingInstructions:
			if stmt == "" {
				r.MethodEnd = i
				state = sectionServing
				i++
				continue
			}
			i++

		case sectionServing:
			if stmt == "" {
				i++
				continue
			}
			if strings.HasPrefix(stmt, "Serves ") {
				r.ServesLine = i
				n, err := parseServesCount(stmt, i)
				if err != nil {
					return nil, err
				}
				r.ServesCount = n
				state = sectionDone
				i++
				continue
			}
			return nil, newFault(ParseError, i+1, "expected \"Serves N\" section marker, found %q", stmt)
		}
	}

	if state == sectionReadingInstructions {
		// Source ended without a blank line closing the method; the
		// method runs to end of source and there is no Serves line.
		r.MethodEnd = len(statements)
		return nil, newFault(ParseError, len(statements), "recipe %q is missing a \"Serves N\" section marker", r.Title)
	}
	if state != sectionDone {
		return nil, newFault(ParseError, len(statements), "recipe %q ended before a complete Method/Serves section", r.Title)
	}

	return r, nil
}

// parseServesCount parses the N out of a "Serves N" statement (with an
// optional trailing "." already stripped by the lexer).
func parseServesCount(stmt string, statementIndex int) (int, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(stmt, "Serves "))
	n, err := parseUint(rest)
	if err != nil || n <= 0 {
		return 0, newFault(ParseError, statementIndex+1, "malformed \"Serves\" statement %q", stmt)
	}
	return n, nil
}

// declareIngredient decodes one ingredient-list line per spec.md section
// 4.2's decoding rules and inserts it into t.
func declareIngredient(t *IngredientTable, line string, statementIndex int) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return newFault(ParseError, statementIndex+1, "empty ingredient line")
	}

	if len(fields) == 1 {
		t.Declare(fields[0], 0, false, Unspecified)
		return nil
	}

	value, err := parseInt(fields[0])
	if err != nil {
		return newFault(ParseError, statementIndex+1, "malformed ingredient value %q", fields[0])
	}

	typ, start := classifyUnit(fields)
	if start > len(fields) {
		return newFault(ParseError, statementIndex+1, "malformed ingredient line %q", line)
	}
	key := strings.Join(fields[start:], " ")
	if key == "" {
		return newFault(ParseError, statementIndex+1, "ingredient line %q has no name", line)
	}

	t.Declare(key, value, true, typ)
	return nil
}

// classifyUnit inspects fields[1] (the token after the value) and
// returns the ingredient's type and the field index where its name
// begins, per the unit table in spec.md section 4.2.
func classifyUnit(fields []string) (CellType, int) {
	unit := fields[1]
	switch unit {
	case "heaped", "level":
		return Dry, 3
	case "g", "kg", "pinch", "pinches":
		return Dry, 2
	case "ml", "l", "dash", "dashes":
		return Liquid, 2
	case "cup", "cups", "teaspoon", "teaspoons", "tablespoon", "tablespoons":
		return Unspecified, 2
	default:
		return Unspecified, 1
	}
}
