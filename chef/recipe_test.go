package chef

import "testing"

func TestDeclareIngredientUnits(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantVal  int64
		wantType CellType
	}{
		{"3 heaped teaspoons sugar", "sugar", 3, Dry},
		{"100 g butter", "butter", 100, Dry},
		{"1 pinch salt", "salt", 1, Dry},
		{"500 ml milk", "milk", 500, Liquid},
		{"2 dashes vanilla", "vanilla", 2, Liquid},
		{"2 cups flour", "flour", 2, Unspecified},
		{"42 eggs", "eggs", 42, Unspecified},
	}

	for _, tc := range tests {
		tbl := NewIngredientTable()
		if err := declareIngredient(tbl, tc.line, 0); err != nil {
			t.Errorf("declareIngredient(%q) returned error: %v", tc.line, err)
			continue
		}
		ing, ok := tbl.Get(tc.wantName)
		if !ok {
			t.Errorf("declareIngredient(%q): ingredient %q not declared", tc.line, tc.wantName)
			continue
		}
		if ing.Value != tc.wantVal || ing.Type != tc.wantType {
			t.Errorf("declareIngredient(%q) = {%d %v}; want {%d %v}", tc.line, ing.Value, ing.Type, tc.wantVal, tc.wantType)
		}
	}
}

func TestDeclareIngredientBareName(t *testing.T) {
	tbl := NewIngredientTable()
	if err := declareIngredient(tbl, "salt", 0); err != nil {
		t.Fatalf("declareIngredient(%q) returned error: %v", "salt", err)
	}
	ing, ok := tbl.Get("salt")
	if !ok {
		t.Fatal("bare ingredient name not declared")
	}
	if ing.Defined {
		t.Error("bare ingredient name declared as Defined; want undefined until assigned")
	}
}

func TestParseRecipeHelloWorld(t *testing.T) {
	source := "Hello World Cake\n\nIngredients.\n72 butter\n101 eggs\n\nMethod.\nPut butter into mixing bowl.\nPut eggs into mixing bowl.\n\nServes 1."
	statements := normalize(source)
	r, err := parseRecipe(statements, 0)
	if err != nil {
		t.Fatalf("parseRecipe returned error: %v", err)
	}
	if r.Title != "Hello World Cake" {
		t.Errorf("Title = %q; want %q", r.Title, "Hello World Cake")
	}
	if r.ServesCount != 1 {
		t.Errorf("ServesCount = %d; want 1", r.ServesCount)
	}
	if butter, ok := r.Ingredients.Get("butter"); !ok || butter.Value != 72 {
		t.Errorf("ingredient %q not parsed correctly: %+v, ok=%v", "butter", butter, ok)
	}
}

func TestParseRecipeMissingServesIsParseError(t *testing.T) {
	source := "Cake\n\nIngredients.\n1 egg\n\nMethod.\nPut egg into mixing bowl."
	statements := normalize(source)
	_, err := parseRecipe(statements, 0)
	if err == nil {
		t.Fatal("expected a parse error for a recipe missing its Serves line")
	}
	fault, ok := err.(*Fault)
	if !ok {
		t.Fatalf("error is %T; want *Fault", err)
	}
	if fault.Kind != ParseError {
		t.Errorf("fault.Kind = %v; want ParseError", fault.Kind)
	}
}

func TestParseProgramIndexesAuxiliaryRecipes(t *testing.T) {
	source := "Main Recipe\n\nIngredients.\n1 egg\n\nMethod.\nPut egg into mixing bowl.\n\nServes 1.\n\nCaramel Sauce.\n\nIngredients.\n1 sugar\n\nMethod.\nPut sugar into mixing bowl.\n\nServes 1."
	p, err := parseProgram(source, 0)
	if err != nil {
		t.Fatalf("parseProgram returned error: %v", err)
	}
	if _, ok := p.Index["main recipe"]; !ok {
		t.Error("program index is missing the title recipe")
	}
	if _, ok := p.Index["caramel sauce"]; !ok {
		t.Error("program index is missing the auxiliary recipe")
	}
}

func TestParseProgramStatementCap(t *testing.T) {
	source := "Title\n\nIngredients.\n1 egg\n\nMethod.\nPut egg into mixing bowl.\n\nServes 1."
	_, err := parseProgram(source, 1)
	if err == nil {
		t.Fatal("expected a parse error when statement count exceeds the cap")
	}
	fault, ok := err.(*Fault)
	if !ok || fault.Kind != ParseError {
		t.Errorf("error = %v; want a ParseError *Fault", err)
	}
}
