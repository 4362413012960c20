package chef

import "testing"

func TestExtractIngredientName(t *testing.T) {
	tests := []struct {
		tokens     []string
		start      int
		terminator string
		want       string
	}{
		{[]string{"Put", "the", "butter", "into", "mixing", "bowl"}, 1, "into", "butter"},
		{[]string{"Fold", "sugar", "into", "mixing", "bowl"}, 1, "into", "sugar"},
		{[]string{"Add", "the", "dry", "ingredients", "to", "mixing", "bowl"}, 1, "to", "dry ingredients"},
		{[]string{"Serve", "with", "Caramel", "Sauce"}, 2, "", "Caramel Sauce"},
		{[]string{"Put"}, 1, "into", ""},
	}
	for _, tc := range tests {
		got := extractIngredientName(tc.tokens, tc.start, tc.terminator)
		if got != tc.want {
			t.Errorf("extractIngredientName(%v, %d, %q) = %q; want %q", tc.tokens, tc.start, tc.terminator, got, tc.want)
		}
	}
}

func TestExtractBowlIndex(t *testing.T) {
	tests := []struct {
		tokens  []string
		want    int
		wantOk  bool
	}{
		{[]string{"Put", "butter", "into", "the", "2nd", "mixing", "bowl"}, 2, true},
		{[]string{"Put", "butter", "into", "the", "mixing", "bowl"}, 1, true},
		{[]string{"Put", "butter"}, 0, false},
	}
	for _, tc := range tests {
		got, ok := extractBowlIndex(tc.tokens)
		if got != tc.want || ok != tc.wantOk {
			t.Errorf("extractBowlIndex(%v) = %d, %v; want %d, %v", tc.tokens, got, ok, tc.want, tc.wantOk)
		}
	}
}
