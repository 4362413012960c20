package chef

import "testing"

func TestStripOrdinalSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1st", "1"},
		{"2nd", "2"},
		{"3rd", "3"},
		{"4th", "4"},
		{"21ST", "21"},
		{"2st", "2"}, // deliberately permissive, per spec.md section 9
		{"7", "7"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := stripOrdinalSuffix(tc.in); got != tc.want {
			t.Errorf("stripOrdinalSuffix(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseOrdinal(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOk bool
	}{
		{"1st", 1, true},
		{"2nd", 2, true},
		{"3", 3, true},
		{"-1", 0, false},
		{"banana", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseOrdinal(tc.in)
		if got != tc.want || ok != tc.wantOk {
			t.Errorf("parseOrdinal(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.wantOk)
		}
	}
}
