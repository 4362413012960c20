package chef

import (
	"fmt"
	"strings"
)

// renderCell appends one drained dish cell's textual form to sb, per
// spec.md section 4.4's prepareDishes: dry (and unspecified) cells render
// as their decimal integer value, liquid cells render as the Unicode
// code point with that value.
func renderCell(sb *strings.Builder, cell Cell) {
	if cell.Type == Liquid {
		sb.WriteRune(rune(cell.Value))
		return
	}
	fmt.Fprintf(sb, "%d", cell.Value)
}
