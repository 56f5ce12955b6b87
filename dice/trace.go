package dice

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Trace formats are part of the observable contract for play-by-play
// collaborators:
//
//	D20: 5
//	D20-: [19, 3] → 3
//	D20+: [9, 4, 16] → 16
//	1D6: 4
//	3D6+: [1, 3, 1] → 23

func traceD20(w io.Writer, result *D20Result) {
	if result.Advantage == 0 {
		fmt.Fprintf(w, "%s: %d\n", d20Label(result.Advantage), result.Value)
		return
	}
	fmt.Fprintf(w, "%s: %s → %d\n", d20Label(result.Advantage), formatRolls(result.Rolls), result.Value)
}

func traceD6(w io.Writer, result *D6Result) {
	if result.Count == 1 {
		fmt.Fprintf(w, "%s: %d\n", d6Label(result.Count, result.Critical), result.Total)
		return
	}
	fmt.Fprintf(w, "%s: %s → %d\n", d6Label(result.Count, result.Critical), formatRolls(result.Rolls), result.Total)
}

func d20Label(advantage int) string {
	label := "D20"
	if advantage > 0 {
		label += "+"
	} else if advantage < 0 {
		label += "-"
	}
	return label
}

func d6Label(count int, critical bool) string {
	label := fmt.Sprintf("%dD6", count)
	if critical {
		label += "+"
	}
	return label
}

func formatRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, roll := range rolls {
		parts[i] = strconv.Itoa(roll)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
