// Package dice implements the random source and the D20/D6 rollers for
// the Iron & Copper ruleset.
//
// D20 rolls resolve advantage and disadvantage (extra dice reduced by max
// or min), D6 rolls sum damage dice with an optional critical bonus. All
// draws come from an explicit, reseedable Source so sessions are
// individually reproducible.
package dice

// Die face ranges.
const (
	d20Min = 1
	d20Max = 20
	d6Min  = 1
	d6Max  = 6
)

// D20Result holds the draws and the reduced value of a d20 roll.
type D20Result struct {
	// ID identifies this roll in play-by-play output
	ID string

	// Advantage is the net signed magnitude the roll was made with
	Advantage int

	// Rolls are the individual face values, in draw order, one per die
	Rolls []int

	// Value is the reduced result: max of Rolls under advantage, min
	// under disadvantage, the sole draw otherwise
	Value int
}

// D6Result holds the draws and the total of a damage roll.
type D6Result struct {
	// ID identifies this roll in play-by-play output
	ID string

	// Count is the number of dice drawn
	Count int

	// Critical reports whether the critical bonus was applied
	Critical bool

	// Rolls are the individual face values, in draw order
	Rolls []int

	// Total is the sum of Rolls, plus 6*Count when critical
	Total int
}
