package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides the two dice rolls the ruleset is built on.
// An interface so checks and attributes can be tested against forced rolls.
type Roller interface {
	// RollD20 draws |advantage|+1 twenty-sided dice and reduces them to a
	// single value: the highest for advantage (positive), the lowest for
	// disadvantage (negative), the sole draw for zero.
	//
	// The roller performs no cancellation logic. Multiple advantage and
	// disadvantage sources cancel by signed addition in the caller; the
	// roller only reacts to the net magnitude it receives.
	RollD20(advantage int) (*D20Result, error)

	// RollD6 draws count six-sided dice and sums them. A critical roll
	// adds 6*count, treating every die as if its maximum face came up as
	// a bonus.
	RollD6(count int, critical bool) (*D6Result, error)
}
