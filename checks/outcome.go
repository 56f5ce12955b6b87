package checks

import "fmt"

// Outcome classifies a skill check result. The five variants form a closed
// ordered set; the integer value is the rank used for comparison, so
// outcomes order naturally with <, <=, >= and >.
type Outcome int

const (
	// OutcomeCriticalFail occurs on a natural 1. The task fails and
	// something bad happens on top of it.
	OutcomeCriticalFail Outcome = -2

	// OutcomeFail occurs when the roll falls below the threshold. The
	// task fails, nothing out of the ordinary happens.
	OutcomeFail Outcome = -1

	// OutcomeNearFail occurs when the roll exactly equals the threshold.
	// The task succeeds with a minor complication, e.g. the gun cycles
	// badly and jams before the next shot.
	OutcomeNearFail Outcome = 0

	// OutcomeSuccess occurs when the roll exceeds the threshold.
	OutcomeSuccess Outcome = 1

	// OutcomeCriticalSuccess occurs on a natural 20. The task succeeds
	// no matter the threshold, and any associated damage roll is
	// critical.
	OutcomeCriticalSuccess Outcome = 2
)

// Succeeded reports whether the task succeeded. NearFail counts as a
// success with a complication.
func (o Outcome) Succeeded() bool {
	return o >= OutcomeNearFail
}

// Critical reports whether the outcome was decided by a natural 1 or 20
// rather than the threshold comparison.
func (o Outcome) Critical() bool {
	return o == OutcomeCriticalFail || o == OutcomeCriticalSuccess
}

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeCriticalFail:
		return "CriticalFail"
	case OutcomeFail:
		return "Fail"
	case OutcomeNearFail:
		return "NearFail"
	case OutcomeSuccess:
		return "Success"
	case OutcomeCriticalSuccess:
		return "CriticalSuccess"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
