// Package checks resolves skill checks for the Iron & Copper ruleset.
//
// An instantaneous check rolls a single d20 (with optional advantage or
// disadvantage) against a threshold and classifies the result into one of
// five outcomes. An extended check accumulates plain d20 rolls until a
// threshold is reached, modeling time spent on a task, optionally bounded
// by a roll budget that models an in-fiction time limit.
package checks

import (
	"github.com/W4RH4WK/ironcopper/dice"
	icerr "github.com/W4RH4WK/ironcopper/errors"
)

const (
	criticalFailFace    = 1
	criticalSuccessFace = 20
)

// Config holds the dependencies for a resolver
type Config struct {
	// Roller supplies the d20 rolls. Required.
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return icerr.InvalidArgument("config is required")
	}
	if c.Roller == nil {
		return icerr.InvalidArgument("roller is required")
	}
	return nil
}

// Resolver resolves skill checks against a dice roller
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a resolver with the provided dependencies
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Resolver{
		roller: cfg.Roller,
	}, nil
}

// Check rolls a d20 with the given net advantage and classifies it
// against the threshold.
//
// Naturals take precedence: a raw reduced face of 1 is a CriticalFail and
// a 20 is a CriticalSuccess regardless of the threshold, even when the
// face would otherwise tie or beat it. Below the naturals, the roll
// classifies as Fail below the threshold, Success above it, and NearFail
// on an exact tie.
func (r *Resolver) Check(threshold, advantage int) (Outcome, error) {
	result, err := r.roller.RollD20(advantage)
	if err != nil {
		return OutcomeFail, icerr.Wrap(err, "check roll failed")
	}

	return classify(result.Value, threshold), nil
}

func classify(roll, threshold int) Outcome {
	switch {
	case roll == criticalFailFace:
		return OutcomeCriticalFail
	case roll == criticalSuccessFace:
		return OutcomeCriticalSuccess
	case roll < threshold:
		return OutcomeFail
	case roll > threshold:
		return OutcomeSuccess
	default:
		return OutcomeNearFail
	}
}

// ExtendedCheck accumulates plain d20 rolls until the threshold is
// reached, returning the outcome and the number of rolls spent. Each roll
// corresponds to a fixed in-game time period spent on the task.
//
// maxRolls bounds the number of rolls; zero means unlimited. The budget
// is checked before each draw, so the returned count never exceeds it;
// exhausting it yields (Fail, maxRolls). Naturals have no special effect
// here, and advantage does not apply: any such bias belongs to the time
// cost per roll, not to the rolls themselves.
func (r *Resolver) ExtendedCheck(threshold, maxRolls int) (Outcome, int, error) {
	if threshold <= 0 {
		return OutcomeFail, 0, icerr.InvalidArgumentf("threshold must be positive, got %d", threshold).
			WithMeta("threshold", threshold)
	}
	if maxRolls < 0 {
		return OutcomeFail, 0, icerr.InvalidArgumentf("max rolls must not be negative, got %d", maxRolls).
			WithMeta("max_rolls", maxRolls)
	}

	accumulator := 0
	rollCount := 0
	for accumulator < threshold {
		if maxRolls > 0 && rollCount >= maxRolls {
			return OutcomeFail, maxRolls, nil
		}

		result, err := r.roller.RollD20(0)
		if err != nil {
			return OutcomeFail, rollCount, icerr.Wrap(err, "extended check roll failed")
		}

		accumulator += result.Value
		rollCount++
	}

	return OutcomeSuccess, rollCount, nil
}
