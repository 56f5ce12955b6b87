// Package ironcopper implements the core mechanics of the Iron & Copper
// pen-and-paper RPG. Like any good pen-and-paper ruleset it resolves
// everything with dice; three kinds of rolls drive all mechanics:
//
//   - Skill checks determine whether an action succeeds or fails.
//   - Extended skill checks determine how long an action takes; failure
//     happens when a time limit is exceeded.
//   - Damage rolls determine how much damage an offensive action
//     inflicts.
//
// A Session ties the pieces together: one reseedable random source, a
// roller for d20 and d6 rolls, a check resolver, and the trace
// configuration for play-by-play output. Sessions are independent: give
// each table its own Session and seeded sessions replay identically.
package ironcopper

import (
	"io"
	"os"

	"github.com/W4RH4WK/ironcopper/attributes"
	"github.com/W4RH4WK/ironcopper/checks"
	"github.com/W4RH4WK/ironcopper/dice"
	icerr "github.com/W4RH4WK/ironcopper/errors"
	"github.com/W4RH4WK/ironcopper/internal/config"
)

// Config holds the settings for a table session
type Config struct {
	// Seed for the random source. Zero seeds from the wall clock; use
	// Reseed for a deterministic stream starting at zero.
	Seed int64

	// TraceRolls enables per-roll trace output
	TraceRolls bool

	// TraceModifiers enables attribute modifier trace output,
	// independently of TraceRolls
	TraceModifiers bool

	// TraceWriter receives trace output. Defaults to os.Stdout.
	TraceWriter io.Writer
}

// Session is one table's resolution engine. All operations are
// synchronous computations; the shared random source is mutex-guarded,
// but reproducibility requires callers not to interleave draws or reseed
// concurrently.
type Session struct {
	source   *dice.Source
	roller   dice.Roller
	resolver *checks.Resolver
	modTrace io.Writer
}

// NewSession creates a session from the given configuration. A nil
// config yields a wall-clock-seeded session with tracing disabled.
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	source := dice.NewRandomSource()
	if cfg.Seed != 0 {
		source = dice.NewSource(cfg.Seed)
	}

	writer := cfg.TraceWriter
	if writer == nil {
		writer = os.Stdout
	}

	var rollTrace io.Writer
	if cfg.TraceRolls {
		rollTrace = writer
	}

	roller, err := dice.NewRoller(&dice.Config{
		Source:      source,
		TraceWriter: rollTrace,
	})
	if err != nil {
		return nil, icerr.Wrap(err, "failed to create roller")
	}

	resolver, err := checks.NewResolver(&checks.Config{Roller: roller})
	if err != nil {
		return nil, icerr.Wrap(err, "failed to create resolver")
	}

	var modTrace io.Writer
	if cfg.TraceModifiers {
		modTrace = writer
	}

	return &Session{
		source:   source,
		roller:   roller,
		resolver: resolver,
		modTrace: modTrace,
	}, nil
}

// NewSessionFromEnv creates a session configured from the environment
// (IRONCOPPER_SEED, IRONCOPPER_TRACE_ROLLS, IRONCOPPER_TRACE_MODIFIERS),
// picking up a local .env file when present.
func NewSessionFromEnv() (*Session, error) {
	cfg := config.Load()
	return NewSession(&Config{
		Seed:           cfg.Seed,
		TraceRolls:     cfg.TraceRolls,
		TraceModifiers: cfg.TraceModifiers,
	})
}

// Reseed deterministically resets the session's random source so that
// subsequent rolls are reproducible.
func (s *Session) Reseed(seed int64) {
	s.source.Reseed(seed)
}

// RollD20 rolls a twenty-sided die with the given net advantage and
// returns the reduced result. See dice.Roller for the advantage
// semantics; callers combine multiple advantage and disadvantage sources
// by signed addition before the call.
func (s *Session) RollD20(advantage int) (int, error) {
	result, err := s.roller.RollD20(advantage)
	if err != nil {
		return 0, err
	}
	return result.Value, nil
}

// RollD6 rolls count six-sided dice, commonly for damage, and returns
// the total. A critical roll gains 6*count on top.
func (s *Session) RollD6(count int, critical bool) (int, error) {
	result, err := s.roller.RollD6(count, critical)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// Check resolves a skill check against the threshold.
func (s *Session) Check(threshold, advantage int) (checks.Outcome, error) {
	return s.resolver.Check(threshold, advantage)
}

// ExtendedCheck resolves an extended skill check against the threshold.
// maxRolls bounds the number of rolls; zero means unlimited.
func (s *Session) ExtendedCheck(threshold, maxRolls int) (checks.Outcome, int, error) {
	return s.resolver.ExtendedCheck(threshold, maxRolls)
}

// Attribute creates an attribute bound to this session's resolver and
// trace configuration.
func (s *Session) Attribute(kind attributes.Kind, score int) (*attributes.Attribute, error) {
	return attributes.New(kind, score, &attributes.Config{
		Checker:     s.resolver,
		TraceWriter: s.modTrace,
	})
}

// Roller exposes the session's roller for collaborators that need full
// roll results, e.g. damage handling that records individual faces.
func (s *Session) Roller() dice.Roller {
	return s.roller
}
