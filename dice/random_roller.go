package dice

import (
	"io"

	icerr "github.com/W4RH4WK/ironcopper/errors"
	"github.com/W4RH4WK/ironcopper/internal/uuid"
)

// Config holds the dependencies for a roller
type Config struct {
	// Source supplies the random draws. Required.
	Source *Source

	// IDGenerator stamps roll results. Defaults to UUIDs.
	IDGenerator uuid.Generator

	// TraceWriter receives a human-readable line per roll when set.
	// Tracing is presentation only and never affects returned values.
	TraceWriter io.Writer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return icerr.InvalidArgument("config is required")
	}
	if c.Source == nil {
		return icerr.InvalidArgument("source is required")
	}
	return nil
}

type randomRoller struct {
	source *Source
	idGen  uuid.Generator
	trace  io.Writer
}

// NewRoller creates a roller drawing from the given source
func NewRoller(cfg *Config) (Roller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = uuid.NewGoogleUUIDGenerator()
	}

	return &randomRoller{
		source: cfg.Source,
		idGen:  idGen,
		trace:  cfg.TraceWriter,
	}, nil
}

// RollD20 implements Roller.RollD20
func (r *randomRoller) RollD20(advantage int) (*D20Result, error) {
	count := abs(advantage) + 1

	rolls := make([]int, count)
	for i := range rolls {
		face, err := r.source.DrawRange(d20Min, d20Max)
		if err != nil {
			return nil, icerr.Wrap(err, "d20 draw failed")
		}
		rolls[i] = face
	}

	value := rolls[0]
	for _, face := range rolls[1:] {
		if advantage > 0 && face > value {
			value = face
		}
		if advantage < 0 && face < value {
			value = face
		}
	}

	result := &D20Result{
		ID:        r.idGen.New(),
		Advantage: advantage,
		Rolls:     rolls,
		Value:     value,
	}

	if r.trace != nil {
		traceD20(r.trace, result)
	}

	return result, nil
}

// RollD6 implements Roller.RollD6
func (r *randomRoller) RollD6(count int, critical bool) (*D6Result, error) {
	if count <= 0 {
		return nil, icerr.InvalidArgumentf("dice count must be positive, got %d", count).
			WithMeta("count", count)
	}

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		face, err := r.source.DrawRange(d6Min, d6Max)
		if err != nil {
			return nil, icerr.Wrap(err, "d6 draw failed")
		}
		rolls[i] = face
		total += face
	}

	if critical {
		total += d6Max * count
	}

	result := &D6Result{
		ID:       r.idGen.New(),
		Count:    count,
		Critical: critical,
		Rolls:    rolls,
		Total:    total,
	}

	if r.trace != nil {
		traceD6(r.trace, result)
	}

	return result, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
