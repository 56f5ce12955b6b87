// Package attributes models a character's inherent traits, e.g. physical
// strength or social grace. An attribute holds a score on the 1-20 scale
// (8 is the human average) and biases checks by shifting the effective
// threshold with its modifier.
package attributes

//go:generate mockgen -destination=mock/mock_checker.go -package=mockattributes -source=attribute.go

import (
	"fmt"
	"io"

	"github.com/W4RH4WK/ironcopper/checks"
	icerr "github.com/W4RH4WK/ironcopper/errors"
)

// Checker resolves checks on behalf of an attribute. *checks.Resolver
// satisfies it.
type Checker interface {
	Check(threshold, advantage int) (checks.Outcome, error)
	ExtendedCheck(threshold, maxRolls int) (checks.Outcome, int, error)
}

// Kind identifies one of the six attributes. Kinds differ by label only;
// behavior is identical across all of them.
type Kind string

const (
	// KindStrength is the main melee attribute: the raw physical power
	// of a character, lifting and throwing. Endurance is not strength.
	KindStrength Kind = "Str"

	// KindDexterity covers fine motor skills and agility, the main
	// firearms attribute.
	KindDexterity Kind = "Dex"

	// KindConstitution governs health and resistances.
	KindConstitution Kind = "Con"

	// KindIntelligence is the main hacking attribute, used whenever a
	// character interacts directly with technology.
	KindIntelligence Kind = "Int"

	// KindWisdom is the main defense attribute, a character's
	// situational awareness.
	KindWisdom Kind = "Wis"

	// KindCharisma covers looks and everything social.
	KindCharisma Kind = "Cha"
)

// Kinds lists all six attribute kinds.
var Kinds = []Kind{
	KindStrength,
	KindDexterity,
	KindConstitution,
	KindIntelligence,
	KindWisdom,
	KindCharisma,
}

// Config holds the collaborators for an attribute
type Config struct {
	// Checker resolves the attribute's checks. Required.
	Checker Checker

	// TraceWriter receives a modifier line per check when set. This is
	// a separate switch from dice roll tracing.
	TraceWriter io.Writer
}

// Validate ensures all required collaborators are provided
func (c *Config) Validate() error {
	if c == nil {
		return icerr.InvalidArgument("config is required")
	}
	if c.Checker == nil {
		return icerr.InvalidArgument("checker is required")
	}
	return nil
}

// Attribute is a named trait with a numeric score. The score is set at
// creation; SetScore exists for character advancement logic, the core
// itself never mutates it.
type Attribute struct {
	kind    Kind
	score   int
	checker Checker
	trace   io.Writer
}

// New creates an attribute of the given kind
func New(kind Kind, score int, cfg *Config) (*Attribute, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !validKind(kind) {
		return nil, icerr.InvalidArgumentf("unknown attribute kind %q", kind)
	}

	return &Attribute{
		kind:    kind,
		score:   score,
		checker: cfg.Checker,
		trace:   cfg.TraceWriter,
	}, nil
}

// NewStrength creates a Strength attribute
func NewStrength(score int, cfg *Config) (*Attribute, error) {
	return New(KindStrength, score, cfg)
}

// NewDexterity creates a Dexterity attribute
func NewDexterity(score int, cfg *Config) (*Attribute, error) {
	return New(KindDexterity, score, cfg)
}

// NewConstitution creates a Constitution attribute
func NewConstitution(score int, cfg *Config) (*Attribute, error) {
	return New(KindConstitution, score, cfg)
}

// NewIntelligence creates an Intelligence attribute
func NewIntelligence(score int, cfg *Config) (*Attribute, error) {
	return New(KindIntelligence, score, cfg)
}

// NewWisdom creates a Wisdom attribute
func NewWisdom(score int, cfg *Config) (*Attribute, error) {
	return New(KindWisdom, score, cfg)
}

// NewCharisma creates a Charisma attribute
func NewCharisma(score int, cfg *Config) (*Attribute, error) {
	return New(KindCharisma, score, cfg)
}

// Kind returns the attribute kind
func (a *Attribute) Kind() Kind {
	return a.kind
}

// Score returns the current score
func (a *Attribute) Score() int {
	return a.score
}

// SetScore updates the score. Reserved for character advancement.
func (a *Attribute) SetScore(score int) {
	a.score = score
}

// Modifier derives the threshold adjustment from the score. A score of
// 10 is neutral; lower scores yield negative modifiers.
func (a *Attribute) Modifier() int {
	return a.score - 10
}

// Check resolves a skill check with the threshold shifted by the
// modifier: a higher score makes the effective threshold easier to clear.
func (a *Attribute) Check(threshold, advantage int) (checks.Outcome, error) {
	a.traceModifier()
	return a.checker.Check(threshold-a.Modifier(), advantage)
}

// ExtendedCheck resolves an extended skill check with the threshold
// shifted by the modifier.
func (a *Attribute) ExtendedCheck(threshold, maxRolls int) (checks.Outcome, int, error) {
	a.traceModifier()
	return a.checker.ExtendedCheck(threshold-a.Modifier(), maxRolls)
}

// String renders the attribute as "<label>: <score>"
func (a *Attribute) String() string {
	return fmt.Sprintf("%s: %d", a.kind, a.score)
}

func (a *Attribute) traceModifier() {
	if a.trace == nil {
		return
	}
	fmt.Fprintf(a.trace, "%s modifier: %d\n", a.kind, a.Modifier())
}

func validKind(kind Kind) bool {
	for _, known := range Kinds {
		if kind == known {
			return true
		}
	}
	return false
}
