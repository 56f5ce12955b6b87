package mockdice

import (
	"fmt"
	"sync"

	"github.com/W4RH4WK/ironcopper/dice"
)

// ManualMockRoller implements dice.Roller with predetermined face values,
// consumed in the order they were queued. Results carry no IDs.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll queues a single face value
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queue of face values
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all queued values
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// getNextRoll returns the next predetermined face value
func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// RollD20 implements dice.Roller.RollD20
func (m *ManualMockRoller) RollD20(advantage int) (*dice.D20Result, error) {
	count := advantage
	if count < 0 {
		count = -count
	}
	count++

	rolls := make([]int, count)
	for i := range rolls {
		face, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if face < 1 || face > 20 {
			return nil, fmt.Errorf("invalid roll %d for d20", face)
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

	return &dice.D20Result{
		Advantage: advantage,
		Rolls:     rolls,
		Value:     value,
	}, nil
}

// RollD6 implements dice.Roller.RollD6
func (m *ManualMockRoller) RollD6(count int, critical bool) (*dice.D6Result, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		face, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if face < 1 || face > 6 {
			return nil, fmt.Errorf("invalid roll %d for d6", face)
		}
		rolls[i] = face
		total += face
	}

	if critical {
		total += 6 * count
	}

	return &dice.D6Result{
		Count:    count,
		Critical: critical,
		Rolls:    rolls,
		Total:    total,
	}, nil
}
