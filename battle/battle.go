package battle

import (
	"errors"
	"fmt"
	"sync"

	"mealmax/kitchen"
	"mealmax/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCombatantsFull      = errors.New("combatant list is full, cannot add more meals")
	ErrDuplicateCombatant  = errors.New("meal already staged for battle")
	ErrNotEnoughCombatants = errors.New("two combatants must be prepped for a battle")
)

// ScoreFunc computes a meal's battle score. The formula is product
// territory, so the engine takes it as a parameter instead of baking
// it in.
type ScoreFunc func(models.Meal) float64

// DefaultScore favors expensive meals with long cuisine names and
// penalizes easy ones: price * len(cuisine) - difficulty modifier,
// with HIGH=1, MED=2, LOW=3.
func DefaultScore(m models.Meal) float64 {
	modifier := 3.0
	switch m.Difficulty {
	case models.DifficultyHigh:
		modifier = 1.0
	case models.DifficultyMed:
		modifier = 2.0
	}
	return m.Price*float64(len(m.Cuisine)) - modifier
}

// Result names the outcome of one battle.
type Result struct {
	Winner      models.Meal
	Loser       models.Meal
	WinnerScore float64
	LoserScore  float64
}

// Model stages up to two combatants and runs battles between them.
// The staging slot is transient in-process state; a mutex serializes
// the prep/battle cycle so concurrent requests cannot interleave.
type Model struct {
	mu         sync.Mutex
	combatants []models.Meal
	score      ScoreFunc
	logger     *zap.Logger
}

// NewModel returns an empty battle model. A nil score falls back to
// DefaultScore.
func NewModel(logger *zap.Logger, score ScoreFunc) *Model {
	if score == nil {
		score = DefaultScore
	}
	return &Model{score: score, logger: logger}
}

// PrepCombatant stages a meal for the next battle. At most two meals
// may be staged, and the same meal cannot be staged twice.
func (m *Model) PrepCombatant(meal models.Meal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.combatants) >= 2 {
		return ErrCombatantsFull
	}
	for _, c := range m.combatants {
		if c.ID == meal.ID {
			return fmt.Errorf("%w: id %d", ErrDuplicateCombatant, meal.ID)
		}
	}
	m.combatants = append(m.combatants, meal)
	m.logger.Info("combatant prepared",
		zap.Uint("id", meal.ID),
		zap.String("meal", meal.Name),
		zap.Int("staged", len(m.combatants)),
	)
	return nil
}

// ClearCombatants empties the staging slot unconditionally.
func (m *Model) ClearCombatants() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.combatants = nil
	m.logger.Info("combatants cleared")
}

// Combatants returns a copy of the currently staged meals.
func (m *Model) Combatants() []models.Meal {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Meal, len(m.combatants))
	copy(out, m.combatants)
	return out
}

// Battle scores both staged combatants and records the outcome: the
// winner gains a win, the loser is removed from the store, and the
// staging slot is cleared. The higher score wins; on a tie the meal
// created first wins, so every battle has exactly one winner.
func (m *Model) Battle(db *gorm.DB) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.combatants) < 2 {
		return nil, ErrNotEnoughCombatants
	}

	first, second := m.combatants[0], m.combatants[1]
	scoreFirst := m.score(first)
	scoreSecond := m.score(second)

	winner, loser := first, second
	winnerScore, loserScore := scoreFirst, scoreSecond
	if scoreSecond > scoreFirst || (scoreSecond == scoreFirst && second.ID < first.ID) {
		winner, loser = second, first
		winnerScore, loserScore = scoreSecond, scoreFirst
	}

	// All three writes commit together or not at all: a staged meal can
	// have been deleted out from under the battle, and a partial result
	// would leave the winner credited for a battle that never finished.
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := kitchen.UpdateMealStats(tx, winner.ID, kitchen.ResultWin); err != nil {
			return err
		}
		if err := kitchen.UpdateMealStats(tx, loser.ID, kitchen.ResultLoss); err != nil {
			return err
		}
		return kitchen.DeleteMeal(tx, m.logger, loser.ID)
	})
	if err != nil {
		m.logger.Error("battle aborted, no stats recorded", zap.Error(err))
		return nil, err
	}

	m.combatants = nil
	m.logger.Info("battle complete",
		zap.String("winner", winner.Name),
		zap.Float64("winner_score", winnerScore),
		zap.String("loser", loser.Name),
		zap.Float64("loser_score", loserScore),
	)
	return &Result{
		Winner:      winner,
		Loser:       loser,
		WinnerScore: winnerScore,
		LoserScore:  loserScore,
	}, nil
}
