package kitchen

import (
	"sort"

	"mealmax/models"

	"gorm.io/gorm"
)

// Leaderboard sort keys. win_rate is accepted as a synonym for win_pct.
const (
	SortByWins   = "wins"
	SortByWinPct = "win_pct"
)

// LeaderboardEntry is one ranked row of the leaderboard response.
type LeaderboardEntry struct {
	ID         uint    `json:"id"`
	Meal       string  `json:"meal"`
	Cuisine    string  `json:"cuisine"`
	Price      float64 `json:"price"`
	Difficulty string  `json:"difficulty"`
	Battles    int     `json:"battles"`
	Wins       int     `json:"wins"`
	WinPct     float64 `json:"win_pct"`
}

// GetLeaderboard returns all meals ranked descending by the requested
// field. A meal with no battles has a win percentage of zero. Ties keep
// creation order (ascending ID), so the sort is total.
func GetLeaderboard(db *gorm.DB, sortBy string) ([]LeaderboardEntry, error) {
	if sortBy == "" {
		sortBy = SortByWins
	}
	switch sortBy {
	case SortByWins, SortByWinPct, "win_rate":
	default:
		return nil, validationf("invalid sort_by parameter: %s", sortBy)
	}

	var meals []models.Meal
	if err := db.Order("id asc").Find(&meals).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(meals))
	for _, m := range meals {
		winPct := 0.0
		if m.Battles > 0 {
			winPct = float64(m.Wins) / float64(m.Battles) * 100
		}
		entries = append(entries, LeaderboardEntry{
			ID:         m.ID,
			Meal:       m.Name,
			Cuisine:    m.Cuisine,
			Price:      m.Price,
			Difficulty: m.Difficulty,
			Battles:    m.Battles,
			Wins:       m.Wins,
			WinPct:     winPct,
		})
	}

	if sortBy == SortByWins {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Wins > entries[j].Wins
		})
	} else {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].WinPct > entries[j].WinPct
		})
	}
	return entries, nil
}
