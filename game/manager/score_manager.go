package manager

import (
	"snake-classic/game/history"
	"snake-classic/game/types"
)

// ScoreManager tracks the best score for each game label (the difficulty
// for classic games, "Speedrun" otherwise).
type ScoreManager struct {
	highScores map[string]int
}

func NewScoreManager() *ScoreManager {
	return &ScoreManager{highScores: make(map[string]int)}
}

// Seed takes the high scores from previously recorded games.
func (sm *ScoreManager) Seed(entries []history.Entry) {
	for _, e := range entries {
		sm.UpdateScore(entryLabel(e), e.Score)
	}
}

func entryLabel(e history.Entry) string {
	if e.Mode == types.Speedrun.String() {
		return e.Mode
	}
	return e.Difficulty
}

// UpdateScore records score for label and reports whether it beat the
// previous best.
func (sm *ScoreManager) UpdateScore(label string, score int) bool {
	if score > sm.highScores[label] {
		sm.highScores[label] = score
		return true
	}
	return false
}

func (sm *ScoreManager) GetHighScore(label string) int {
	return sm.highScores[label]
}
