package domain

import (
	"github.com/google/uuid"

	"lifeboard-service/internal/period"
)

// WindowRollup reduces one window of already-loaded sessions and sets.
// Sets are expected in chronological order so PR detection sees earlier
// lifts first. Pure; an empty window yields all zeros.
func WindowRollup(w period.Window, sessions []Session, sets []Set) MonthlyStats {
	inWindow := make(map[uuid.UUID]bool, len(sessions))
	var stats MonthlyStats

	for _, s := range sessions {
		if !s.Completed() || !w.Contains(s.StartedAt) {
			continue
		}
		inWindow[s.ID] = true
		stats.SessionCount++
	}

	maxLoad := make(map[string]float64)
	for _, set := range sets {
		if !inWindow[set.SessionID] {
			continue
		}
		stats.VolumeKg += set.Volume()
		if set.LoadKg > maxLoad[set.Exercise] {
			maxLoad[set.Exercise] = set.LoadKg
			stats.PRCount++
		}
	}

	return stats
}
