package playerstats

import (
	"math"

	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
)

// Stats aggregates every stored record of one player.
type Stats struct {
	TotalGames     int
	TotalHits      int
	TotalRuns      int
	TotalErrors    int
	BattingAverage float64
}

// Summarize folds records into Stats. Each record counts as one game.
func Summarize(records []gamerecord.GameRecord) Stats {
	out := Stats{TotalGames: len(records)}
	for _, item := range records {
		out.TotalHits += item.Hits
		out.TotalRuns += item.Runs
		out.TotalErrors += item.Errors
	}
	if out.TotalGames > 0 {
		out.BattingAverage = roundTo(float64(out.TotalHits)/float64(out.TotalGames), 3)
	}

	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
