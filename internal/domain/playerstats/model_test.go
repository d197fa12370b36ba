package playerstats

import (
	"testing"

	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		records []gamerecord.GameRecord
		want    Stats
	}{
		{
			name: "no records",
			want: Stats{},
		},
		{
			name: "two games",
			records: []gamerecord.GameRecord{
				{Fields: gamerecord.Fields{Hits: 2, Runs: 1}},
				{Fields: gamerecord.Fields{Hits: 4, Errors: 1}},
			},
			want: Stats{TotalGames: 2, TotalHits: 6, TotalRuns: 1, TotalErrors: 1, BattingAverage: 3},
		},
		{
			name: "rounds down to three places",
			records: []gamerecord.GameRecord{
				{Fields: gamerecord.Fields{Hits: 1}},
				{Fields: gamerecord.Fields{Hits: 0}},
				{Fields: gamerecord.Fields{Hits: 0}},
			},
			want: Stats{TotalGames: 3, TotalHits: 1, BattingAverage: 0.333},
		},
		{
			name: "rounds up to three places",
			records: []gamerecord.GameRecord{
				{Fields: gamerecord.Fields{Hits: 1}},
				{Fields: gamerecord.Fields{Hits: 1}},
				{Fields: gamerecord.Fields{Hits: 0}},
			},
			want: Stats{TotalGames: 3, TotalHits: 2, BattingAverage: 0.667},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			if got != tt.want {
				t.Fatalf("Summarize()=%+v want=%+v", got, tt.want)
			}
		})
	}
}
