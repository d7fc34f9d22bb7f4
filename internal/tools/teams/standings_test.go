package teams

import (
	"testing"

	"github.com/angoleague/algtool/internal/league"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name   string
		record league.TeamRecord
		want   int
	}{
		{"empty record", league.TeamRecord{}, 0},
		{"wins count three", league.TeamRecord{Wins: 4}, 12},
		{"draws count one", league.TeamRecord{Draws: 3}, 3},
		{"losses count nothing", league.TeamRecord{Wins: 2, Draws: 1, Losses: 5}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := points(tt.record); got != tt.want {
				t.Errorf("points(%+v) = %d, want %d", tt.record, got, tt.want)
			}
		})
	}
}
