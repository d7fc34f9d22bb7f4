package league

import (
	"reflect"
	"testing"
)

func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		name string
		id   string
		raw  map[string]any
		want Team
	}{
		{
			name: "empty record gets zeroed counters",
			id:   "t1",
			raw:  map[string]any{},
			want: Team{ID: "t1", Members: []string{}},
		},
		{
			name: "full record passes through",
			id:   "t2",
			raw: map[string]any{
				"name":         "Estrelas da Maianga",
				"locality":     "Maianga",
				"captainId":    "u9",
				"members":      []any{"u9", "u10", "u11"},
				"wins":         int64(4),
				"losses":       int64(1),
				"draws":        int64(2),
				"goalsFor":     int64(17),
				"goalsAgainst": int64(8),
			},
			want: Team{
				ID:        "t2",
				Name:      "Estrelas da Maianga",
				Locality:  "Maianga",
				CaptainID: "u9",
				Members:   []string{"u9", "u10", "u11"},
				Record:    TeamRecord{Wins: 4, Losses: 1, Draws: 2, GoalsFor: 17, GoalsAgainst: 8},
			},
		},
		{
			name: "negative counters clamped and junk members dropped",
			id:   "t3",
			raw: map[string]any{
				"wins":    int64(-3),
				"members": []any{"u1", "", int64(7)},
			},
			want: Team{ID: "t3", Members: []string{"u1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTeam(tt.id, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTeam() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTeamRecordPlayed(t *testing.T) {
	r := TeamRecord{Wins: 3, Losses: 2, Draws: 1}
	if r.Played() != 6 {
		t.Errorf("Played() = %d, want 6", r.Played())
	}
}
