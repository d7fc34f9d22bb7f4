package league

import (
	"reflect"
	"testing"
)

func TestNormalizeRecruitmentPost(t *testing.T) {
	tests := []struct {
		name string
		id   string
		raw  map[string]any
		want RecruitmentPost
	}{
		{
			name: "empty record gets all defaults",
			id:   "p1",
			raw:  map[string]any{},
			want: RecruitmentPost{
				ID:             "p1",
				TeamID:         "unknown",
				TeamName:       "Equipa",
				PositionNeeded: PositionMidfielder,
			},
		},
		{
			name: "valid position preserved",
			id:   "p2",
			raw: map[string]any{
				"teamId":         "t-07",
				"teamName":       "Estrelas da Maianga",
				"positionNeeded": "Guarda-Redes",
				"description":    "Precisamos de um guarda-redes para sábado",
				"date":           "2025-08-02",
			},
			want: RecruitmentPost{
				ID:             "p2",
				TeamID:         "t-07",
				TeamName:       "Estrelas da Maianga",
				PositionNeeded: PositionGoalkeeper,
				Description:    "Precisamos de um guarda-redes para sábado",
				Date:           "2025-08-02",
			},
		},
		{
			name: "arbitrary position coerced to Médio",
			id:   "p3",
			raw:  map[string]any{"positionNeeded": "Líbero"},
			want: RecruitmentPost{
				ID:             "p3",
				TeamID:         "unknown",
				TeamName:       "Equipa",
				PositionNeeded: PositionMidfielder,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecruitmentPost(tt.id, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeRecruitmentPost() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeRecruitmentPostPositionClosedSet(t *testing.T) {
	junk := []any{nil, "", "MID", "médio", "Goleiro", int64(4), false}
	valid := Positions()
	for _, v := range junk {
		got := NormalizeRecruitmentPost("x", map[string]any{"positionNeeded": v}).PositionNeeded
		found := false
		for _, p := range valid {
			if got == p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("position %q escaped the closed set for raw %v", got, v)
		}
	}
}
