package league

import (
	"reflect"
	"testing"
)

func TestNormalizeMatch(t *testing.T) {
	s1, s2 := 3, 1
	tests := []struct {
		name string
		id   string
		raw  map[string]any
		want Match
	}{
		{
			name: "empty record gets all defaults",
			id:   "m1",
			raw:  map[string]any{},
			want: Match{
				ID:       "m1",
				Type:     MatchFriendly,
				TeamA:    "Provisória A",
				TeamB:    "Provisória B",
				Date:     "",
				Location: "",
				Status:   MatchScheduled,
			},
		},
		{
			name: "fully populated record passes through",
			id:   "m2",
			raw: map[string]any{
				"type":     "Oficial",
				"teamA":    "t-01",
				"teamB":    "Os Craques",
				"date":     "2025-07-12",
				"location": "Campo do Cazenga",
				"status":   "FINISHED",
				"scoreA":   int64(3),
				"scoreB":   int64(1),
			},
			want: Match{
				ID:       "m2",
				Type:     MatchOfficial,
				TeamA:    "t-01",
				TeamB:    "Os Craques",
				Date:     "2025-07-12",
				Location: "Campo do Cazenga",
				Status:   MatchFinished,
				ScoreA:   &s1,
				ScoreB:   &s2,
			},
		},
		{
			name: "unrecognized type and status coerced",
			id:   "m3",
			raw: map[string]any{
				"type":   "Campeonato",
				"status": "PENDING",
			},
			want: Match{
				ID:     "m3",
				Type:   MatchFriendly,
				TeamA:  "Provisória A",
				TeamB:  "Provisória B",
				Status: MatchScheduled,
			},
		},
		{
			name: "wrongly typed fields coerced",
			id:   "m4",
			raw: map[string]any{
				"type":     int64(7),
				"teamA":    true,
				"date":     nil,
				"location": []any{"x"},
				"status":   3.14,
			},
			want: Match{
				ID:     "m4",
				Type:   MatchFriendly,
				TeamA:  "Provisória A",
				TeamB:  "Provisória B",
				Status: MatchScheduled,
			},
		},
		{
			name: "scores dropped unless finished",
			id:   "m5",
			raw: map[string]any{
				"status": "SCHEDULED",
				"scoreA": int64(2),
				"scoreB": int64(2),
			},
			want: Match{
				ID:     "m5",
				Type:   MatchFriendly,
				TeamA:  "Provisória A",
				TeamB:  "Provisória B",
				Status: MatchScheduled,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMatch(tt.id, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeMatch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeMatchClosedSets(t *testing.T) {
	junk := []any{nil, "", "oficial", "amistoso", "CANCELED", "DONE", int64(1), true, map[string]any{}}
	for _, v := range junk {
		m := NormalizeMatch("x", map[string]any{"type": v, "status": v})
		switch m.Type {
		case MatchOfficial, MatchFriendly:
		default:
			t.Errorf("type %q escaped the closed set for raw %v", m.Type, v)
		}
		switch m.Status {
		case MatchScheduled, MatchFinished, MatchCancelled:
		default:
			t.Errorf("status %q escaped the closed set for raw %v", m.Status, v)
		}
	}
}

func TestNormalizeMatchIdempotent(t *testing.T) {
	first := NormalizeMatch("m9", map[string]any{"type": "Oficial", "teamA": "A", "status": "FINISHED", "scoreA": int64(1)})
	roundTrip := map[string]any{
		"type":     string(first.Type),
		"teamA":    first.TeamA,
		"teamB":    first.TeamB,
		"date":     first.Date,
		"location": first.Location,
		"status":   string(first.Status),
	}
	if first.ScoreA != nil {
		roundTrip["scoreA"] = int64(*first.ScoreA)
	}
	if first.ScoreB != nil {
		roundTrip["scoreB"] = int64(*first.ScoreB)
	}
	second := NormalizeMatch("m9", roundTrip)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent: %+v != %+v", first, second)
	}
}
