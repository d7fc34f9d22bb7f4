package league

// TeamRecord is a team's aggregate results. All counters are non-negative
// and start at zero when the team is created.
type TeamRecord struct {
	Wins         int
	Losses       int
	Draws        int
	GoalsFor     int
	GoalsAgainst int
}

// Played is the total number of matches counted in the record.
func (r TeamRecord) Played() int {
	return r.Wins + r.Losses + r.Draws
}

// Team is a registered team. Members holds UserProfile IDs and includes the
// captain.
type Team struct {
	ID        string
	Name      string
	Locality  string
	CaptainID string
	Members   []string
	Record    TeamRecord
}

// NormalizeTeam converts a raw team document into a Team. Counters are
// clamped to zero when absent or negative.
func NormalizeTeam(id string, raw map[string]any) Team {
	members := make([]string, 0)
	if ms, ok := raw["members"].([]any); ok {
		for _, m := range ms {
			if s, ok := m.(string); ok && s != "" {
				members = append(members, s)
			}
		}
	}
	return Team{
		ID:        id,
		Name:      stringOr(raw, "name", ""),
		Locality:  stringOr(raw, "locality", ""),
		CaptainID: stringOr(raw, "captainId", ""),
		Members:   members,
		Record: TeamRecord{
			Wins:         intOr(raw, "wins", 0),
			Losses:       intOr(raw, "losses", 0),
			Draws:        intOr(raw, "draws", 0),
			GoalsFor:     intOr(raw, "goalsFor", 0),
			GoalsAgainst: intOr(raw, "goalsAgainst", 0),
		},
	}
}
