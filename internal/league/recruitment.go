package league

// RecruitmentPost is a team's call for a player in a given position.
type RecruitmentPost struct {
	ID             string
	TeamID         string
	TeamName       string
	PositionNeeded Position
	Description    string

	// Date is a display string and is not parsed.
	Date string
}

// NormalizeRecruitmentPost converts a raw recruitment document into a
// RecruitmentPost. The position must be a member of the Position set;
// anything else becomes Médio.
func NormalizeRecruitmentPost(id string, raw map[string]any) RecruitmentPost {
	return RecruitmentPost{
		ID:             id,
		TeamID:         stringOr(raw, "teamId", "unknown"),
		TeamName:       stringOr(raw, "teamName", "Equipa"),
		PositionNeeded: CoercePosition(raw["positionNeeded"]),
		Description:    stringOr(raw, "description", ""),
		Date:           stringOr(raw, "date", ""),
	}
}
