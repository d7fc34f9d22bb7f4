package league

// MatchType distinguishes official league matches from friendlies.
type MatchType string

const (
	MatchOfficial MatchType = "Oficial"
	MatchFriendly MatchType = "Amistoso"
)

// MatchTypes lists every match type.
func MatchTypes() []MatchType {
	return []MatchType{MatchOfficial, MatchFriendly}
}

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchFinished  MatchStatus = "FINISHED"
	MatchCancelled MatchStatus = "CANCELLED"
)

// MatchStatuses lists every match status.
func MatchStatuses() []MatchStatus {
	return []MatchStatus{MatchScheduled, MatchFinished, MatchCancelled}
}

// Placeholder team names used when a match is created before both sides have
// committed.
const (
	PlaceholderTeamA = "Provisória A"
	PlaceholderTeamB = "Provisória B"
)

// Match is a scheduled, finished, or cancelled game between two sides.
// TeamA and TeamB are either team document IDs or free-text placeholder
// names; both are treated as opaque display strings. Date is a free-text or
// ISO string and is not parsed.
type Match struct {
	ID       string
	Type     MatchType
	TeamA    string
	TeamB    string
	Date     string
	Location string
	Status   MatchStatus

	// ScoreA and ScoreB are set only once Status is MatchFinished.
	ScoreA *int
	ScoreB *int
}

// NormalizeMatch converts a raw match document into a Match. Missing or
// unrecognized fields get defaults: friendly type, placeholder team names,
// empty date and location, scheduled status. Scores are carried only for
// finished matches.
func NormalizeMatch(id string, raw map[string]any) Match {
	m := Match{
		ID:       id,
		Type:     coerce(raw["type"], MatchTypes(), MatchFriendly),
		TeamA:    stringOr(raw, "teamA", PlaceholderTeamA),
		TeamB:    stringOr(raw, "teamB", PlaceholderTeamB),
		Date:     stringOr(raw, "date", ""),
		Location: stringOr(raw, "location", ""),
		Status:   coerce(raw["status"], MatchStatuses(), MatchScheduled),
	}
	if m.Status == MatchFinished {
		m.ScoreA = optInt(raw, "scoreA")
		m.ScoreB = optInt(raw, "scoreB")
	}
	return m
}
