package league

// UserProfile is a registered player. The ID is assigned by the identity
// provider or the datastore, never generated here.
type UserProfile struct {
	ID    string
	Name  string
	Email string

	// Avatar is an optional URL. Empty means the app falls back to a
	// generated placeholder (see DefaultAvatarURL).
	Avatar string

	Modality     Modality
	Position     Position
	Province     string
	Municipality string

	// TeamID is empty for free agents.
	TeamID string
}

// Complete reports whether onboarding produced a usable profile. The only
// hard requirement is a non-empty name.
func (u UserProfile) Complete() bool {
	return u.Name != ""
}

// FreeAgent reports whether the player has no team.
func (u UserProfile) FreeAgent() bool {
	return u.TeamID == ""
}

// NormalizeUserProfile converts a raw user document into a UserProfile.
// Scalar fields default to empty strings; modality and position are coerced
// onto their closed sets.
func NormalizeUserProfile(id string, raw map[string]any) UserProfile {
	return UserProfile{
		ID:           id,
		Name:         stringOr(raw, "name", ""),
		Email:        stringOr(raw, "email", ""),
		Avatar:       stringOr(raw, "avatar", ""),
		Modality:     CoerceModality(raw["modality"]),
		Position:     CoercePosition(raw["position"]),
		Province:     stringOr(raw, "province", ""),
		Municipality: stringOr(raw, "municipality", ""),
		TeamID:       stringOr(raw, "teamId", ""),
	}
}
