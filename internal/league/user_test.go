package league

import (
	"reflect"
	"testing"
)

func TestNormalizeUserProfile(t *testing.T) {
	tests := []struct {
		name string
		id   string
		raw  map[string]any
		want UserProfile
	}{
		{
			name: "empty record gets all defaults",
			id:   "u1",
			raw:  map[string]any{},
			want: UserProfile{
				ID:       "u1",
				Modality: ModalityFutsal,
				Position: PositionMidfielder,
			},
		},
		{
			name: "full record passes through",
			id:   "u2",
			raw: map[string]any{
				"name":         "Ana Domingos",
				"email":        "ana@example.com",
				"avatar":       "https://example.com/a.png",
				"modality":     "Campo",
				"position":     "Avançado",
				"province":     "Luanda",
				"municipality": "Maianga",
				"teamId":       "t-01",
			},
			want: UserProfile{
				ID:           "u2",
				Name:         "Ana Domingos",
				Email:        "ana@example.com",
				Avatar:       "https://example.com/a.png",
				Modality:     ModalityCampo,
				Position:     PositionForward,
				Province:     "Luanda",
				Municipality: "Maianga",
				TeamID:       "t-01",
			},
		},
		{
			name: "stale enum labels coerced",
			id:   "u3",
			raw: map[string]any{
				"name":     "Beto",
				"modality": "Praia",
				"position": "MID",
			},
			want: UserProfile{
				ID:       "u3",
				Name:     "Beto",
				Modality: ModalityFutsal,
				Position: PositionMidfielder,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeUserProfile(tt.id, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeUserProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserProfileComplete(t *testing.T) {
	if (UserProfile{}).Complete() {
		t.Error("profile without a name must not be complete")
	}
	if !(UserProfile{Name: "Ana"}).Complete() {
		t.Error("profile with a name must be complete")
	}
}

func TestUserProfileFreeAgent(t *testing.T) {
	if !(UserProfile{Name: "Ana"}).FreeAgent() {
		t.Error("profile without a team must be a free agent")
	}
	if (UserProfile{Name: "Ana", TeamID: "t-01"}).FreeAgent() {
		t.Error("profile with a team must not be a free agent")
	}
}

func TestAvatarURL(t *testing.T) {
	withAvatar := UserProfile{ID: "u1", Avatar: "https://example.com/a.png"}
	if got := withAvatar.AvatarURL(); got != "https://example.com/a.png" {
		t.Errorf("explicit avatar not preserved: %s", got)
	}

	without := UserProfile{ID: "u1"}
	first := without.AvatarURL()
	second := without.AvatarURL()
	if first == "" || first != second {
		t.Errorf("placeholder avatar not stable: %q vs %q", first, second)
	}
	other := UserProfile{ID: "u2"}
	if other.AvatarURL() == first {
		t.Error("different profiles should get different placeholder avatars")
	}
}
