package firestore

import (
	"testing"
	"time"

	"github.com/angoleague/algtool/internal/auth"
	"github.com/angoleague/algtool/internal/league"
)

func TestNewUserDocumentEmailFallback(t *testing.T) {
	ident := &auth.Identity{UID: "U1", Email: "u1@x.com"}
	tests := []struct {
		name      string
		profile   league.UserProfile
		ident     *auth.Identity
		wantEmail string
		wantID    string
	}{
		{
			name:      "explicit email wins over identity",
			profile:   league.UserProfile{Name: "Ana", Email: "a@x.com"},
			ident:     ident,
			wantEmail: "a@x.com",
			wantID:    "U1",
		},
		{
			name:      "identity email fills the gap",
			profile:   league.UserProfile{Name: "Ana"},
			ident:     ident,
			wantEmail: "u1@x.com",
			wantID:    "U1",
		},
		{
			name:      "no identity leaves email empty and ID unset",
			profile:   league.UserProfile{Name: "Ana"},
			ident:     nil,
			wantEmail: "",
			wantID:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewUserDocument(tt.profile, tt.ident)
			if doc.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", doc.Email, tt.wantEmail)
			}
			if doc.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", doc.ID, tt.wantID)
			}
		})
	}
}

func TestNewUserDocumentStampsCreatedAt(t *testing.T) {
	doc := NewUserDocument(league.UserProfile{Name: "Ana"}, nil)
	stamp, err := time.Parse(time.RFC3339, doc.CreatedAt)
	if err != nil {
		t.Fatalf("CreatedAt %q is not RFC 3339: %v", doc.CreatedAt, err)
	}
	if d := time.Since(stamp); d < 0 || d > time.Minute {
		t.Errorf("CreatedAt %q is not capture time", doc.CreatedAt)
	}
}

func TestNewUserDocumentCoercesEnums(t *testing.T) {
	doc := NewUserDocument(league.UserProfile{Name: "Ana", Modality: "Praia", Position: "Líbero"}, nil)
	if doc.Modality != string(league.ModalityFutsal) {
		t.Errorf("Modality = %q, want default", doc.Modality)
	}
	if doc.Position != string(league.PositionMidfielder) {
		t.Errorf("Position = %q, want default", doc.Position)
	}
}

func TestNewTeamDocumentIncludesCaptain(t *testing.T) {
	doc := NewTeamDocument(league.Team{Name: "Estrelas", CaptainID: "u9", Members: []string{"u10"}})
	found := false
	for _, m := range doc.Members {
		if m == "u9" {
			found = true
		}
	}
	if !found {
		t.Errorf("captain missing from members: %v", doc.Members)
	}

	doc = NewTeamDocument(league.Team{Name: "Estrelas", CaptainID: "u9", Members: []string{"u9", "u10"}})
	if len(doc.Members) != 2 {
		t.Errorf("captain duplicated in members: %v", doc.Members)
	}
}

func TestNewMatchDocumentRoundTrips(t *testing.T) {
	score := 2
	m := league.Match{
		ID:       "m1",
		Type:     league.MatchOfficial,
		TeamA:    "t-01",
		TeamB:    "t-02",
		Date:     "2025-07-12",
		Location: "Cazenga",
		Status:   league.MatchFinished,
		ScoreA:   &score,
		ScoreB:   &score,
	}
	doc := NewMatchDocument(m)
	if doc.Type != "Oficial" || doc.Status != "FINISHED" {
		t.Errorf("enum labels not preserved: %+v", doc)
	}
	if doc.ScoreA == nil || *doc.ScoreA != 2 {
		t.Errorf("score not preserved: %+v", doc)
	}
}
