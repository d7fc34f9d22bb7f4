package firestore

import (
	"context"
	"fmt"
	"strings"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/league"
)

// MatchDocument is the persisted shape of a match.
type MatchDocument struct {
	Type     string `firestore:"type"`
	TeamA    string `firestore:"teamA"`
	TeamB    string `firestore:"teamB"`
	Date     string `firestore:"date"`
	Location string `firestore:"location"`
	Status   string `firestore:"status"`
	ScoreA   *int   `firestore:"scoreA,omitempty"`
	ScoreB   *int   `firestore:"scoreB,omitempty"`
}

func (m MatchDocument) String() string {
	var sb strings.Builder
	sb.WriteString("Match\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("Type", 0, false, m.Type))
	ss = append(ss, treeString("TeamA", 0, false, m.TeamA))
	ss = append(ss, treeString("TeamB", 0, false, m.TeamB))
	ss = append(ss, treeString("Date", 0, false, m.Date))
	ss = append(ss, treeString("Location", 0, false, m.Location))
	ss = append(ss, treeString("Status", 0, false, m.Status))
	ss = append(ss, treeIntPtr("ScoreA", 0, false, m.ScoreA))
	ss = append(ss, treeIntPtr("ScoreB", 0, true, m.ScoreB))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// NewMatchDocument converts a domain match into its persisted shape.
func NewMatchDocument(m league.Match) MatchDocument {
	return MatchDocument{
		Type:     string(m.Type),
		TeamA:    m.TeamA,
		TeamB:    m.TeamB,
		Date:     m.Date,
		Location: m.Location,
		Status:   string(m.Status),
		ScoreA:   m.ScoreA,
		ScoreB:   m.ScoreB,
	}
}

// GetMatches returns every match, normalized.
func GetMatches(ctx context.Context, client *fs.Client) ([]league.Match, error) {
	ids, raws, err := rawDocuments(ctx, client.Collection(MATCHES_COLLECTION))
	if err != nil {
		return nil, fmt.Errorf("GetMatches: error getting match snapshots: %w", err)
	}
	matches := make([]league.Match, len(ids))
	for i := range ids {
		matches[i] = league.NormalizeMatch(ids[i], raws[i])
	}
	return matches, nil
}

// CreateMatch writes a new match document with a store-generated ID and
// returns that ID.
func CreateMatch(ctx context.Context, client *fs.Client, m league.Match) (string, error) {
	ref, _, err := client.Collection(MATCHES_COLLECTION).Add(ctx, NewMatchDocument(m))
	if err != nil {
		return "", fmt.Errorf("CreateMatch: error adding match document: %w", err)
	}
	return ref.ID, nil
}
