package firestore

import (
	"context"
	"fmt"
	"strings"

	fs "cloud.google.com/go/firestore"

	"github.com/angoleague/algtool/internal/league"
)

// TeamDocument is the persisted shape of a team. Counters are flattened at
// the top level to match what the web client reads.
type TeamDocument struct {
	Name         string   `firestore:"name"`
	Locality     string   `firestore:"locality"`
	CaptainID    string   `firestore:"captainId"`
	Members      []string `firestore:"members"`
	Wins         int      `firestore:"wins"`
	Losses       int      `firestore:"losses"`
	Draws        int      `firestore:"draws"`
	GoalsFor     int      `firestore:"goalsFor"`
	GoalsAgainst int      `firestore:"goalsAgainst"`
}

func (t TeamDocument) String() string {
	var sb strings.Builder
	sb.WriteString("Team\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("Name", 0, false, t.Name))
	ss = append(ss, treeString("Locality", 0, false, t.Locality))
	ss = append(ss, treeString("CaptainID", 0, false, t.CaptainID))
	ss = append(ss, treeStringSlice("Members", 0, false, t.Members))
	ss = append(ss, treeInt("Wins", 0, false, t.Wins))
	ss = append(ss, treeInt("Losses", 0, false, t.Losses))
	ss = append(ss, treeInt("Draws", 0, false, t.Draws))
	ss = append(ss, treeInt("GoalsFor", 0, false, t.GoalsFor))
	ss = append(ss, treeInt("GoalsAgainst", 0, true, t.GoalsAgainst))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// NewTeamDocument converts a domain team into its persisted shape. The
// captain is always included in the member list.
func NewTeamDocument(t league.Team) TeamDocument {
	members := t.Members
	if t.CaptainID != "" {
		found := false
		for _, m := range members {
			if m == t.CaptainID {
				found = true
				break
			}
		}
		if !found {
			members = append([]string{t.CaptainID}, members...)
		}
	}
	if members == nil {
		members = []string{}
	}
	return TeamDocument{
		Name:         t.Name,
		Locality:     t.Locality,
		CaptainID:    t.CaptainID,
		Members:      members,
		Wins:         t.Record.Wins,
		Losses:       t.Record.Losses,
		Draws:        t.Record.Draws,
		GoalsFor:     t.Record.GoalsFor,
		GoalsAgainst: t.Record.GoalsAgainst,
	}
}

// GetTeams returns every team, normalized.
func GetTeams(ctx context.Context, client *fs.Client) ([]league.Team, error) {
	ids, raws, err := rawDocuments(ctx, client.Collection(TEAMS_COLLECTION))
	if err != nil {
		return nil, fmt.Errorf("GetTeams: error getting team snapshots: %w", err)
	}
	teams := make([]league.Team, len(ids))
	for i := range ids {
		teams[i] = league.NormalizeTeam(ids[i], raws[i])
	}
	return teams, nil
}

// CreateTeam writes a new team with a store-generated ID and a zeroed
// aggregate record, and returns that ID.
func CreateTeam(ctx context.Context, client *fs.Client, t league.Team) (string, error) {
	t.Record = league.TeamRecord{}
	ref, _, err := client.Collection(TEAMS_COLLECTION).Add(ctx, NewTeamDocument(t))
	if err != nil {
		return "", fmt.Errorf("CreateTeam: error adding team document: %w", err)
	}
	return ref.ID, nil
}

// TeamsByLocality filters teams to those whose locality matches, used for
// local matchmaking suggestions.
func TeamsByLocality(teams []league.Team, locality string) []league.Team {
	out := make([]league.Team, 0)
	for _, t := range teams {
		if strings.EqualFold(t.Locality, locality) {
			out = append(out, t)
		}
	}
	return out
}
