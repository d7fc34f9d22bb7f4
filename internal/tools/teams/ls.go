package teams

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/angoleague/algtool/internal/firestore"
)

// LsTeams prints every team as a table, optionally filtered by locality.
func LsTeams(ctx *Context) error {
	ts, err := firestore.GetTeams(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("LsTeams: failed to get teams: %w", err)
	}
	if ctx.Locality != "" {
		ts = firestore.TeamsByLocality(ts, ctx.Locality)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "Locality", "Captain", "Members"})
	for _, team := range ts {
		t.AppendRow(table.Row{team.ID, team.Name, team.Locality, team.CaptainID, len(team.Members)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
