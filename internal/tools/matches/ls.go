package matches

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/angoleague/algtool/internal/firestore"
	"github.com/angoleague/algtool/internal/league"
)

// LsMatches prints every match as a table.
func LsMatches(ctx *Context) error {
	ms, err := firestore.GetMatches(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("LsMatches: failed to get matches: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Type", "Team A", "Team B", "Date", "Location", "Status", "Score"})
	for _, m := range ms {
		t.AppendRow(table.Row{m.ID, m.Type, m.TeamA, m.TeamB, m.Date, m.Location, m.Status, scoreString(m)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func scoreString(m league.Match) string {
	if m.ScoreA == nil || m.ScoreB == nil {
		return ""
	}
	return fmt.Sprintf("%d - %d", *m.ScoreA, *m.ScoreB)
}
